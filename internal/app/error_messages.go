// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the wording shown to people: short messages written by
// the server into HTTP error bodies, and the guidance the client shows for
// each error class.
package app

// Messages written by the key blob server. Clients never parse them.
const (
	MsgInvalidDataProvided  = "invalid data provided"
	MsgInvalidJSON          = "invalid JSON was passed"
	MsgInvalidLoginPassword = "invalid login/password"
	MsgInternalServerError  = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned for any token that does not
	// verify. Expired and forged tokens are not told apart.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgNoUserIDProvided   = "no user ID provided"
	MsgLoginAlreadyExists = "login already exists"
	MsgAccountNotFound    = "account not found"

	// MsgVersionIsNotSpecified and MsgUnsupportedKeyVersion reject key
	// material whose scheme version is missing or unknown.
	MsgVersionIsNotSpecified = "version is not specified"
	MsgUnsupportedKeyVersion = "unsupported key version"

	// MsgNotCiphertext rejects key material that is not encrypted.
	MsgNotCiphertext = "key material must be encrypted"
)
