// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of key material and account data
// before it reaches storage.
//
// The server never sees plaintext keys, so validation is structural only:
// required fields are present, salts decode to the right length, and wrapped
// keys carry a supported version and look like ciphertext. Whether a blob
// actually opens is something only a client holding the key can tell.
//
// Validate accepts optional field names to restrict the check to a subset
// of fields.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
