package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a signed session token issued by the key blob service.
//
// The "sub" claim carries the numeric user ID. SignedString is the compact
// form sent in the Authorization header.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 user ID.
func (t *Token) GetUserID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("read token subject: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse user id from token subject: %w", err)
	}

	return userID, nil
}

// String implements [fmt.Stringer] and returns the compact token.
func (t *Token) String() string {
	return t.SignedString
}
