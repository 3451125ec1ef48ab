// Package utils holds small helpers shared by the client and the server:
// context keys, auth-hash HMACs, JSON request/response helpers, the resty
// client wrapper, JWT handling and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys from other
// packages cannot collide with ours.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the context key of the authenticated user ID.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the user ID stored by WithUserID.
// ok is false when it is missing or of another type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
