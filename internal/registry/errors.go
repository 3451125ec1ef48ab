package registry

import "errors"

var (
	// ErrInvalidPattern is returned for an empty or malformed path pattern.
	ErrInvalidPattern = errors.New("invalid path pattern")

	// ErrInvalidFieldPath is returned for a malformed field path.
	ErrInvalidFieldPath = errors.New("invalid field path")

	// ErrSystemField is returned when a config lists an identifier,
	// timestamp or status field. The server must be able to query on those.
	ErrSystemField = errors.New("system fields cannot be encrypted")
)
