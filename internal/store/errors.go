package store

import "errors"

var (
	ErrLoginAlreadyExists  = errors.New("login already exists")
	ErrNoUserWasFound      = errors.New("no user was found")
	ErrRecoveryKeyNotFound = errors.New("recovery key was not found")
	ErrProfileNotFound     = errors.New("profile was not found")
)

var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan row")
)
