package entities

import "errors"

var (
	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrStorageUnavailable means the backing store could not serve the request.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrValidation means the input was rejected.
	ErrValidation = errors.New("validation failed")
	// ErrAccountExists means an account with the same email is already registered.
	ErrAccountExists = errors.New("account already exists")
	// ErrInvalidCredentials means the email or password did not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
