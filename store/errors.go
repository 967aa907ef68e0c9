package store

import "errors"

var (
	// ErrDuplicateEmail is returned when registering an email that already
	// has an account.
	ErrDuplicateEmail = errors.New("an account with this email already exists")

	// ErrNotFound is returned for lookups of users or posts that do not exist.
	ErrNotFound = errors.New("record not found")

	// ErrWrongPassword is returned when a password does not match the stored
	// hash for the account.
	ErrWrongPassword = errors.New("password does not match")
)
