package services

import "errors"

var (
	// ErrDuplicateEmail is returned when a signup or email edit collides
	// with an existing account.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is the normal negative outcome of
	// authentication — unknown email and wrong password are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when an operation targets an unknown
	// user id.
	ErrUserNotFound = errors.New("user not found")

	// ErrGateway covers every failure of the external recipe catalog:
	// transport errors, timeouts, non-200 responses, and undecodable
	// payloads. Gateway calls are never retried.
	ErrGateway = errors.New("recipe catalog unavailable")
)
