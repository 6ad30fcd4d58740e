package domain

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned on uniqueness violations: duplicate wallet
	// address, catalog id, transaction hash, or a second moderation for the
	// same observation
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput is returned when a request carries malformed values,
	// such as an unparseable bounds string
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnimplemented is returned by operations that are deliberately
	// stubbed, such as on-chain synchronization
	ErrUnimplemented = errors.New("unimplemented")
)
