package service

import "errors"

// Domain errors reported to the caller as values, never as fatal failures.
var (
	// ErrInvalidMobile means the mobile number is not 10 digits starting 6-9.
	ErrInvalidMobile = errors.New("invalid mobile number")

	// ErrInvalidPIN means the PIN is not exactly 4 digits.
	ErrInvalidPIN = errors.New("invalid pin")

	// ErrInvalidCredentials means the account number or PIN did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountNotFound means the referenced account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds means a withdrawal or transfer exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNoSession means the operation requires an active session.
	ErrNoSession = errors.New("no active session")
)
