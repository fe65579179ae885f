package marketerrors

import "errors"

// Repository-level errors
var (
	ErrProjectNotFound = errors.New("project not found")
	ErrBidNotFound     = errors.New("bid not found")
)

// business logic errors
var (
	ErrUnauthorized          = errors.New("caller is not authorized for this operation")
	ErrEmergencyStopped      = errors.New("marketplace is emergency stopped")
	ErrProjectNotActive      = errors.New("project is not active")
	ErrInsufficientFunds     = errors.New("escrowed value does not match bid amount")
	ErrInvalidMilestoneIndex = errors.New("milestone index out of range")
)
