package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrDomainNotFound       = errors.New("domain not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrEmailTaken           = errors.New("email already in use")
)

// business logic errors
var (
	ErrInvalidBid         = errors.New("invalid bid")
	ErrBidTooLow          = errors.New("bid amount too low")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnknownExportType  = errors.New("unknown export type")
)
