package services

import "errors"

// Domain errors raised at the point of violation, before any write. The HTTP
// layer maps them to response envelopes; services never touch status codes.
var (
	ErrEntityNotFound    = errors.New("entity not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderInProgress   = errors.New("order can no longer be modified")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrForbidden         = errors.New("forbidden")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrSessionClosed     = errors.New("table session has ended")
)
