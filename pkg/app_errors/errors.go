package apperrors

import "errors"

var (
	ErrRideNotFound        = errors.New("ride not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrAdminNotFound       = errors.New("admin not found")
	ErrInvalidToken        = errors.New("invalid ticket token")
	ErrAlreadyUsed         = errors.New("ticket already used")
	ErrPaymentRequired     = errors.New("ticket not paid")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidSignature    = errors.New("invalid payment signature")
	ErrPaymentGateway      = errors.New("payment gateway error")
	ErrInternalServerError = errors.New("internal server error")
)
