package apperrors

import "errors"

var (
	ErrRaffleNotFound        = errors.New("raffle not found")
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrInsufficientAvailable = errors.New("insufficient available tickets")
	ErrInvalidInput          = errors.New("invalid input")
	ErrEmailExists           = errors.New("email already registered")
	ErrWrongPassword         = errors.New("wrong password")
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrForbidden             = errors.New("forbidden")
	ErrInternalServerError   = errors.New("internal server error")
)
