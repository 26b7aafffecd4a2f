package utils

import "errors"

// Domain error kinds. Services wrap these with fmt.Errorf("%w: detail") so
// handlers can map them to API error codes with errors.Is while keeping the
// human-readable detail in the message.
var (
	ErrValidation         = errors.New("VALIDATION_ERROR")
	ErrNotFound           = errors.New("NOT_FOUND")
	ErrInvalidTransaction = errors.New("INVALID_TRANSACTION")
	ErrInsufficientStock  = errors.New("INSUFFICIENT_STOCK")
)
