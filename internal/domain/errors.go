package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrConflict           = errors.New("record was modified concurrently")
	ErrReadOnlyCatalog    = errors.New("menu source is read-only")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrImportUnavailable  = errors.New("spreadsheet import is not configured")
)

// ValidationError reports input that breaks a business rule. It is always
// surfaced to the caller and never reaches the network layer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

var (
	ErrEmptyCart  = NewValidationError("cart", "your cart is empty, please add items to order")
	ErrOutOfStock = NewValidationError("item", "item is out of stock")
)
