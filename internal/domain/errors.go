package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProduct marks input rejected by validation.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrProductNotFound is returned when no product has the requested id.
	ErrProductNotFound = errors.New("product not found")
)

// Error carries a client-facing message while still matching its kind
// (ErrInvalidProduct or ErrProductNotFound) under errors.Is.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func InvalidProductError(message string) error {
	return &Error{Kind: ErrInvalidProduct, Message: message}
}

func ProductNotFoundError(id int) error {
	return &Error{Kind: ErrProductNotFound, Message: fmt.Sprintf("Product with ID %d not found.", id)}
}
