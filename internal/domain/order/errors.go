package order

import "errors"

var (
	ErrMissingField      = errors.New("required field is missing")
	ErrLocationNotChosen = errors.New("delivery location is not chosen")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrInvalidQuantity   = errors.New("quantity must not be negative")
	ErrUnknownProduct    = errors.New("product is not in the catalog")

	// ErrNoOrders signals an absent store file. Callers treat it as the
	// informational "no data" state, never as a fatal failure.
	ErrNoOrders = errors.New("no orders recorded yet")
)

// IsValidation reports whether err belongs to the validation class that
// must block persistence and surface as a user-facing warning.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrLocationNotChosen) ||
		errors.Is(err, ErrEmptyOrder) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrUnknownProduct)
}
