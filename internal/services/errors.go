package services

import "errors"

// Input errors signal a draft referencing catalog entries that do not exist
// or cannot be combined. They are catalog-sync defects, not operator
// mistakes, so they surface as hard failures rather than validation problems.
var (
	ErrUnknownPlan     = errors.New("unknown plan")
	ErrUnknownProduct  = errors.New("unknown product")
	ErrUnknownDiscount = errors.New("unknown discount")
	ErrPeriodMismatch  = errors.New("product period does not match plan period")
	ErrInvalidQuantity = errors.New("item quantity must be at least 1")
)

// IsInputError reports whether err belongs to the input-error taxonomy.
func IsInputError(err error) bool {
	return errors.Is(err, ErrUnknownPlan) ||
		errors.Is(err, ErrUnknownProduct) ||
		errors.Is(err, ErrUnknownDiscount) ||
		errors.Is(err, ErrPeriodMismatch) ||
		errors.Is(err, ErrInvalidQuantity)
}
