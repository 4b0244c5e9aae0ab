package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName         = errors.New("name is required")
	ErrNegativeQuantity  = errors.New("quantity cannot be negative")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidEntityType = errors.New("invalid entity type")
)
