package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shelfsync/models"
)

const (
	FieldName     = "name"
	FieldQuantity = "quantity"
	FieldPrice    = "price"
)

type InventoryValidator struct {
}

func NewInventoryValidator() Validator {
	return &InventoryValidator{}
}

func (v *InventoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case *models.Item:
		return v.validateItem(ctx, *value, fields...)

	case models.Category:
		return v.validateCategory(ctx, value, fields...)
	case *models.Category:
		return v.validateCategory(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *InventoryValidator) validateItem(_ context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldQuantity, FieldPrice}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if item.Name == "" {
				return ErrEmptyName
			}
		case FieldQuantity:
			if item.Quantity < 0 {
				return ErrNegativeQuantity
			}
		case FieldPrice:
			if item.Price < 0 {
				return ErrNegativePrice
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *InventoryValidator) validateCategory(_ context.Context, category models.Category, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if category.Name == "" {
				return ErrEmptyName
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
