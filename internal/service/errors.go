package service

import (
	"errors"
	"fmt"
)

// ErrEmptyCart is returned when checkout is attempted on an empty cart
var ErrEmptyCart = errors.New("cart is empty")

// InsufficientStockError is returned when a cart mutation would push a
// line's quantity beyond the product's available stock. The original
// storefront swallowed these silently; surfacing them keeps the rejection
// testable.
type InsufficientStockError struct {
	ProductID int
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested=%d, available=%d",
		e.ProductID, e.Requested, e.Available)
}

// InvalidRegionError is returned when a pincode does not match the prefix
// expected for its region. This is control-plane policy, not a registry
// concern.
type InvalidRegionError struct {
	Region string
	Prefix string
	Code   string
}

func (e *InvalidRegionError) Error() string {
	return fmt.Sprintf("%s pincodes start with %s, got %q", e.Region, e.Prefix, e.Code)
}

// ValidationError reports a structurally valid but rejected admin input,
// such as a duplicate category name or an unknown product category.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
