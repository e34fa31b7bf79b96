package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a mutation targets an id that does not exist
var ErrNotFound = errors.New("not found")

// ReferencedError is returned when deleting a category that is still
// referenced by products. ProductCount is the number of blocking products.
type ReferencedError struct {
	Category     string
	ProductCount int
}

func (e *ReferencedError) Error() string {
	return fmt.Sprintf("category %q is referenced by %d product(s)", e.Category, e.ProductCount)
}
