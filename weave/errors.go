package weave

import "errors"

var (
	// ErrInvalidConfig signals an invalid view configuration.
	ErrInvalidConfig = errors.New("weave: invalid configuration")

	// ErrUnsortedOperand signals an operand that violates the view's ordering.
	ErrUnsortedOperand = errors.New("weave: operand not sorted")
)
