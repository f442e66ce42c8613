package recovery

import "errors"

var (
	// ErrMissingParameter is returned when a required calculation field is absent.
	ErrMissingParameter = errors.New("recovery: missing parameter")
	// ErrInvalidNumber is returned when a numeric field cannot be parsed.
	ErrInvalidNumber = errors.New("recovery: invalid number")
	// ErrUnknownCostType is returned by Cost for an unrecognized cost type.
	ErrUnknownCostType = errors.New("recovery: unknown cost type")
	// ErrNonFiniteResult is returned when an input or intermediate value is NaN or infinite.
	ErrNonFiniteResult = errors.New("recovery: non-finite result")
)
