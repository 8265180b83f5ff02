package optics

import (
	"errors"
	"fmt"
	"math"
)

// Domain errors for model evaluation.
var (
	// ErrParameterBounds indicates a physical parameter that is zero, negative or not finite.
	ErrParameterBounds = errors.New("optics: parameter out of valid bounds")

	// ErrEmptyGrid indicates a position grid without samples.
	ErrEmptyGrid = errors.New("optics: empty position grid")
)

// ParamError names the parameter that failed validation.
type ParamError struct {
	Name  string
	Value float64
}

func (e *ParamError) Error() string {
	if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
		return fmt.Sprintf("non-finite %s", e.Name)
	}
	return fmt.Sprintf("non-positive %s", e.Name)
}

func (e *ParamError) Unwrap() error {
	return ErrParameterBounds
}
