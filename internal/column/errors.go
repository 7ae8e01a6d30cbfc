package column

import (
	"errors"

	"github.com/alexiusacademia/gorcc/internal/stressblock"
)

// Error kinds. Every error returned by this package matches one of these
// with errors.Is.
var (
	ErrInvalidGeometry      = errors.New("invalid geometry")
	ErrInvalidMaterial      = errors.New("invalid material")
	ErrDegenerateTrialDepth = errors.New("degenerate trial depth")
	ErrSingularStressBlock  = stressblock.ErrSingular
)

// ValidationError represents an input that violates its constraint
type ValidationError struct {
	Kind  error
	Field string
	Value float64
	msg   string
}

func (e *ValidationError) Error() string {
	return e.Kind.Error() + ": " + e.msg
}

// Unwrap returns the error kind
func (e *ValidationError) Unwrap() error { return e.Kind }
