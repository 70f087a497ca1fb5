package modal

import (
	"errors"
	"fmt"
)

// Domain errors for the characteristic-equation solvers.
var (
	// ErrNoRealRoot indicates the frame cubic produced no root with a
	// negligible imaginary part. The shell derivation guarantees a real
	// root for physical inputs, so this marks malformed parameters.
	ErrNoRealRoot = errors.New("modal: characteristic cubic has no real root")
)

// ModeError wraps a solver error with the mode pair it occurred at.
type ModeError struct {
	Mode    Mode
	Wrapped error
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("mode %s: %v", e.Mode, e.Wrapped)
}

func (e *ModeError) Unwrap() error {
	return e.Wrapped
}
