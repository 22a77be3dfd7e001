package window

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a window name cannot be resolved.
var ErrUnknownKind = errors.New("unknown window kind")

var (
	errEmptyBuffer = errors.New("window buffer must not be empty")
	errZeroSum     = errors.New("window cannot be normalized: zero gain")
	errUnknownNorm = errors.New("unknown normalization mode")
)

func unknownKind(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
