package aperture

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry is returned for any slit geometry or resolution that
	// cannot produce a mask. The wrapped message names the offending input.
	ErrInvalidGeometry = errors.New("aperture: invalid geometry")

	// ErrOutOfRange indicates a row index outside the mask.
	ErrOutOfRange = errors.New("aperture: index out of range")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidGeometry, fmt.Sprintf(format, args...))
}
