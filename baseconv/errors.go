package baseconv

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/drmason13/allyourbase/safeconvert"
)

var (
	ErrInvalidInputBase  = errors.New("input base must be at least 2")
	ErrInvalidOutputBase = errors.New("output base must be at least 2")
	// ErrInvalidDigit is matched by every *InvalidDigitError.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrOverflow is returned by Convert when the number does not fit in a uint64.
	ErrOverflow = safeconvert.ErrOverflow
)

// InvalidDigitError reports the first digit that is not valid in the input base.
type InvalidDigitError struct {
	Digit uint64
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInvalidDigit, e.Digit)
}

func (e *InvalidDigitError) Is(target error) bool {
	return target == ErrInvalidDigit
}
