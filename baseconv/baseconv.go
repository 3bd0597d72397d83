// Package baseconv converts numbers, given as sequences of digits, between positional bases.
//
// Digits are ordered most significant first and the empty sequence is zero.
// Results are always canonical: no leading zeros, and zero is returned as [0].
package baseconv

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/drmason13/allyourbase/safeconvert"
)

// Digit is any unsigned integer type a digit sequence can be expressed in.
type Digit interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Convert re-expresses number, written in fromBase, as digits in toBase.
//
// The value is accumulated in a uint64. Numbers larger than math.MaxUint64
// fail with ErrOverflow; use ConvertBig for those.
func Convert[D Digit](number []D, fromBase, toBase D) ([]D, error) {
	if err := validate(number, fromBase, toBase); err != nil {
		return nil, err
	}
	value, err := decode(number, uint64(fromBase))
	if err != nil {
		return nil, err
	}
	return encode[D](value, uint64(toBase)), nil
}

// validate checks the bases and digits in the order errors are reported:
// input base, output base, then the first out-of-range digit.
func validate[D Digit](number []D, fromBase, toBase D) error {
	if fromBase < 2 {
		return ErrInvalidInputBase
	}
	if toBase < 2 {
		return ErrInvalidOutputBase
	}
	for _, digit := range number {
		if digit >= fromBase {
			return &InvalidDigitError{Digit: uint64(digit)}
		}
	}
	return nil
}

// Horner's rule, most significant digit first.
func decode[D Digit](number []D, base uint64) (uint64, error) {
	var value uint64
	var err error
	for _, digit := range number {
		value, err = safeconvert.MulAddUint64(value, base, uint64(digit))
		if err != nil {
			return 0, errors.Wrapf(err, "decoding %d digits in base %d", len(number), base)
		}
	}
	return value, nil
}

func encode[D Digit](value, base uint64) []D {
	if value == 0 {
		return []D{0}
	}
	var digits []D
	for value > 0 {
		digits = append(digits, D(value%base))
		value /= base
	}
	slices.Reverse(digits)
	return digits
}
