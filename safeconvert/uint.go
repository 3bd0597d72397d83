package safeconvert

import (
	"math/bits"

	"github.com/pkg/errors"
)

var ErrOverflow = errors.New("integer overflow")

// MulUint64 returns x*y, or ErrOverflow if the product does not fit in uint64.
func MulUint64(x, y uint64) (uint64, error) {
	hi, lo := bits.Mul64(x, y)
	if hi != 0 {
		return 0, errors.Wrapf(ErrOverflow, "%d * %d exceeds max uint64 value", x, y)
	}
	return lo, nil
}

// AddUint64 returns x+y, or ErrOverflow if the sum does not fit in uint64.
func AddUint64(x, y uint64) (uint64, error) {
	sum, carry := bits.Add64(x, y, 0)
	if carry != 0 {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d exceeds max uint64 value", x, y)
	}
	return sum, nil
}

// MulAddUint64 returns x*m + a, checking both steps for overflow.
func MulAddUint64(x, m, a uint64) (uint64, error) {
	product, err := MulUint64(x, m)
	if err != nil {
		return 0, err
	}
	return AddUint64(product, a)
}
