package baseconv

import (
	"math/big"
	"slices"
)

// ConvertBig behaves like Convert but accumulates the value in a big.Int,
// so it accepts numbers of any length and never returns ErrOverflow.
func ConvertBig[D Digit](number []D, fromBase, toBase D) ([]D, error) {
	if err := validate(number, fromBase, toBase); err != nil {
		return nil, err
	}
	return encodeBig[D](decodeBig(number, uint64(fromBase)), uint64(toBase)), nil
}

func decodeBig[D Digit](number []D, base uint64) *big.Int {
	var bigBase, bigDigit big.Int
	bigBase.SetUint64(base)
	value := new(big.Int)
	for _, digit := range number {
		bigDigit.SetUint64(uint64(digit))
		value.Mul(value, &bigBase)
		value.Add(value, &bigDigit)
	}
	return value
}

// encodeBig consumes value.
func encodeBig[D Digit](value *big.Int, base uint64) []D {
	if value.Sign() == 0 {
		return []D{0}
	}
	var bigBase, remainder big.Int
	bigBase.SetUint64(base)
	var digits []D
	for value.Sign() > 0 {
		value.QuoRem(value, &bigBase, &remainder)
		digits = append(digits, D(remainder.Uint64()))
	}
	slices.Reverse(digits)
	return digits
}
