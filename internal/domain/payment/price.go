package payment

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxMinorUnits is the largest amount the payment provider accepts for a
// single intent.
const MaxMinorUnits = 99_999_999

// ParsePrice accepts a JSON number or a numeric string and requires a
// value between one minor unit and MaxMinorUnits.
func ParsePrice(raw any) (float64, error) {
	var p float64
	switch v := raw.(type) {
	case float64:
		p = v
	case int:
		p = float64(v)
	case int64:
		p = float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: valid price is required", ErrBadRequest)
		}
		p = f
	default:
		return 0, fmt.Errorf("%w: valid price is required", ErrBadRequest)
	}
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return 0, fmt.Errorf("%w: valid price is required", ErrBadRequest)
	}
	// compared as float so the int64 conversion in MinorUnits cannot overflow
	cents := math.Round(p * 100)
	if cents < 1 {
		return 0, fmt.Errorf("%w: price is below the smallest currency unit", ErrBadRequest)
	}
	if cents > MaxMinorUnits {
		return 0, fmt.Errorf("%w: price exceeds the maximum of %d minor units", ErrBadRequest, MaxMinorUnits)
	}
	return p, nil
}

// MinorUnits converts a price to the smallest currency unit, rounding half
// away from zero.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
