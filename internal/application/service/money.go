package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseMoney parses a decimal money string. The wire format carries money as
// strings to avoid floating-point serialization ambiguity; arithmetic is the
// only place values become numbers. ParseFloat accepts "NaN" and "Inf",
// which would make aggregate sums unserializable, so non-finite values are
// rejected here.
func parseMoney(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid money value %q", s)
	}
	return v, nil
}

// normalizeMoney validates a caller-supplied money string and renders it
// with two decimal places. Negative values are rejected.
func normalizeMoney(s string) (string, error) {
	v, err := parseMoney(s)
	if err != nil {
		return "", err
	}
	if v < 0 {
		return "", fmt.Errorf("money value %q is negative", s)
	}
	return fmt.Sprintf("%.2f", v), nil
}

// moneyOrZero reads a nullable money string for aggregation, treating
// absent or unparseable values as 0.
func moneyOrZero(s *string) float64 {
	if s == nil {
		return 0
	}
	v, err := parseMoney(*s)
	if err != nil {
		return 0
	}
	return v
}
