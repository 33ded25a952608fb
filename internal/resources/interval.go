package resources

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/stuttgart-things/workspaces/internal/workspace"
)

// ErrInvalidInput is returned for resource values that are not integers
var ErrInvalidInput = errors.New("invalid input")

// Clamp forces value into the inclusive interval
func Clamp(value int, interval workspace.ResourceInterval) int {
	return min(max(value, interval.Min), interval.Max)
}

// IsValid reports whether value lies within the inclusive interval
func IsValid(value int, interval workspace.ResourceInterval) bool {
	return value >= interval.Min && value <= interval.Max
}

// Check returns an error if the interval is empty (min > max)
func Check(interval workspace.ResourceInterval) error {
	if interval.Min > interval.Max {
		return fmt.Errorf("interval [%d,%d]: min exceeds max", interval.Min, interval.Max)
	}
	return nil
}

// Parse converts raw user input into an integer resource value.
// Garbage is reported as ErrInvalidInput, never coerced to a boundary.
// Integers beyond the int range saturate so that clamping still applies.
func Parse(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidInput)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			if strings.HasPrefix(s, "-") {
				return math.MinInt, nil
			}
			return math.MaxInt, nil
		}
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, raw)
	}
	return v, nil
}

// FromFloat converts a numeric value into an integer resource value.
// NaN, infinities and fractional values are ErrInvalidInput; whole numbers
// beyond the int range saturate.
func FromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v is not a finite number", ErrInvalidInput, f)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidInput, f)
	}
	switch {
	case f >= math.MaxInt:
		return math.MaxInt, nil
	case f <= math.MinInt:
		return math.MinInt, nil
	}
	return int(f), nil
}

// ClampText parses raw and clamps the result into the interval
func ClampText(raw string, interval workspace.ResourceInterval) (int, error) {
	v, err := Parse(raw)
	if err != nil {
		return 0, err
	}
	return Clamp(v, interval), nil
}
