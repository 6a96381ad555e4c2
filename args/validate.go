package args

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Range returns a validator enforcing min <= v <= max.
func Range[T int | float64 | time.Duration](min, max T) func(T) error {
	return func(v T) error {
		if v < min || v > max {
			return &ParseError{
				Type:    ErrorTypeOutOfRange,
				Message: fmt.Sprintf("value %v out of range [%v, %v]", v, min, max),
			}
		}
		return nil
	}
}

// IntRange is Range for integer entries.
func IntRange(min, max int) func(int) error { return Range(min, max) }

// DefaultIntRange enforces [DefaultIntMin, DefaultIntMax].
func DefaultIntRange() func(int) error { return IntRange(DefaultIntMin, DefaultIntMax) }

// MaxLength rejects strings longer than n characters.
func MaxLength(n int) func(string) error {
	return func(s string) error {
		if utf8.RuneCountInString(s) > n {
			return &ParseError{
				Type:    ErrorTypeTooLong,
				Message: fmt.Sprintf("value is longer than %d characters", n),
			}
		}
		return nil
	}
}

// NonEmpty rejects the empty string.
func NonEmpty() func(string) error {
	return func(s string) error {
		if s == "" {
			return &ParseError{Type: ErrorTypeEmptyValue, Message: "value must not be empty"}
		}
		return nil
	}
}

// OneOf restricts values to the given set.
func OneOf[T comparable](values ...T) func(T) error {
	return func(v T) error {
		for _, allowed := range values {
			if v == allowed {
				return nil
			}
		}
		return &ParseError{
			Type:    ErrorTypeInvalidValue,
			Message: fmt.Sprintf("value %v must be one of %v", v, values),
		}
	}
}
