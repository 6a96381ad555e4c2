package args

import (
	"errors"
	"math"
	"strconv"
	"time"
)

var (
	errNoDigits    = errors.New("missing numeric prefix")
	errNoUnit      = errors.New("missing unit suffix")
	errUnknownUnit = errors.New("unknown unit, want one of d h m s n")
	errOverflow    = errors.New("duration overflows")
)

// coercer turns a raw token into a typed value.
type coercer[T Value] func(raw string) (T, error)

func parseBool(raw string) (bool, error) {
	switch raw {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, invalidValueError(raw, KindBool, nil)
}

func parseInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidValueError(raw, KindInt, err)
	}
	return n, nil
}

func parseFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, invalidValueError(raw, KindFloat, err)
	}
	return f, nil
}

func parseString(raw string) (string, error) { return raw, nil }

// durationUnits maps the single-letter suffix of a duration token to its size.
var durationUnits = map[byte]time.Duration{
	'd': 24 * time.Hour,
	'h': time.Hour,
	'm': time.Millisecond,
	's': time.Second,
	'n': time.Nanosecond,
}

// parseDuration parses "[digits][unit]" and normalizes the result to whole
// microseconds. Signs, spaces and multi-letter units are rejected.
func parseDuration(raw string) (time.Duration, error) {
	if len(raw) < 2 {
		if len(raw) == 1 && isDigit(raw[0]) {
			return 0, invalidValueError(raw, KindDuration, errNoUnit)
		}
		return 0, invalidValueError(raw, KindDuration, errNoDigits)
	}

	digits, unitByte := raw[:len(raw)-1], raw[len(raw)-1]
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			if i == 0 {
				return 0, invalidValueError(raw, KindDuration, errNoDigits)
			}
			return 0, invalidValueError(raw, KindDuration, errUnknownUnit)
		}
	}

	unit, ok := durationUnits[unitByte]
	if !ok {
		if isDigit(unitByte) {
			return 0, invalidValueError(raw, KindDuration, errNoUnit)
		}
		return 0, invalidValueError(raw, KindDuration, errUnknownUnit)
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, invalidValueError(raw, KindDuration, err)
	}
	if n > math.MaxInt64/int64(unit) {
		return 0, invalidValueError(raw, KindDuration, errOverflow)
	}
	return (time.Duration(n) * unit).Truncate(time.Microsecond), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
