package args

import (
	"errors"
	"time"
)

// Arg is a registered option: identity plus typed value state.
// The set of implementations is closed; use the New* constructors.
type Arg interface {
	Short() rune
	Long() string
	Description() string
	EnvVar() string
	Kind() Kind
	Multi() bool
	// SetValue coerces raw and stores it. On failure the entry is unchanged.
	SetValue(raw string) error
	IsDefined() bool
	String() string

	// markPresent records the entry without an explicit value.
	markPresent()
	// accepts reports whether raw would be stored by SetValue.
	accepts(raw string) bool
	isNil() bool
}

// entry holds the identity shared by every Arg implementation.
type entry struct {
	short rune
	long  string
	desc  string
	env   string
	kind  Kind
}

func (e *entry) Short() rune         { return e.short }
func (e *entry) Long() string        { return e.long }
func (e *entry) Description() string { return e.desc }
func (e *entry) EnvVar() string      { return e.env }
func (e *entry) Kind() Kind          { return e.kind }

// String returns the most descriptive display name: --long, else -x.
func (e *entry) String() string {
	if e.long != "" {
		return "--" + e.long
	}
	if e.short != NoShort {
		return "-" + string(e.short)
	}
	return "<unnamed>"
}

// convert runs coercion and every validator, annotating failures with the
// entry and token involved.
func convert[T Value](e *entry, coerce func(string) (T, error), validators []func(T) error, raw string) (T, error) {
	v, err := coerce(raw)
	if err == nil {
		for _, validate := range validators {
			if err = validate(v); err != nil {
				break
			}
		}
	}
	if err != nil {
		var zero T
		return zero, e.annotate(raw, err)
	}
	return v, nil
}

func (e *entry) annotate(raw string, err error) *ParseError {
	var pe *ParseError
	if !errors.As(err, &pe) {
		pe = &ParseError{Type: ErrorTypeInvalidValue, Message: err.Error(), Cause: err}
	}
	out := *pe
	out.Token = raw
	out.Arg = e.String()
	out.Expected = e.kind
	out.Message = e.String() + ": " + pe.Message
	return &out
}

// SingleArg is an entry holding at most one value.
type SingleArg[T Value] struct {
	entry
	value      T
	defined    bool
	present    T // value stored by bare presence (true for bools)
	coerce     coercer[T]
	validators []func(T) error
}

func newSingle[T Value](short rune, long string, kind Kind, coerce func(string) (T, error)) *SingleArg[T] {
	return &SingleArg[T]{entry: entry{short: short, long: long, kind: kind}, coerce: coerce}
}

// NewBool creates a boolean entry. Presence alone sets it to true.
func NewBool(short rune, long string) *SingleArg[bool] {
	a := newSingle(short, long, KindBool, parseBool)
	a.present = true
	return a
}

// NewInt creates a base-10 integer entry.
func NewInt(short rune, long string) *SingleArg[int] {
	return newSingle(short, long, KindInt, parseInt)
}

// NewFloat creates a float64 entry.
func NewFloat(short rune, long string) *SingleArg[float64] {
	return newSingle(short, long, KindFloat, parseFloat)
}

// NewString creates a string entry.
func NewString(short rune, long string) *SingleArg[string] {
	return newSingle(short, long, KindString, parseString)
}

// NewDuration creates an entry parsing "[digits][d|h|m|s|n]" tokens.
func NewDuration(short rune, long string) *SingleArg[time.Duration] {
	return newSingle(short, long, KindDuration, parseDuration)
}

// Help sets the description shown by the help renderer.
func (a *SingleArg[T]) Help(desc string) *SingleArg[T] { a.desc = desc; return a }

// Env names an environment variable consulted by the config fallback layer.
func (a *SingleArg[T]) Env(name string) *SingleArg[T] { a.env = name; return a }

// Validate appends a validator run after coercion.
func (a *SingleArg[T]) Validate(fn func(T) error) *SingleArg[T] {
	a.validators = append(a.validators, fn)
	return a
}

// Multi reports false; a SingleArg holds one value.
func (a *SingleArg[T]) Multi() bool { return false }

// IsDefined reports whether the entry was set or marked present.
func (a *SingleArg[T]) IsDefined() bool { return a.defined }

// Value returns the stored value, or the zero value when undefined.
func (a *SingleArg[T]) Value() T { return a.value }

// ValueOr returns the stored value, or def when the entry is undefined.
func (a *SingleArg[T]) ValueOr(def T) T {
	if !a.defined {
		return def
	}
	return a.value
}

// SetValue coerces and validates raw, then overwrites the stored value.
func (a *SingleArg[T]) SetValue(raw string) error {
	v, err := convert(&a.entry, a.coerce, a.validators, raw)
	if err != nil {
		return err
	}
	a.value = v
	a.defined = true
	return nil
}

func (a *SingleArg[T]) markPresent() {
	if a.kind == KindBool {
		a.value = a.present
	}
	a.defined = true
}

func (a *SingleArg[T]) accepts(raw string) bool {
	_, err := convert(&a.entry, a.coerce, a.validators, raw)
	return err == nil
}

func (a *SingleArg[T]) isNil() bool { return a == nil }

// MultiArg is an entry collecting an ordered sequence of values.
type MultiArg[T Value] struct {
	entry
	values     []T
	present    T
	coerce     coercer[T]
	validators []func(T) error
}

func newMulti[T Value](short rune, long string, kind Kind, coerce func(string) (T, error)) *MultiArg[T] {
	return &MultiArg[T]{entry: entry{short: short, long: long, kind: kind}, coerce: coerce}
}

// NewMultiBool creates a repeatable boolean entry; each presence appends true.
func NewMultiBool(short rune, long string) *MultiArg[bool] {
	a := newMulti(short, long, KindBool, parseBool)
	a.present = true
	return a
}

// NewMultiInt creates an entry collecting base-10 integers.
func NewMultiInt(short rune, long string) *MultiArg[int] {
	return newMulti(short, long, KindInt, parseInt)
}

// NewMultiFloat creates an entry collecting float64 values.
func NewMultiFloat(short rune, long string) *MultiArg[float64] {
	return newMulti(short, long, KindFloat, parseFloat)
}

// NewMultiString creates an entry collecting strings.
func NewMultiString(short rune, long string) *MultiArg[string] {
	return newMulti(short, long, KindString, parseString)
}

// NewMultiDuration creates an entry collecting "[digits][d|h|m|s|n]" durations.
func NewMultiDuration(short rune, long string) *MultiArg[time.Duration] {
	return newMulti(short, long, KindDuration, parseDuration)
}

// Help sets the description shown by the help renderer.
func (a *MultiArg[T]) Help(desc string) *MultiArg[T] { a.desc = desc; return a }

// Env names an environment variable consulted by the config fallback layer.
func (a *MultiArg[T]) Env(name string) *MultiArg[T] { a.env = name; return a }

// Validate appends a validator run on every element.
func (a *MultiArg[T]) Validate(fn func(T) error) *MultiArg[T] {
	a.validators = append(a.validators, fn)
	return a
}

// Multi reports true.
func (a *MultiArg[T]) Multi() bool { return true }

// IsDefined reports whether at least one value was collected.
func (a *MultiArg[T]) IsDefined() bool { return len(a.values) > 0 }

// Values returns a copy of the collected values in command-line order.
func (a *MultiArg[T]) Values() []T {
	out := make([]T, len(a.values))
	copy(out, a.values)
	return out
}

// Len returns the number of collected values.
func (a *MultiArg[T]) Len() int { return len(a.values) }

// SetValue appends raw once it coerces and validates.
func (a *MultiArg[T]) SetValue(raw string) error {
	v, err := convert(&a.entry, a.coerce, a.validators, raw)
	if err != nil {
		return err
	}
	a.values = append(a.values, v)
	return nil
}

// markPresent appends true for bool entries and is a no-op otherwise.
func (a *MultiArg[T]) markPresent() {
	if a.kind == KindBool {
		a.values = append(a.values, a.present)
	}
}

func (a *MultiArg[T]) accepts(raw string) bool {
	_, err := convert(&a.entry, a.coerce, a.validators, raw)
	return err == nil
}

func (a *MultiArg[T]) isNil() bool { return a == nil }
