// Package args implements a small command-line option parser: typed
// single and multi-valued entries, a registry indexed by short and long
// identifier, a left-to-right tokenizer and a help renderer.
package args

import "time"

// Kind identifies the value type an entry coerces its tokens into.
type Kind string

const (
	KindBool     Kind = "bool"
	KindInt      Kind = "int"
	KindFloat    Kind = "float"
	KindString   Kind = "string"
	KindDuration Kind = "duration"
)

// Value is the closed set of types an entry can hold.
type Value interface {
	bool | int | float64 | string | time.Duration
}

// NoShort marks an entry that has no short identifier.
const NoShort rune = 0

// Family defaults used by the demo programs and DefaultIntRange / MaxLength.
const (
	DefaultIntMin       = -127
	DefaultIntMax       = 128
	DefaultMaxStringLen = 25
)

// placeholder returns the value hint shown in help output.
func (k Kind) placeholder() string {
	if k == KindBool {
		return ""
	}
	return string(k)
}
