package args

import "fmt"

// Registry stores entries in registration order and indexes them by short
// and long identifier. Identifiers are write-once; there is no removal.
type Registry struct {
	entries []Arg
	byShort map[rune]int
	byLong  map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make([]Arg, 0, 8),
		byShort: make(map[rune]int),
		byLong:  make(map[string]int),
	}
}

// Add registers arg. It fails, leaving the registry untouched, when arg is
// nil, has no identifier, or reuses an identifier already registered.
func (r *Registry) Add(arg Arg) error {
	if arg == nil || arg.isNil() {
		return NewParseError(ErrorTypeNilArg, "attempted to add a nil argument")
	}

	short, long := arg.Short(), arg.Long()
	if short == NoShort && long == "" {
		return NewParseError(ErrorTypeMissingName, "argument has neither a short nor a long name")
	}
	if short != NoShort {
		if _, exists := r.byShort[short]; exists {
			return &ParseError{
				Type:    ErrorTypeDuplicateShort,
				Message: fmt.Sprintf("short name '%c' already exists", short),
				Token:   string(short),
				Arg:     arg.String(),
			}
		}
	}
	if long != "" {
		if _, exists := r.byLong[long]; exists {
			return &ParseError{
				Type:    ErrorTypeDuplicateLong,
				Message: fmt.Sprintf("long name '%s' already exists", long),
				Token:   long,
				Arg:     arg.String(),
			}
		}
	}

	idx := len(r.entries)
	r.entries = append(r.entries, arg)
	if short != NoShort {
		r.byShort[short] = idx
	}
	if long != "" {
		r.byLong[long] = idx
	}
	return nil
}

// ByShort resolves a short identifier.
func (r *Registry) ByShort(short rune) (Arg, bool) {
	idx, ok := r.byShort[short]
	if !ok {
		return nil, false
	}
	return r.entries[idx], true
}

// ByLong resolves a long identifier.
func (r *Registry) ByLong(long string) (Arg, bool) {
	idx, ok := r.byLong[long]
	if !ok {
		return nil, false
	}
	return r.entries[idx], true
}

// All returns the registered entries in registration order.
func (r *Registry) All() []Arg {
	out := make([]Arg, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registered entries.
func (r *Registry) Len() int { return len(r.entries) }

// longNames returns every registered long identifier in registration order.
func (r *Registry) longNames() []string {
	names := make([]string, 0, len(r.byLong))
	for _, a := range r.entries {
		if a.Long() != "" {
			names = append(names, a.Long())
		}
	}
	return names
}
