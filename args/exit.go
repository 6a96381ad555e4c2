package args

import "errors"

// ExitCodeDefaults holds common default codes.
type ExitCodeDefaults struct {
	Success         int // default: 0
	GeneralError    int // default: 1
	MisusageError   int // default: 2
	ValidationError int // default: 3
}

// DefaultExitCodes returns the conventional 0/1/2/3 mapping.
func DefaultExitCodes() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2, ValidationError: 3}
}

// ExitCodeManager maps parse errors to process exit codes. The parser never
// exits on its own; programs call Resolve on the error Parse returned.
type ExitCodeManager struct {
	byType   map[ErrorType]int
	defaults ExitCodeDefaults
}

// NewExitCodeManager prewires unknown identifiers as misuse and value
// errors as validation failures.
func NewExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{byType: make(map[ErrorType]int), defaults: DefaultExitCodes()}
	m.rewire()
	return m
}

func (m *ExitCodeManager) rewire() {
	for _, t := range []ErrorType{ErrorTypeUnknownShort, ErrorTypeUnknownLong} {
		m.byType[t] = m.defaults.MisusageError
	}
	for _, t := range []ErrorType{ErrorTypeInvalidValue, ErrorTypeOutOfRange, ErrorTypeTooLong, ErrorTypeEmptyValue} {
		m.byType[t] = m.defaults.ValidationError
	}
}

// Define overrides the code used for one error category.
func (m *ExitCodeManager) Define(typ ErrorType, code int) *ExitCodeManager {
	m.byType[typ] = code
	return m
}

// Default replaces the default codes and re-derives the prewired mappings.
// Overrides made with Define before this call are discarded.
func (m *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	m.defaults = d
	m.byType = make(map[ErrorType]int)
	m.rewire()
	return m
}

// Resolve converts an error to an exit code. For joined errors the first
// *ParseError in report order decides.
func (m *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return m.defaults.Success
	}
	if pe := firstParseError(err); pe != nil {
		if code, ok := m.byType[pe.Type]; ok {
			return code
		}
	}
	return m.defaults.GeneralError
}

func firstParseError(err error) *ParseError {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, inner := range joined.Unwrap() {
			if pe := firstParseError(inner); pe != nil {
				return pe
			}
		}
		return nil
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}
	return nil
}
