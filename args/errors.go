package args

import "fmt"

// ErrorType represents the category of a registration or parse failure.
// Callers switch on it instead of matching message text.
type ErrorType string

const (
	ErrorTypeNilArg         ErrorType = "nil_arg"
	ErrorTypeMissingName    ErrorType = "missing_name"
	ErrorTypeDuplicateShort ErrorType = "duplicate_short"
	ErrorTypeDuplicateLong  ErrorType = "duplicate_long"
	ErrorTypeUnknownShort   ErrorType = "unknown_short"
	ErrorTypeUnknownLong    ErrorType = "unknown_long"
	ErrorTypeInvalidValue   ErrorType = "invalid_value"
	ErrorTypeOutOfRange     ErrorType = "out_of_range"
	ErrorTypeTooLong        ErrorType = "too_long"
	ErrorTypeEmptyValue     ErrorType = "empty_value"
)

// ParseError describes a single diagnostic produced while registering
// entries or scanning an argument vector.
type ParseError struct {
	Type       ErrorType
	Message    string
	Token      string // raw token or value that triggered the error
	Arg        string // display name of the entry involved, if any
	Expected   Kind   // expected kind for value errors
	Suggestion string
	Cause      error
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return e.Message + " (" + e.Suggestion + ")"
	}
	return e.Message
}

// Unwrap exposes the underlying strconv (or validator) error.
func (e *ParseError) Unwrap() error { return e.Cause }

// NewParseError creates a new ParseError with the given type and message
func NewParseError(errType ErrorType, message string) *ParseError {
	return &ParseError{Type: errType, Message: message}
}

// IsErrorType reports whether any error in err's tree is a *ParseError of type t.
// Joined errors returned by Parser.Parse are searched element by element.
func IsErrorType(err error, t ErrorType) bool {
	switch e := err.(type) {
	case nil:
		return false
	case *ParseError:
		return e.Type == t || IsErrorType(e.Cause, t)
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			if IsErrorType(inner, t) {
				return true
			}
		}
		return false
	case interface{ Unwrap() error }:
		return IsErrorType(e.Unwrap(), t)
	}
	return false
}

func invalidValueError(token string, kind Kind, cause error) *ParseError {
	return &ParseError{
		Type:     ErrorTypeInvalidValue,
		Message:  fmt.Sprintf("invalid %s value %q", kind, token),
		Token:    token,
		Expected: kind,
		Cause:    cause,
	}
}
