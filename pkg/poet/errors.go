package poet

import "fmt"

// ErrorCode represents the category of error raised while building
// descriptors or parsing format strings.
type ErrorCode int

const (
	// UnknownErrorCode is the zero value and should not appear in practice.
	UnknownErrorCode ErrorCode = iota

	// FormatErrorCode covers malformed code-block format strings:
	// dangling '$', bad indexes, missing named arguments, unused arguments.
	FormatErrorCode

	// StructuralErrorCode covers descriptor trees that cannot be legal Java:
	// constructors with return types, abstract methods with bodies, record
	// operations on non-records, and similar builder misuse.
	StructuralErrorCode

	// ModifierErrorCode covers invalid modifier combinations.
	ModifierErrorCode

	// IdentifierErrorCode covers names that are not valid Java identifiers.
	IdentifierErrorCode
)

// String returns the string representation of the error code.
func (c ErrorCode) String() string {
	switch c {
	case FormatErrorCode:
		return "FormatError"
	case StructuralErrorCode:
		return "StructuralError"
	case ModifierErrorCode:
		return "ModifierError"
	case IdentifierErrorCode:
		return "IdentifierError"
	default:
		return "UnknownError"
	}
}

// Error is the error type returned by all builders in this package.
// Fragment, when set, identifies the offending piece of input (a format
// string, an identifier, a modifier set).
type Error struct {
	Code     ErrorCode
	Message  string
	Fragment string
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Fragment != "" {
		return fmt.Sprintf("%s in %q", e.Message, e.Fragment)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

func formatErrorf(format string, args ...interface{}) *Error {
	return &Error{Code: FormatErrorCode, Message: fmt.Sprintf(format, args...)}
}

func structuralErrorf(format string, args ...interface{}) *Error {
	return &Error{Code: StructuralErrorCode, Message: fmt.Sprintf(format, args...)}
}

func modifierErrorf(format string, args ...interface{}) *Error {
	return &Error{Code: ModifierErrorCode, Message: fmt.Sprintf(format, args...)}
}

func identifierError(name string) *Error {
	return &Error{
		Code:     IdentifierErrorCode,
		Message:  fmt.Sprintf("string '%s' is not a valid Java identifier", name),
		Fragment: name,
	}
}
