package parser

import "fmt"

// ErrorKind tags the reason a command line failed to parse.
type ErrorKind string

const (
	ErrUnexpected                  ErrorKind = "unexpectedError"
	ErrInvalidFlagOrOption         ErrorKind = "invalidFlagOrOption"
	ErrUnexpectedArgument          ErrorKind = "unexpectedArgument"
	ErrMissingOptionValue          ErrorKind = "missingOptionValue"
	ErrMissingInputArgument        ErrorKind = "missingInputArgument"
	ErrInvalidOptionValueFormat    ErrorKind = "invalidOptionValueFormat"
	ErrInvalidInputValueFormat     ErrorKind = "invalidInputValueFormat"
	ErrUsageRequested              ErrorKind = "usageRequested"
	ErrNoSuchCommand               ErrorKind = "noSuchCommand"
	ErrNoSuchSubcommand            ErrorKind = "noSuchSubcommand"
	ErrValueNotConvertibleToType   ErrorKind = "argumentValueNotConvertibleToType"
	ErrFailedToTokenizeCommandLine ErrorKind = "failedToTokenizeCommandLine"
)

// Error is the parser package's error type. Token, when non-empty,
// names the specific command-line token the error concerns.
type Error struct {
	Kind    ErrorKind
	Token   string
	Command []string
	Msg     string

	// Usage, set only for ErrUsageRequested, carries the rendered
	// usage text for the command help was requested on.
	Usage string
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Token != "":
		return fmt.Sprintf("%s: %s (%q)", e.Kind, e.Msg, e.Token)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	case e.Token != "":
		return fmt.Sprintf("%s: %q", e.Kind, e.Token)
	default:
		return string(e.Kind)
	}
}

// Is reports whether target shares this error's Kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
