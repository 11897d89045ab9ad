package curl

import "fmt"

// ErrorKind distinguishes the ways a command can fail to parse.
type ErrorKind int

const (
	// NotACurlCommand: the first word is not "curl".
	NotACurlCommand ErrorKind = iota + 1
	// NoURLFound: neither a positional URL nor --url was given.
	NoURLFound
	// UnterminatedQuote: input ended inside quotes. Only reported in
	// strict mode.
	UnterminatedQuote
)

func (k ErrorKind) String() string {
	switch k {
	case NotACurlCommand:
		return "NotACurlCommand"
	case NoURLFound:
		return "NoURLFound"
	case UnterminatedQuote:
		return "UnterminatedQuote"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError represents a failure to turn a command into a request.
type ParseError struct {
	Kind    ErrorKind
	Message string // human-readable, suitable for inline validation text
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("curl: %s", e.Message)
}

// Is reports whether target is a *ParseError of the same kind, so the
// sentinel values below work with errors.Is.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrNotACurlCommand   = &ParseError{Kind: NotACurlCommand, Message: "command must start with curl"}
	ErrNoURLFound        = &ParseError{Kind: NoURLFound, Message: "no URL found in curl command"}
	ErrUnterminatedQuote = &ParseError{Kind: UnterminatedQuote, Message: "unterminated quote"}
)

func newParseError(kind ErrorKind, msg string) *ParseError {
	return &ParseError{Kind: kind, Message: msg}
}
