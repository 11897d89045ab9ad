package curl

import (
	"bytes"
	"errors"
	"io"

	"github.com/shapestone/shape-curl/internal/naming"
	"github.com/shapestone/shape-curl/internal/parser"
	"github.com/shapestone/shape-curl/internal/tokenizer"
)

// Options tunes parsing. The zero value is the default, lenient behaviour.
type Options struct {
	// Strict reports input that ends inside quotes as UnterminatedQuote.
	// Otherwise the open word is kept as accumulated and a warning added.
	Strict bool
}

// Parse converts a curl command line into a ParsedRequest.
//
// It fails with a *ParseError of kind NotACurlCommand when the first word
// is not "curl" (any case) and NoURLFound when no URL was given. Every
// other malformation is absorbed and, where useful, reported in Warnings:
//
//	-H value without a colon      header dropped
//	unknown flag                  skipped, its argument is NOT consumed
//	second positional argument    ignored, first one is the URL
//	flag argument missing at end  flag ignored
//	unterminated quote            accumulated text kept as the last word
//
// # Supported flags
//
//	-X / --request          HTTP method (uppercased)
//	-H / --header           Request header (repeatable, last wins per name)
//	-d / --data             Request body
//	--data-raw              Request body
//	--data-binary           Request body
//	--data-urlencode        Request body (kept verbatim, not encoded)
//	-u / --user             Basic Auth → Authorization: Basic <base64>
//	--url                   URL (overrides a positional URL)
//
// Repeated body flags keep only the last value; they are not joined with
// "&" the way curl itself would.
//
// # Multi-line commands
//
// Lines ending with a backslash (\), or with a backtick as PowerShell
// writes them, are joined before parsing, so commands copied from a
// terminal or API docs work without modification. Runs of whitespace,
// including inside quotes, collapse to one space.
func Parse(cmd string) (*ParsedRequest, error) {
	return ParseWithOptions(cmd, Options{})
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(cmd string, opts Options) (*ParsedRequest, error) {
	words, open := tokenizer.Split(tokenizer.Normalize(cmd))
	if open && opts.Strict {
		// The first word is still checked first, so non-curl input keeps
		// failing as NotACurlCommand.
		if _, err := parser.Interpret(words); errors.Is(err, parser.ErrNotCurlCommand) {
			return nil, convertError(err)
		}
		return nil, newParseError(UnterminatedQuote, ErrUnterminatedQuote.Message)
	}

	internal, err := parser.Interpret(words)
	if err != nil {
		return nil, convertError(err)
	}

	result := &ParsedRequest{
		URL:           internal.URL,
		Method:        internal.Method,
		Headers:       Headers(internal.Headers),
		Body:          internal.Body,
		SuggestedName: naming.SuggestName(internal.URL, internal.Method),
		Warnings:      internal.Warnings,
	}
	if open {
		result.Warnings = append(result.Warnings, "unterminated quote, last word taken as typed")
	}
	return result, nil
}

// ParseReader reads all data from r and parses it as one curl command.
func ParseReader(r io.Reader) (*ParsedRequest, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// ParseReaderWithOptions is ParseReader with explicit options.
func ParseReaderWithOptions(r io.Reader, opts Options) (*ParsedRequest, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return ParseWithOptions(string(data), opts)
}

func convertError(err error) error {
	switch {
	case errors.Is(err, parser.ErrNotCurlCommand):
		return newParseError(NotACurlCommand, ErrNotACurlCommand.Message)
	case errors.Is(err, parser.ErrNoURLFound):
		return newParseError(NoURLFound, ErrNoURLFound.Message)
	}
	return err
}

// readAll reads all data from r.
func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
