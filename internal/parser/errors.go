package parser

import "errors"

var (
	// ErrNotCurlCommand is returned when the first token is not "curl".
	ErrNotCurlCommand = errors.New("not a curl command")

	// ErrNoURLFound is returned when no positional URL and no --url flag
	// were seen.
	ErrNoURLFound = errors.New("no URL found in curl command")
)
