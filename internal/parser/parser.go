// Package parser interprets a curl command's shell words as an HTTP request.
//
// The first word must be "curl". The remaining words are classified by a
// flag table (see flags.go) and walked with a Cursor:
//
//	-X, --request         method (uppercased, last wins)
//	-H, --header          "Name: value" header (last wins per name)
//	-d, --data, ...       body (verbatim, last wins)
//	-u, --user            Authorization: Basic <base64(user:password)>
//	--url                 URL (overrides a positional URL)
//	<positional>          URL, first one only
//
// Unknown flags are skipped without consuming a following word.
package parser

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Request is the interpreted form of a curl command.
type Request struct {
	URL      string
	Method   string            // uppercase
	Headers  map[string]string // last write wins
	Body     *string           // nil when no body flag was given
	Warnings []string          // non-fatal issues, in input order
}

// Interpret applies the curl flag grammar to tokens. tokens[0] must be
// "curl" (any case).
func Interpret(tokens []string) (*Request, error) {
	if len(tokens) == 0 || !strings.EqualFold(tokens[0], "curl") {
		return nil, ErrNotCurlCommand
	}

	ip := &interpreter{
		cur: NewCursor(tokens[1:]),
		req: &Request{Headers: make(map[string]string)},
	}
	ip.run()

	if ip.req.URL == "" {
		return nil, ErrNoURLFound
	}

	if ip.req.Method == "" {
		if ip.req.Body != nil {
			ip.req.Method = "POST"
		} else {
			ip.req.Method = "GET"
		}
	}
	return ip.req, nil
}

type interpreter struct {
	cur *Cursor
	req *Request
}

func (ip *interpreter) warn(format string, args ...any) {
	ip.req.Warnings = append(ip.req.Warnings, fmt.Sprintf(format, args...))
}

func (ip *interpreter) run() {
	for {
		tok, ok := ip.cur.Next()
		if !ok {
			return
		}

		kind, isFlag := classify(tok)
		if !isFlag {
			ip.positional(tok)
			continue
		}
		if kind == flagUnknown {
			ip.warn("unknown curl flag %q, skipping", tok)
			continue
		}

		var arg string
		if kind.takesArg() {
			if arg, ok = ip.cur.Arg(); !ok {
				ip.warn("flag %s requires an argument", tok)
				return
			}
		}
		ip.apply(kind, tok, arg)
	}
}

func (ip *interpreter) apply(kind flagKind, flag, arg string) {
	switch kind {
	case flagMethod:
		ip.req.Method = strings.ToUpper(arg)

	case flagHeader:
		name, value, ok := splitHeader(arg)
		if !ok {
			ip.warn("%s %q: expected \"Name: value\", dropped", flag, arg)
			return
		}
		ip.req.Headers[name] = value

	case flagBody:
		body := arg
		ip.req.Body = &body

	case flagBasicAuth:
		if !strings.ContainsRune(arg, ':') {
			ip.warn("%s %q: no colon found; encoding username only", flag, arg)
		}
		ip.req.Headers["Authorization"] = "Basic " + base64.StdEncoding.EncodeToString([]byte(arg))

	case flagURL:
		ip.req.URL = arg

	case flagIgnore, flagIgnoreArg:
	}
}

func (ip *interpreter) positional(tok string) {
	if ip.req.URL != "" {
		ip.warn("unexpected positional argument %q, skipping", tok)
		return
	}
	ip.req.URL = tok
}

// splitHeader splits "Name: value" at the first colon and trims both sides.
// A missing colon or a colon at index 0 is malformed.
func splitHeader(s string) (name, value string, ok bool) {
	colon := strings.IndexByte(s, ':')
	if colon <= 0 {
		return "", "", false
	}
	return strings.TrimSpace(s[:colon]), strings.TrimSpace(s[colon+1:]), true
}
