// Package curl converts pasted curl command lines into structured request
// descriptions.
//
// A command goes through four stages, each a pure function of its input:
//
//   - normalization: continuation lines are joined, whitespace collapsed;
//   - tokenization: shell words with single/double quoting and backslash
//     escapes, no expansion of any kind;
//   - flag interpretation: method, headers, body, basic auth and URL are
//     extracted, other flags ignored;
//   - naming: a short display label is derived from the URL and method.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. Each call allocates its own state; nothing is shared.
//
// # Parsing APIs
//
//   - Parse / ParseWithOptions - the single-command entry points
//   - ParseReader - the same, reading the command from an io.Reader
//   - Render - the inverse direction, a canonical curl command line
//   - ToNode / FromNode - shape-core AST form; ToMap / FromMap as plain values
//   - MarshalHTTP / NewHTTPRequest - hand-off to an HTTP execution engine
package curl

import (
	"sort"
	"strings"
)

// ParsedRequest is the structured form of a curl command.
type ParsedRequest struct {
	// URL is never empty.
	URL string `json:"url" yaml:"url"`
	// Method is uppercase and never empty. Without -X it is POST when a
	// body is present, GET otherwise.
	Method  string  `json:"method" yaml:"method"`
	Headers Headers `json:"headers" yaml:"headers"`
	// Body is nil when no body flag was given.
	Body          *string `json:"body" yaml:"body"`
	SuggestedName string  `json:"suggestedName" yaml:"suggestedName"`
	// Warnings lists non-fatal issues such as unknown flags or dropped
	// headers, in input order.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// HasBody reports whether a body flag was present.
func (r *ParsedRequest) HasBody() bool { return r.Body != nil }

// BodyString returns the body, or "" when there is none.
func (r *ParsedRequest) BodyString() string {
	if r.Body == nil {
		return ""
	}
	return *r.Body
}

// Headers maps header names, with the case supplied on the command line, to
// values. A repeated name keeps the last value.
type Headers map[string]string

// Get returns the value for name, matched case-insensitively. When several
// spellings of the same name are present the lexically smallest spelling
// wins, so the result is deterministic.
func (h Headers) Get(name string) string {
	if v, ok := h[name]; ok {
		return v
	}
	for _, k := range h.Names() {
		if strings.EqualFold(k, name) {
			return h[k]
		}
	}
	return ""
}

// Has reports whether a header named name exists (case-insensitive).
func (h Headers) Has(name string) bool {
	if _, ok := h[name]; ok {
		return true
	}
	for k := range h {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

// Names returns the header names in sorted order.
func (h Headers) Names() []string {
	names := make([]string, 0, len(h))
	for k := range h {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy of the headers.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	for k, v := range h {
		clone[k] = v
	}
	return clone
}
