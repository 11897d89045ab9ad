// Package tokenizer provides shell-word tokenization of curl command lines
// using Shape's tokenizer framework.
package tokenizer

// Token type constants for shell command lines.
const (
	TokenWord  = "Word"  // one shell word, raw text as typed
	TokenBlank = "Blank" // unquoted run of space, tab or newline
)
