package tokenizer

import "strings"

// continuations are replaced by a single space before whitespace is
// collapsed. CRLF forms come first so the bare LF forms never split them.
var continuations = strings.NewReplacer(
	"\\\r\n", " ",
	"\\\n", " ",
	"`\r\n", " ",
	"`\n", " ",
)

// Normalize joins continuation lines (backslash-newline, and the PowerShell
// backtick-newline form), collapses every whitespace run to a single space
// and trims both ends. It is idempotent.
func Normalize(s string) string {
	return strings.Join(strings.Fields(continuations.Replace(s)), " ")
}
