package curl

import "strings"

// Render returns a canonical curl command line for req.
//
// Headers are emitted in sorted name order. -X is emitted only when the
// method differs from the one Parse would infer, and --url only when the URL
// would otherwise be read as a flag. Words are single-quoted when needed.
//
// Parse(Render(req)) reproduces req (apart from Warnings) as long as no
// value contains a newline or a run of whitespace, which normalization
// would collapse, and the body is not empty.
func Render(req *ParsedRequest) string {
	var b strings.Builder
	b.WriteString("curl")

	inferred := "GET"
	if req.Body != nil {
		inferred = "POST"
	}
	if req.Method != "" && req.Method != inferred {
		writeWord(&b, "-X")
		writeWord(&b, req.Method)
	}

	for _, name := range req.Headers.Names() {
		writeWord(&b, "-H")
		writeWord(&b, name+": "+req.Headers[name])
	}

	if req.Body != nil {
		writeWord(&b, "-d")
		writeWord(&b, *req.Body)
	}

	if strings.HasPrefix(req.URL, "-") {
		writeWord(&b, "--url")
	}
	writeWord(&b, req.URL)
	return b.String()
}

func writeWord(b *strings.Builder, word string) {
	b.WriteByte(' ')
	b.WriteString(shellQuote(word))
}

// shellQuote returns s unchanged when it contains only characters that are
// literal to a shell, and single-quoted otherwise.
func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, needsQuote) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return !strings.ContainsRune("-_./:@%+=,", r)
}
