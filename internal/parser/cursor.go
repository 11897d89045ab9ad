package parser

// Cursor walks a token sequence left to right. Every rule that consumes a
// flag argument does so through Arg, so the number of tokens a rule takes is
// visible at the call site.
type Cursor struct {
	tokens []string
	pos    int
}

// NewCursor returns a cursor positioned before the first token.
func NewCursor(tokens []string) *Cursor {
	return &Cursor{tokens: tokens}
}

// Next advances to and returns the next token. ok is false at end of input.
func (c *Cursor) Next() (tok string, ok bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	tok = c.tokens[c.pos]
	c.pos++
	return tok, true
}

// Arg consumes the token following the current one as a flag argument.
// ok is false when no token remains; nothing is consumed then.
func (c *Cursor) Arg() (arg string, ok bool) {
	return c.Next()
}

// Pos reports how many tokens have been consumed.
func (c *Cursor) Pos() int { return c.pos }

// Done reports whether every token has been consumed.
func (c *Cursor) Done() bool { return c.pos >= len(c.tokens) }
