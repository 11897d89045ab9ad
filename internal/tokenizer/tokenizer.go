package tokenizer

import (
	"errors"
	"strings"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// ErrUnterminatedQuote is returned by SplitStrict when the input ends inside
// a single- or double-quoted section.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// TokenOpenWord is the kind of a word that reached end of input while still
// inside quotes.
const TokenOpenWord = "OpenWord"

// NewTokenizer creates a tokenizer for shell command lines.
// Matchers, in priority order:
// 1. Blank (unquoted whitespace run)
// 2. Word (one shell word, raw text with quotes and escapes intact)
//
// Whitespace is significant (it separates words), so the default whitespace
// skipper is not used.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		BlankMatcher(),
		WordMatcher(),
	)
}

// Split tokenizes a command line into shell words with quotes and escapes
// resolved. Empty words (such as a bare '') are dropped. Input ending inside
// quotes is accepted; open reports that it happened.
func Split(input string) (words []string, open bool) {
	tok := NewTokenizer()
	tok.Initialize(input)

	tokens, eos := tok.Tokenize()
	consumed := 0
	for _, t := range tokens {
		raw := t.ValueString()
		consumed += len([]rune(raw))
		switch t.Kind() {
		case TokenWord, TokenOpenWord:
			words, open = appendWord(words, open, raw)
		}
	}

	// Blank and Word together match every character, so this only runs if
	// the matchers are changed without keeping that property.
	if !eos {
		if rest := []rune(input); consumed < len(rest) {
			words, open = appendWord(words, open, string(rest[consumed:]))
		}
	}
	return words, open
}

func appendWord(words []string, open bool, raw string) ([]string, bool) {
	w, unterminated := Unquote(raw)
	if w != "" {
		words = append(words, w)
	}
	return words, open || unterminated
}

// SplitStrict is Split, but input ending inside quotes is an error.
func SplitStrict(input string) ([]string, error) {
	words, open := Split(input)
	if open {
		return nil, ErrUnterminatedQuote
	}
	return words, nil
}

// Unquote resolves the quotes and escapes of one raw shell word.
//
// Rules, in precedence order:
//   - a pending escape takes the next character literally;
//   - a backslash outside single quotes escapes the next character; inside
//     double quotes only before ", \, $ or a backtick, otherwise it is kept;
//   - ' toggles single quoting unless inside double quotes;
//   - " toggles double quoting unless inside single quotes;
//   - anything else is appended.
//
// A trailing lone backslash is dropped. open reports that raw ended inside
// quotes; the text accumulated so far is still returned.
func Unquote(raw string) (word string, open bool) {
	var (
		sb      strings.Builder
		escaped bool
		single  bool
		double  bool
	)
	sb.Grow(len(raw))

	runes := []rune(raw)
	for i, r := range runes {
		switch {
		case escaped:
			sb.WriteRune(r)
			escaped = false
		case r == '\\' && double:
			if i+1 < len(runes) && escapableInDouble(runes[i+1]) {
				escaped = true
			} else {
				sb.WriteRune(r)
			}
		case r == '\\' && !single:
			escaped = true
		case r == '\'' && !double:
			single = !single
		case r == '"' && !single:
			double = !double
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String(), single || double
}

// BlankMatcher matches a run of unquoted space, tab or newline characters.
func BlankMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || !isBlank(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenBlank, value)
	}
}

// WordMatcher matches one shell word and returns its raw text, quotes and
// backslashes included. The word ends at the first whitespace that is
// neither quoted nor escaped, or at end of input. A word still inside quotes
// at end of input has kind TokenOpenWord.
func WordMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || isBlank(r) {
			return nil
		}

		var (
			value   []rune
			escaped bool
			single  bool
			double  bool
		)

		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if !escaped && !single && !double && isBlank(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)

			switch {
			case escaped:
				escaped = false
			case r == '\\' && !single:
				escaped = true
			case r == '\'' && !double:
				single = !single
			case r == '"' && !single:
				double = !double
			}
		}

		if single || double {
			return tokenizer.NewToken(TokenOpenWord, value)
		}
		return tokenizer.NewToken(TokenWord, value)
	}
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

func escapableInDouble(r rune) bool {
	return r == '"' || r == '\\' || r == '$' || r == '`'
}
