package curl

import (
	"errors"
	"strings"
	"testing"
)

// FuzzParse fuzzes the full pipeline. The invariants: never panic, fail
// only with the two documented kinds, and a successful result always has
// a URL and an uppercase method.
func FuzzParse(f *testing.F) {
	f.Add(`curl https://api.example.com/v1/users`)
	f.Add(`curl -X POST -H "Content-Type: application/json" -d '{"a":1}' https://api.example.com/items`)
	f.Add("curl \\\n-X GET https://x.test/")
	f.Add(`curl -u alice:secret https://x.test`)
	f.Add(`curl "unterminated`)
	f.Add(`curl \`)
	f.Add(`curl -H`)
	f.Add(``)

	f.Fuzz(func(t *testing.T, cmd string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Parse panicked on input %q: %v", cmd, r)
			}
		}()

		req, err := Parse(cmd)
		if err != nil {
			if !errors.Is(err, ErrNotACurlCommand) && !errors.Is(err, ErrNoURLFound) {
				t.Errorf("Parse(%q) unexpected error kind: %v", cmd, err)
			}
			return
		}
		if req.URL == "" {
			t.Errorf("Parse(%q) returned empty URL", cmd)
		}
		if req.Method == "" || req.Method != strings.ToUpper(req.Method) {
			t.Errorf("Parse(%q) Method = %q", cmd, req.Method)
		}
		if req.Headers == nil {
			t.Errorf("Parse(%q) Headers = nil", cmd)
		}
		if req.SuggestedName == "" {
			t.Errorf("Parse(%q) SuggestedName empty", cmd)
		}
	})
}

// FuzzParse_NotCurl checks that input whose first word is not curl always
// fails with NotACurlCommand.
func FuzzParse_NotCurl(f *testing.F) {
	f.Add("wget https://x.test")
	f.Add("http GET x")

	f.Fuzz(func(t *testing.T, cmd string) {
		fields := strings.Fields(cmd)
		if len(fields) > 0 && strings.ContainsAny(fields[0], `'"\`+"`") {
			t.Skip()
		}
		if len(fields) > 0 && strings.EqualFold(fields[0], "curl") {
			t.Skip()
		}
		if _, err := Parse(cmd); !errors.Is(err, ErrNotACurlCommand) {
			t.Errorf("Parse(%q) error = %v, want NotACurlCommand", cmd, err)
		}
	})
}
