// Package naming derives short display labels for requests.
package naming

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SuggestName returns "<Service> — <METHOD> <path>" for rawURL, where the
// service is the first label of the host once a leading "api." or "www."
// is removed. The host is compared and reported in lower case. URLs
// without a scheme and host, or that net/url rejects (such as a bad percent
// escape in the path), fall back to "<METHOD> endpoint".
func SuggestName(rawURL, method string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return method + " endpoint"
	}

	host := strings.ToLower(u.Hostname())
	switch {
	case strings.HasPrefix(host, "api."):
		host = host[len("api."):]
	case strings.HasPrefix(host, "www."):
		host = host[len("www."):]
	}
	service, _, _ := strings.Cut(host, ".")

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return capitalize(service) + " — " + method + " " + path
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
