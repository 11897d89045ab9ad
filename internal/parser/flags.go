package parser

// flagKind selects the rule applied to a flag token.
type flagKind int

const (
	flagUnknown   flagKind = iota // not in the table; skipped, argument not consumed
	flagMethod                    // -X: argument uppercased into Method
	flagHeader                    // -H: argument split into a header
	flagBody                      // -d: argument stored verbatim as Body
	flagBasicAuth                 // -u: argument base64 encoded into Authorization
	flagURL                       // --url: argument replaces the URL
	flagIgnore                    // discarded, no argument
	flagIgnoreArg                 // discarded together with its argument
)

func (k flagKind) String() string {
	switch k {
	case flagMethod:
		return "method"
	case flagHeader:
		return "header"
	case flagBody:
		return "body"
	case flagBasicAuth:
		return "basic-auth"
	case flagURL:
		return "url"
	case flagIgnore:
		return "ignore"
	case flagIgnoreArg:
		return "ignore-arg"
	default:
		return "unknown"
	}
}

// takesArg reports whether the rule consumes the following token.
func (k flagKind) takesArg() bool {
	switch k {
	case flagMethod, flagHeader, flagBody, flagBasicAuth, flagURL, flagIgnoreArg:
		return true
	}
	return false
}

// flagTable maps every recognized spelling to its rule.
var flagTable = map[string]flagKind{
	"-X":        flagMethod,
	"--request": flagMethod,

	"-H":       flagHeader,
	"--header": flagHeader,

	"-d":               flagBody,
	"--data":           flagBody,
	"--data-raw":       flagBody,
	"--data-binary":    flagBody,
	"--data-urlencode": flagBody,

	"-u":     flagBasicAuth,
	"--user": flagBasicAuth,

	"--url": flagURL,

	// Flags that do not shape the request.
	"--compressed":        flagIgnore,
	"-k":                  flagIgnore,
	"--insecure":          flagIgnore,
	"-L":                  flagIgnore,
	"--location":          flagIgnore,
	"-v":                  flagIgnore,
	"--verbose":           flagIgnore,
	"-s":                  flagIgnore,
	"--silent":            flagIgnore,
	"-S":                  flagIgnore,
	"--show-error":        flagIgnore,
	"-i":                  flagIgnore,
	"--include":           flagIgnore,
	"-g":                  flagIgnore,
	"--globoff":           flagIgnore,
	"-f":                  flagIgnore,
	"--fail":              flagIgnore,
	"-#":                  flagIgnore,
	"--progress-bar":      flagIgnore,
	"-O":                  flagIgnore,
	"--no-progress-meter": flagIgnore,
	"--no-keepalive":      flagIgnore,
	"--http1.0":           flagIgnore,
	"--http1.1":           flagIgnore,
	"--http2":             flagIgnore,
	"--http3":             flagIgnore,

	// Flags whose argument does not shape the request either.
	"-o":                flagIgnoreArg,
	"--output":          flagIgnoreArg,
	"-m":                flagIgnoreArg,
	"--max-time":        flagIgnoreArg,
	"-b":                flagIgnoreArg,
	"--cookie":          flagIgnoreArg,
	"-c":                flagIgnoreArg,
	"--cookie-jar":      flagIgnoreArg,
	"-A":                flagIgnoreArg,
	"--user-agent":      flagIgnoreArg,
	"-E":                flagIgnoreArg,
	"--cert":            flagIgnoreArg,
	"--key":             flagIgnoreArg,
	"--cacert":          flagIgnoreArg,
	"-w":                flagIgnoreArg,
	"--write-out":       flagIgnoreArg,
	"-x":                flagIgnoreArg,
	"--proxy":           flagIgnoreArg,
	"-e":                flagIgnoreArg,
	"--referer":         flagIgnoreArg,
	"--connect-timeout": flagIgnoreArg,
	"--retry":           flagIgnoreArg,
	"--retry-delay":     flagIgnoreArg,
	"--max-redirs":      flagIgnoreArg,
}

// classify returns the rule for tok. Tokens starting with '-' that are not
// in the table are flagUnknown; isFlag is false for positional tokens.
func classify(tok string) (kind flagKind, isFlag bool) {
	if len(tok) == 0 || tok[0] != '-' {
		return flagUnknown, false
	}
	return flagTable[tok], true
}
