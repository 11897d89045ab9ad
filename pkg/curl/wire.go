package curl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// MarshalHTTP returns the HTTP/1.1 wire-format encoding of req:
//
//	METHOD request-target HTTP/1.1\r\n
//	Host: <host>\r\n            (unless a Host header was given)
//	<headers, sorted by name>\r\n
//	Content-Length: <n>\r\n     (when a body is present and none was given)
//	\r\n
//	<body>
//
// The URL must be absolute.
func MarshalHTTP(req *ParsedRequest) ([]byte, error) {
	u, err := absoluteURL(req.URL)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, 256)
	buf = appendRequestLine(buf, req.Method, u.RequestURI(), "HTTP/1.1")
	if !req.Headers.Has("Host") {
		buf = appendHeader(buf, "Host", u.Host)
	}
	for _, name := range req.Headers.Names() {
		buf = appendHeader(buf, name, req.Headers[name])
	}
	if req.Body != nil && !req.Headers.Has("Content-Length") {
		buf = appendHeader(buf, "Content-Length", strconv.Itoa(len(*req.Body)))
	}
	buf = appendCRLF(buf) // empty line before body
	if req.Body != nil {
		buf = append(buf, *req.Body...)
	}
	return buf, nil
}

// NewHTTPRequest builds a *http.Request ready for an http.Client. A Host
// header, if present, becomes the request's Host field.
func NewHTTPRequest(ctx context.Context, req *ParsedRequest) (*http.Request, error) {
	if _, err := absoluteURL(req.URL); err != nil {
		return nil, err
	}

	var body io.Reader
	if req.Body != nil {
		body = strings.NewReader(*req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("curl: NewHTTPRequest: %w", err)
	}
	for name, value := range req.Headers {
		if strings.EqualFold(name, "Host") {
			httpReq.Host = value
			continue
		}
		httpReq.Header.Set(name, value)
	}
	return httpReq, nil
}

// Encoder writes requests in HTTP/1.1 wire format to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the wire-format encoding of req to the stream.
func (enc *Encoder) Encode(req *ParsedRequest) error {
	data, err := MarshalHTTP(req)
	if err != nil {
		return err
	}
	_, err = enc.w.Write(data)
	return err
}

func absoluteURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("curl: invalid URL %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("curl: URL %q is not absolute", raw)
	}
	return u, nil
}

// appendCRLF appends \r\n to buf.
func appendCRLF(buf []byte) []byte {
	return append(buf, '\r', '\n')
}

// appendRequestLine appends "METHOD TARGET VERSION\r\n" to buf.
func appendRequestLine(buf []byte, method, target, version string) []byte {
	buf = append(buf, method...)
	buf = append(buf, ' ')
	buf = append(buf, target...)
	buf = append(buf, ' ')
	buf = append(buf, version...)
	return appendCRLF(buf)
}

// appendHeader appends "Key: Value\r\n" to buf.
func appendHeader(buf []byte, key, value string) []byte {
	buf = append(buf, key...)
	buf = append(buf, ':', ' ')
	buf = append(buf, value...)
	return appendCRLF(buf)
}
