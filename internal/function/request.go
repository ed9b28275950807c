package function

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// Method is an HTTP verb carried by a canonical request.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// ParseMethod normalizes a raw verb. An absent verb defaults to GET,
// anything else is carried verbatim in upper case.
func ParseMethod(s string) Method {
	if s == "" {
		return MethodGet
	}

	return Method(strings.ToUpper(s))
}

func (m Method) String() string {
	return string(m)
}

// Request is the canonical, transport-independent request record. It is
// constructed fresh per invocation and never shared between invocations.
type Request struct {
	Method  Method
	Path    string
	Query   map[string]string
	Headers map[string]string
	Body    string
}

// errBodyNotJSON marks a request body that did not decode as a JSON
// object. It never leaves this package: BodyData converts it to an
// empty map.
var errBodyNotJSON = errors.New("request body is not a json object")

// parseBodyData decodes the raw body into a generic map.
func parseBodyData(body string) (map[string]any, error) {
	if body == "" {
		return map[string]any{}, nil
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		return nil, errBodyNotJSON
	}

	// a literal "null" body decodes into a nil map
	if data == nil {
		return map[string]any{}, nil
	}

	return data, nil
}

// BodyData returns the request body decoded as a JSON object. A body
// that is absent or does not decode yields an empty map, never nil.
func (r Request) BodyData() map[string]any {
	data, err := parseBodyData(r.Body)
	if err != nil {
		return map[string]any{}
	}

	return data
}

// normalizePath ensures a path always begins with a slash.
func normalizePath(path string) string {
	if path == "" {
		return "/"
	}

	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}

	return path
}

// NewRequest normalizes an HTTP request into the canonical record.
// Query parameters and headers are flattened to their first value.
func NewRequest(r *http.Request) Request {
	query := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}

	headers := make(map[string]string)
	for key, values := range r.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	var body string
	if r.Body != nil {
		if data, err := io.ReadAll(r.Body); err == nil {
			body = string(data)
		}
	}

	return Request{
		Method:  ParseMethod(r.Method),
		Path:    normalizePath(r.URL.Path),
		Query:   query,
		Headers: headers,
		Body:    body,
	}
}

// requestDocument is the wire shape of a one-shot input document.
type requestDocument struct {
	Method  string            `json:"method"`
	Path    string            `json:"path"`
	Query   map[string]string `json:"query"`
	Headers map[string]string `json:"headers"`
	Body    string            `json:"body"`
}

// DecodeRequest normalizes a one-shot input document into the canonical
// record. Absent fields take their documented defaults, and malformed
// input degrades to an all-default record. It never fails.
func DecodeRequest(data []byte) Request {
	var doc requestDocument

	if trimmed := strings.TrimSpace(string(data)); trimmed != "" {
		if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
			doc = requestDocument{}
		}
	}

	if doc.Query == nil {
		doc.Query = map[string]string{}
	}
	if doc.Headers == nil {
		doc.Headers = map[string]string{}
	}

	return Request{
		Method:  ParseMethod(doc.Method),
		Path:    normalizePath(doc.Path),
		Query:   doc.Query,
		Headers: doc.Headers,
		Body:    doc.Body,
	}
}
