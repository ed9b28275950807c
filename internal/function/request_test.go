package function

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMethod(t *testing.T) {
	assert.Equal(t, MethodGet, ParseMethod(""))
	assert.Equal(t, MethodGet, ParseMethod("get"))
	assert.Equal(t, MethodPost, ParseMethod("POST"))
	assert.Equal(t, Method("BREW"), ParseMethod("brew"))
}

func TestNewRequest(t *testing.T) {
	r := httptest.NewRequest("POST", "/users?verbose=1&page=2", strings.NewReader(`{"name":"Zoe"}`))
	r.Header.Set("X-Request-Id", "abc123")

	req := NewRequest(r)

	assert.Equal(t, MethodPost, req.Method)
	assert.Equal(t, "/users", req.Path)
	assert.Equal(t, "1", req.Query["verbose"])
	assert.Equal(t, "2", req.Query["page"])
	assert.Equal(t, "abc123", req.Headers["X-Request-Id"])
	assert.Equal(t, `{"name":"Zoe"}`, req.Body)
}

func TestNewRequest_EmptyBody(t *testing.T) {
	r := httptest.NewRequest("GET", "/health", nil)

	req := NewRequest(r)

	assert.Equal(t, MethodGet, req.Method)
	assert.Equal(t, "/health", req.Path)
	assert.Empty(t, req.Body)
}

func TestDecodeRequest(t *testing.T) {
	req := DecodeRequest([]byte(`{
		"method": "post",
		"path": "/users",
		"query": {"page": "1"},
		"headers": {"Content-Type": "application/json"},
		"body": "{\"name\":\"Zoe\"}"
	}`))

	assert.Equal(t, MethodPost, req.Method)
	assert.Equal(t, "/users", req.Path)
	assert.Equal(t, "1", req.Query["page"])
	assert.Equal(t, "application/json", req.Headers["Content-Type"])
	assert.Equal(t, `{"name":"Zoe"}`, req.Body)
}

func TestDecodeRequest_Defaults(t *testing.T) {
	for _, input := range []string{"", "   ", "{}", `{"method":""}`} {
		t.Run("input "+input, func(t *testing.T) {
			req := DecodeRequest([]byte(input))

			assert.Equal(t, MethodGet, req.Method)
			assert.Equal(t, "/", req.Path)
			assert.NotNil(t, req.Query)
			assert.Empty(t, req.Query)
			assert.NotNil(t, req.Headers)
			assert.Empty(t, req.Headers)
			assert.Empty(t, req.Body)
		})
	}
}

func TestDecodeRequest_MalformedInput(t *testing.T) {
	req := DecodeRequest([]byte(`{not json`))

	assert.Equal(t, MethodGet, req.Method)
	assert.Equal(t, "/", req.Path)
	assert.Empty(t, req.Body)
}

func TestDecodeRequest_NormalizesPath(t *testing.T) {
	req := DecodeRequest([]byte(`{"path":"users/42"}`))

	assert.Equal(t, "/users/42", req.Path)
}

func TestBodyData(t *testing.T) {
	req := Request{Body: `{"name":"Zoe","age":30}`}

	data := req.BodyData()

	assert.Equal(t, "Zoe", data["name"])
	assert.Equal(t, float64(30), data["age"])
}

func TestBodyData_NeverNil(t *testing.T) {
	for name, body := range map[string]string{
		"empty":     "",
		"malformed": `{not json`,
		"array":     `[1,2,3]`,
		"null":      `null`,
	} {
		t.Run(name, func(t *testing.T) {
			data := Request{Body: body}.BodyData()

			assert.NotNil(t, data)
			assert.Empty(t, data)
		})
	}
}
