package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zerverless/funcd/internal/function"
)

func newTestHandler() *FunctionHandler {
	return &FunctionHandler{
		dispatcher: function.NewDispatcher(function.Config{ServiceName: "funcd"}),
		log:        zap.NewNop(),
	}
}

func serve(t *testing.T, r *http.Request) (*http.Response, map[string]any) {
	t.Helper()

	w := httptest.NewRecorder()
	newTestHandler().ServeHTTP(w, r)

	res := w.Result()
	t.Cleanup(func() { res.Body.Close() })

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var data map[string]any
	require.NoError(t, json.Unmarshal(body, &data))

	return res, data
}

func TestServeHTTP_Greeting(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	res, data := serve(t, req)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	assert.Equal(t, "Hello from funcd!", data["message"])
	assert.Equal(t, "/", data["path"])
	assert.Equal(t, "GET", data["method"])
}

func TestServeHTTP_Health(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	res, data := serve(t, req)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, map[string]any{
		"status":  "healthy",
		"service": "funcd",
	}, data)
}

func TestServeHTTP_CreateUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Zoe"}`))

	res, data := serve(t, req)

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	assert.Equal(t, map[string]any{"name": "Zoe"}, data["data"])
}

func TestServeHTTP_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)

	res, data := serve(t, req)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "Not found", data["error"])
	assert.Equal(t, "/nope", data["path"])
}
