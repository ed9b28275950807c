package function

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(Config{ServiceName: "funcd"})
}

func decodeBody(t *testing.T, res Response) map[string]any {
	t.Helper()

	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.Body), &data))

	return data
}

func TestDispatch_Greeting(t *testing.T) {
	d := newTestDispatcher()

	for _, path := range []string{"/", "/hello"} {
		t.Run(path, func(t *testing.T) {
			res := d.Dispatch(Request{Method: MethodGet, Path: path})

			assert.Equal(t, http.StatusOK, res.Status)
			assert.Equal(t, "application/json", res.Headers["Content-Type"])

			data := decodeBody(t, res)
			assert.Equal(t, "Hello from funcd!", data["message"])
			assert.Equal(t, path, data["path"])
			assert.Equal(t, "GET", data["method"])
		})
	}
}

func TestDispatch_Greeting_EchoesMethod(t *testing.T) {
	d := newTestDispatcher()

	res := d.Dispatch(Request{Method: MethodPost, Path: "/"})

	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "POST", decodeBody(t, res)["method"])
}

func TestDispatch_Greeting_WithPrefix(t *testing.T) {
	d := NewDispatcher(Config{RoutePrefix: "/flask-example", ServiceName: "funcd"})

	for _, path := range []string{"/", "/flask-example", "/flask-example/hello"} {
		res := d.Dispatch(Request{Method: MethodGet, Path: path})

		assert.Equal(t, http.StatusOK, res.Status, path)
		assert.Equal(t, path, decodeBody(t, res)["path"], path)
	}
}

func TestDispatch_ListUsers(t *testing.T) {
	d := newTestDispatcher()

	res := d.Dispatch(Request{Method: MethodGet, Path: "/users"})

	assert.Equal(t, http.StatusOK, res.Status)

	data := decodeBody(t, res)
	assert.Equal(t, []any{
		map[string]any{"id": float64(1), "name": "Alice"},
		map[string]any{"id": float64(2), "name": "Bob"},
	}, data["users"])
}

func TestDispatch_CreateUser(t *testing.T) {
	d := newTestDispatcher()

	res := d.Dispatch(Request{
		Method: MethodPost,
		Path:   "/users",
		Body:   `{"name":"Zoe"}`,
	})

	assert.Equal(t, http.StatusCreated, res.Status)

	data := decodeBody(t, res)
	assert.Equal(t, "User created", data["message"])
	assert.Equal(t, map[string]any{"name": "Zoe"}, data["data"])
}

func TestDispatch_CreateUser_MalformedBody(t *testing.T) {
	d := newTestDispatcher()

	res := d.Dispatch(Request{
		Method: MethodPost,
		Path:   "/users",
		Body:   `{not json`,
	})

	assert.Equal(t, http.StatusCreated, res.Status)
	assert.Equal(t, map[string]any{}, decodeBody(t, res)["data"])
}

func TestDispatch_UsersMethodNotAllowed(t *testing.T) {
	d := newTestDispatcher()

	res := d.Dispatch(Request{Method: MethodDelete, Path: "/users"})

	assert.Equal(t, http.StatusMethodNotAllowed, res.Status)
	assert.Contains(t, decodeBody(t, res), "error")
}

func TestDispatch_UserDetail(t *testing.T) {
	d := newTestDispatcher()

	res := d.Dispatch(Request{Method: MethodGet, Path: "/users/42"})

	assert.Equal(t, http.StatusOK, res.Status)

	data := decodeBody(t, res)
	assert.Equal(t, "42", data["id"])
	assert.Equal(t, "User 42", data["name"])
	assert.Equal(t, "/users/42", data["path"])
}

func TestDispatch_UserDetail_IdIsVerbatim(t *testing.T) {
	d := newTestDispatcher()

	// no validation against the canned user list
	res := d.Dispatch(Request{Method: MethodGet, Path: "/users/not-a-number"})

	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "not-a-number", decodeBody(t, res)["id"])
}

func TestDispatch_Health(t *testing.T) {
	d := newTestDispatcher()

	res := d.Dispatch(Request{Method: MethodGet, Path: "/health"})

	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, map[string]any{
		"status":  "healthy",
		"service": "funcd",
	}, decodeBody(t, res))
}

func TestDispatch_NotFound(t *testing.T) {
	d := newTestDispatcher()

	res := d.Dispatch(Request{Method: MethodGet, Path: "/nope"})

	assert.Equal(t, http.StatusNotFound, res.Status)

	data := decodeBody(t, res)
	assert.Equal(t, "Not found", data["error"])
	assert.Equal(t, "/nope", data["path"])
}

func TestDispatch_IsPure(t *testing.T) {
	d := newTestDispatcher()
	req := Request{Method: MethodGet, Path: "/users"}

	first := d.Dispatch(req)
	second := d.Dispatch(req)

	assert.Equal(t, first, second)
}
