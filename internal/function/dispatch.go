package function

import (
	"net/http"
	"strings"
)

// User is a canned user record.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// users is the fixed collection served by the users routes. Order is
// part of the contract.
var users = []User{
	{ID: 1, Name: "Alice"},
	{ID: 2, Name: "Bob"},
}

// Dispatcher maps canonical requests to canned responses. Dispatch is a
// pure function over its input: no I/O, no state retained between calls.
type Dispatcher struct {
	prefix  string
	service string
}

// NewDispatcher creates a dispatcher for the given route configuration.
func NewDispatcher(config Config) *Dispatcher {
	return &Dispatcher{
		prefix:  strings.TrimSuffix(config.RoutePrefix, "/"),
		service: config.ServiceName,
	}
}

// Dispatch matches the request by path and method, first match wins.
func (d *Dispatcher) Dispatch(req Request) Response {
	path := req.Path

	switch {
	case d.isGreetingPath(path):
		return newJSONResponse(http.StatusOK, map[string]any{
			"message": "Hello from funcd!",
			"path":    path,
			"method":  req.Method,
		})

	case path == d.prefix+"/users":
		return d.dispatchUsers(req)

	case strings.HasPrefix(path, d.prefix+"/users/"):
		// the id is the trailing path segment, taken verbatim
		id := path[strings.LastIndex(path, "/")+1:]
		return newJSONResponse(http.StatusOK, map[string]any{
			"id":   id,
			"name": "User " + id,
			"path": path,
		})

	case path == d.prefix+"/health":
		return newJSONResponse(http.StatusOK, map[string]any{
			"status":  "healthy",
			"service": d.service,
		})

	default:
		return newJSONResponse(http.StatusNotFound, map[string]any{
			"error": "Not found",
			"path":  path,
		})
	}
}

// isGreetingPath reports whether the path is one of the equivalent
// greeting routes: the root, the bare prefix, or the hello alias.
func (d *Dispatcher) isGreetingPath(path string) bool {
	if path == "/" || path == d.prefix+"/hello" {
		return true
	}

	return d.prefix != "" && path == d.prefix
}

func (d *Dispatcher) dispatchUsers(req Request) Response {
	switch req.Method {
	case MethodGet:
		return newJSONResponse(http.StatusOK, map[string]any{
			"users": users,
		})

	case MethodPost:
		return newJSONResponse(http.StatusCreated, map[string]any{
			"message": "User created",
			"data":    req.BodyData(),
		})

	default:
		// other verbs have no canned response, answer with an
		// explicit 405 instead of falling through to the 404 route
		return newJSONResponse(http.StatusMethodNotAllowed, map[string]any{
			"error":  "Method not allowed",
			"path":   req.Path,
			"method": req.Method,
		})
	}
}
