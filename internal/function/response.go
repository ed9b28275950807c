package function

import (
	"encoding/json"
	"net/http"
)

// Response is the canonical, transport-independent response record.
// Its json tags double as the one-shot output document shape.
type Response struct {
	Status  int               `json:"status"`
	Headers map[string]string `json:"headers"`
	Body    string            `json:"body"`
}

// newJSONResponse creates a response carrying the JSON encoding of the
// given payload.
func newJSONResponse(status int, payload any) Response {
	body, err := json.Marshal(payload)
	if err != nil {
		return NewErrorResponse(err.Error())
	}

	return Response{
		Status:  status,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    string(body),
	}
}

// NewErrorResponse creates the 500 envelope emitted when computing a
// response fails entirely.
func NewErrorResponse(message string) Response {
	body, err := json.Marshal(map[string]string{"error": message})
	if err != nil {
		body = []byte(`{"error":"internal error"}`)
	}

	return Response{
		Status:  http.StatusInternalServerError,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    string(body),
	}
}
