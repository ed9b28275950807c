package handler

import (
	"io"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/zerverless/funcd/internal/function"
)

type FunctionHandlerParams struct {
	fx.In

	Dispatcher *function.Dispatcher
	Log        *zap.Logger
}

func NewFunctionHandler(params FunctionHandlerParams) *FunctionHandler {
	return &FunctionHandler{
		dispatcher: params.Dispatcher,
		log:        params.Log,
	}
}

// FunctionHandler adapts HTTP requests to the canonical pipeline:
// normalize, dispatch, serialize.
type FunctionHandler struct {
	dispatcher *function.Dispatcher
	log        *zap.Logger
}

func (h *FunctionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	// Normalize the request
	request := function.NewRequest(r)

	// Dispatch the request
	response := h.dispatcher.Dispatch(request)

	log.Debug("dispatched request", zap.Int("status", response.Status))

	// Map response headers
	for key, value := range response.Headers {
		w.Header().Set(key, value)
	}

	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}

	// Write response status code and body
	w.WriteHeader(response.Status)

	if _, err := io.WriteString(w, response.Body); err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}
}
