package oneshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/zerverless/funcd/internal/function"
	"github.com/zerverless/funcd/internal/function/schema"
)

// HandlerParams defines the dependencies for the one-shot handler.
type HandlerParams struct {
	fx.In

	Dispatcher *function.Dispatcher
	Schema     *schema.Schema
	Shutdowner fx.Shutdowner
	Logger     *zap.Logger
}

// Handler drives a single read-dispatch-write cycle over the one-shot
// stdin/stdout protocol. Logs go to stderr, stdout carries exactly the
// response document.
type Handler struct {
	dispatcher *function.Dispatcher
	schema     *schema.Schema
	shutdowner fx.Shutdowner
	in         io.Reader
	out        io.Writer
	log        *zap.Logger
}

func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		dispatcher: params.Dispatcher,
		schema:     params.Schema,
		shutdowner: params.Shutdowner,
		in:         os.Stdin,
		out:        os.Stdout,
		log:        params.Logger,
	}
}

// NewLifecycleHandler creates a one-shot handler and attaches lifecycle
// hooks to run it once the application has started.
func NewLifecycleHandler(params HandlerParams, lc fx.Lifecycle) *Handler {
	handler := NewHandler(params)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go handler.Run()
			return nil
		},
	})
	return handler
}

// Run computes one response and writes it to the output. The process is
// then shut down with exit code 0, whether or not computing the response
// failed: failures have already been converted into a 500 document.
func (h *Handler) Run() {
	response := h.handle()

	if err := json.NewEncoder(h.out).Encode(response); err != nil {
		h.log.Error("failed to write response", zap.Error(err))
	}

	if err := h.shutdowner.Shutdown(fx.ExitCode(0)); err != nil {
		h.log.Error("failed to shutdown", zap.Error(err))
	}
}

// handle reads the input document, normalizes it and dispatches it. Any
// failure or panic while computing the response becomes a 500 envelope.
func (h *Handler) handle() (response function.Response) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("panic while handling request", zap.Any("panic", r))
			response = function.NewErrorResponse(fmt.Sprintf("%v", r))
		}
	}()

	input, err := io.ReadAll(h.in)
	if err != nil {
		h.log.Error("failed to read input", zap.Error(err))
		return function.NewErrorResponse(err.Error())
	}

	request := h.decode(input)

	return h.dispatcher.Dispatch(request)
}

// decode normalizes the input document. Input that is empty, malformed
// or schema-invalid degrades to an all-default request, it never fails.
func (h *Handler) decode(input []byte) function.Request {
	if len(input) == 0 {
		return function.DecodeRequest(nil)
	}

	if res, err := h.schema.Validate(input); err != nil {
		h.log.Debug("input document is not valid json", zap.Error(err))
		return function.DecodeRequest(nil)
	} else if !res.Valid() {
		h.log.Debug("input document failed validation", zap.Any("errors", res.Errors()))
		return function.DecodeRequest(nil)
	}

	return function.DecodeRequest(input)
}
