package handler

import (
	"github.com/zerverless/funcd/internal/server"
)

// NewFunctionRoute mounts the function handler as the catch-all route.
// Path and method matching happen inside the dispatcher itself.
func NewFunctionRoute(handler *FunctionHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("/", handler)
}
