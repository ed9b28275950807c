package oneshot

import (
	"go.uber.org/fx"

	"github.com/zerverless/funcd/internal/function/schema"
	"github.com/zerverless/funcd/util/logging"
)

func Module() fx.Option {
	return fx.Module(
		"oneshot",
		// rename logger for module
		logging.DecorateLogger("oneshot"),
		// provide input document schema
		fx.Provide(schema.NewRequestSchema),
		// provide handler
		fx.Provide(NewLifecycleHandler),
		// invoke handler
		fx.Invoke(func(*Handler) {}),
	)
}
