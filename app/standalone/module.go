package standalone

import (
	"go.uber.org/fx"

	"github.com/zerverless/funcd/handler"
	"github.com/zerverless/funcd/internal/server"
	"github.com/zerverless/funcd/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide handlers
		handler.Module(),
		// provide server
		server.Module(config.HttpConfig),
	)
}
