package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/zerverless/funcd/config"
	"github.com/zerverless/funcd/internal/function"
	"github.com/zerverless/funcd/internal/shell"
	"github.com/zerverless/funcd/util/conf"
	"github.com/zerverless/funcd/util/logging"
)

func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
		// provide function config
		fx.Supply(config.Function),
		// provide dispatcher
		fx.Provide(function.NewDispatcher),
	)

	return shell.New(log, sharedModule), nil
}
