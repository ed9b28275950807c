package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/zerverless/funcd/app"
	"github.com/zerverless/funcd/internal/oneshot"
)

var (
	invokeCmdDescription = `The invoke command handles a single request over the one-shot
stdin/stdout protocol used by platforms that spawn the process
per request.

The command reads one json request document from stdin, writes
one json response document to stdout and exits. Any failure
while computing the response is converted into a 500 response
document, and the process still exits normally.`
	invokeCmd = &cli.Command{
		Name:        "invoke",
		Usage:       "Handle a single request from stdin and exit.",
		Description: invokeCmdDescription,
		Action:      invokeAction,
	}
)

func invokeAction(ctx *cli.Context) error {
	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	return app.Run(ctx.Context, oneshot.Module())
}

func init() {
	rootApp.Commands = append(rootApp.Commands, invokeCmd)
}
