package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/zerverless/funcd/util"
	"github.com/zerverless/funcd/util/logging"
)

var (
	runCmdDescription = `The run command detects the execution environment from the
environment variables and starts the adapter. This allows the
same binary to be executed on arbitrary platforms, without
having to define the entry mode at buildtime.

If the AWS_LAMBDA_RUNTIME_API environment variable is set,
funcd will start the AWS Lambda runtime handler, matching the
behaviour of the lambda command.

If the FUNCTION_ONE_SHOT environment variable is truthy, funcd
will handle a single request over stdin/stdout, matching the
behaviour of the invoke command.

Otherwise, funcd will start the standalone http server.
	`
	runCmd = &cli.Command{
		Name:        "run",
		Usage:       "Detect execution environment and start the adapter.",
		Description: runCmdDescription,
		Action:      runAction,
		Flags:       []cli.Flag{},
	}
)

func runAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	if isAWSLambda() {
		log.Info("detected AWS Lambda environment")
		return lambdaAction(ctx)
	}

	if isOneShot() {
		log.Info("detected one-shot environment")
		return invokeAction(ctx)
	}

	log.Info("detected standalone environment")
	return serveAction(ctx)
}

func isAWSLambda() bool {
	env, ok := os.LookupEnv("AWS_LAMBDA_RUNTIME_API")
	return ok && env != ""
}

func isOneShot() bool {
	return util.Truthy(os.Getenv("FUNCTION_ONE_SHOT"))
}

func init() {
	runCmd.Flags = append(runCmd.Flags, serveCmd.Flags...)
	runCmd.Flags = append(runCmd.Flags, lambdaCmd.Flags...)

	rootApp.Commands = append(rootApp.Commands, runCmd)
}
