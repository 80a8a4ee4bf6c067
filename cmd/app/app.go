package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/maxwsy/leetcode-report/cmd/app/cli/invoke"
	"github.com/maxwsy/leetcode-report/cmd/app/server"
	"github.com/maxwsy/leetcode-report/internal/pkg/bininfo"
)

// lambdaHandlerEnv is set by the Lambda runtime to the function's configured handler.
const lambdaHandlerEnv = "_HANDLER"

func Run() {
	app := &cli.App{
		Name:        bininfo.Name,
		Description: "Fetches LeetCode statistics and emails them as an HTML report. Each function runs as its own AWS Lambda.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			invoke.Command(),
		},
		// a custom-runtime bootstrap is started without arguments
		Action: func(c *cli.Context) error {
			if handler := os.Getenv(lambdaHandlerEnv); handler != "" {
				return server.Serve(handler)
			}
			return cli.ShowAppHelp(c)
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
