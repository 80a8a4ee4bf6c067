package server

import (
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the AWS Lambda runtime loop for one function",
		Subcommands: []*cli.Command{
			{
				Name:  HandlerFetcher,
				Usage: "serve the statistics fetcher",
				Action: func(c *cli.Context) error {
					return Serve(HandlerFetcher)
				},
			},
			{
				Name:  HandlerNotifier,
				Usage: "serve the report notifier",
				Action: func(c *cli.Context) error {
					return Serve(HandlerNotifier)
				},
			},
		},
	}
}
