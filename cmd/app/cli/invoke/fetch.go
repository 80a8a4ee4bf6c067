package invoke

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/maxwsy/leetcode-report/internal/controller"
)

type fetchDeps struct {
	fx.In

	Fetcher *controller.Fetcher
}

func fetchCommand(depsFn func() (fetchDeps, error)) *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "fetch statistics once",
		Action: func(c *cli.Context) error {
			deps, err := depsFn()
			if err != nil {
				return err
			}

			res, err := deps.Fetcher.Handle(c.Context)
			if err != nil {
				return err
			}
			return printResponse(c.App.Writer, res.StatusCode, res)
		},
	}
}
