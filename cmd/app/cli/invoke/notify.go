package invoke

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/maxwsy/leetcode-report/internal/controller"
)

type notifyDeps struct {
	fx.In

	Notifier *controller.Notifier
}

func notifyCommand(depsFn func() (notifyDeps, error)) *cli.Command {
	return &cli.Command{
		Name:  "notify",
		Usage: "render and send one report email from a notifier event",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "event",
				Aliases:  []string{"e"},
				Usage:    "path of the event JSON file, or - for stdin",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			event, err := readEvent(c.String("event"), c.App.Reader)
			if err != nil {
				return err
			}

			deps, err := depsFn()
			if err != nil {
				return err
			}

			res, err := deps.Notifier.Handle(c.Context, event)
			if err != nil {
				return err
			}
			return printResponse(c.App.Writer, res.StatusCode, res)
		},
	}
}

func readEvent(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		return b, errors.Wrap(err, "failed to read event from stdin")
	}
	b, err := os.ReadFile(path)
	return b, errors.Wrap(err, "failed to read event file")
}
