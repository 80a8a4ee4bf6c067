package invoke

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/maxwsy/leetcode-report/cmd/app/cli"
)

func depsFn[T any]() func() (T, error) {
	return func() (T, error) {
		var deps T
		err := cliapp.Start(fx.Populate(&deps))
		return deps, err
	}
}

func Command() *cli.Command {
	return &cli.Command{
		Name:        "invoke",
		Description: "run a single invocation locally and print the function's response",
		Subcommands: []*cli.Command{
			fetchCommand(depsFn[fetchDeps]()),
			notifyCommand(depsFn[notifyDeps]()),
		},
	}
}

// printResponse writes the response and turns a non-200 status into a non-zero exit code.
func printResponse(w io.Writer, statusCode int, response any) error {
	b, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode response")
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	if statusCode != 200 {
		return cli.Exit("", 1)
	}
	return nil
}
