package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/maxwsy/leetcode-report/internal/app"
	"github.com/maxwsy/leetcode-report/internal/app/appcontext"
)

func Start(module fx.Option) error {
	return app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}
