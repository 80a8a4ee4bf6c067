package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/maxwsy/leetcode-report/internal/app/appconfig"
	"github.com/maxwsy/leetcode-report/internal/app/appcontext"
	"github.com/maxwsy/leetcode-report/internal/controller"
	"github.com/maxwsy/leetcode-report/internal/infra"
	"github.com/maxwsy/leetcode-report/internal/pkg/logger"
	"github.com/maxwsy/leetcode-report/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	return append(ProvideOptions(conf), additionalOpts...)
}

// ProvideOptions builds the graph around an already parsed configuration. Constructors
// are lazy, so a caller populating only the fetcher never builds the notifier.
func ProvideOptions(conf *appconfig.Config) []fx.Option {
	return []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Services
		service.Module(),

		// Controllers
		controller.Module(),

		// Global Singleton Inits
		fx.Invoke(infra.SentryInit),

		// fx Extra Options
		fx.StartTimeout(5 * time.Second),
		fx.StopTimeout(5 * time.Second),
	}
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
