package testentry

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/maxwsy/leetcode-report/internal/app"
	"github.com/maxwsy/leetcode-report/internal/app/appconfig"
)

func options(t testing.TB, conf *appconfig.Config, targets ...any) []fx.Option {
	log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))

	opts := app.ProvideOptions(conf)
	// for testing, fx's own event log is too annoying
	return append(opts, fx.NopLogger, fx.Populate(targets...))
}

// RequireStart starts the application graph for conf and fills targets, failing the
// test if the graph cannot be built or started. The app is stopped on test cleanup.
func RequireStart(t testing.TB, conf *appconfig.Config, targets ...any) {
	t.Helper()

	fxApp := fxtest.New(t, options(t, conf, targets...)...)
	fxApp.RequireStart()
	t.Cleanup(fxApp.RequireStop)
}

// Populate starts the application graph for conf and fills targets. The returned
// error is the graph's construction or start-up error. A started app is stopped on
// test cleanup.
func Populate(t testing.TB, conf *appconfig.Config, targets ...any) error {
	fxApp := fx.New(options(t, conf, targets...)...)
	if err := fxApp.Start(context.Background()); err != nil {
		return err
	}

	t.Cleanup(func() {
		if err := fxApp.Stop(context.Background()); err != nil {
			t.Errorf("application didn't stop cleanly: %v", err)
		}
	})
	return nil
}
