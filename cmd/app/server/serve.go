package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/maxwsy/leetcode-report/internal/app"
	"github.com/maxwsy/leetcode-report/internal/app/appcontext"
	"github.com/maxwsy/leetcode-report/internal/controller"
	"github.com/maxwsy/leetcode-report/internal/model"
)

const (
	HandlerFetcher  = "fetcher"
	HandlerNotifier = "notifier"
)

// Serve builds only the part of the graph the named function needs and hands its
// handler to the Lambda runtime. It does not return while the runtime is healthy.
func Serve(handler string) error {
	var fn interface{}
	var populate fx.Option

	switch handler {
	case HandlerFetcher:
		var c *controller.Fetcher
		populate = fx.Populate(&c)
		fn = func(ctx context.Context) (model.FetcherResponse, error) {
			return c.Handle(ctx)
		}
	case HandlerNotifier:
		var c *controller.Notifier
		populate = fx.Populate(&c)
		fn = func(ctx context.Context, event json.RawMessage) (model.NotifierResponse, error) {
			return c.Handle(ctx, event)
		}
	default:
		return fmt.Errorf("unknown handler %q: expected %q or %q", handler, HandlerFetcher, HandlerNotifier)
	}

	fxApp := app.New(appcontext.Declare(appcontext.EnvLambda), populate)
	if err := fxApp.Start(context.Background()); err != nil {
		return err
	}

	log.Info().
		Str("evt.name", "lambda.start").
		Str("handler", handler).
		Msg("starting lambda runtime loop")

	lambda.Start(fn)
	return nil
}
