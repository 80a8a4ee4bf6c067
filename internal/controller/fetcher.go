package controller

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/maxwsy/leetcode-report/internal/model"
	"github.com/maxwsy/leetcode-report/internal/pkg/flog"
	"github.com/maxwsy/leetcode-report/internal/service"
)

// FetchFailedBody is the fixed body returned for every fetch failure.
const FetchFailedBody = `{"error": "Failed to fetch statistics"}`

type FetcherDeps struct {
	fx.In

	StatsFetcher *service.StatsFetcher
}

type Fetcher struct {
	StatsFetcher *service.StatsFetcher
}

func NewFetcher(deps FetcherDeps) *Fetcher {
	return &Fetcher{StatsFetcher: deps.StatsFetcher}
}

func (c *Fetcher) Handle(ctx context.Context) (model.FetcherResponse, error) {
	ctx = flog.WithInvocation(ctx, "fetcher.invoke")

	body, err := c.StatsFetcher.Fetch(ctx)
	if err != nil {
		reportFailure(flog.FromCtx(ctx), err, "failed to fetch statistics")
		return model.FetcherResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       FetchFailedBody,
		}, nil
	}

	flog.InfoFrom(ctx).Int("body.bytes", len(body)).Msg("statistics fetched")
	return model.FetcherResponse{
		StatusCode: http.StatusOK,
		Body:       string(body),
	}, nil
}
