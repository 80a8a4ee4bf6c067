package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/maxwsy/leetcode-report/internal/app/appconfig"
	"github.com/maxwsy/leetcode-report/internal/pkg/failure"
	"github.com/maxwsy/leetcode-report/internal/pkg/flog"
)

// StatsFetcher reads a user's submission history and solved counts from the statistics API.
type StatsFetcher struct {
	BaseURL  string
	Username string
	Limit    int

	client *http.Client
}

func NewStatsFetcher(conf *appconfig.Config, client *http.Client) *StatsFetcher {
	return &StatsFetcher{
		BaseURL:  strings.TrimRight(conf.StatsAPIBaseURL, "/"),
		Username: conf.Username,
		Limit:    conf.SubmissionLimit,
		client:   client,
	}
}

func (s *StatsFetcher) submissionsURL() string {
	return fmt.Sprintf("%s/%s/acSubmission?limit=%d", s.BaseURL, url.PathEscape(s.Username), s.Limit)
}

func (s *StatsFetcher) solvedURL() string {
	return fmt.Sprintf("%s/%s/solved", s.BaseURL, url.PathEscape(s.Username))
}

// Fetch performs the two statistics API calls in order and returns the CombinedStats
// document. The upstream bodies are embedded as-is under solvedSummary and
// latestSubmissions. Any failure is a failure.ErrUpstream variant.
func (s *StatsFetcher) Fetch(ctx context.Context) ([]byte, error) {
	submissions, submissionsStatus, err := s.get(ctx, s.submissionsURL())
	if err != nil {
		return nil, failure.ErrUpstream.WithCause(errors.Wrap(err, "acSubmission"))
	}

	solved, solvedStatus, err := s.get(ctx, s.solvedURL())
	if err != nil {
		return nil, failure.ErrUpstream.WithCause(errors.Wrap(err, "solved"))
	}

	flog.DebugFrom(ctx).
		Int("acSubmission.status", submissionsStatus).
		Int("solved.status", solvedStatus).
		Msg("statistics api responded")

	if submissionsStatus != http.StatusOK || solvedStatus != http.StatusOK {
		return nil, failure.ErrUpstream.WithMessage("unexpected status: acSubmission=%d solved=%d", submissionsStatus, solvedStatus)
	}

	if !gjson.ValidBytes(submissions) {
		return nil, failure.ErrUpstream.WithMessage("acSubmission returned invalid JSON")
	}
	if !gjson.ValidBytes(solved) {
		return nil, failure.ErrUpstream.WithMessage("solved returned invalid JSON")
	}

	combined, err := sjson.SetRawBytes([]byte(`{}`), "solvedSummary", solved)
	if err != nil {
		return nil, failure.ErrUpstream.WithCause(errors.Wrap(err, "failed to combine statistics"))
	}
	combined, err = sjson.SetRawBytes(combined, "latestSubmissions", submissions)
	if err != nil {
		return nil, failure.ErrUpstream.WithCause(errors.Wrap(err, "failed to combine statistics"))
	}

	return combined, nil
}

func (s *StatsFetcher) get(ctx context.Context, u string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, 0, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, res.StatusCode, err
	}

	return body, res.StatusCode, nil
}
