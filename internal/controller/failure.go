package controller

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"

	"github.com/maxwsy/leetcode-report/internal/pkg/failure"
)

const sentryFlushTimeout = 2 * time.Second

// reportFailure logs err on the invocation logger and forwards it to Sentry. Sentry calls
// are no-ops when it was never initialised.
func reportFailure(l *zerolog.Logger, err error, msg string) {
	l.Error().
		Err(err).
		Str("failure.kind", string(failure.KindOf(err))).
		Msg(msg)

	sentry.CaptureException(err)
	sentry.Flush(sentryFlushTimeout)
}
