package infra

import (
	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"

	"github.com/maxwsy/leetcode-report/internal/app/appconfig"
	"github.com/maxwsy/leetcode-report/internal/pkg/bininfo"
)

// SentryInit initializes sentry with side-effect
func SentryInit(conf *appconfig.Config) error {
	if conf.SentryDSN == "" {
		log.Debug().Msg("Sentry is disabled due to missing DSN.")
		return nil
	}
	log.Info().Msg("Initializing Sentry...")
	return sentry.Init(sentry.ClientOptions{
		Dsn:              conf.SentryDSN,
		Release:          bininfo.Release(),
		Debug:            conf.DevMode,
		AttachStacktrace: true,
	})
}
