package appconfig

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/maxwsy/leetcode-report/internal/app/appcontext"
)

const EnvPrefix = "leetcode_report"

func Parse(ctx appcontext.Ctx) (*Config, error) {
	// a missing .env is the normal case on Lambda
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	var config ConfigSpec
	err := envconfig.Process(EnvPrefix, &config)
	if err != nil {
		_ = envconfig.Usage(EnvPrefix, &config)
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}
