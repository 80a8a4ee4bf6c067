package infra

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/maxwsy/leetcode-report/internal/app/appconfig"
)

// AWSConfig resolves the SDK configuration through the default chain (Lambda execution
// role, env, shared profile). A configured region or pair of static keys replaces the
// corresponding part of the chain.
func AWSConfig(conf *appconfig.Config) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if conf.AWSRegion != "" {
		opts = append(opts, config.WithRegion(conf.AWSRegion))
	}
	if conf.AWSAccessKey != "" && conf.AWSSecretKey != "" {
		log.Debug().
			Str("evt.name", "infra.aws.static_credentials").
			Msg("using static aws credentials")
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.AWSAccessKey, conf.AWSSecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "failed to load aws config")
	}
	return cfg, nil
}

func SES(cfg aws.Config) *ses.Client {
	return ses.NewFromConfig(cfg)
}
