package appconfig

import (
	"github.com/maxwsy/leetcode-report/internal/app/appcontext"
)

type ConfigSpec struct {
	// DevMode to indicate development mode. When true, the logger runs at trace level and
	// pretty-prints to stdout regardless of LogJsonStdout.
	DevMode bool `split_words:"true"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout.
	// Always on when running under the Lambda runtime.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFilePath is an optional path of a size-rotated log file. Leave empty on Lambda where
	// the filesystem is ephemeral.
	LogFilePath string `split_words:"true"`

	// statistics API

	// StatsAPIBaseURL is the base address of the alfa-leetcode-api deployment, without a trailing slash.
	StatsAPIBaseURL string `required:"true" split_words:"true" default:"https://alfa-leetcode-api.onrender.com"`

	// Username is the LeetCode username whose statistics are fetched.
	Username string `required:"true" split_words:"true" default:"maxwsy"`

	// SubmissionLimit is the fixed number of latest accepted submissions requested.
	SubmissionLimit int `required:"true" split_words:"true" default:"10"`

	// email delivery

	// SESSourceEmail is the verified SES identity the report is sent from.
	// Also read from the unprefixed SES_SOURCE_EMAIL variable.
	SESSourceEmail string `envconfig:"SES_SOURCE_EMAIL"`

	// SESDestinationEmail is the single recipient of the report.
	// Also read from the unprefixed SES_DESTINATION_EMAIL variable.
	SESDestinationEmail string `envconfig:"SES_DESTINATION_EMAIL"`

	// AWSRegion overrides the region of the SES endpoint. Leave empty to let the SDK's default
	// chain resolve it, which on Lambda is the function's own AWS_REGION.
	AWSRegion string `split_words:"true"`

	// AWSAccessKey and AWSSecretKey optionally override the default credential chain, which is
	// only useful for local invocations.
	AWSAccessKey string `split_words:"true"`
	AWSSecretKey string `split_words:"true"`

	// SentryDSN is the DSN of the Sentry server. Leaving this empty disables error reporting.
	// See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
