package mailer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const charset = "UTF-8"

// SESAPI is the subset of *ses.Client used by SESSender.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESSender struct {
	client SESAPI
	logger zerolog.Logger
}

func NewSESSender(client SESAPI) *SESSender {
	return &SESSender{
		client: client,
		logger: log.With().Str("module", "mailer.ses").Logger(),
	}
}

func (s *SESSender) Send(ctx context.Context, msg Message) (Result, error) {
	input := &ses.SendEmailInput{
		Source: aws.String(msg.From),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(msg.Subject),
				Charset: aws.String(charset),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data:    aws.String(msg.HTML),
					Charset: aws.String(charset),
				},
			},
		},
	}

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		var ae smithy.APIError
		if errors.As(err, &ae) {
			s.logger.Warn().
				Str("ses.code", ae.ErrorCode()).
				Str("ses.fault", ae.ErrorFault().String()).
				Msg("ses rejected message")
			return Result{}, errors.Wrapf(err, "ses rejected message (%s)", ae.ErrorCode())
		}
		return Result{}, errors.Wrap(err, "failed to invoke SendEmail")
	}

	return Result{MessageID: aws.ToString(out.MessageId)}, nil
}
