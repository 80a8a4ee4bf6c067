package service

import (
	"github.com/aws/aws-sdk-go-v2/service/ses"

	"github.com/maxwsy/leetcode-report/internal/pkg/mailer"
)

func NewMailSender(client *ses.Client) mailer.Sender {
	return mailer.NewSESSender(client)
}
