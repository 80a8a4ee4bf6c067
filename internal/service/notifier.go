package service

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/maxwsy/leetcode-report/internal/app/appconfig"
	"github.com/maxwsy/leetcode-report/internal/model"
	"github.com/maxwsy/leetcode-report/internal/pkg/failure"
	"github.com/maxwsy/leetcode-report/internal/pkg/flog"
	"github.com/maxwsy/leetcode-report/internal/pkg/mailer"
)

const statsBodyPath = "lambda_output.value.body"

// required keys of every element of an array inside the statistics body
var statsArrays = []struct {
	path   string
	fields []string
}{
	{"solvedSummary.acSubmissionNum", []string{"difficulty", "count"}},
	{"solvedSummary.totalSubmissionNum", []string{"difficulty", "submissions"}},
	{"latestSubmissions.submission", []string{"title", "statusDisplay", "lang", "timestamp"}},
}

type Notifier struct {
	Mail mailer.Config

	sender mailer.Sender
}

// NewNotifier fails when the envelope addresses are missing or malformed, so a
// misconfigured deployment fails at start-up instead of on every invocation.
func NewNotifier(conf *appconfig.Config, sender mailer.Sender) (*Notifier, error) {
	mail := mailer.Config{
		Source:      conf.SESSourceEmail,
		Destination: conf.SESDestinationEmail,
	}
	if err := mail.Validate(); err != nil {
		return nil, err
	}

	return &Notifier{
		Mail:   mail,
		sender: sender,
	}, nil
}

type Delivery struct {
	Subject   string
	MessageID string
	Report    *Report
}

func Subject(yearDateMonth string) string {
	return SubjectPrefix + yearDateMonth
}

// Notify turns a raw notifier event into a report email and sends it. Checks run in a
// fixed order (parse, required fields, render, deliver) and the first failing step
// decides the returned failure Kind. Nothing is sent unless every prior step passed.
func (s *Notifier) Notify(ctx context.Context, event []byte) (*Delivery, error) {
	evt, stats, err := ParseEvent(event)
	if err != nil {
		return nil, err
	}

	report, err := RenderReport(stats)
	if err != nil {
		return nil, err
	}

	subject := Subject(evt.YearDateMonth)
	res, err := s.sender.Send(ctx, mailer.Message{
		From:    s.Mail.Source,
		To:      s.Mail.Destination,
		Subject: subject,
		HTML:    report.HTML,
	})
	if err != nil {
		return nil, failure.ErrDelivery.WithCause(err)
	}

	flog.InfoFrom(ctx).
		Str("subject", subject).
		Str("messageId", res.MessageID).
		Int("summaryRows", len(report.Summary)).
		Int("submissionRows", len(report.Submissions)).
		Msg("report email sent")

	return &Delivery{
		Subject:   subject,
		MessageID: res.MessageID,
		Report:    report,
	}, nil
}

// ParseEvent validates and decodes a notifier event together with the CombinedStats
// document embedded in it as a string.
func ParseEvent(event []byte) (*model.NotifierEvent, *model.CombinedStats, error) {
	if !gjson.ValidBytes(event) {
		return nil, nil, failure.ErrParse.WithMessage("event is not valid JSON")
	}

	root := gjson.ParseBytes(event)
	for _, path := range []string{"yearDateMonth", statsBodyPath} {
		v := root.Get(path)
		if !v.Exists() {
			return nil, nil, failure.ErrMissingField.WithMessage("%s is missing", path)
		}
		if v.Type != gjson.String {
			return nil, nil, failure.ErrParse.WithMessage("%s is not a string", path)
		}
	}

	var evt model.NotifierEvent
	if err := json.Unmarshal(event, &evt); err != nil {
		return nil, nil, failure.ErrParse.WithCause(errors.Wrap(err, "failed to decode event"))
	}

	body := evt.LambdaOutput.Value.Body
	if !gjson.Valid(body) {
		return nil, nil, failure.ErrParse.WithMessage("%s is not valid JSON", statsBodyPath)
	}
	if err := requireStatsFields(gjson.Parse(body)); err != nil {
		return nil, nil, err
	}

	var stats model.CombinedStats
	if err := json.Unmarshal([]byte(body), &stats); err != nil {
		return nil, nil, failure.ErrParse.WithCause(errors.Wrap(err, "failed to decode statistics"))
	}

	return &evt, &stats, nil
}

func requireStatsFields(stats gjson.Result) error {
	for _, arr := range statsArrays {
		v := stats.Get(arr.path)
		if !v.Exists() {
			return failure.ErrMissingField.WithMessage("%s is missing", arr.path)
		}
		if !v.IsArray() {
			return failure.ErrParse.WithMessage("%s is not an array", arr.path)
		}

		for i, item := range v.Array() {
			for _, field := range arr.fields {
				if !item.Get(field).Exists() {
					return failure.ErrMissingField.WithMessage("%s.%d.%s is missing", arr.path, i, field)
				}
			}
		}
	}
	return nil
}
