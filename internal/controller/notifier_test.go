package controller

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxwsy/leetcode-report/internal/app/appconfig"
	"github.com/maxwsy/leetcode-report/internal/pkg/mailer"
	"github.com/maxwsy/leetcode-report/internal/service"
)

type recordingSender struct {
	sent []mailer.Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg mailer.Message) (mailer.Result, error) {
	s.sent = append(s.sent, msg)
	if s.err != nil {
		return mailer.Result{}, s.err
	}
	return mailer.Result{MessageID: "msg-1"}, nil
}

func newNotifierController(t *testing.T, sender mailer.Sender) *Notifier {
	t.Helper()

	n, err := service.NewNotifier(&appconfig.Config{ConfigSpec: appconfig.ConfigSpec{
		SESSourceEmail:      "from@example.com",
		SESDestinationEmail: "to@example.com",
	}}, sender)
	require.NoError(t, err)
	return NewNotifier(NotifierDeps{Notifier: n})
}

const validEvent = `{
	"yearDateMonth": "2024-05-01",
	"lambda_output": {"value": {"statusCode": 200, "body": "{\"solvedSummary\":{\"acSubmissionNum\":[{\"difficulty\":\"Easy\",\"count\":5}],\"totalSubmissionNum\":[{\"difficulty\":\"Easy\",\"submissions\":10}]},\"latestSubmissions\":{\"submission\":[]}}"}}
}`

func TestNotifierHandle(t *testing.T) {
	sender := &recordingSender{}
	res, err := newNotifierController(t, sender).Handle(context.Background(), []byte(validEvent))
	require.NoError(t, err)

	assert.Equal(t, 200, res.StatusCode)
	assert.Equal(t, "Email sent successfully", res.Body.Message)
	assert.Empty(t, res.Body.Error)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Leetcode Status Report on 2024-05-01", sender.sent[0].Subject)

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"statusCode":200,"body":{"message":"Email sent successfully"}}`, string(b))
}

func TestNotifierHandleFailures(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		sender := &recordingSender{}
		event := `{"yearDateMonth":"2024-05","lambda_output":{"value":{"body":"not json"}}}`

		res, err := newNotifierController(t, sender).Handle(context.Background(), []byte(event))
		require.NoError(t, err)

		assert.Equal(t, 500, res.StatusCode)
		assert.Equal(t, "Failed to send email", res.Body.Message)
		assert.NotEmpty(t, res.Body.Error)
		assert.Empty(t, sender.sent, "nothing is sent for malformed input")
	})

	t.Run("delivery", func(t *testing.T) {
		sender := &recordingSender{err: errors.New("throttled")}

		res, err := newNotifierController(t, sender).Handle(context.Background(), []byte(validEvent))
		require.NoError(t, err)

		assert.Equal(t, 500, res.StatusCode)
		assert.Equal(t, "Failed to send email", res.Body.Message)
		assert.Contains(t, res.Body.Error, "throttled")
		assert.Len(t, sender.sent, 1)
	})
}
