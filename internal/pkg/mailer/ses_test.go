package mailer

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSESSenderSend(t *testing.T) {
	client := &fakeSES{}
	sender := NewSESSender(client)

	res, err := sender.Send(context.Background(), Message{
		From:    "from@example.com",
		To:      "to@example.com",
		Subject: "Leetcode Status Report on 2024-05",
		HTML:    "<html></html>",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg-1", res.MessageID)

	require.Len(t, client.inputs, 1)
	in := client.inputs[0]
	assert.Equal(t, "from@example.com", aws.ToString(in.Source))
	assert.Equal(t, []string{"to@example.com"}, in.Destination.ToAddresses)
	assert.Empty(t, in.Destination.CcAddresses)
	assert.Equal(t, "Leetcode Status Report on 2024-05", aws.ToString(in.Message.Subject.Data))
	assert.Equal(t, "<html></html>", aws.ToString(in.Message.Body.Html.Data))
	assert.Nil(t, in.Message.Body.Text, "html only, no plain-text part")
}

func TestSESSenderErrors(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		apiErr := &smithy.GenericAPIError{Code: "MessageRejected", Message: "Email address is not verified."}
		sender := NewSESSender(&fakeSES{err: apiErr})

		_, err := sender.Send(context.Background(), Message{From: "a@example.com", To: "b@example.com"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MessageRejected")

		var ae smithy.APIError
		assert.True(t, errors.As(err, &ae))
	})

	t.Run("transport error", func(t *testing.T) {
		sender := NewSESSender(&fakeSES{err: errors.New("dial tcp: i/o timeout")})

		_, err := sender.Send(context.Background(), Message{From: "a@example.com", To: "b@example.com"})
		assert.EqualError(t, err, "failed to invoke SendEmail: dial tcp: i/o timeout")
	})
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{Source: "a@example.com", Destination: "b@example.com"}.Validate())
	assert.Error(t, Config{Source: "a@example.com"}.Validate())
	assert.Error(t, Config{Destination: "b@example.com"}.Validate())
	assert.Error(t, Config{Source: "not-an-address", Destination: "b@example.com"}.Validate())
	assert.Error(t, Config{Source: "a@example.com", Destination: "Bob <b@example.com"}.Validate())

	// display-name mailboxes are valid SES Source/To values
	assert.NoError(t, Config{Source: "Leetcode Bot <bot@example.com>", Destination: "me@example.com"}.Validate())
	assert.NoError(t, Config{Source: "bot@example.com", Destination: `"Max W." <me@example.com>`}.Validate())
}
