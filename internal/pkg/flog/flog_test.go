package flog

import (
	"bytes"
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInvocationID(t *testing.T) {
	t.Run("lambda request id", func(t *testing.T) {
		ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-1"})
		assert.Equal(t, "req-1", InvocationID(ctx))
	})

	t.Run("explicit id wins", func(t *testing.T) {
		ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-1"})
		ctx = CtxWithID(ctx, "explicit")
		assert.Equal(t, "explicit", InvocationID(ctx))
	})

	t.Run("generated outside lambda", func(t *testing.T) {
		a := InvocationID(context.Background())
		b := InvocationID(context.Background())
		assert.NotEmpty(t, a)
		assert.NotEqual(t, a, b)
	})
}

func TestWithInvocation(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-2"})
	ctx = WithInvocation(ctx, "notifier.invoke")

	InfoFrom(ctx).Msg("hello")

	assert.Contains(t, buf.String(), `"evt.name":"notifier.invoke"`)
	assert.Contains(t, buf.String(), `"invocation.id":"req-2"`)

	id, ok := IDFromCtx(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-2", id)
}
