// Package flog provides a set of invocation-scoped context helpers for zerolog.
package flog

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FromCtx gets the logger in the invocation's context.
// This is a shortcut for log.Ctx(ctx)
func FromCtx(ctx context.Context) *zerolog.Logger {
	return log.Ctx(ctx)
}

type idKey struct{}

// IDFromCtx returns the invocation id associated to the context if any.
func IDFromCtx(ctx context.Context) (id string, ok bool) {
	id, ok = ctx.Value(idKey{}).(string)
	return
}

// CtxWithID adds the given invocation id to the context
func CtxWithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// InvocationID returns the Lambda request id carried by ctx. Outside of the Lambda
// runtime (local invocations, tests) a fresh xid is generated instead.
func InvocationID(ctx context.Context) string {
	if id, ok := IDFromCtx(ctx); ok {
		return id
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return xid.New().String()
}

// WithInvocation injects a copy of the global logger into ctx, tagged with the
// event name and the invocation id.
func WithInvocation(ctx context.Context, evtName string) context.Context {
	id := InvocationID(ctx)
	l := log.Logger.
		With().
		Str("evt.name", evtName).
		Str("invocation.id", id).
		Logger()
	return l.WithContext(CtxWithID(ctx, id))
}

// Logger Level Method Helpers
func TraceFrom(ctx context.Context) *zerolog.Event {
	return FromCtx(ctx).Trace()
}

func DebugFrom(ctx context.Context) *zerolog.Event {
	return FromCtx(ctx).Debug()
}

func InfoFrom(ctx context.Context) *zerolog.Event {
	return FromCtx(ctx).Info()
}

func WarnFrom(ctx context.Context) *zerolog.Event {
	return FromCtx(ctx).Warn()
}

func ErrorFrom(ctx context.Context) *zerolog.Event {
	return FromCtx(ctx).Error()
}
