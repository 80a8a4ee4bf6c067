package controller

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/maxwsy/leetcode-report/internal/model"
	"github.com/maxwsy/leetcode-report/internal/pkg/flog"
	"github.com/maxwsy/leetcode-report/internal/service"
)

const (
	MessageEmailSent   = "Email sent successfully"
	MessageEmailFailed = "Failed to send email"
)

type NotifierDeps struct {
	fx.In

	Notifier *service.Notifier
}

type Notifier struct {
	Notifier *service.Notifier
}

func NewNotifier(deps NotifierDeps) *Notifier {
	return &Notifier{Notifier: deps.Notifier}
}

// Handle never returns a Go error: every failure Kind is folded into the same
// 500 response carrying the failure text.
func (c *Notifier) Handle(ctx context.Context, event []byte) (model.NotifierResponse, error) {
	ctx = flog.WithInvocation(ctx, "notifier.invoke")

	if _, err := c.Notifier.Notify(ctx, event); err != nil {
		reportFailure(flog.FromCtx(ctx), err, "failed to send report email")
		return model.NotifierResponse{
			StatusCode: http.StatusInternalServerError,
			Body: model.NotifierResponseBody{
				Message: MessageEmailFailed,
				Error:   err.Error(),
			},
		}, nil
	}

	return model.NotifierResponse{
		StatusCode: http.StatusOK,
		Body: model.NotifierResponseBody{
			Message: MessageEmailSent,
		},
	}, nil
}
