// Package mailer sends single-recipient HTML email. The SES-backed Sender is the only
// production implementation; tests inject their own.
package mailer

import (
	"context"
	"net/mail"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Config holds the envelope addresses. It is validated once, when the notifier is built.
// Both accept RFC 5322 mailboxes, display name included, the same as SES does.
type Config struct {
	Source      string `validate:"required,mailbox"`
	Destination string `validate:"required,mailbox"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("mailbox", mailbox)
	return v
}

func mailbox(fl validator.FieldLevel) bool {
	_, err := mail.ParseAddress(fl.Field().String())
	return err == nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid mailer configuration")
	}
	return nil
}

// Message is an HTML-only email. There is no plain-text alternative.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

type Result struct {
	// MessageID is the provider's id for the accepted message.
	MessageID string
}

type Sender interface {
	Send(ctx context.Context, msg Message) (Result, error)
}
