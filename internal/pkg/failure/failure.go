// Package failure defines the typed failure variants surfaced by the fetcher and the notifier.
//
// Every variant maps to the same HTTP-ish status code on the wire (500); the Kind is what lets
// internal callers and tests tell a malformed event apart from an SES outage.
package failure

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

type Kind string

const (
	KindUpstream     Kind = "UPSTREAM_FETCH_FAILURE"
	KindParse        Kind = "PARSE_FAILURE"
	KindMissingField Kind = "MISSING_FIELD"
	KindDelivery     Kind = "DELIVERY_FAILURE"
)

var (
	// ErrUpstream is returned when either statistics API call fails or answers with a non-200 status.
	ErrUpstream = New(KindUpstream, "failed to fetch statistics")

	// ErrParse is returned when the event or the embedded statistics body is not valid JSON of the expected shape.
	ErrParse = New(KindParse, "malformed input")

	// ErrMissingField is returned when a required key is absent from the event or statistics body.
	ErrMissingField = New(KindMissingField, "required field is missing")

	// ErrDelivery is returned when the email provider rejects or fails to accept the message.
	ErrDelivery = New(KindDelivery, "failed to deliver email")
)

type Failure struct {
	Kind       Kind
	StatusCode int
	Message    string
	Cause      error
}

func New(kind Kind, message string) *Failure {
	return &Failure{
		Kind:       kind,
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
}

func (e Failure) WithMessage(format string, parts ...interface{}) *Failure {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e Failure) WithCause(cause error) *Failure {
	e.Cause = cause
	return &e
}

func (e *Failure) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Cause.Error())
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Failure) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a Failure of the same Kind, so the package-level
// sentinels can be matched with errors.Is regardless of message or cause.
func (e *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first Failure in err's chain, or "" when there is none.
func KindOf(err error) Kind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}
