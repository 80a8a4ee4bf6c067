package logger

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

// fxWriter forwards fx's console events into zerolog at debug level, so a cold
// start does not flood CloudWatch with dependency graph chatter.
type fxWriter struct {
	l zerolog.Logger
}

var _ io.Writer = (*fxWriter)(nil)

func Fx() fxevent.Logger {
	return &fxevent.ConsoleLogger{
		W: fxWriter{
			l: log.Logger.
				With().
				Str("evt.name", "fx.init").
				Logger(),
		},
	}
}

func (w fxWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	if n > 0 && p[n-1] == '\n' {
		p = p[0 : n-1]
	}
	w.l.Debug().Msg(string(p))
	return
}
