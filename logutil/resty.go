package logutil

import (
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

var _ resty.Logger = (*RestyLogger)(nil)

// RestyLogger routes resty's internal printf-style logging into zerolog.
type RestyLogger struct {
	logger zerolog.Logger
}

func NewRestyLogger(logger zerolog.Logger) *RestyLogger {
	return &RestyLogger{
		logger: logger.With().Str("component", "resty").Logger(),
	}
}

func (l *RestyLogger) Errorf(format string, v ...any) {
	l.logger.Error().Msgf(trimNewline(format), v...)
}

func (l *RestyLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msgf(trimNewline(format), v...)
}

func (l *RestyLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Msgf(trimNewline(format), v...)
}

func trimNewline(format string) string {
	return strings.TrimRight(format, "\n")
}
