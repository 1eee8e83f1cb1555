package observability

import (
	"time"

	"github.com/rs/zerolog"
)

// ConversionEvent describes one resolved conversion for structured logging.
type ConversionEvent struct {
	Source    string
	Target    string
	Dimension string
	Mode      string
	Duration  time.Duration
	Err       error
}

// LogConversion writes e at debug level on success and warn level on failure.
func LogConversion(logger zerolog.Logger, e ConversionEvent) {
	event := logger.Debug()
	if e.Err != nil {
		event = logger.Warn().Err(e.Err)
	}
	event.
		Str("from", e.Source).
		Str("to", e.Target).
		Str("dimension", e.Dimension).
		Str("mode", e.Mode).
		Dur("duration", e.Duration).
		Msg("conversion")
}
