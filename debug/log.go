package debug

import (
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}).
	With().Timestamp().Logger()

func Logf(msg string, args ...any) {
	logger.Debug().Msgf(msg, args...)
}
