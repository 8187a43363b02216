package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component returns the global logger tagged with cmp=name. Call it after
// main has installed the configured logger.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}
