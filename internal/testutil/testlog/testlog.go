package testlog

import (
	"testing"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/mcwire/internal/logging"
)

// Start configures test logging and records the running test.
func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	log.Info().Str("test", t.Name()).Msg("start")
}
