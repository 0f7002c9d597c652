package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" Debug ": zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
	}
	for raw, want := range cases {
		got, ok := parseLevel(raw)
		require.True(t, ok, raw)
		require.Equal(t, want, got, raw)
	}
	for _, raw := range []string{"", "loud"} {
		_, ok := parseLevel(raw)
		require.False(t, ok, raw)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "1")
	t.Setenv(EnvLogJSON, "not-a-bool")

	cfg := FromEnv(ProfileRuntime)
	require.Equal(t, Config{Level: zerolog.ErrorLevel, Timestamp: false, NoColor: true}, cfg)
}

func TestInstallJSON(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	Install(Config{Level: zerolog.InfoLevel, JSON: true}, &buf)
	log.Debug().Msg("hidden")
	log.Info().Str("type", "Handshake").Msg("rendered")
	require.Equal(t, `{"level":"info","type":"Handshake","message":"rendered"}`+"\n", buf.String())

	require.True(t, SetLevel("debug"))
	require.False(t, SetLevel("chatty"))
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}
