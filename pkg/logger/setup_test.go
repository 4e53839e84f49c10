package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/raywall/dyntable/pkg/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	t.Run("Default Level Warn", func(t *testing.T) {
		_ = Configure(config.LoggingConf{Enabled: true}, &bytes.Buffer{})

		if zerolog.GlobalLevel() != zerolog.WarnLevel {
			t.Errorf("Esperado WarnLevel, atual %v", zerolog.GlobalLevel())
		}
	})

	t.Run("Invalid Level Falls Back To Warn", func(t *testing.T) {
		_ = Configure(config.LoggingConf{Enabled: true, Level: "loud"}, &bytes.Buffer{})

		assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	})

	t.Run("Custom Level Debug", func(t *testing.T) {
		_ = Configure(config.LoggingConf{Enabled: true, Level: "DEBUG"}, &bytes.Buffer{})

		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	})

	t.Run("JSON Output Carries Run ID", func(t *testing.T) {
		var buf bytes.Buffer
		log := Configure(config.LoggingConf{Enabled: true, Level: "info", Format: "json"}, &buf)

		log.Info().Str("table", "users").Msg("scan complete")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "scan complete", line["message"])
		assert.Equal(t, "users", line["table"])
		assert.NotEmpty(t, line["run_id"])
	})

	t.Run("Console Output", func(t *testing.T) {
		var buf bytes.Buffer
		log := Configure(config.LoggingConf{Enabled: true, Level: "info", Format: "console"}, &buf)

		log.Warn().Msg("table is empty")

		assert.Contains(t, buf.String(), "table is empty")
	})

	t.Run("Disabled Logger", func(t *testing.T) {
		var buf bytes.Buffer
		log := Configure(config.LoggingConf{Enabled: false, Level: "debug"}, &buf)

		log.Error().Msg("teste")
		assert.Zero(t, buf.Len())
	})
}
