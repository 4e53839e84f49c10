package logger

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/raywall/dyntable/pkg/config"
	"github.com/rs/zerolog"
)

// Configure inicializa o logger baseando-se na configuração de ambiente.
//
// O destino é sempre w (stderr na CLI): stdout fica reservado para a tabela.
// Cada execução recebe um run_id para correlacionar as linhas de log.
func Configure(cfg config.LoggingConf, w io.Writer) zerolog.Logger {
	// Define o nível de log (default: warn)
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)

	output := w
	if !cfg.Enabled {
		output = io.Discard
	} else if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(output).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}
