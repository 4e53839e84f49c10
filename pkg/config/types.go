package config

import "github.com/raywall/dyntable/envloader"

// FallbackRegion é usada quando nem a flag nem a cadeia padrão da AWS
// resolvem uma região.
const FallbackRegion = "us-east-2"

// Config representa a configuração completa de uma execução.
//
// Os campos com tag `flag` vêm da linha de comando; os com tag `env` são
// preenchidos pelo envloader.
type Config struct {
	Table          string `flag:"table" validate:"required"`
	Region         string `flag:"region"`
	Info           bool   `flag:"info"`
	PageSize       int32  `flag:"page-size" validate:"gte=0"`
	ConsistentRead bool   `flag:"consistent-read"`
	NoColor        bool   `flag:"no-color"`

	Logging LoggingConf
	Metrics MetricsConf
}

// LoggingConf controla o logger (sempre em stderr).
type LoggingConf struct {
	Enabled bool   `env:"DYNTABLE_LOG_ENABLED" envDefault:"true"`
	Level   string `env:"DYNTABLE_LOG_LEVEL" envDefault:"warn" validate:"oneof=trace debug info warn error"`
	Format  string `env:"DYNTABLE_LOG_FORMAT" envDefault:"console" validate:"oneof=json console"`
}

// MetricsConf controla o envio de métricas via DogStatsD.
type MetricsConf struct {
	Enabled   bool   `env:"DYNTABLE_STATSD_ENABLED"`
	Addr      string `env:"DYNTABLE_STATSD_ADDR" envDefault:"127.0.0.1:8125" validate:"required_if=Enabled true"`
	Namespace string `env:"DYNTABLE_STATSD_NAMESPACE" envDefault:"dyntable."`
}

// LoadEnv preenche as configurações de ambiente (logging e métricas).
// Valores já definidos por flags devem ser aplicados depois desta chamada.
func LoadEnv(cfg *Config) error {
	if err := envloader.Load(cfg); err != nil {
		return &ConfigurationError{Field: "environment", Reason: "invalid value", Err: err}
	}
	return nil
}
