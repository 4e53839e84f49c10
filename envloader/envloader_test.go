// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package envloader

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loggingConf struct {
	Enabled bool   `env:"TEST_LOG_ENABLED" envDefault:"true"`
	Level   string `env:"TEST_LOG_LEVEL" envDefault:"warn"`
	Format  string `env:"TEST_LOG_FORMAT"`
}

type statsdConf struct {
	Addr    string `env:"TEST_STATSD_ADDR" envDefault:"127.0.0.1:8125"`
	Buffer  uint16 `env:"TEST_STATSD_BUFFER" envDefault:"512"`
	Retries int8   `env:"TEST_STATSD_RETRIES"`
}

type appConf struct {
	Table   string // sem tag: nunca alterado
	Logging loggingConf
	Statsd  *statsdConf
	hidden  string `env:"TEST_HIDDEN"`
}

func TestLoad_Defaults(t *testing.T) {
	cfg := &appConf{Table: "users"}
	require.NoError(t, Load(cfg))

	assert.Equal(t, "users", cfg.Table)
	assert.True(t, cfg.Logging.Enabled)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.Format)
	require.NotNil(t, cfg.Statsd)
	assert.Equal(t, "127.0.0.1:8125", cfg.Statsd.Addr)
	assert.Equal(t, uint16(512), cfg.Statsd.Buffer)
	assert.Zero(t, cfg.Statsd.Retries)
}

func TestLoad_EnvironmentOverridesDefault(t *testing.T) {
	t.Setenv("TEST_LOG_ENABLED", "FALSE")
	t.Setenv("TEST_LOG_LEVEL", "debug")
	t.Setenv("TEST_LOG_FORMAT", "json")
	t.Setenv("TEST_STATSD_RETRIES", "-3")
	t.Setenv("TEST_HIDDEN", "ignored")

	cfg := &appConf{}
	require.NoError(t, Load(cfg))

	assert.False(t, cfg.Logging.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, int8(-3), cfg.Statsd.Retries)
	assert.Empty(t, cfg.hidden)
}

func TestLoad_BlankVariableUsesDefault(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "   ")

	cfg := &appConf{}
	require.NoError(t, Load(cfg))

	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_ExistingPointerIsReused(t *testing.T) {
	statsd := &statsdConf{Addr: "custom"}
	cfg := &appConf{Statsd: statsd}

	require.NoError(t, Load(cfg))

	assert.Same(t, statsd, cfg.Statsd)
	// envDefault sobrescreve o valor, como qualquer outra fonte de ambiente
	assert.Equal(t, "127.0.0.1:8125", cfg.Statsd.Addr)
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		in   any
		msg  string
	}{
		{"nil", nil, "got nil"},
		{"not a pointer", appConf{}, "got struct"},
		{"pointer to string", new(string), "got pointer to string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Load(tt.in)

			var invalid *InvalidConfigError
			require.ErrorAs(t, err, &invalid)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad_ConversionErrors(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		t.Setenv("TEST_LOG_ENABLED", "talvez")

		err := Load(&appConf{})

		var ferr *FieldError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, "Enabled", ferr.FieldName)
		assert.Equal(t, "TEST_LOG_ENABLED", ferr.EnvVar)
		assert.Equal(t, "talvez", ferr.Value)
		assert.False(t, ferr.FromDefault)
		assert.True(t, strings.HasPrefix(err.Error(), `envloader: TEST_LOG_ENABLED="talvez" (field Enabled): `), err.Error())

		var numErr *strconv.NumError
		assert.True(t, errors.As(err, &numErr))
	})

	t.Run("overflow", func(t *testing.T) {
		t.Setenv("TEST_STATSD_RETRIES", "300")

		var ferr *FieldError
		require.ErrorAs(t, Load(&appConf{}), &ferr)
		assert.Equal(t, "Retries", ferr.FieldName)
	})

	t.Run("bad default", func(t *testing.T) {
		type conf struct {
			Port int `env:"TEST_BAD_DEFAULT_PORT" envDefault:"http"`
		}

		err := Load(&conf{})

		var ferr *FieldError
		require.ErrorAs(t, err, &ferr)
		assert.True(t, ferr.FromDefault)
		assert.Contains(t, err.Error(), `TEST_BAD_DEFAULT_PORT default="http"`)
	})
}

func TestLoad_UnsupportedType(t *testing.T) {
	t.Setenv("TEST_RATIO", "0.5")

	type conf struct {
		Ratio float64 `env:"TEST_RATIO"`
	}

	err := Load(&conf{})

	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Contains(t, err.Error(), "float64")
}
