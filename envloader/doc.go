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
//
// Package envloader preenche structs de configuração a partir de variáveis
// de ambiente, usando as tags `env` e `envDefault`.
//
// Visão Geral:
// O dyntable usa o `envloader` para as configurações de ambiente (nível de
// log, formato, DogStatsD). As flags da linha de comando são aplicadas por
// cima do que foi carregado aqui.
//
// Tipos suportados: string, bool, inteiros com e sem sinal e structs
// aninhadas (inclusive ponteiros para struct).
//
// Exemplo:
//
//	type LoggingConf struct {
//		Level  string `env:"DYNTABLE_LOG_LEVEL" envDefault:"warn"`
//		Format string `env:"DYNTABLE_LOG_FORMAT" envDefault:"console"`
//	}
//
//	var cfg LoggingConf
//	if err := envloader.Load(&cfg); err != nil {
//		var ferr *envloader.FieldError
//		if errors.As(err, &ferr) { /* ferr.EnvVar, ferr.Value */ }
//	}
package envloader
