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
	"fmt"
	"reflect"
)

// InvalidConfigError indica que Load não recebeu um ponteiro não nulo para struct.
type InvalidConfigError struct {
	// Value é o tipo recebido; nil quando o argumento era nil.
	Value reflect.Type
}

func (e *InvalidConfigError) Error() string {
	got := "nil"
	if e.Value != nil {
		got = e.Value.Kind().String()
		if e.Value.Kind() == reflect.Ptr {
			got = "pointer to " + e.Value.Elem().Kind().String()
		}
	}
	return "envloader: config must be a pointer to struct, got " + got
}

// FieldError indica que o valor de uma variável (ou do seu envDefault) não
// pôde ser atribuído ao campo.
type FieldError struct {
	FieldName string
	EnvVar    string
	Value     string
	// FromDefault é verdadeiro quando Value veio da tag envDefault, ou seja,
	// o erro está na declaração da struct e não no ambiente.
	FromDefault bool
	Err         error
}

// Error retorna, por exemplo:
//
//	envloader: DYNTABLE_LOG_ENABLED="talvez" (field Enabled): strconv.ParseBool: parsing "talvez": invalid syntax
func (e *FieldError) Error() string {
	source := e.EnvVar
	if e.FromDefault {
		source += " default"
	}
	return fmt.Sprintf("envloader: %s=%q (field %s): %v", source, e.Value, e.FieldName, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// UnsupportedTypeError é devolvido (dentro de um FieldError) para campos
// cujo tipo não é string, bool, inteiro ou inteiro sem sinal.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("envloader: unsupported field type %s", e.Type)
}
