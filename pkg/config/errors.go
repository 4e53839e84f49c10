package config

import "fmt"

// ConfigurationError indica uma configuração inválida ou incompleta,
// detectada antes de qualquer chamada ao DynamoDB.
type ConfigurationError struct {
	// Field é a flag, variável de ambiente ou recurso com problema (ex: "--table").
	Field string
	// Reason descreve o problema (ex: "is required").
	Reason string
	// Err é o erro original, quando existir.
	Err error
}

// Error retorna uma mensagem no formato "config: <campo> <motivo>[: <erro>]".
func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: %s %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("config: %s %s", e.Field, e.Reason)
}

// Unwrap retorna o erro original.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
