package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador.
//
// Os erros são reportados pelo nome da flag ("--table") ou da variável de
// ambiente ("DYNTABLE_LOG_LEVEL"), que é o que o usuário conhece.
func NewValidator() *ConfigValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("flag"); name != "" {
			return "--" + name
		}
		if name := fld.Tag.Get("env"); name != "" {
			return name
		}
		return fld.Name
	})
	return &ConfigValidator{validate: v}
}

// Validate realiza as validações estruturais (tags) da configuração.
// Retorna um *ConfigurationError para o primeiro campo inválido.
func (cv *ConfigValidator) Validate(cfg *Config) error {
	err := cv.validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &ConfigurationError{Field: "config", Reason: "could not be validated", Err: err}
	}

	var reasons []string
	for _, e := range validationErrors {
		reasons = append(reasons, fmt.Sprintf("%s %s", e.Field(), reason(e)))
	}

	first := validationErrors[0]
	cerr := &ConfigurationError{Field: first.Field(), Reason: reason(first)}
	if len(reasons) > 1 {
		cerr.Err = errors.New("also: " + strings.Join(reasons[1:], "; "))
	}
	return cerr
}

func reason(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return "is required when metrics are enabled"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", e.Param(), e.Value())
	case "gte":
		return fmt.Sprintf("must be >= %s", e.Param())
	default:
		return fmt.Sprintf("failed rule '%s'", e.Tag())
	}
}
