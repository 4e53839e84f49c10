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
package dyndb

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// RetrievalError é retornado quando qualquer página do Scan falha.
//
// Nenhuma parte da tabela é devolvida junto com este erro.
type RetrievalError struct {
	// Table é o nome da tabela varrida.
	Table string
	// Page é o número (a partir de 1) da página que falhou.
	Page int
	// Code é o código de erro da API da AWS, quando disponível
	// (ex: "ResourceNotFoundException").
	Code string
	// Err é o erro original.
	Err error
}

// Error retorna uma mensagem com tabela, página e, se houver, o código da AWS.
//
// Exemplo: `dyndb: scan of table "users" failed on page 2 (ProvisionedThroughputExceededException): ...`
func (e *RetrievalError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("dyndb: scan of table %q failed on page %d (%s): %v", e.Table, e.Page, e.Code, e.Err)
	}
	return fmt.Sprintf("dyndb: scan of table %q failed on page %d: %v", e.Table, e.Page, e.Err)
}

// Unwrap retorna o erro original.
func (e *RetrievalError) Unwrap() error {
	return e.Err
}

func newRetrievalError(table string, page int, err error) *RetrievalError {
	re := &RetrievalError{Table: table, Page: page, Err: err}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		re.Code = apiErr.ErrorCode()
	}
	return re
}
