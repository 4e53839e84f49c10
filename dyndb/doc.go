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
// Package dyndb lê tabelas inteiras do AWS DynamoDB (SDK v2) e as converte
// para um modelo simples de registros.
//
// Visão Geral:
// O `Scanner` executa Scans sequenciais, repassando o `LastEvaluatedKey` de
// cada resposta como `ExclusiveStartKey` da próxima, até que o DynamoDB não
// devolva mais cursor. O resultado é uma `Table` com todos os registros, na
// ordem de chegada.
//
// Modelo:
//   - `Record`: mapa de nome de coluna para `AttributeValue`.
//   - `AttributeValue`: união fechada de `StringValue`, `NumberValue` e
//     `OtherValue` (qualquer tipo não suportado).
//
// Erros:
// Qualquer falha de página gera um `*RetrievalError` e nenhuma parte da
// tabela é retornada.
//
// Exemplo:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	scanner := dyndb.NewScanner(dynamodb.NewFromConfig(cfg),
//		dyndb.WithPageSize(100),
//		dyndb.WithLogger(log),
//	)
//
//	table, err := scanner.ScanAll(ctx, "Users")
//	var rerr *dyndb.RetrievalError
//	if errors.As(err, &rerr) { /* ... */ }
//
// Testes:
// `MockScanClient` (e `NewPagedMock`) simula um Scan paginado sem tocar na AWS.
package dyndb
