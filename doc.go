// Package dyntable é uma ferramenta de linha de comando para inspecionar
// tabelas do AWS DynamoDB no terminal.
//
// Visão Geral:
// O `dyntable` varre a tabela inteira (seguindo todas as páginas do Scan) e
// imprime os itens como uma tabela alinhada, com cores por tipo de atributo.
//
// Sub-Pacotes Principais:
//
// 1. dyndb:
//   - `Scanner` com paginação completa via `LastEvaluatedKey`.
//   - Modelo `Record` / `AttributeValue` (S, N e demais tipos como `OtherValue`).
//   - `RetrievalError` e mocks para testes.
//
// 2. pkg/render:
//   - `ResolveSchema`: colunas do primeiro registro em ordem decrescente.
//   - `CellRenderer`: truncamento em 50 caracteres, números literais, "N/A".
//   - `TableView`: cabeçalho, linhas e bloco de informações (go-pretty).
//
// 3. envloader, pkg/config, pkg/logger, pkg/observability, pkg/awsconf:
//   - Configuração por flags e variáveis de ambiente, validação, zerolog,
//     métricas DogStatsD e carregamento das credenciais da AWS.
//
// Exemplo de Início Rápido:
//
//	dyntable --table Users --region us-east-1 --info
//
// Uso como biblioteca:
//
//	package main
//
//	import (
//		"context"
//		"log"
//		"os"
//
//		"github.com/aws/aws-sdk-go-v2/config"
//		"github.com/aws/aws-sdk-go-v2/service/dynamodb"
//		"github.com/raywall/dyntable/dyndb"
//		"github.com/raywall/dyntable/pkg/render"
//		"github.com/rs/zerolog"
//	)
//
//	func main() {
//		ctx := context.Background()
//		cfg, err := config.LoadDefaultConfig(ctx)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		table, err := dyndb.NewScanner(dynamodb.NewFromConfig(cfg)).ScanAll(ctx, "Users")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		view := render.NewTableView(render.PlainPalette(), zerolog.Nop())
//		_ = view.Render(os.Stdout, render.ResolveSchema(table), table)
//	}
package dyntable
