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
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/raywall/dyntable/pkg/metrics"
	"github.com/rs/zerolog"
)

// Nomes das métricas emitidas pelo Scanner.
const (
	MetricPages        = "scan.pages"
	MetricItems        = "scan.items"
	MetricPageDuration = "scan.page_duration_ms"
)

// Scanner lê uma tabela inteira, seguindo o LastEvaluatedKey de cada página
// até que o DynamoDB não retorne mais cursor.
type Scanner struct {
	client         ScanAPI
	logger         zerolog.Logger
	metrics        metrics.Provider
	pageSize       int32
	consistentRead bool
}

// Option configura um Scanner.
type Option func(*Scanner)

// WithLogger define o logger usado para o log de cada página.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Scanner) { s.logger = l }
}

// WithMetrics define o provedor de métricas.
func WithMetrics(p metrics.Provider) Option {
	return func(s *Scanner) {
		if p != nil {
			s.metrics = p
		}
	}
}

// WithPageSize limita o número de itens avaliados por requisição.
// Zero (ou negativo) mantém o limite padrão do DynamoDB.
func WithPageSize(n int32) Option {
	return func(s *Scanner) { s.pageSize = n }
}

// WithConsistentRead ativa leitura fortemente consistente.
func WithConsistentRead(enabled bool) Option {
	return func(s *Scanner) { s.consistentRead = enabled }
}

// NewScanner cria um Scanner sobre o cliente informado.
func NewScanner(client ScanAPI, opts ...Option) *Scanner {
	s := &Scanner{
		client:  client,
		logger:  zerolog.Nop(),
		metrics: metrics.NoopProvider{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScanAll retorna todos os registros da tabela, concatenando as páginas
// na ordem em que chegam.
//
// As páginas são buscadas em sequência. Se qualquer requisição falhar
// (ou o contexto for cancelado entre páginas) o resultado parcial é
// descartado e um *RetrievalError é retornado.
func (s *Scanner) ScanAll(ctx context.Context, tableName string) (Table, error) {
	var table Table
	tags := []string{"table:" + tableName}

	paginator := dynamodb.NewScanPaginator(s.client, s.input(tableName))
	page := 1
	for ; paginator.HasMorePages(); page++ {
		if err := ctx.Err(); err != nil {
			return nil, newRetrievalError(tableName, page, err)
		}

		started := time.Now()
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, newRetrievalError(tableName, page, err)
		}

		for _, item := range out.Items {
			table = append(table, RecordFromItem(item))
		}

		more := len(out.LastEvaluatedKey) > 0
		s.logger.Debug().
			Str("table", tableName).
			Int("page", page).
			Int("items", len(out.Items)).
			Bool("more", more).
			Dur("elapsed", time.Since(started)).
			Msg("scan page received")
		s.observe(page, len(out.Items), time.Since(started), tags)

		// o paginador só para com cursor nil; um mapa vazio também encerra
		if !more {
			break
		}
	}

	s.logger.Info().
		Str("table", tableName).
		Int("pages", page).
		Int("records", len(table)).
		Msg("scan complete")
	return table, nil
}

func (s *Scanner) input(tableName string) *dynamodb.ScanInput {
	input := &dynamodb.ScanInput{
		TableName: aws.String(tableName),
	}
	if s.pageSize > 0 {
		input.Limit = aws.Int32(s.pageSize)
	}
	if s.consistentRead {
		input.ConsistentRead = aws.Bool(true)
	}
	return input
}

// observe envia as métricas da página. Falhas no envio não interrompem o Scan.
func (s *Scanner) observe(page, items int, elapsed time.Duration, tags []string) {
	samples := []struct {
		kind  metrics.MetricType
		name  string
		value float64
	}{
		{metrics.TypeCount, MetricPages, 1},
		{metrics.TypeCount, MetricItems, float64(items)},
		{metrics.TypeHistogram, MetricPageDuration, float64(elapsed.Milliseconds())},
	}
	for _, m := range samples {
		if err := metrics.Emit(s.metrics, m.kind, m.name, m.value, tags); err != nil {
			s.logger.Debug().Err(err).Str("metric", m.name).Int("page", page).Msg("failed to emit scan metric")
		}
	}
}
