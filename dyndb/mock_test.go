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
package dyndb_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDynamoClient é um mock testify para a interface ScanAPI
type MockDynamoClient struct {
	mock.Mock
}

func (m *MockDynamoClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.ScanOutput), args.Error(1)
}

// recordingProvider guarda as métricas recebidas
type recordingProvider struct {
	counts     map[string]float64
	histograms map[string][]float64
	tags       []string
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{
		counts:     map[string]float64{},
		histograms: map[string][]float64{},
	}
}

func (r *recordingProvider) Count(name string, value float64, tags []string) error {
	r.counts[name] += value
	r.tags = tags
	return nil
}

func (r *recordingProvider) Gauge(name string, value float64, tags []string) error {
	return nil
}

func (r *recordingProvider) Histogram(name string, value float64, tags []string) error {
	r.histograms[name] = append(r.histograms[name], value)
	return nil
}

// item monta um item do DynamoDB a partir de valores Go
func item(t *testing.T, v map[string]any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return av
}

// page monta uma página com n itens numerados a partir de start
func page(t *testing.T, start, n int) []map[string]types.AttributeValue {
	t.Helper()
	items := make([]map[string]types.AttributeValue, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, item(t, map[string]any{"id": start + i}))
	}
	return items
}
