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
	"fmt"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// cursorAttribute é o atributo usado pelo MockScanClient como LastEvaluatedKey.
const cursorAttribute = "__cursor"

// MockScanClient é um fake simples da interface ScanAPI.
//
// Se ScanFn estiver definido ele é chamado; caso contrário o mock serve as
// Pages em sequência, devolvendo um cursor em todas menos na última.
// Todas as entradas recebidas ficam em Calls.
type MockScanClient struct {
	ScanFn func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Pages  [][]map[string]types.AttributeValue

	mu    sync.Mutex
	Calls []*dynamodb.ScanInput
}

// NewPagedMock cria um MockScanClient que serve as páginas informadas.
func NewPagedMock(pages ...[]map[string]types.AttributeValue) *MockScanClient {
	return &MockScanClient{Pages: pages}
}

// Scan implementa ScanAPI.
func (m *MockScanClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, params)
	m.mu.Unlock()

	if m.ScanFn != nil {
		return m.ScanFn(ctx, params, optFns...)
	}
	return m.servePage(params)
}

func (m *MockScanClient) servePage(params *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
	idx := 0
	if params.ExclusiveStartKey != nil {
		cur, ok := params.ExclusiveStartKey[cursorAttribute].(*types.AttributeValueMemberN)
		if !ok {
			return nil, fmt.Errorf("mock: unexpected ExclusiveStartKey %v", params.ExclusiveStartKey)
		}
		n, err := strconv.Atoi(cur.Value)
		if err != nil {
			return nil, fmt.Errorf("mock: invalid cursor %q: %w", cur.Value, err)
		}
		idx = n
	}

	if len(m.Pages) == 0 {
		return &dynamodb.ScanOutput{}, nil
	}
	if idx >= len(m.Pages) {
		return nil, fmt.Errorf("mock: cursor %d out of range", idx)
	}

	out := &dynamodb.ScanOutput{
		Items: m.Pages[idx],
		Count: int32(len(m.Pages[idx])),
	}
	if idx < len(m.Pages)-1 {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			cursorAttribute: &types.AttributeValueMemberN{Value: strconv.Itoa(idx + 1)},
		}
	}
	return out, nil
}

// CallCount retorna quantas requisições Scan foram feitas.
func (m *MockScanClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
