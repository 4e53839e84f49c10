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
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ScanAPI é a interface do SDK consumida pelo paginador de Scan.
//
// *dynamodb.Client satisfaz esta interface; nos testes ela é substituída
// por um mock.
type ScanAPI = dynamodb.ScanAPIClient

// AttributeValue é a união fechada dos tipos de atributo tratados pela
// renderização: StringValue, NumberValue e OtherValue.
type AttributeValue interface {
	isAttributeValue()
}

// StringValue representa um atributo do tipo S.
type StringValue string

// NumberValue representa um atributo do tipo N, mantido no formato textual
// original para não perder precisão.
type NumberValue string

// OtherValue cobre qualquer tipo não suportado (B, BOOL, L, M, NULL, SS, NS, BS).
// Kind guarda o nome do tipo apenas para diagnóstico.
type OtherValue struct {
	Kind string
}

func (StringValue) isAttributeValue() {}
func (NumberValue) isAttributeValue() {}
func (OtherValue) isAttributeValue()  {}

// Record é uma linha retornada pelo Scan: nome da coluna -> valor.
type Record map[string]AttributeValue

// Table é a sequência completa de registros, na ordem de chegada das páginas.
type Table []Record

// FromSDK converte um types.AttributeValue do SDK para o modelo local.
// Tipos desconhecidos ou futuros caem em OtherValue.
func FromSDK(av types.AttributeValue) AttributeValue {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return StringValue(v.Value)
	case *types.AttributeValueMemberN:
		return NumberValue(v.Value)
	case *types.AttributeValueMemberB:
		return OtherValue{Kind: "B"}
	case *types.AttributeValueMemberBOOL:
		return OtherValue{Kind: "BOOL"}
	case *types.AttributeValueMemberL:
		return OtherValue{Kind: "L"}
	case *types.AttributeValueMemberM:
		return OtherValue{Kind: "M"}
	case *types.AttributeValueMemberNULL:
		return OtherValue{Kind: "NULL"}
	case *types.AttributeValueMemberSS:
		return OtherValue{Kind: "SS"}
	case *types.AttributeValueMemberNS:
		return OtherValue{Kind: "NS"}
	case *types.AttributeValueMemberBS:
		return OtherValue{Kind: "BS"}
	default:
		return OtherValue{Kind: "unknown"}
	}
}

// RecordFromItem converte um item bruto do DynamoDB em Record.
func RecordFromItem(item map[string]types.AttributeValue) Record {
	rec := make(Record, len(item))
	for name, av := range item {
		rec[name] = FromSDK(av)
	}
	return rec
}
