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
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/raywall/dyntable/dyndb"
	"github.com/stretchr/testify/assert"
)

func TestFromSDK(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   types.AttributeValue
		want dyndb.AttributeValue
	}{
		{"string", &types.AttributeValueMemberS{Value: "Alice"}, dyndb.StringValue("Alice")},
		{"number keeps text", &types.AttributeValueMemberN{Value: "12345678901234567890.000"}, dyndb.NumberValue("12345678901234567890.000")},
		{"binary", &types.AttributeValueMemberB{Value: []byte{0x1}}, dyndb.OtherValue{Kind: "B"}},
		{"bool", &types.AttributeValueMemberBOOL{Value: true}, dyndb.OtherValue{Kind: "BOOL"}},
		{"list", &types.AttributeValueMemberL{}, dyndb.OtherValue{Kind: "L"}},
		{"map", &types.AttributeValueMemberM{}, dyndb.OtherValue{Kind: "M"}},
		{"null", &types.AttributeValueMemberNULL{Value: true}, dyndb.OtherValue{Kind: "NULL"}},
		{"string set", &types.AttributeValueMemberSS{Value: []string{"a"}}, dyndb.OtherValue{Kind: "SS"}},
		{"number set", &types.AttributeValueMemberNS{Value: []string{"1"}}, dyndb.OtherValue{Kind: "NS"}},
		{"binary set", &types.AttributeValueMemberBS{}, dyndb.OtherValue{Kind: "BS"}},
		{"unknown member", &types.UnknownUnionMember{Tag: "X"}, dyndb.OtherValue{Kind: "unknown"}},
		{"nil", nil, dyndb.OtherValue{Kind: "unknown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dyndb.FromSDK(tt.in))
		})
	}
}

func TestRecordFromItem(t *testing.T) {
	t.Parallel()

	raw := item(t, map[string]any{
		"id":     7,
		"name":   "Bob",
		"active": true,
	})

	rec := dyndb.RecordFromItem(raw)

	assert.Len(t, rec, 3)
	assert.Equal(t, dyndb.NumberValue("7"), rec["id"])
	assert.Equal(t, dyndb.StringValue("Bob"), rec["name"])
	assert.Equal(t, dyndb.OtherValue{Kind: "BOOL"}, rec["active"])
}
