package render

import (
	"sort"
	"strings"

	"github.com/raywall/dyntable/dyndb"
)

// Schema é a lista ordenada de colunas usada tanto no cabeçalho quanto em
// todas as linhas.
type Schema []string

// ResolveSchema deriva o Schema a partir do primeiro registro da tabela,
// com as colunas em ordem lexicográfica estritamente decrescente (por byte).
// Tabela vazia resulta em Schema vazio.
func ResolveSchema(tbl dyndb.Table) Schema {
	if len(tbl) == 0 {
		return nil
	}

	cols := make([]string, 0, len(tbl[0]))
	for name := range tbl[0] {
		cols = append(cols, name)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(cols)))
	return Schema(cols)
}

// Labels retorna os nomes das colunas em maiúsculas, na ordem do Schema.
func (s Schema) Labels() []string {
	labels := make([]string, len(s))
	for i, col := range s {
		labels[i] = strings.ToUpper(col)
	}
	return labels
}
