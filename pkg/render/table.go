// Package render transforma uma dyndb.Table em uma grade alinhada para o
// terminal, usando go-pretty.
package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/raywall/dyntable/dyndb"
	"github.com/rs/zerolog"
)

// Grid é a projeção pura da tabela: um cabeçalho e uma linha por registro,
// todas com exatamente len(Header) células.
type Grid struct {
	Header []Cell
	Rows   [][]Cell
}

// TableView monta e imprime a grade principal e o bloco de informações.
type TableView struct {
	palette Palette
	cells   CellRenderer
	logger  zerolog.Logger
}

// NewTableView cria uma TableView com a paleta informada.
func NewTableView(p Palette, log zerolog.Logger) *TableView {
	return &TableView{
		palette: p,
		cells:   NewCellRenderer(p),
		logger:  log,
	}
}

// Build projeta a tabela no Schema. Colunas ausentes em um registro viram
// células vazias; colunas fora do Schema são ignoradas.
func (v *TableView) Build(schema Schema, tbl dyndb.Table) Grid {
	if len(schema) == 0 {
		return Grid{}
	}

	grid := Grid{
		Header: make([]Cell, len(schema)),
		Rows:   make([][]Cell, 0, len(tbl)),
	}
	for i, label := range schema.Labels() {
		grid.Header[i] = Cell{Text: label, Colors: v.palette.Header}
	}

	unsupported := map[string]string{}
	extra := 0
	for _, rec := range tbl {
		row := make([]Cell, len(schema))
		present := 0
		for i, col := range schema {
			val, ok := rec[col]
			if !ok {
				row[i] = v.cells.RenderMissing()
				continue
			}
			present++
			if other, isOther := val.(dyndb.OtherValue); isOther {
				unsupported[col] = other.Kind
			}
			row[i] = v.cells.Render(val)
		}
		if len(rec) > present {
			extra++
		}
		grid.Rows = append(grid.Rows, row)
	}

	for col, kind := range unsupported {
		v.logger.Debug().Str("column", col).Str("type", kind).Msg("unsupported attribute type rendered as placeholder")
	}
	if extra > 0 {
		v.logger.Debug().Int("records", extra).Msg("records with columns outside the schema")
	}
	return grid
}

// Render escreve a grade em w, precedida de uma linha em branco.
// Com Schema vazio nada é escrito.
func (v *TableView) Render(w io.Writer, schema Schema, tbl dyndb.Table) error {
	grid := v.Build(schema, tbl)
	if len(grid.Header) == 0 {
		return nil
	}

	t := newWriter()
	t.AppendHeader(toRow(grid.Header))
	for _, row := range grid.Rows {
		t.AppendRow(toRow(row))
	}
	return write(w, t)
}

func newWriter() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleDefault)
	// Os rótulos já chegam em maiúsculas e possivelmente com cores;
	// reformatar quebraria as sequências de escape.
	t.Style().Format.Header = text.FormatDefault
	return t
}

func toRow(cells []Cell) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c.String()
	}
	return row
}

func write(w io.Writer, t table.Writer) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", t.Render()); err != nil {
		return fmt.Errorf("render: write failed: %w", err)
	}
	return nil
}
