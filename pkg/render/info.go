package render

import "io"

// Info são os metadados exibidos com --info.
type Info struct {
	ClientVersion string
	Region        string
	Table         string
}

var infoLabels = [3]string{"DynamoDB Client Version", "Region", "Table Name"}

// InfoGrid retorna o bloco fixo de duas linhas: rótulos e valores.
func (v *TableView) InfoGrid(info Info) [2][3]Cell {
	values := [3]string{info.ClientVersion, info.Region, info.Table}

	var grid [2][3]Cell
	for i := range infoLabels {
		grid[0][i] = Cell{Text: infoLabels[i], Colors: v.palette.Info[i]}
		grid[1][i] = Cell{Text: values[i], Colors: v.palette.Info[i]}
	}
	return grid
}

// RenderInfo escreve o bloco de informações em w, independente do Schema.
func (v *TableView) RenderInfo(w io.Writer, info Info) error {
	grid := v.InfoGrid(info)

	t := newWriter()
	for _, row := range grid {
		t.AppendRow(toRow(row[:]))
	}
	return write(w, t)
}
