package render

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/raywall/dyntable/dyndb"
)

const (
	// MaxStringLength é o número máximo de caracteres (runes) exibidos de um atributo S.
	MaxStringLength = 50
	// Placeholder é exibido para qualquer tipo de atributo não suportado.
	Placeholder = "N/A"
)

// Cell é uma célula já formatada: o texto lógico e as cores a aplicar.
type Cell struct {
	Text   string
	Colors text.Colors
}

// String retorna o texto com as sequências de cor aplicadas.
// Cada linha é colorida separadamente: o go-pretty quebra células
// multilinha e uma sequência aberta vazaria pela borda da coluna.
func (c Cell) String() string {
	if len(c.Colors) == 0 {
		return c.Text
	}
	lines := strings.Split(c.Text, "\n")
	for i, line := range lines {
		lines[i] = c.Colors.Sprint(line)
	}
	return strings.Join(lines, "\n")
}

// CellRenderer converte valores de atributo em células.
type CellRenderer struct {
	palette Palette
}

// NewCellRenderer cria um CellRenderer com a paleta informada.
func NewCellRenderer(p Palette) CellRenderer {
	return CellRenderer{palette: p}
}

// Render formata um valor conforme o seu tipo:
// strings são truncadas em MaxStringLength caracteres, números são exibidos
// exatamente como vieram e qualquer outro tipo vira Placeholder.
func (r CellRenderer) Render(v dyndb.AttributeValue) Cell {
	switch v := v.(type) {
	case dyndb.StringValue:
		return Cell{Text: truncate(string(v), MaxStringLength), Colors: r.palette.String}
	case dyndb.NumberValue:
		return Cell{Text: string(v), Colors: r.palette.Number}
	default:
		return Cell{Text: Placeholder, Colors: r.palette.Placeholder}
	}
}

// RenderMissing retorna a célula vazia usada quando o registro não tem a coluna.
func (r CellRenderer) RenderMissing() Cell {
	return Cell{}
}

// truncate corta s em n runes, sem quebrar caracteres multibyte.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
