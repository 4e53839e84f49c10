package render

import "github.com/jedib0t/go-pretty/v6/text"

// Palette mapeia cada papel semântico de célula para suas cores.
// É passada explicitamente para a TableView, o que permite renderizar sem
// terminal (PlainPalette) nos testes e quando a saída é redirecionada.
type Palette struct {
	Header      text.Colors
	String      text.Colors
	Number      text.Colors
	Placeholder text.Colors
	// Info são as cores das três colunas do bloco de informações.
	Info [3]text.Colors
}

// DefaultPalette é a paleta usada em terminais.
func DefaultPalette() Palette {
	return Palette{
		Header: text.Colors{text.BlinkSlow, text.FgHiMagenta},
		String: text.Colors{text.FgBlue},
		Number: text.Colors{text.FgGreen},
		Info: [3]text.Colors{
			{text.FgRed},
			{text.FgYellow},
			{text.FgGreen},
		},
	}
}

// PlainPalette não aplica nenhuma cor.
func PlainPalette() Palette {
	return Palette{}
}
