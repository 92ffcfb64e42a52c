package xlsx

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Style is the look given to the cells of an element. Colors are hexadecimal
// RGB values with or without a leading '#'.
type Style struct {
	Bold  bool
	Color string
	Fill  string
	Align string
}

func (s Style) toExcelize() *excelize.Style {
	var style excelize.Style
	if s.Bold || s.Color != "" {
		style.Font = &excelize.Font{
			Bold:  s.Bold,
			Color: trimColor(s.Color),
		}
	}
	if s.Fill != "" {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Color:   []string{trimColor(s.Fill)},
			Pattern: 1,
		}
	}
	if s.Align != "" {
		style.Alignment = &excelize.Alignment{
			Horizontal: s.Align,
		}
	}
	return &style
}

func trimColor(str string) string {
	return strings.ToUpper(strings.TrimPrefix(str, "#"))
}
