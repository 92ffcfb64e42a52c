package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"charm.land/lipgloss/v2"
	"github.com/midbel/cli"
	"github.com/midbel/sheetmap/flat"
	"github.com/midbel/sheetmap/grid"
	"github.com/midbel/sheetmap/layout"
)

const linoWidth = 4

var (
	coordStyle  = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFFF"))
	indexStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF5F"))
	bodyStyle   = lipgloss.NewStyle()
	markStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#FFFF00"))
)

type PreviewCommand struct {
	tableOptions
	Column string
	Row    string
	Width  int
}

func (c PreviewCommand) Run(args []string) error {
	set := cli.NewFlagSet("preview")
	c.Register(set)
	set.StringVar(&c.Column, "k", "", "highlight the selected columns")
	set.StringVar(&c.Row, "r", "", "highlight the selected rows")
	set.IntVar(&c.Width, "w", 10, "column width")
	if err := set.Parse(args); err != nil {
		return err
	}
	src, err := c.Open(set.Arg(0))
	if err != nil {
		return err
	}
	sheet, err := flat.Place(src.Frame, src.Table)
	if err != nil {
		return err
	}
	marked := make(map[string]bool)
	if c.Column != "" {
		cells, err := src.Table.Column(layout.Label(c.Column), true)
		if err != nil {
			return err
		}
		for _, cell := range cells {
			marked[cell] = true
		}
	}
	if c.Row != "" {
		cells, err := src.Table.Row(layout.Label(c.Row), true)
		if err != nil {
			return err
		}
		for _, cell := range cells {
			marked[cell] = true
		}
	}
	if c.Width <= 0 {
		c.Width = 10
	}
	fmt.Fprint(os.Stdout, renderPreview(sheet, marked, c.Width))
	return nil
}

func renderPreview(sheet *flat.Sheet, marked map[string]bool, width int) string {
	bd := sheet.Bounds()
	if bd.Empty() {
		return ""
	}
	var buf strings.Builder
	buf.WriteString(coordStyle.Render(pad("", linoWidth)))
	for col := 0; col <= bd.Ends.Column; col++ {
		buf.WriteByte(' ')
		buf.WriteString(coordStyle.Render(pad(layout.ColumnName(col), width)))
	}
	buf.WriteByte('\n')
	for line := 0; line <= bd.Ends.Line; line++ {
		buf.WriteString(coordStyle.Render(pad(layout.RowNumber(line), linoWidth)))
		for col := 0; col <= bd.Ends.Column; col++ {
			var (
				pos   = layout.Position{Column: col, Line: line}
				cell  = sheet.Cell(pos)
				style = regionStyle(cell.Region())
			)
			if marked[pos.Addr()] {
				style = markStyle
			}
			buf.WriteByte(' ')
			buf.WriteString(style.Render(pad(cell.Display(), width)))
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}

func regionStyle(region grid.Region) lipgloss.Style {
	switch region {
	case grid.RegionHeader:
		return headerStyle
	case grid.RegionIndex:
		return indexStyle
	case grid.RegionBody:
		return bodyStyle
	default:
		return coordStyle
	}
}

func pad(str string, width int) string {
	if n := utf8.RuneCountInString(str); n > width {
		runes := []rune(str)
		return string(runes[:width-1]) + "…"
	} else if n < width {
		return str + strings.Repeat(" ", width-n)
	}
	return str
}
