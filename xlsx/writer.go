// Package xlsx writes tables placed on a sheet into xlsx workbooks and styles
// their regions.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/midbel/sheetmap/flat"
	"github.com/midbel/sheetmap/frame"
	"github.com/midbel/sheetmap/grid"
	"github.com/midbel/sheetmap/layout"
	"github.com/xuri/excelize/v2"
)

var ErrStyle = errors.New("unsupported style")

const defaultSheetName = "Sheet1"

type Writer struct {
	file   *excelize.File
	sheet  string
	styles map[Style]int
}

// NewWriter creates a workbook with a single sheet named sheet.
func NewWriter(sheet string) (*Writer, error) {
	w := Writer{
		file:   excelize.NewFile(),
		sheet:  defaultSheetName,
		styles: make(map[Style]int),
	}
	if sheet != "" && sheet != defaultSheetName {
		if err := w.file.SetSheetName(defaultSheetName, sheet); err != nil {
			w.file.Close()
			return nil, err
		}
		w.sheet = sheet
	}
	return &w, nil
}

func (w *Writer) Sheet() string {
	return w.sheet
}

// Write puts the labels and the values of f in the cells given by m. Values
// of the body looking like numbers are written as numbers.
func (w *Writer) Write(f *frame.Frame, m grid.Mapper) error {
	return flat.Walk(f, m, func(pos layout.Position, str string, region grid.Region) error {
		if str == "" {
			return nil
		}
		var val any = str
		if region == grid.RegionBody {
			val = parseValue(str)
		}
		return w.file.SetCellValue(w.sheet, pos.Addr(), val)
	})
}

// Apply styles the cells of el with its style. An element without style or
// without cell is left untouched.
func (w *Writer) Apply(el grid.Element) error {
	if el.Empty() || el.Style() == nil {
		return nil
	}
	var style Style
	switch s := el.Style().(type) {
	case Style:
		style = s
	case *Style:
		style = *s
	default:
		return fmt.Errorf("%w: %T", ErrStyle, el.Style())
	}
	id, err := w.register(style)
	if err != nil {
		return err
	}
	for _, rg := range el.Ranges() {
		err := w.file.SetCellStyle(w.sheet, rg.Starts.Addr(), rg.Ends.Addr(), id)
		if err != nil {
			return err
		}
	}
	return nil
}

// Highlight styles each of the given cells.
func (w *Writer) Highlight(cells []string, style *Style) error {
	if style == nil {
		return nil
	}
	id, err := w.register(*style)
	if err != nil {
		return err
	}
	for _, c := range cells {
		if err := w.file.SetCellStyle(w.sheet, c, c, id); err != nil {
			return err
		}
	}
	return nil
}

// Value returns the formatted value of the cell at addr.
func (w *Writer) Value(addr string) (string, error) {
	return w.file.GetCellValue(w.sheet, addr)
}

// StyleOf returns the identifier of the style of the cell at addr.
func (w *Writer) StyleOf(addr string) (int, error) {
	return w.file.GetCellStyle(w.sheet, addr)
}

func (w *Writer) Save(file string) error {
	return w.file.SaveAs(file)
}

func (w *Writer) WriteTo(ws io.Writer) (int64, error) {
	return w.file.WriteTo(ws)
}

func (w *Writer) Close() error {
	return w.file.Close()
}

func (w *Writer) register(style Style) (int, error) {
	if id, ok := w.styles[style]; ok {
		return id, nil
	}
	id, err := w.file.NewStyle(style.toExcelize())
	if err != nil {
		return 0, err
	}
	w.styles[style] = id
	return id, nil
}

func parseValue(str string) any {
	if n, err := strconv.ParseInt(str, 10, 64); err == nil && strconv.FormatInt(n, 10) == str {
		return n
	}
	if !strings.ContainsAny(str, ".eE") {
		return str
	}
	if f, err := strconv.ParseFloat(str, 64); err == nil {
		return f
	}
	return str
}
