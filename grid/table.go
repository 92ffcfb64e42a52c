package grid

import (
	"fmt"
	"slices"

	"github.com/midbel/sheetmap/layout"
)

// Region names the part of a table a cell belongs to.
type Region int8

const (
	RegionNone Region = iota
	RegionHeader
	RegionIndex
	RegionBody
)

func (r Region) String() string {
	switch r {
	case RegionHeader:
		return "header"
	case RegionIndex:
		return "index"
	case RegionBody:
		return "body"
	default:
		return "none"
	}
}

type Regions struct {
	Header Element
	Index  Element
	Body   Element
	Table  Element
}

// Mapper gives the cells occupied by a table. Writers only depend on this
// interface.
type Mapper interface {
	Shape() Shape
	Regions() Regions
	Column(layout.Key, bool) ([]string, error)
	Row(layout.Key, bool) ([]string, error)
}

// Table is the placement of a table on a sheet. All its regions are computed
// once by New and never change afterwards, so a Table can be shared between
// goroutines.
type Table struct {
	shape   Shape
	columns []string
	rows    []string

	// sheet columns and lines holding data
	dataColumns span
	dataLines   span

	header Element
	index  Element
	body   Element
	first  Element
	table  Element
}

// New places a table of the given shape. columns and rows are the labels of
// the data columns and lines, multi-level labels being already joined. They
// can be nil when the table has no label to look up.
func New(shape Shape, columns, rows []string) (*Table, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if columns != nil && len(columns) != shape.Columns {
		return nil, fmt.Errorf("%w: %d column labels for %d columns", ErrInvalidShape, len(columns), shape.Columns)
	}
	if rows != nil && len(rows) != shape.Lines {
		return nil, fmt.Errorf("%w: %d row labels for %d lines", ErrInvalidShape, len(rows), shape.Lines)
	}
	t := Table{
		shape:   shape,
		columns: slices.Clone(columns),
		rows:    slices.Clone(rows),
	}
	t.locate()
	return &t, nil
}

func (t *Table) locate() {
	var (
		off   = t.shape.Offset
		depth = t.shape.Depth
	)
	t.dataColumns = makeSpan(off.Columns+t.shape.indexWidth(), t.shape.Columns)
	t.dataLines = makeSpan(off.Lines+depth.Columns, t.shape.Lines)

	header := layout.NewRange(
		layout.Position{Column: t.dataColumns.lo, Line: off.Lines},
		layout.Position{Column: t.dataColumns.hi, Line: off.Lines + depth.Columns - 1},
	)
	t.header = NewElement(empty(header), nil)

	body := layout.NewRange(
		layout.Position{Column: t.dataColumns.lo, Line: t.dataLines.lo},
		layout.Position{Column: t.dataColumns.hi, Line: t.dataLines.hi},
	)
	t.body = NewElement(empty(body), nil)

	first := body
	first.Ends.Column = first.Starts.Column
	t.first = NewElement(empty(first), nil)

	if t.shape.KeepIndex {
		index := layout.NewRange(
			layout.Position{Column: off.Columns, Line: t.dataLines.lo},
			layout.Position{Column: off.Columns + depth.Index - 1, Line: t.dataLines.hi},
		)
		t.index = NewElement(empty(index), nil)
		t.table = mergeElements(t.header, t.index, t.body)
		return
	}
	switch t.shape.Fallback {
	case FallbackEmpty:
		t.index = emptyElement()
	default:
		t.index = t.first
	}
	t.table = mergeElements(t.header, t.body)
}

func (t *Table) Shape() Shape {
	return t.shape
}

func (t *Table) Size() layout.Dimension {
	return layout.Dimension{
		Lines:   t.shape.Lines,
		Columns: t.shape.Columns,
	}
}

func (t *Table) ColumnLabels() []string {
	return slices.Clone(t.columns)
}

func (t *Table) RowLabels() []string {
	return slices.Clone(t.rows)
}

// Header holds the cells of the column labels.
func (t *Table) Header() Element {
	return t.header
}

// Index holds the cells of the row labels. When the index is not kept, it is
// either the first column of the body or empty according to the fallback of
// the shape.
func (t *Table) Index() Element {
	return t.index
}

// Body holds the cells of the data.
func (t *Table) Body() Element {
	return t.body
}

// Table holds the cells of the header, the kept index and the body. Its range
// is the bounding box of these regions.
func (t *Table) Table() Element {
	return t.table
}

// FirstColumn holds the cells of the first data column.
func (t *Table) FirstColumn() Element {
	return t.first
}

func (t *Table) Regions() Regions {
	return Regions{
		Header: t.header,
		Index:  t.index,
		Body:   t.body,
		Table:  t.table,
	}
}

// Which returns the region pos belongs to. The fallback index is never
// reported since its cells belong to the body.
func (t *Table) Which(pos layout.Position) Region {
	switch {
	case t.header.Contains(pos):
		return RegionHeader
	case t.body.Contains(pos):
		return RegionBody
	case t.shape.KeepIndex && t.index.Contains(pos):
		return RegionIndex
	default:
		return RegionNone
	}
}

// ColumnBounds returns the range of the data cells of the sheet column col,
// extended to its header cells when includeHeader is set.
func (t *Table) ColumnBounds(col int, includeHeader bool) (layout.Range, error) {
	if !t.dataColumns.contains(col) {
		return layout.EmptyRange(), t.outOfBounds("column", layout.ColumnName(col), col)
	}
	top := t.dataLines.lo
	if includeHeader {
		top = t.shape.Offset.Lines
	}
	rg := layout.NewRange(
		layout.Position{Column: col, Line: top},
		layout.Position{Column: col, Line: t.dataLines.hi},
	)
	return empty(rg), nil
}

// RowBounds returns the range of the data cells of the sheet line row,
// extended to its index cells when includeIndex is set and the index is kept.
func (t *Table) RowBounds(row int, includeIndex bool) (layout.Range, error) {
	if !t.dataLines.contains(row) {
		return layout.EmptyRange(), t.outOfBounds("row", layout.RowNumber(row), row)
	}
	left := t.dataColumns.lo
	if includeIndex && t.shape.KeepIndex {
		left = t.shape.Offset.Columns
	}
	rg := layout.NewRange(
		layout.Position{Column: left, Line: row},
		layout.Position{Column: t.dataColumns.hi, Line: row},
	)
	return empty(rg), nil
}

func (t *Table) outOfBounds(what, name string, ix int) error {
	if name == "" {
		return fmt.Errorf("%w: %s %d out of table", ErrUnresolvedKey, what, ix)
	}
	return fmt.Errorf("%w: %s %s out of table", ErrUnresolvedKey, what, name)
}

// empty replaces a range without cell by the empty range.
func empty(rg layout.Range) layout.Range {
	if rg.Empty() {
		return layout.EmptyRange()
	}
	return rg
}
