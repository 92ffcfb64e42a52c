// Package frame holds the tables placed on sheets: their labels, possibly on
// several levels, and their values.
package frame

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/midbel/sheetmap/grid"
	"github.com/midbel/sheetmap/layout"
)

var ErrFrame = errors.New("invalid frame")

// LevelSeparator joins the levels of a multi-level label.
const LevelSeparator = "/"

type Frame struct {
	// label levels of each column, outer level first
	Columns [][]string
	// label levels of each row, outer level first. nil when the table has no
	// index.
	Index [][]string
	Data  [][]string
}

// New creates a frame with single level column labels and without index.
func New(columns []string, data [][]string) (*Frame, error) {
	f := Frame{
		Data: data,
	}
	for _, c := range columns {
		f.Columns = append(f.Columns, []string{c})
	}
	return &f, f.Validate()
}

func (f *Frame) Validate() error {
	depth := f.Depth()
	for i, c := range f.Columns {
		if len(c) != depth.Columns {
			return fmt.Errorf("%w: column %d has %d label levels, expected %d", ErrFrame, i, len(c), depth.Columns)
		}
	}
	for i, r := range f.Data {
		if len(r) != len(f.Columns) {
			return fmt.Errorf("%w: row %d has %d values for %d columns", ErrFrame, i, len(r), len(f.Columns))
		}
	}
	if f.Index == nil {
		return nil
	}
	if len(f.Index) != len(f.Data) {
		return fmt.Errorf("%w: %d index labels for %d rows", ErrFrame, len(f.Index), len(f.Data))
	}
	for i, r := range f.Index {
		if len(r) != depth.Index {
			return fmt.Errorf("%w: row %d has %d label levels, expected %d", ErrFrame, i, len(r), depth.Index)
		}
	}
	return nil
}

func (f *Frame) HasIndex() bool {
	return f.Index != nil
}

// Depth gives the number of label levels. A frame without index or without
// columns still has a depth of one.
func (f *Frame) Depth() grid.Depth {
	depth := grid.SingleDepth
	if len(f.Columns) > 0 && len(f.Columns[0]) > 0 {
		depth.Columns = len(f.Columns[0])
	}
	if len(f.Index) > 0 && len(f.Index[0]) > 0 {
		depth.Index = len(f.Index[0])
	}
	return depth
}

func (f *Frame) Size() layout.Dimension {
	return layout.Dimension{
		Lines:   len(f.Data),
		Columns: len(f.Columns),
	}
}

// Shape returns the shape of the frame placed in A1 with its index kept if
// it has one.
func (f *Frame) Shape() grid.Shape {
	size := f.Size()
	return grid.Shape{
		Lines:     size.Lines,
		Columns:   size.Columns,
		Depth:     f.Depth(),
		KeepIndex: f.HasIndex(),
	}
}

// Map places the frame on a sheet. The size and the depth of shape are
// replaced by the ones of the frame.
func (f *Frame) Map(shape grid.Shape) (*grid.Table, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	base := f.Shape()
	shape.Lines = base.Lines
	shape.Columns = base.Columns
	shape.Depth = base.Depth
	return grid.New(shape, f.ColumnLabels(), f.RowLabels())
}

// ColumnLabels returns the label of each column, levels joined by
// LevelSeparator.
func (f *Frame) ColumnLabels() []string {
	return joinLevels(f.Columns)
}

// RowLabels returns the label of each row, levels joined by LevelSeparator.
// It is nil when the frame has no index.
func (f *Frame) RowLabels() []string {
	if f.Index == nil {
		return nil
	}
	return joinLevels(f.Index)
}

// IndexValues returns the index labels of each row. A frame without index
// gets the position of its rows.
func (f *Frame) IndexValues() [][]string {
	if f.Index != nil {
		return f.Index
	}
	list := make([][]string, len(f.Data))
	for i := range f.Data {
		list[i] = []string{strconv.Itoa(i)}
	}
	return list
}

// CorrectLists rewrites every value written as a list literal with
// CorrectList.
func (f *Frame) CorrectLists() {
	for _, row := range f.Data {
		for i := range row {
			row[i] = CorrectList(row[i])
		}
	}
}

// CorrectList makes a list literal readable in a spreadsheet: missing items
// are removed, an empty list becomes an empty value, a list of one item
// becomes this item and other lists have their items separated by commas.
// Values that are not list literals are returned unchanged.
func CorrectList(str string) string {
	str = strings.TrimSpace(str)
	if len(str) < 2 || str[0] != '[' || str[len(str)-1] != ']' {
		return str
	}
	var items []string
	for _, it := range strings.Split(str[1:len(str)-1], ",") {
		it = strings.Trim(strings.TrimSpace(it), `'"`)
		if isMissing(it) {
			continue
		}
		items = append(items, it)
	}
	return strings.Join(items, ", ")
}

func isMissing(str string) bool {
	switch strings.ToLower(str) {
	case "", "nan", "none", "null":
		return true
	default:
		return false
	}
}

func joinLevels(list [][]string) []string {
	labels := make([]string, 0, len(list))
	for _, levels := range list {
		labels = append(labels, strings.Join(levels, LevelSeparator))
	}
	return labels
}

func (f *Frame) Clone() *Frame {
	clone := func(list [][]string) [][]string {
		if list == nil {
			return nil
		}
		res := make([][]string, len(list))
		for i := range list {
			res[i] = slices.Clone(list[i])
		}
		return res
	}
	return &Frame{
		Columns: clone(f.Columns),
		Index:   clone(f.Index),
		Data:    clone(f.Data),
	}
}
