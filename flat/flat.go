// Package flat lays a frame out on an in-memory sheet, following the regions
// computed for its table.
package flat

import (
	"errors"
	"fmt"
	"iter"

	"github.com/midbel/sheetmap/frame"
	"github.com/midbel/sheetmap/grid"
	"github.com/midbel/sheetmap/layout"
)

var ErrMismatch = errors.New("frame does not match table")

const defaultSheetName = "sheet"

type Cell struct {
	layout.Position
	raw    string
	region grid.Region
}

func (c *Cell) At() layout.Position {
	return c.Position
}

func (c *Cell) Display() string {
	return c.raw
}

func (c *Cell) Region() grid.Region {
	return c.region
}

type Sheet struct {
	name   string
	cells  map[layout.Position]*Cell
	bounds layout.Range
}

func emptySheet() *Sheet {
	return &Sheet{
		name:   defaultSheetName,
		cells:  make(map[layout.Position]*Cell),
		bounds: layout.EmptyRange(),
	}
}

// Place writes the labels and the values of f in the cells given by m.
func Place(f *frame.Frame, m grid.Mapper) (*Sheet, error) {
	s := emptySheet()
	err := Walk(f, m, func(pos layout.Position, str string, region grid.Region) error {
		s.set(pos, str, region)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Render gives the rows of the sheet holding f placed by m. The cells left of
// and above the table are empty.
func Render(f *frame.Frame, m grid.Mapper) ([][]string, error) {
	s, err := Place(f, m)
	if err != nil {
		return nil, err
	}
	var rows [][]string
	for r := range s.Rows() {
		rows = append(rows, r)
	}
	return rows, nil
}

func (s *Sheet) Name() string {
	return s.name
}

func (s *Sheet) Bounds() layout.Range {
	return s.bounds
}

// Cell returns the cell at pos. A position without value gives an empty cell.
func (s *Sheet) Cell(pos layout.Position) *Cell {
	cell, ok := s.cells[pos]
	if !ok {
		cell = &Cell{
			Position: pos,
		}
	}
	return cell
}

// Rows yields the lines of the sheet from its first line to the last line of
// the table, each one from column A to the last column of the table.
func (s *Sheet) Rows() iter.Seq[[]string] {
	it := func(yield func([]string) bool) {
		if s.bounds.Empty() {
			return
		}
		for line := 0; line <= s.bounds.Ends.Line; line++ {
			row := make([]string, s.bounds.Ends.Column+1)
			for col := range row {
				pos := layout.Position{
					Column: col,
					Line:   line,
				}
				if c, ok := s.cells[pos]; ok {
					row[col] = c.raw
				}
			}
			if !yield(row) {
				return
			}
		}
	}
	return it
}

func (s *Sheet) set(pos layout.Position, str string, region grid.Region) {
	s.cells[pos] = &Cell{
		Position: pos,
		raw:      str,
		region:   region,
	}
	s.bounds = s.bounds.Union(layout.NewRange(pos, pos))
}

// Walk calls fn for every cell of the header, of the kept index and of the
// body, with the label or the value that goes in it.
func Walk(f *frame.Frame, m grid.Mapper, fn func(layout.Position, string, grid.Region) error) error {
	var (
		shape = m.Shape()
		rs    = m.Regions()
	)
	if err := check(f, shape); err != nil {
		return err
	}
	header := rs.Header.Bounds()
	for _, pos := range rs.Header.Positions() {
		var (
			col   = pos.Column - header.Starts.Column
			level = pos.Line - header.Starts.Line
		)
		if err := fn(pos, f.Columns[col][level], grid.RegionHeader); err != nil {
			return err
		}
	}
	if shape.KeepIndex {
		var (
			index  = rs.Index.Bounds()
			values = f.IndexValues()
		)
		for _, pos := range rs.Index.Positions() {
			var (
				line  = pos.Line - index.Starts.Line
				level = pos.Column - index.Starts.Column
				str   string
			)
			if level < len(values[line]) {
				str = values[line][level]
			}
			if err := fn(pos, str, grid.RegionIndex); err != nil {
				return err
			}
		}
	}
	body := rs.Body.Bounds()
	for _, pos := range rs.Body.Positions() {
		var (
			line = pos.Line - body.Starts.Line
			col  = pos.Column - body.Starts.Column
		)
		if err := fn(pos, f.Data[line][col], grid.RegionBody); err != nil {
			return err
		}
	}
	return nil
}

func check(f *frame.Frame, shape grid.Shape) error {
	if err := f.Validate(); err != nil {
		return err
	}
	size := f.Size()
	if size.Lines != shape.Lines || size.Columns != shape.Columns {
		return fmt.Errorf("%w: frame has %d lines and %d columns, table has %d lines and %d columns", ErrMismatch, size.Lines, size.Columns, shape.Lines, shape.Columns)
	}
	if depth := f.Depth(); size.Columns > 0 && depth.Columns != shape.Depth.Columns {
		return fmt.Errorf("%w: frame has %d header levels, table has %d", ErrMismatch, depth.Columns, shape.Depth.Columns)
	}
	return nil
}
