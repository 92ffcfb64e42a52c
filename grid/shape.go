package grid

import (
	"errors"
	"fmt"

	"github.com/midbel/sheetmap/layout"
)

var (
	ErrInvalidShape  = errors.New("invalid shape")
	ErrUnresolvedKey = errors.New("unresolved key")
)

// Depth gives the number of label levels of the rows (Index) and of the
// columns (Columns) of a table. A table without multi-level labels has a
// depth of one on both sides.
type Depth struct {
	Index   int
	Columns int
}

var SingleDepth = Depth{
	Index:   1,
	Columns: 1,
}

// Offset is the number of columns and lines left empty on the left and above
// the table.
type Offset struct {
	Columns int
	Lines   int
}

// OffsetFrom gives the offset of a table whose top-left cell is addr.
func OffsetFrom(addr string) (Offset, error) {
	var off Offset
	pos, err := layout.ParsePosition(addr)
	if err != nil {
		return off, err
	}
	off.Columns = pos.Column
	off.Lines = pos.Line
	return off, nil
}

func (o Offset) Addr() string {
	pos := layout.Position{
		Column: o.Columns,
		Line:   o.Lines,
	}
	return pos.Addr()
}

// Fallback tells what the index region is when the index of the table is not
// written on the sheet.
type Fallback int8

const (
	// FallbackFirstColumn makes the index region the first column of the body.
	FallbackFirstColumn Fallback = iota
	// FallbackEmpty makes the index region hold no cell.
	FallbackEmpty
)

func FallbackFromString(str string) (Fallback, error) {
	switch str {
	case "", "first", "first-column":
		return FallbackFirstColumn, nil
	case "empty", "none":
		return FallbackEmpty, nil
	default:
		return FallbackFirstColumn, fmt.Errorf("%s: unknown index fallback", str)
	}
}

func (f Fallback) String() string {
	switch f {
	case FallbackFirstColumn:
		return "first-column"
	case FallbackEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Shape holds everything needed to place a table on a sheet: the number of
// data lines and columns, the depth of the labels, the offset of the table
// and whether its index is written.
type Shape struct {
	Lines     int
	Columns   int
	Depth     Depth
	Offset    Offset
	KeepIndex bool
	Fallback  Fallback
}

func (s Shape) Validate() error {
	if s.Lines < 0 || s.Columns < 0 {
		return fmt.Errorf("%w: negative size (%d lines, %d columns)", ErrInvalidShape, s.Lines, s.Columns)
	}
	if s.Depth.Index < 1 || s.Depth.Columns < 1 {
		return fmt.Errorf("%w: label depth should be at least 1 (index: %d, columns: %d)", ErrInvalidShape, s.Depth.Index, s.Depth.Columns)
	}
	if s.Offset.Columns < 0 || s.Offset.Lines < 0 {
		return fmt.Errorf("%w: negative offset (%d columns, %d lines)", ErrInvalidShape, s.Offset.Columns, s.Offset.Lines)
	}
	switch s.Fallback {
	case FallbackFirstColumn, FallbackEmpty:
	default:
		return fmt.Errorf("%w: unknown index fallback %d", ErrInvalidShape, s.Fallback)
	}
	return nil
}

// indexWidth is the number of sheet columns used by the index.
func (s Shape) indexWidth() int {
	if !s.KeepIndex {
		return 0
	}
	return s.Depth.Index
}

// span is an inclusive interval of sheet columns or lines. It is empty when
// hi < lo.
type span struct {
	lo int
	hi int
}

func makeSpan(lo, count int) span {
	return span{
		lo: lo,
		hi: lo + count - 1,
	}
}

func (s span) contains(ix int) bool {
	return ix >= s.lo && ix <= s.hi
}
