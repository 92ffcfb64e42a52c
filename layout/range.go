package layout

import (
	"fmt"
	"strings"
)

// Range is a rectangle of cells given by its top-left and bottom-right
// corners, both inclusive.
type Range struct {
	Starts Position
	Ends   Position
}

func NewRange(starts, ends Position) Range {
	return Range{
		Starts: starts,
		Ends:   ends,
	}
}

// EmptyRange returns the range holding no cell.
func EmptyRange() Range {
	return Range{
		Ends: Position{
			Column: -1,
			Line:   -1,
		},
	}
}

// RangeFromString parses "A1:C4" or a single address like "B2".
func RangeFromString(str string) (Range, error) {
	fst, lst, ok := strings.Cut(str, ":")
	starts, err := ParsePosition(fst)
	if err != nil {
		return EmptyRange(), err
	}
	ends := starts
	if ok {
		if ends, err = ParsePosition(lst); err != nil {
			return EmptyRange(), err
		}
	}
	return NewRange(starts, ends).Normalize(), nil
}

func (r Range) Empty() bool {
	return r.Ends.Column < r.Starts.Column || r.Ends.Line < r.Starts.Line
}

func (r Range) Contains(pos Position) bool {
	ok := pos.Line >= r.Starts.Line && pos.Line <= r.Ends.Line
	if !ok {
		return false
	}
	return pos.Column >= r.Starts.Column && pos.Column <= r.Ends.Column
}

// Width is the number of columns of r.
func (r Range) Width() int {
	if r.Empty() {
		return 0
	}
	return r.Ends.Column - r.Starts.Column + 1
}

// Height is the number of lines of r.
func (r Range) Height() int {
	if r.Empty() {
		return 0
	}
	return r.Ends.Line - r.Starts.Line + 1
}

func (r Range) Size() Dimension {
	return Dimension{
		Lines:   r.Height(),
		Columns: r.Width(),
	}
}

func (r Range) Normalize() Range {
	if !r.Starts.Valid() || !r.Ends.Valid() {
		return r
	}
	x := r
	x.Starts.Line = min(r.Starts.Line, r.Ends.Line)
	x.Starts.Column = min(r.Starts.Column, r.Ends.Column)
	x.Ends.Line = max(r.Starts.Line, r.Ends.Line)
	x.Ends.Column = max(r.Starts.Column, r.Ends.Column)
	return x
}

// Union returns the smallest range covering r and other. Empty ranges are
// ignored.
func (r Range) Union(other Range) Range {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x := r
	x.Starts.Line = min(r.Starts.Line, other.Starts.Line)
	x.Starts.Column = min(r.Starts.Column, other.Starts.Column)
	x.Ends.Line = max(r.Ends.Line, other.Ends.Line)
	x.Ends.Column = max(r.Ends.Column, other.Ends.Column)
	return x
}

// Positions lists the cells of r line by line, left to right.
func (r Range) Positions() []Position {
	if r.Empty() {
		return nil
	}
	list := make([]Position, 0, r.Width()*r.Height())
	for line := r.Starts.Line; line <= r.Ends.Line; line++ {
		for col := r.Starts.Column; col <= r.Ends.Column; col++ {
			list = append(list, Position{Column: col, Line: line})
		}
	}
	return list
}

func (r Range) Cells() []string {
	return addresses(r.Positions())
}

// String gives "TL:BR". A single cell range keeps both corners ("A1:A1").
func (r Range) String() string {
	if r.Empty() {
		return ""
	}
	return fmt.Sprintf("%s:%s", r.Starts.Addr(), r.Ends.Addr())
}

// RangeSet is a group of ranges seen as a single block of cells.
type RangeSet struct {
	list []Range
}

func NewRangeSet(list ...Range) RangeSet {
	var set RangeSet
	for _, r := range list {
		if r.Empty() {
			continue
		}
		set.list = append(set.list, r)
	}
	return set
}

func RangeSetFromString(str string) (RangeSet, error) {
	var list []Range
	for _, str := range strings.Split(str, ";") {
		rg, err := RangeFromString(strings.TrimSpace(str))
		if err != nil {
			return RangeSet{}, err
		}
		list = append(list, rg)
	}
	return NewRangeSet(list...), nil
}

func (s RangeSet) Ranges() []Range {
	return append([]Range(nil), s.list...)
}

func (s RangeSet) Bounds() Range {
	bounds := EmptyRange()
	for _, r := range s.list {
		bounds = bounds.Union(r)
	}
	return bounds
}

func (s RangeSet) Contains(pos Position) bool {
	for _, r := range s.list {
		if r.Contains(pos) {
			return true
		}
	}
	return false
}

// Positions lists the cells belonging to at least one range of the set, line
// by line over the bounding box. Cells shared by several ranges appear once.
func (s RangeSet) Positions() []Position {
	var list []Position
	for _, pos := range s.Bounds().Positions() {
		if s.Contains(pos) {
			list = append(list, pos)
		}
	}
	return list
}

func (s RangeSet) Cells() []string {
	return addresses(s.Positions())
}

func (s RangeSet) String() string {
	var parts []string
	for _, r := range s.list {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ";")
}

func addresses(list []Position) []string {
	if len(list) == 0 {
		return nil
	}
	cells := make([]string, 0, len(list))
	for _, pos := range list {
		cells = append(cells, pos.Addr())
	}
	return cells
}
