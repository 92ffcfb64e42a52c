package grid

import (
	"github.com/midbel/sheetmap/layout"
)

// Element is a part of a table placed on a sheet. It carries an optional
// style handle that only the writers know how to interpret.
type Element struct {
	set    layout.RangeSet
	bounds layout.Range
	style  any
}

func NewElement(rg layout.Range, style any) Element {
	return Element{
		set:    layout.NewRangeSet(rg),
		bounds: rg,
		style:  style,
	}
}

func emptyElement() Element {
	return NewElement(layout.EmptyRange(), nil)
}

func mergeElements(list ...Element) Element {
	var parts []layout.Range
	for _, e := range list {
		parts = append(parts, e.set.Ranges()...)
	}
	set := layout.NewRangeSet(parts...)
	return Element{
		set:    set,
		bounds: set.Bounds(),
	}
}

// Bounds is the smallest range covering the cells of e.
func (e Element) Bounds() layout.Range {
	return e.bounds
}

func (e Element) Empty() bool {
	return e.bounds.Empty()
}

func (e Element) Contains(pos layout.Position) bool {
	return e.set.Contains(pos)
}

// Cells lists the addresses of the cells of e line by line.
func (e Element) Cells() []string {
	return e.set.Cells()
}

// Ranges lists the parts of e.
func (e Element) Ranges() []layout.Range {
	return e.set.Ranges()
}

func (e Element) Positions() []layout.Position {
	return e.set.Positions()
}

// Range gives the "TL:BR" notation of the bounds of e. It is empty when e has
// no cell.
func (e Element) Range() string {
	return e.bounds.String()
}

func (e Element) Style() any {
	return e.style
}

func (e Element) WithStyle(style any) Element {
	e.style = style
	return e
}

func (e Element) String() string {
	return e.Range()
}
