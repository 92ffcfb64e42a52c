package grid

import (
	"errors"
	"slices"
	"testing"

	"github.com/midbel/sheetmap/layout"
)

func TestRegions(t *testing.T) {
	tests := []struct {
		Name   string
		Shape  Shape
		Header []string
		Index  []string
		Body   []string
		Table  []string
		Range  string
	}{
		{
			Name: "example",
			Shape: Shape{
				Lines:     2,
				Columns:   2,
				Depth:     SingleDepth,
				KeepIndex: true,
			},
			Header: []string{"B1", "C1"},
			Index:  []string{"A2", "A3"},
			Body:   []string{"B2", "C2", "B3", "C3"},
			Table:  []string{"B1", "C1", "A2", "B2", "C2", "A3", "B3", "C3"},
			Range:  "A1:C3",
		},
		{
			Name: "no-index",
			Shape: Shape{
				Lines:   3,
				Columns: 3,
				Depth:   SingleDepth,
			},
			Header: []string{"A1", "B1", "C1"},
			Index:  []string{"A2", "A3", "A4"},
			Body:   []string{"A2", "B2", "C2", "A3", "B3", "C3", "A4", "B4", "C4"},
			Table:  []string{"A1", "B1", "C1", "A2", "B2", "C2", "A3", "B3", "C3", "A4", "B4", "C4"},
			Range:  "A1:C4",
		},
		{
			Name: "skip-rows",
			Shape: Shape{
				Lines:   3,
				Columns: 3,
				Depth:   SingleDepth,
				Offset:  Offset{Lines: 1},
			},
			Header: []string{"A2", "B2", "C2"},
			Index:  []string{"A3", "A4", "A5"},
			Body:   []string{"A3", "B3", "C3", "A4", "B4", "C4", "A5", "B5", "C5"},
			Table:  []string{"A2", "B2", "C2", "A3", "B3", "C3", "A4", "B4", "C4", "A5", "B5", "C5"},
			Range:  "A2:C5",
		},
		{
			Name: "skip-columns",
			Shape: Shape{
				Lines:   3,
				Columns: 3,
				Depth:   SingleDepth,
				Offset:  Offset{Columns: 1},
			},
			Header: []string{"B1", "C1", "D1"},
			Index:  []string{"B2", "B3", "B4"},
			Body:   []string{"B2", "C2", "D2", "B3", "C3", "D3", "B4", "C4", "D4"},
			Table:  []string{"B1", "C1", "D1", "B2", "C2", "D2", "B3", "C3", "D3", "B4", "C4", "D4"},
			Range:  "B1:D4",
		},
		{
			Name: "multi-level",
			Shape: Shape{
				Lines:   2,
				Columns: 2,
				Depth: Depth{
					Index:   2,
					Columns: 2,
				},
				Offset:    Offset{Columns: 1, Lines: 1},
				KeepIndex: true,
			},
			Header: []string{"D2", "E2", "D3", "E3"},
			Index:  []string{"B4", "C4", "B5", "C5"},
			Body:   []string{"D4", "E4", "D5", "E5"},
			Table:  []string{"D2", "E2", "D3", "E3", "B4", "C4", "D4", "E4", "B5", "C5", "D5", "E5"},
			Range:  "B2:E5",
		},
		{
			Name: "empty-fallback",
			Shape: Shape{
				Lines:    1,
				Columns:  2,
				Depth:    SingleDepth,
				Fallback: FallbackEmpty,
			},
			Header: []string{"A1", "B1"},
			Body:   []string{"A2", "B2"},
			Table:  []string{"A1", "B1", "A2", "B2"},
			Range:  "A1:B2",
		},
		{
			Name: "no-lines",
			Shape: Shape{
				Columns:   2,
				Depth:     SingleDepth,
				KeepIndex: true,
			},
			Header: []string{"B1", "C1"},
			Table:  []string{"B1", "C1"},
			Range:  "B1:C1",
		},
	}
	for _, c := range tests {
		tb, err := New(c.Shape, nil, nil)
		if err != nil {
			t.Errorf("%s: fail to create table: %s", c.Name, err)
			continue
		}
		rs := tb.Regions()
		if got := rs.Header.Cells(); !slices.Equal(got, c.Header) {
			t.Errorf("%s: header mismatched! want %v, got %v", c.Name, c.Header, got)
		}
		if got := rs.Index.Cells(); !slices.Equal(got, c.Index) {
			t.Errorf("%s: index mismatched! want %v, got %v", c.Name, c.Index, got)
		}
		if got := rs.Body.Cells(); !slices.Equal(got, c.Body) {
			t.Errorf("%s: body mismatched! want %v, got %v", c.Name, c.Body, got)
		}
		if got := rs.Table.Cells(); !slices.Equal(got, c.Table) {
			t.Errorf("%s: table mismatched! want %v, got %v", c.Name, c.Table, got)
		}
		if got := rs.Table.Range(); got != c.Range {
			t.Errorf("%s: table range mismatched! want %s, got %s", c.Name, c.Range, got)
		}
	}
}

func TestFirstColumn(t *testing.T) {
	tests := []struct {
		Shape Shape
		Want  []string
	}{
		{
			Shape: Shape{Lines: 3, Columns: 3, Depth: SingleDepth},
			Want:  []string{"A2", "A3", "A4"},
		},
		{
			Shape: Shape{Lines: 3, Columns: 3, Depth: SingleDepth, KeepIndex: true},
			Want:  []string{"B2", "B3", "B4"},
		},
		{
			Shape: Shape{Lines: 3, Columns: 3, Depth: SingleDepth, Offset: Offset{Lines: 1}},
			Want:  []string{"A3", "A4", "A5"},
		},
		{
			Shape: Shape{Lines: 3, Columns: 3, Depth: SingleDepth, Offset: Offset{Columns: 1}},
			Want:  []string{"B2", "B3", "B4"},
		},
	}
	for _, c := range tests {
		tb, err := New(c.Shape, nil, nil)
		if err != nil {
			t.Errorf("fail to create table: %s", err)
			continue
		}
		if got := tb.FirstColumn().Cells(); !slices.Equal(got, c.Want) {
			t.Errorf("first column mismatched! want %v, got %v", c.Want, got)
		}
	}
}

func TestRegionsPartition(t *testing.T) {
	for lines := 0; lines <= 3; lines++ {
		for cols := 0; cols <= 3; cols++ {
			for _, depth := range []Depth{SingleDepth, {Index: 2, Columns: 1}, {Index: 1, Columns: 3}, {Index: 2, Columns: 2}} {
				for _, off := range []Offset{{}, {Columns: 2}, {Lines: 1}, {Columns: 1, Lines: 3}} {
					for _, keep := range []bool{true, false} {
						shape := Shape{
							Lines:     lines,
							Columns:   cols,
							Depth:     depth,
							Offset:    off,
							KeepIndex: keep,
						}
						checkPartition(t, shape)
					}
				}
			}
		}
	}
}

func checkPartition(t *testing.T, shape Shape) {
	t.Helper()
	tb, err := New(shape, nil, nil)
	if err != nil {
		t.Errorf("%+v: fail to create table: %s", shape, err)
		return
	}
	var (
		rs    = tb.Regions()
		seen  = make(map[string]Region)
		parts = []struct {
			Region
			Element
		}{
			{RegionHeader, rs.Header},
			{RegionBody, rs.Body},
		}
	)
	if shape.KeepIndex {
		parts = append(parts, struct {
			Region
			Element
		}{RegionIndex, rs.Index})
	}
	for _, p := range parts {
		for _, pos := range p.Positions() {
			cell := pos.Addr()
			if other, ok := seen[cell]; ok {
				t.Errorf("%+v: %s belongs to %s and %s", shape, cell, other, p.Region)
			}
			seen[cell] = p.Region
			if got := tb.Which(pos); got != p.Region {
				t.Errorf("%+v: %s reported in %s instead of %s", shape, cell, got, p.Region)
			}
		}
	}
	table := rs.Table.Cells()
	if len(table) != len(seen) {
		t.Errorf("%+v: table has %d cells, regions have %d", shape, len(table), len(seen))
	}
	for _, cell := range table {
		if _, ok := seen[cell]; !ok {
			t.Errorf("%+v: %s in table but not in any region", shape, cell)
		}
	}
	want := shape.Lines*shape.Columns + shape.Depth.Columns*shape.Columns
	if shape.KeepIndex {
		want += shape.Depth.Index * shape.Lines
	}
	if len(table) != want {
		t.Errorf("%+v: table should have %d cells, got %d", shape, want, len(table))
	}
	if !shape.KeepIndex && shape.Lines > 0 && shape.Columns > 0 {
		if got, want := rs.Index.Cells(), tb.FirstColumn().Cells(); !slices.Equal(got, want) {
			t.Errorf("%+v: fallback index should be first column! want %v, got %v", shape, want, got)
		}
	}
}

func TestInvalidShape(t *testing.T) {
	tests := []struct {
		Shape   Shape
		Columns []string
		Rows    []string
	}{
		{Shape: Shape{Lines: -1, Columns: 1, Depth: SingleDepth}},
		{Shape: Shape{Lines: 1, Columns: -1, Depth: SingleDepth}},
		{Shape: Shape{Lines: 1, Columns: 1}},
		{Shape: Shape{Lines: 1, Columns: 1, Depth: Depth{Index: 1}}},
		{Shape: Shape{Lines: 1, Columns: 1, Depth: SingleDepth, Offset: Offset{Columns: -1}}},
		{Shape: Shape{Lines: 1, Columns: 1, Depth: SingleDepth, Offset: Offset{Lines: -2}}},
		{Shape: Shape{Lines: 1, Columns: 1, Depth: SingleDepth, Fallback: Fallback(9)}},
		{Shape: Shape{Lines: 1, Columns: 2, Depth: SingleDepth}, Columns: []string{"foo"}},
		{Shape: Shape{Lines: 1, Columns: 1, Depth: SingleDepth}, Rows: []string{"r1", "r2"}},
	}
	for _, c := range tests {
		_, err := New(c.Shape, c.Columns, c.Rows)
		if !errors.Is(err, ErrInvalidShape) {
			t.Errorf("%+v: expected invalid shape error, got %v", c.Shape, err)
		}
	}
}

func TestOffsetFrom(t *testing.T) {
	tests := []struct {
		Addr string
		Want Offset
	}{
		{Addr: "A1", Want: Offset{}},
		{Addr: "C3", Want: Offset{Columns: 2, Lines: 2}},
		{Addr: "AA10", Want: Offset{Columns: 26, Lines: 9}},
	}
	for _, c := range tests {
		got, err := OffsetFrom(c.Addr)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", c.Addr, err)
			continue
		}
		if got != c.Want {
			t.Errorf("%s: offset mismatched! want %+v, got %+v", c.Addr, c.Want, got)
		}
		if got.Addr() != c.Addr {
			t.Errorf("%s: offset address mismatched! got %s", c.Addr, got.Addr())
		}
	}
	if _, err := OffsetFrom("a1"); !errors.Is(err, layout.ErrMalformedAddress) {
		t.Errorf("expected malformed address error, got %v", err)
	}
}

func TestElement(t *testing.T) {
	rg := layout.NewRange(layout.Position{Column: 1, Line: 1}, layout.Position{Column: 1, Line: 1})
	el := NewElement(rg, "bold")
	if got := el.Range(); got != "B2:B2" {
		t.Errorf("single cell range should not collapse! want B2:B2, got %s", got)
	}
	if got := el.Cells(); !slices.Equal(got, []string{"B2"}) {
		t.Errorf("cells mismatched! got %v", got)
	}
	if el.Style() != "bold" {
		t.Errorf("style should be passed through, got %v", el.Style())
	}
	other := el.WithStyle(42)
	if el.Style() != "bold" || other.Style() != 42 {
		t.Errorf("WithStyle should not modify the original element")
	}
	if other.Range() != el.Range() {
		t.Errorf("WithStyle should keep the bounds")
	}

	none := emptyElement()
	if !none.Empty() || none.Range() != "" || none.Cells() != nil {
		t.Errorf("empty element should have no cell and no range, got %q %v", none.Range(), none.Cells())
	}
}
