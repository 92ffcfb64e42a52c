package xlsx

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/midbel/sheetmap/frame"
	"github.com/midbel/sheetmap/grid"
	"github.com/midbel/sheetmap/layout"
)

func sampleTable(t *testing.T) (*frame.Frame, *grid.Table) {
	t.Helper()
	f := &frame.Frame{
		Columns: [][]string{{"name"}, {"count"}},
		Index:   [][]string{{"r1"}, {"r2"}},
		Data: [][]string{
			{"foo", "10"},
			{"bar", "2.5"},
		},
	}
	off, err := grid.OffsetFrom("B2")
	require.NoError(t, err)
	tb, err := f.Map(grid.Shape{Offset: off, KeepIndex: true})
	require.NoError(t, err)
	return f, tb
}

func TestAddressesMatchExcelize(t *testing.T) {
	for col := 0; col < 800; col += 7 {
		for line := 0; line < 50; line += 3 {
			want, err := excelize.CoordinatesToCellName(col+1, line+1)
			require.NoError(t, err)
			got, err := layout.FormatAddress(col, line)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

func TestWrite(t *testing.T) {
	f, tb := sampleTable(t)

	w, err := NewWriter("data")
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, "data", w.Sheet())

	require.NoError(t, w.Write(f, tb))

	cells := map[string]string{
		"C2": "name",
		"D2": "count",
		"B3": "r1",
		"B4": "r2",
		"C3": "foo",
		"D3": "10",
		"D4": "2.5",
		"A1": "",
		"B2": "",
	}
	for addr, want := range cells {
		got, err := w.Value(addr)
		require.NoError(t, err)
		assert.Equal(t, want, got, "cell %s", addr)
	}
}

func TestApply(t *testing.T) {
	f, tb := sampleTable(t)

	w, err := NewWriter("")
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, defaultSheetName, w.Sheet())
	require.NoError(t, w.Write(f, tb))

	var (
		rs     = tb.Regions()
		header = Style{Bold: true, Fill: "#DDEBF7"}
		body   = &Style{Align: "center"}
	)
	require.NoError(t, w.Apply(rs.Header.WithStyle(header)))
	require.NoError(t, w.Apply(rs.Body.WithStyle(body)))
	require.NoError(t, w.Apply(rs.Index))

	hid, err := w.StyleOf("C2")
	require.NoError(t, err)
	assert.NotZero(t, hid)
	other, err := w.StyleOf("D2")
	require.NoError(t, err)
	assert.Equal(t, hid, other)

	bid, err := w.StyleOf("D4")
	require.NoError(t, err)
	assert.NotZero(t, bid)
	assert.NotEqual(t, hid, bid)

	iid, err := w.StyleOf("B3")
	require.NoError(t, err)
	assert.Zero(t, iid)

	err = w.Apply(rs.Body.WithStyle("bold"))
	assert.ErrorIs(t, err, ErrStyle)
}

func TestHighlight(t *testing.T) {
	f, tb := sampleTable(t)

	w, err := NewWriter("data")
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Write(f, tb))

	cells, err := tb.Column(layout.Label("count"), true)
	require.NoError(t, err)
	require.Equal(t, []string{"D2", "D3", "D4"}, cells)

	require.NoError(t, w.Highlight(cells, &Style{Fill: "FFFF00"}))
	require.NoError(t, w.Highlight(cells, nil))

	for _, c := range cells {
		id, err := w.StyleOf(c)
		require.NoError(t, err)
		assert.NotZero(t, id, "cell %s", c)
	}
	id, err := w.StyleOf("C3")
	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestSaveAndReopen(t *testing.T) {
	f, tb := sampleTable(t)

	w, err := NewWriter("data")
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Write(f, tb))

	var buf bytes.Buffer
	_, err = w.WriteTo(&buf)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()
	got, err := wb.GetCellValue("data", "C4")
	require.NoError(t, err)
	assert.Equal(t, "bar", got)

	file := filepath.Join(t.TempDir(), "table.xlsx")
	require.NoError(t, w.Save(file))
	wb, err = excelize.OpenFile(file)
	require.NoError(t, err)
	defer wb.Close()
	got, err = wb.GetCellValue("data", "C2")
	require.NoError(t, err)
	assert.Equal(t, "name", got)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		Input string
		Want  any
	}{
		{"10", int64(10)},
		{"-3", int64(-3)},
		{"2.5", 2.5},
		{"1e3", 1000.0},
		{"007", "007"},
		{"nan", "nan"},
		{"inf", "inf"},
		{"1.2.3", "1.2.3"},
		{"foo", "foo"},
	}
	for _, c := range tests {
		assert.Equal(t, c.Want, parseValue(c.Input), "input %q", c.Input)
	}
}
