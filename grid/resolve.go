package grid

import (
	"errors"
	"fmt"

	"github.com/midbel/sheetmap/internal/slx"
	"github.com/midbel/sheetmap/layout"
)

// columnAxis looks up a name among the column labels first, then as a
// spreadsheet column letter. A column labelled "A" thus hides the sheet
// column A.
type columnAxis struct {
	*Table
}

func (a columnAxis) Lookup(str string) (int, error) {
	if ix := slx.Index(a.columns, str); ix >= 0 {
		return a.dataColumns.lo + ix, nil
	}
	ix, err := layout.ColumnIndex(str)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is neither a column label nor a column letter", ErrUnresolvedKey, str)
	}
	if !a.dataColumns.contains(ix) {
		return 0, a.outOfBounds("column", str, ix)
	}
	return ix, nil
}

// rowAxis looks up a name among the row labels first, then as a one-based
// spreadsheet row number.
type rowAxis struct {
	*Table
}

func (a rowAxis) Lookup(str string) (int, error) {
	if ix := slx.Index(a.rows, str); ix >= 0 {
		return a.dataLines.lo + ix, nil
	}
	ix, err := layout.RowIndex(str)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is neither a row label nor a row number", ErrUnresolvedKey, str)
	}
	if !a.dataLines.contains(ix) {
		return 0, a.outOfBounds("row", str, ix)
	}
	return ix, nil
}

// ColumnIndices resolves key to zero-based sheet column indices, in the order
// of the key.
func (t *Table) ColumnIndices(key layout.Key) ([]int, error) {
	list, err := layout.Select(key, columnAxis{t})
	if err != nil {
		return nil, unresolved(err)
	}
	for _, ix := range list {
		if !t.dataColumns.contains(ix) {
			return nil, t.outOfBounds("column", layout.ColumnName(ix), ix)
		}
	}
	return list, nil
}

// RowIndices resolves key to zero-based sheet line indices, in the order of
// the key.
func (t *Table) RowIndices(key layout.Key) ([]int, error) {
	list, err := layout.Select(key, rowAxis{t})
	if err != nil {
		return nil, unresolved(err)
	}
	for _, ix := range list {
		if !t.dataLines.contains(ix) {
			return nil, t.outOfBounds("row", layout.RowNumber(ix), ix)
		}
	}
	return list, nil
}

// Column returns the cells of the columns selected by key, column after
// column. Each column starts with its header cells when includeHeader is set.
func (t *Table) Column(key layout.Key, includeHeader bool) ([]string, error) {
	list, err := t.ColumnIndices(key)
	if err != nil {
		return nil, err
	}
	var cells []string
	for _, ix := range list {
		rg, err := t.ColumnBounds(ix, includeHeader)
		if err != nil {
			return nil, err
		}
		cells = append(cells, rg.Cells()...)
	}
	return cells, nil
}

// Row returns the cells of the rows selected by key, row after row. Each row
// starts with its index cells when includeIndex is set and the index is kept.
func (t *Table) Row(key layout.Key, includeIndex bool) ([]string, error) {
	list, err := t.RowIndices(key)
	if err != nil {
		return nil, err
	}
	var cells []string
	for _, ix := range list {
		rg, err := t.RowBounds(ix, includeIndex)
		if err != nil {
			return nil, err
		}
		cells = append(cells, rg.Cells()...)
	}
	return cells, nil
}

func unresolved(err error) error {
	if errors.Is(err, ErrUnresolvedKey) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnresolvedKey, err)
}
