package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
)

type Options struct {
	// number of records holding the column labels
	HeaderDepth int
	// number of leading fields holding the row labels
	IndexDepth int
	Comma      rune
	// rewrite list literals found in values with CorrectList
	CorrectLists bool
}

func DefaultOptions() Options {
	return Options{
		HeaderDepth: 1,
		Comma:       ',',
	}
}

func (o Options) validate() error {
	if o.HeaderDepth <= 0 {
		return fmt.Errorf("%w: header depth should be at least 1", ErrFrame)
	}
	if o.IndexDepth < 0 {
		return fmt.Errorf("%w: index depth should not be negative", ErrFrame)
	}
	return nil
}

func ReadFile(file string, opts Options) (*Frame, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ReadCSV(r, opts)
}

// ReadCSV reads a table from r. The first HeaderDepth records give the column
// labels, one level per record. The first IndexDepth fields of the following
// records give the row labels. An empty label inherits the label of the
// previous column at the same level, except at the innermost level.
func ReadCSV(r io.Reader, opts Options) (*Frame, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	rs := csv.NewReader(r)
	if opts.Comma != 0 {
		rs.Comma = opts.Comma
	}
	var (
		f       Frame
		headers [][]string
	)
	for i := 0; ; i++ {
		row, err := rs.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) < opts.IndexDepth {
			return nil, fmt.Errorf("%w: record %d has less fields than index levels", ErrFrame, i+1)
		}
		if i < opts.HeaderDepth {
			headers = append(headers, row[opts.IndexDepth:])
			continue
		}
		if opts.IndexDepth > 0 {
			f.Index = append(f.Index, slices.Clone(row[:opts.IndexDepth]))
		}
		f.Data = append(f.Data, row[opts.IndexDepth:])
	}
	if len(headers) < opts.HeaderDepth {
		return nil, fmt.Errorf("%w: %d header records expected, got %d", ErrFrame, opts.HeaderDepth, len(headers))
	}
	f.Columns = transpose(headers)
	if opts.IndexDepth > 0 && f.Index == nil {
		f.Index = [][]string{}
	}
	if opts.CorrectLists {
		f.CorrectLists()
	}
	return &f, f.Validate()
}

// transpose turns records of labels (one per level) into the label levels of
// each column.
func transpose(headers [][]string) [][]string {
	if len(headers) == 0 {
		return nil
	}
	columns := make([][]string, len(headers[0]))
	for i := range columns {
		columns[i] = make([]string, len(headers))
	}
	for level, row := range headers {
		inner := level == len(headers)-1
		for i, label := range row {
			if label == "" && !inner && i > 0 {
				label = columns[i-1][level]
			}
			columns[i][level] = label
		}
	}
	return columns
}
