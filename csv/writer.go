// Package csv writes tables placed on a sheet as comma separated values.
package csv

import (
	"bufio"
	"io"
	"strings"

	"github.com/midbel/sheetmap/flat"
	"github.com/midbel/sheetmap/frame"
	"github.com/midbel/sheetmap/grid"
)

const (
	quote = '"'
	nl    = '\n'
	cr    = '\r'
	space = ' '
	tab   = '\t'
)

type Writer struct {
	inner *bufio.Writer

	ForceQuote bool
	UseCRLF    bool
	Comma      byte
}

func NewWriter(w io.Writer) *Writer {
	ws := Writer{
		inner: bufio.NewWriter(w),
		Comma: ',',
	}
	return &ws
}

// WriteFrame writes f as placed by m. The lines and columns left empty above
// and on the left of the table are written too so that every value keeps its
// address once the file is opened in a spreadsheet.
func (w *Writer) WriteFrame(f *frame.Frame, m grid.Mapper) error {
	rows, err := flat.Render(f, m)
	if err != nil {
		return err
	}
	return w.WriteAll(rows)
}

func (w *Writer) WriteAll(data [][]string) error {
	for _, d := range data {
		if err := w.Write(d); err != nil {
			return err
		}
	}
	return w.inner.Flush()
}

func (w *Writer) Write(line []string) error {
	var err error
	for i, str := range line {
		if i > 0 {
			if err = w.inner.WriteByte(w.Comma); err != nil {
				return err
			}
		}
		if w.needQuotes(str) {
			err = w.writeQuoted(str)
		} else {
			_, err = w.inner.WriteString(str)
		}
		if err != nil {
			return err
		}
	}
	if w.UseCRLF {
		if err = w.inner.WriteByte(cr); err != nil {
			return err
		}
	}
	return w.inner.WriteByte(nl)
}

func (w *Writer) Flush() error {
	return w.inner.Flush()
}

func (w *Writer) writeQuoted(str string) error {
	if err := w.inner.WriteByte(quote); err != nil {
		return err
	}
	var err error
	for i := 0; i < len(str); i++ {
		switch c := str[i]; c {
		case quote:
			if err = w.inner.WriteByte(c); err == nil {
				err = w.inner.WriteByte(c)
			}
		case cr:
			if w.UseCRLF {
				err = w.inner.WriteByte(c)
			}
		case nl:
			if w.UseCRLF && (i == 0 || str[i-1] != cr) {
				w.inner.WriteByte(cr)
			}
			err = w.inner.WriteByte(c)
		default:
			err = w.inner.WriteByte(c)
		}
		if err != nil {
			return err
		}
	}
	return w.inner.WriteByte(quote)
}

func (w *Writer) needQuotes(str string) bool {
	if w.ForceQuote {
		return true
	}
	if str == "" {
		return false
	}
	if c := str[0]; c == space || c == tab {
		return true
	}
	if c := str[len(str)-1]; c == space || c == tab {
		return true
	}
	return strings.IndexAny(str, string([]byte{w.Comma, quote, cr, nl})) >= 0
}
