package layout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrMalformedAddress = errors.New("malformed address")
	ErrPosition         = errors.New("negative position")
)

const letters = 26

// Position identifies a cell by its zero-based column and line.
type Position struct {
	Column int
	Line   int
}

// ParsePosition converts an address like "B3" into its position. The address
// must be made of uppercase letters followed by a row number without leading
// zero.
func ParsePosition(addr string) (Position, error) {
	var pos Position
	if !IsAddress(addr) {
		return pos, fmt.Errorf("%w: %q", ErrMalformedAddress, addr)
	}
	offset := strings.IndexFunc(addr, isDigit)

	col, err := ColumnIndex(addr[:offset])
	if err != nil {
		return pos, err
	}
	row, err := RowIndex(addr[offset:])
	if err != nil {
		return pos, err
	}
	pos.Column = col
	pos.Line = row
	return pos, nil
}

// FormatAddress returns the address of the cell at the given zero-based
// column and row.
func FormatAddress(col, row int) (string, error) {
	pos := Position{
		Column: col,
		Line:   row,
	}
	if !pos.Valid() {
		return "", fmt.Errorf("%w: (%d, %d)", ErrPosition, col, row)
	}
	return pos.Addr(), nil
}

func (p Position) Valid() bool {
	return p.Column >= 0 && p.Line >= 0
}

func (p Position) Equal(other Position) bool {
	return p.Line == other.Line && p.Column == other.Column
}

// Addr gives the address of p. Positions with a negative coordinate have no
// address and yield an empty string.
func (p Position) Addr() string {
	if !p.Valid() {
		return ""
	}
	return ColumnName(p.Column) + RowNumber(p.Line)
}

func (p Position) String() string {
	return p.Addr()
}

// Shift moves p by the given number of columns and lines.
func (p Position) Shift(cols, lines int) Position {
	p.Column += cols
	p.Line += lines
	return p
}

func IsAddress(addr string) bool {
	size := len(addr)
	if size < 2 {
		return false
	}
	var offset int
	for offset < size && isUpper(rune(addr[offset])) {
		offset++
	}
	if offset == 0 || offset >= size || addr[offset] == '0' {
		return false
	}
	for offset < size {
		if !isDigit(rune(addr[offset])) {
			return false
		}
		offset++
	}
	return true
}

// ColumnIndex decodes a bijective base-26 column name: "A" is 0, "Z" 25 and
// "AA" 26.
func ColumnIndex(str string) (int, error) {
	if str == "" {
		return 0, fmt.Errorf("%w: empty column name", ErrMalformedAddress)
	}
	var index int
	for _, c := range str {
		if !isUpper(c) {
			return 0, fmt.Errorf("%w: %q is not a column name", ErrMalformedAddress, str)
		}
		digit := int(c-'A') + 1
		if index > (math.MaxInt-digit)/letters {
			return 0, fmt.Errorf("%w: column %q out of range", ErrMalformedAddress, str)
		}
		index = index*letters + digit
	}
	return index - 1, nil
}

// ColumnName encodes a zero-based column index: 0 is "A", 25 "Z", 26 "AA"
// and 702 "AAA".
func ColumnName(ix int) string {
	if ix < 0 {
		return ""
	}
	var (
		buf [16]byte
		pos = len(buf)
	)
	for n := ix + 1; n > 0; n = (n - 1) / letters {
		pos--
		buf[pos] = byte('A' + (n-1)%letters)
	}
	return string(buf[pos:])
}

// RowIndex converts a one-based row number into a zero-based index.
func RowIndex(str string) (int, error) {
	if str == "" || str[0] == '0' || strings.IndexFunc(str, notDigit) >= 0 {
		return 0, fmt.Errorf("%w: %q is not a row number", ErrMalformedAddress, str)
	}
	n, err := strconv.Atoi(str)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q is not a row number", ErrMalformedAddress, str)
	}
	return n - 1, nil
}

// RowNumber gives the one-based row number of a zero-based index.
func RowNumber(ix int) string {
	if ix < 0 {
		return ""
	}
	return strconv.Itoa(ix + 1)
}

func isUpper(c rune) bool {
	return c >= 'A' && c <= 'Z'
}

func notDigit(c rune) bool {
	return !isDigit(c)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
