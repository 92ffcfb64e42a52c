package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/midbel/sheetmap/internal/slx"
)

var ErrSelection = errors.New("invalid selection")

// Key selects columns or rows of a table. A Key is either an Index, a Label
// or Many of them.
type Key interface {
	isKey()
}

// Index selects a column or row by its zero-based position on the sheet.
type Index int

// Label selects columns or rows by name. A label can hold several names
// separated by commas and inclusive spans written "first:last".
type Label string

// Many groups keys. They are resolved in order.
type Many []Key

func (Index) isKey() {}
func (Label) isKey() {}
func (Many) isKey()  {}

func Indices(list ...int) Many {
	keys := make(Many, 0, len(list))
	for _, ix := range list {
		keys = append(keys, Index(ix))
	}
	return keys
}

func Labels(list ...string) Many {
	keys := make(Many, 0, len(list))
	for _, str := range list {
		keys = append(keys, Label(str))
	}
	return keys
}

// Flatten returns the Index and Label keys found in k, nested groups
// included, keeping their order.
func Flatten(k Key) []Key {
	switch k := k.(type) {
	case Index, Label:
		return slx.One(k)
	case Many:
		var all []Key
		for i := range k {
			all = append(all, Flatten(k[i])...)
		}
		return all
	default:
		return nil
	}
}

// Axis turns a single name into a zero-based index.
type Axis interface {
	Lookup(string) (int, error)
}

// Select resolves key against axis. Spans are expanded in ascending order
// whatever the order of their bounds. Duplicates are kept.
func Select(key Key, axis Axis) ([]int, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: no key given", ErrSelection)
	}
	var all []int
	for _, k := range Flatten(key) {
		switch k := k.(type) {
		case Index:
			all = append(all, int(k))
		case Label:
			list, err := selectLabel(string(k), axis)
			if err != nil {
				return nil, err
			}
			all = append(all, list...)
		}
	}
	return all, nil
}

func selectLabel(str string, axis Axis) ([]int, error) {
	var all []int
	for _, part := range strings.Split(str, ",") {
		bounds := strings.Split(part, ":")
		switch len(bounds) {
		case 1:
			ix, err := lookup(bounds[0], axis)
			if err != nil {
				return nil, err
			}
			all = append(all, ix)
		case 2:
			lo, err := lookup(bounds[0], axis)
			if err != nil {
				return nil, err
			}
			hi, err := lookup(bounds[1], axis)
			if err != nil {
				return nil, err
			}
			all = append(all, span(lo, hi)...)
		default:
			return nil, fmt.Errorf("%w: %q has more than one colon", ErrSelection, part)
		}
	}
	return all, nil
}

func lookup(str string, axis Axis) (int, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return 0, fmt.Errorf("%w: empty name", ErrSelection)
	}
	return axis.Lookup(str)
}

func span(lo, hi int) []int {
	if lo > hi {
		lo, hi = hi, lo
	}
	list := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		list = append(list, i)
	}
	return list
}
