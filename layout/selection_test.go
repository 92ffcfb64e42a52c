package layout

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

var errUnknown = errors.New("unknown")

type letterAxis []string

func (a letterAxis) Lookup(str string) (int, error) {
	if ix := slices.Index(a, str); ix >= 0 {
		return ix, nil
	}
	ix, err := ColumnIndex(str)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errUnknown, str)
	}
	return ix, nil
}

func TestSelect(t *testing.T) {
	axis := letterAxis{"Foo", "Bar", "Baz", "Qux"}
	tests := []struct {
		Key  Key
		Want []int
	}{
		{Key: Index(2), Want: []int{2}},
		{Key: Label("A"), Want: []int{0}},
		{Key: Label("Bar"), Want: []int{1}},
		{Key: Label("A:C"), Want: []int{0, 1, 2}},
		{Key: Label("C:A"), Want: []int{0, 1, 2}},
		{Key: Label("Foo:C"), Want: []int{0, 1, 2}},
		{Key: Label("Foo, Baz"), Want: []int{0, 2}},
		{Key: Label(" Qux ,A:B"), Want: []int{3, 0, 1}},
		{Key: Label("A,A"), Want: []int{0, 0}},
		{Key: Labels("A", "C"), Want: []int{0, 2}},
		{Key: Indices(3, 1), Want: []int{3, 1}},
		{Key: Many{Index(1), Label("D"), Many{Label("Foo:Bar")}}, Want: []int{1, 3, 0, 1}},
		{Key: Many{}, Want: nil},
	}
	for _, c := range tests {
		got, err := Select(c.Key, axis)
		if err != nil {
			t.Errorf("%v: unexpected error: %s", c.Key, err)
			continue
		}
		if !slices.Equal(got, c.Want) {
			t.Errorf("%v: indices mismatched! want %v, got %v", c.Key, c.Want, got)
		}
	}
}

func TestSelectInvalid(t *testing.T) {
	axis := letterAxis{"Foo", "Bar"}
	tests := []struct {
		Key  Key
		Want error
	}{
		{Key: nil, Want: ErrSelection},
		{Key: Label(""), Want: ErrSelection},
		{Key: Label("A,,B"), Want: ErrSelection},
		{Key: Label("A:"), Want: ErrSelection},
		{Key: Label("A:B:C"), Want: ErrSelection},
		{Key: Label("foo"), Want: errUnknown},
		{Key: Labels("A", "1"), Want: errUnknown},
	}
	for _, c := range tests {
		got, err := Select(c.Key, axis)
		if !errors.Is(err, c.Want) {
			t.Errorf("%v: expected %v, got %v", c.Key, c.Want, err)
		}
		if got != nil {
			t.Errorf("%v: no indices expected on error, got %v", c.Key, got)
		}
	}
}

func TestFlatten(t *testing.T) {
	key := Many{Index(0), Many{Label("A"), Many{Index(2)}}, Label("B")}
	got := Flatten(key)
	want := []Key{Index(0), Label("A"), Index(2), Label("B")}
	if !slices.Equal(got, want) {
		t.Errorf("flatten mismatched! want %v, got %v", want, got)
	}
}
