package slx

import (
	"slices"
)

func One[T any](v T) []T {
	return []T{v}
}

// Index returns the position of the first element equal to v or -1.
func Index[T comparable](list []T, v T) int {
	return slices.Index(list, v)
}
