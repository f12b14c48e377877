package singular

import "cmp"

// Equal reports whether two fields are logically equal: both absent, or
// both present with equal values. Retained but cleared allocations do
// not participate.
func Equal[T comparable](a, b Field[T]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || *a.value == *b.value
}

// EqualFunc is Equal with a caller-supplied comparison.
func EqualFunc[T any](a, b Field[T], eq func(T, T) bool) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || eq(*a.value, *b.value)
}

// Compare orders fields with absent before present, then by value.
func Compare[T cmp.Ordered](a, b Field[T]) int {
	switch {
	case !a.present && !b.present:
		return 0
	case !a.present:
		return -1
	case !b.present:
		return 1
	}
	return cmp.Compare(*a.value, *b.value)
}
