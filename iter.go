package singular

import "iter"

// Values yields the contained value, if present. Every call returns a
// fresh sequence.
func (f Field[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if f.present {
			yield(*f.value)
		}
	}
}

// Refs yields a pointer to the contained value, if present. Mutations
// through the pointer are visible to the field.
func (f *Field[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if f.present {
			yield(f.value)
		}
	}
}
