// Package singular provides an optional-value container for fields that
// are repeatedly cleared and refilled. Unlike a plain optional, clearing
// a Field keeps the backing allocation around so the next fill can reset
// it in place instead of allocating again.
package singular

import (
	"fmt"
	"unsafe"
)

// Field holds zero or one value of T.
//
// Logical presence is tracked separately from storage: after Clear the
// allocation is retained so Set and SetDefault can reuse it. The zero
// value is an absent field.
type Field[T any] struct {
	value   *T
	present bool
}

// Some returns a field holding v.
func Some[T any](v T) Field[T] {
	return Field[T]{value: &v, present: true}
}

// None returns an absent field.
func None[T any]() Field[T] {
	return Field[T]{}
}

// FromOption builds a field from a comma-ok pair.
func FromOption[T any](v T, ok bool) Field[T] {
	if ok {
		return Some(v)
	}
	return None[T]()
}

// FromPtr adopts p as the field's allocation. A nil p yields an absent
// field.
func FromPtr[T any](p *T) Field[T] {
	if p == nil {
		return None[T]()
	}
	return Field[T]{value: p, present: true}
}

// IsPresent reports whether the field logically holds a value.
func (f Field[T]) IsPresent() bool {
	return f.present
}

// IsAbsent reports whether the field is logically empty.
func (f Field[T]) IsAbsent() bool {
	return !f.present
}

// Get returns the contained value and whether one is present.
func (f Field[T]) Get() (T, bool) {
	if !f.present {
		var zero T
		return zero, false
	}
	return *f.value, true
}

// MustGet returns the contained value, panicking if the field is absent.
func (f Field[T]) MustGet() T {
	if !f.present {
		panic("singular: field is absent")
	}
	return *f.value
}

// Ptr returns a pointer to the contained value, or nil if absent.
// Writes through the pointer are visible to the field.
func (f Field[T]) Ptr() *T {
	if !f.present {
		return nil
	}
	return f.value
}

// MustPtr is Ptr but panics if the field is absent.
func (f Field[T]) MustPtr() *T {
	if !f.present {
		panic("singular: field is absent")
	}
	return f.value
}

// GetOr returns the contained value, or def if absent.
func (f Field[T]) GetOr(def T) T {
	if f.present {
		return *f.value
	}
	return def
}

// GetOrElse returns the contained value. fn computes the fallback and
// runs only when the field is absent.
func (f Field[T]) GetOrElse(fn func() T) T {
	if f.present {
		return *f.value
	}
	return fn()
}

// Slice returns a view of length 0 or 1 over the contained value. The
// element aliases the field's storage, so writes through the slice
// mutate the field.
func (f Field[T]) Slice() []T {
	if !f.present {
		return nil
	}
	return unsafe.Slice(f.value, 1)
}

// Set stores v, reusing the retained allocation if one exists.
func (f *Field[T]) Set(v T) {
	if f.value != nil {
		*f.value = v
	} else {
		f.value = &v
	}
	f.present = true
}

// Clear marks the field absent. The allocation is retained so a later
// Set or SetDefault can refill it without allocating.
func (f *Field[T]) Clear() {
	f.present = false
}

// Take moves the value out of the field. The field is left absent with
// no retained allocation; ownership passes to the caller.
func (f *Field[T]) Take() (T, bool) {
	if !f.present {
		var zero T
		return zero, false
	}
	v := f.value
	f.value = nil
	f.present = false
	return *v, true
}

// Clone returns a field holding a copy of the logical value. A retained
// but cleared allocation is not carried over. The copy is shallow.
func (f Field[T]) Clone() Field[T] {
	if f.present {
		return Some(*f.value)
	}
	return None[T]()
}

// Map transforms the contained value, if any. fn runs at most once and
// never on an absent field.
func Map[T, U any](f Field[T], fn func(T) U) Field[U] {
	if v, ok := f.Get(); ok {
		return Some(fn(v))
	}
	return None[U]()
}

// String renders the logical state as Some(v) or None.
func (f Field[T]) String() string {
	if f.present {
		return fmt.Sprintf("Some(%v)", *f.value)
	}
	return "None"
}
