package singular

// Resettable restores a value to its default state in place without
// releasing its storage. Protobuf-style generated messages satisfy it
// through their Reset method.
type Resettable interface {
	Reset()
}

// Resetter constrains a pointer type whose pointee can be reset in
// place. Reset is the single source of default state: a freshly
// allocated T is also passed through Reset before use.
type Resetter[T any] interface {
	*T
	Resettable
}

// SetDefault marks f present holding the default value of T and returns
// a pointer to it. A retained allocation is reset in place; only when
// none exists is a fresh one made. Callers that clear and refill the
// same field in a loop pay one allocation for the field's lifetime,
// not one per cycle.
func SetDefault[T any, PT Resetter[T]](f *Field[T]) *T {
	if f.value == nil {
		f.value = new(T)
	}
	PT(f.value).Reset()
	f.present = true
	return f.value
}

// GetOrDefault returns the contained value if present. Otherwise it
// returns the default value of T, produced by resetting the retained
// allocation in place when one exists. The field stays absent.
func GetOrDefault[T any, PT Resetter[T]](f *Field[T]) T {
	if f.present {
		return *f.value
	}
	if f.value != nil {
		PT(f.value).Reset()
		return *f.value
	}
	var v T
	PT(&v).Reset()
	return v
}
