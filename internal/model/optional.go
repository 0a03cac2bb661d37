package model

// Optional is the result of a single-row lookup: either Found(value) or
// NotFound. Repositories return it instead of an empty placeholder entity.
type Optional[T any] struct {
	value T
	found bool
}

func Found[T any](value T) Optional[T] {
	return Optional[T]{value: value, found: true}
}

func NotFound[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it was found.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.found
}

func (o Optional[T]) IsFound() bool {
	return o.found
}

func (o Optional[T]) IsEmpty() bool {
	return !o.found
}
