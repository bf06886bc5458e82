package identity

type Identity[T any] struct {
	value T
}

func Of[T any](v T) Identity[T] {
	return Identity[T]{value: v}
}

func (i Identity[T]) Value() T {
	return i.value
}

// Map returns f applied to the wrapped value, unwrapped.
func Map[A, B any](m Identity[A], f func(A) B) B {
	return f(m.value)
}

// FlatMap is Map: there is nothing to flatten.
func FlatMap[A, B any](m Identity[A], f func(A) B) B {
	return Map(m, f)
}
