package option

import "fmt"

// Option is either Some value or Nothing. The zero Option is Nothing, so a
// freshly allocated []Option[T] is a row of empty slots.
type Option[T any] struct {
	val   T
	valid bool
}

func Some[T any](val T) Option[T] {
	return Option[T]{val: val, valid: true}
}

func Nothing[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.valid
}

func (o Option[T]) IsNothing() bool {
	return !o.valid
}

// Unwrap returns the contained value. Panics if the Option is Nothing.
func (o Option[T]) Unwrap() T {
	if !o.valid {
		panic("called Unwrap on a Nothing Option")
	}
	return o.val
}

func (o Option[T]) UnwrapOr(def T) T {
	if o.valid {
		return o.val
	}
	return def
}

// Map applies f to the contained value, keeping Nothing as Nothing.
func Map[T any, U any](o Option[T], f func(T) U) Option[U] {
	if o.valid {
		return Some(f(o.val))
	}
	return Nothing[U]()
}

// Unwrapped returns the values of all options, or false if any of them is Nothing.
func Unwrapped[T any](opts []Option[T]) ([]T, bool) {
	values := make([]T, len(opts))
	for i, o := range opts {
		if !o.valid {
			return nil, false
		}
		values[i] = o.val
	}
	return values, true
}

func (o Option[T]) String() string {
	if o.valid {
		return fmt.Sprintf("Some(%v)", o.val)
	}
	return "Nothing"
}
