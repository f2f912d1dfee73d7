package signal

import (
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/option"
)

// latch keeps the latest value of every source of one combine subscription.
type latch[T any] struct {
	slots []option.Option[T]
	ready int
}

func newLatch[T any](size int) *latch[T] {
	return &latch[T]{slots: make([]option.Option[T], size)}
}

// set stores value for source i and returns a fresh copy of all latest
// values once every source has resolved at least once.
func (l *latch[T]) set(i int, value T) ([]T, bool) {
	if l.slots[i].IsNothing() {
		l.ready++
	}
	l.slots[i] = option.Some(value)
	if l.ready < len(l.slots) {
		return nil, false
	}
	return option.Unwrapped(l.slots)
}

type subscriber[T any] func(observer Observer[T]) disposable.Disposable

// combineLatest subscribes to sources in order and resolves pack(latest)
// for every source resolution once all sources are ready. With no sources
// it resolves pack of an empty slice once.
func combineLatest[T, R any](sources []subscriber[T], pack func([]T) R) *Signal[R] {
	return derive(func(emit Observer[R]) disposable.Disposable {
		subs := disposable.NewCompositeDisposable()
		if len(sources) == 0 {
			emit(pack([]T{}))
			return subs
		}
		l := newLatch[T](len(sources))
		for i, subscribe := range sources {
			subs.Add(subscribe(func(value T) {
				if values, ok := l.set(i, value); ok {
					emit(pack(values))
				}
			}))
		}
		return subs
	})
}

// Combine resolves the latest value of every source each time any of them
// resolves, starting once all of them have resolved at least once.
func Combine[T any](sources ...*Signal[T]) *Signal[[]T] {
	subscribers := make([]subscriber[T], len(sources))
	for i, s := range sources {
		subscribers[i] = s.subscribe
	}
	return combineLatest(subscribers, func(values []T) []T { return values })
}

func Combine2[A, B any](a *Signal[A], b *Signal[B]) *Signal[Tuple2[A, B]] {
	return combineLatest([]subscriber[any]{erase(a), erase(b)}, func(values []any) Tuple2[A, B] {
		return Tuple2[A, B]{V1: cast[A](values[0]), V2: cast[B](values[1])}
	})
}

func Combine3[A, B, C any](a *Signal[A], b *Signal[B], c *Signal[C]) *Signal[Tuple3[A, B, C]] {
	return combineLatest([]subscriber[any]{erase(a), erase(b), erase(c)}, func(values []any) Tuple3[A, B, C] {
		return Tuple3[A, B, C]{V1: cast[A](values[0]), V2: cast[B](values[1]), V3: cast[C](values[2])}
	})
}

// Lift turns an n-ary function into one over signals, with the readiness
// and ordering rules of Combine.
func Lift[T, U any](f func(...T) U) func(...*Signal[T]) *Signal[U] {
	return func(sources ...*Signal[T]) *Signal[U] {
		return Fmap(Combine(sources...), func(values []T) U {
			return f(values...)
		})
	}
}

func Lift2[A, B, R any](f func(A, B) R) func(*Signal[A], *Signal[B]) *Signal[R] {
	return func(a *Signal[A], b *Signal[B]) *Signal[R] {
		return Fmap(Combine2(a, b), func(t Tuple2[A, B]) R {
			return f(t.V1, t.V2)
		})
	}
}

func Lift3[A, B, C, R any](f func(A, B, C) R) func(*Signal[A], *Signal[B], *Signal[C]) *Signal[R] {
	return func(a *Signal[A], b *Signal[B], c *Signal[C]) *Signal[R] {
		return Fmap(Combine3(a, b, c), func(t Tuple3[A, B, C]) R {
			return f(t.V1, t.V2, t.V3)
		})
	}
}

func erase[T any](s *Signal[T]) subscriber[any] {
	return func(observer Observer[any]) disposable.Disposable {
		return s.subscribe(func(value T) {
			observer(value)
		})
	}
}

// cast is a type assertion that maps a nil interface to the zero value.
func cast[T any](v any) T {
	t, _ := v.(T)
	return t
}
