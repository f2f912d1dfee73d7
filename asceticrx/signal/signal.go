// Package signal implements cold push-based reactive values.
//
// A Signal is a description of a value-producing process, not a buffer:
// every Listen runs the producer again and the listener sees exactly the
// values that run resolves, in order. Combinators build new signals that
// subscribe to their inputs once per downstream subscription.
//
// Go has no type parameters on methods, so combinators that change the value
// type are free functions (Fmap, Bind, Apply, Fold, Combine, Lift).
package signal

import (
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
)

type Signal[T any] struct {
	subscribe func(observer Observer[T]) disposable.Disposable
}

// New constructs a signal from producer. The producer is not invoked until
// the signal is listened to.
func New[T any](producer Producer[T]) *Signal[T] {
	return Create(func(resolve func(T)) disposable.Disposable {
		producer(resolve)
		return nil
	})
}

// Create is New for producers that hold resources: the Disposable returned
// by producer, if any, is disposed together with the subscription.
func Create[T any](producer func(resolve func(T)) disposable.Disposable) *Signal[T] {
	return derive(func(observer Observer[T]) disposable.Disposable {
		sub := disposable.NewCompositeDisposable()
		teardown := producer(func(value T) {
			if !sub.IsDisposed() {
				observer(value)
			}
		})
		if teardown != nil {
			sub.Add(teardown)
		}
		return sub
	})
}

// Unit resolves value once, synchronously, on every subscription.
func Unit[T any](value T) *Signal[T] {
	return New(func(resolve func(T)) {
		resolve(value)
	})
}

// Of resolves values synchronously, in order, on every subscription.
func Of[T any](values ...T) *Signal[T] {
	return New(func(resolve func(T)) {
		for _, v := range values {
			resolve(v)
		}
	})
}

// Listen subscribes observer and runs the producer chain once. Disposing the
// result stops delivery to observer and releases every upstream
// subscription opened for it.
func (s *Signal[T]) Listen(observer Observer[T]) disposable.Disposable {
	sub := disposable.NewCompositeDisposable()
	sub.Add(s.subscribe(func(value T) {
		if !sub.IsDisposed() {
			observer(value)
		}
	}))
	return sub
}

func derive[T any](subscribe func(observer Observer[T]) disposable.Disposable) *Signal[T] {
	return &Signal[T]{subscribe: subscribe}
}
