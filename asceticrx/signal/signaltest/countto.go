// Package signaltest provides signal generators and assertions for tests.
package signaltest

import (
	"time"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/scheduler"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/signal"
)

// CountTo resolves 0 synchronously on subscription and then n+1 every delay
// on loop, up to and including x.
func CountTo(loop *scheduler.Loop, x int, delay time.Duration) *signal.Signal[int] {
	return signal.New(func(resolve func(int)) {
		var step func(n int)
		step = func(n int) {
			resolve(n)
			if n < x {
				loop.After(delay, func() { step(n + 1) })
			}
		}
		step(0)
	})
}

// Collect resolves the sequence observed so far on every resolution of s.
// Every resolved slice is a fresh copy.
func Collect[T any](s *signal.Signal[T]) *signal.Signal[[]T] {
	return signal.Fold(s, func(acc []T, value T) []T {
		next := make([]T, len(acc), len(acc)+1)
		copy(next, acc)
		return append(next, value)
	}, []T{})
}
