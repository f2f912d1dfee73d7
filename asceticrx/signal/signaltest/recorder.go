package signaltest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/signal"
)

// Recorder keeps every value a signal resolved to one subscription.
type Recorder[T any] struct {
	values []T
	sub    disposable.Disposable
}

func Record[T any](s *signal.Signal[T]) *Recorder[T] {
	r := &Recorder[T]{values: []T{}}
	r.sub = Collect(s).Listen(func(values []T) {
		r.values = values
	})
	return r
}

func (r *Recorder[T]) Values() []T {
	return r.values
}

func (r *Recorder[T]) Len() int {
	return len(r.values)
}

// Equal reports whether the recorded sequence equals expected.
func (r *Recorder[T]) Equal(expected []T) bool {
	return assert.ObjectsAreEqual(expected, r.values)
}

func (r *Recorder[T]) Dispose() {
	r.sub.Dispose()
}

// ShouldProduce asserts that s resolves exactly expected. The values are
// compared as soon as as many have been resolved as expected, and again at
// test cleanup, so asynchronous signals only need their loop to have run by
// the end of the test.
func ShouldProduce[T any](t testing.TB, s *signal.Signal[T], expected []T, msgAndArgs ...any) *Recorder[T] {
	t.Helper()
	r := &Recorder[T]{values: []T{}}
	r.sub = Collect(s).Listen(func(values []T) {
		r.values = values
		if len(values) == len(expected) {
			assert.Equal(t, expected, values, msgAndArgs...)
		}
	})
	t.Cleanup(func() {
		r.sub.Dispose()
		if len(r.values) != len(expected) {
			assert.Fail(t, fmt.Sprintf("expected %d values %v, got %d: %v",
				len(expected), expected, len(r.values), r.values), msgAndArgs...)
		}
	})
	return r
}
