package signal

import (
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
)

// Fmap resolves f(v) for every value v of s, in the same turn.
func Fmap[T, U any](s *Signal[T], f func(T) U) *Signal[U] {
	return derive(func(emit Observer[U]) disposable.Disposable {
		return s.subscribe(func(value T) {
			emit(f(value))
		})
	})
}

// Bind switches to f(v) on every value v of s. Values of the previous inner
// signal are no longer forwarded once s resolves again.
func Bind[T, U any](s *Signal[T], f func(T) *Signal[U]) *Signal[U] {
	return derive(func(emit Observer[U]) disposable.Disposable {
		var generation uint64
		var inner disposable.Disposable = disposable.Empty()

		outer := s.subscribe(func(value T) {
			generation++
			current := generation
			inner.Dispose()
			next := f(value).subscribe(func(u U) {
				if current == generation {
					emit(u)
				}
			})
			// s may have resolved again while next was subscribing.
			if current == generation {
				inner = next
			} else {
				next.Dispose()
			}
		})

		return disposable.NewCompositeDisposable(outer, disposable.NewDisposable(func() {
			generation++
			inner.Dispose()
		}))
	})
}
