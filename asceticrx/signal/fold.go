package signal

import (
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
)

// Fold resolves the running accumulation of s. The seed itself is never
// resolved; each subscription starts again from seed.
func Fold[T, A any](s *Signal[T], f func(A, T) A, seed A) *Signal[A] {
	return derive(func(emit Observer[A]) disposable.Disposable {
		acc := seed
		return s.subscribe(func(value T) {
			acc = f(acc, value)
			emit(acc)
		})
	})
}
