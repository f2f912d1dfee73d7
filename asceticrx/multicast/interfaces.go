package multicast

import (
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
)

type Observer[E any] func(E)

// Hub fans every notified event out to its attached observers.
type Hub[E any] interface {
	Attach(observer Observer[E], observerID ...any) disposable.Disposable
	Detach(observerID any)
	Notify(event E)
	Len() int
}
