package multicast

import (
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
)

type entry[E any] struct {
	id       any
	observer Observer[E]
}

type autoID uint64

type HubImp[E any] struct {
	observers []entry[E]
	nextID    autoID
}

func NewHub[E any]() *HubImp[E] {
	return &HubImp[E]{}
}

// Attach registers observer under observerID, or under a fresh id when none
// is given. Attaching an id that is already present keeps the first observer.
func (h *HubImp[E]) Attach(observer Observer[E], observerID ...any) disposable.Disposable {
	id := h.resolveID(observerID)
	for _, e := range h.observers {
		if e.id == id {
			return disposable.NewDisposable(func() { h.Detach(id) })
		}
	}
	h.observers = append(h.observers, entry[E]{id: id, observer: observer})
	return disposable.NewDisposable(func() { h.Detach(id) })
}

func (h *HubImp[E]) Detach(observerID any) {
	for i, e := range h.observers {
		if e.id == observerID {
			h.observers = append(h.observers[:i:i], h.observers[i+1:]...)
			return
		}
	}
}

// Notify delivers event to the observers attached when Notify was called.
// Observers detached by an earlier observer during the same call are skipped.
func (h *HubImp[E]) Notify(event E) {
	snapshot := h.observers
	for _, e := range snapshot {
		if h.attached(e.id) {
			e.observer(event)
		}
	}
}

func (h *HubImp[E]) Len() int {
	return len(h.observers)
}

func (h *HubImp[E]) attached(id any) bool {
	for _, e := range h.observers {
		if e.id == id {
			return true
		}
	}
	return false
}

func (h *HubImp[E]) resolveID(observerID []any) any {
	if len(observerID) > 0 {
		return observerID[0]
	}
	h.nextID++
	return h.nextID
}
