package signal

import (
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/multicast"
)

// Share returns a hot view of s. The first listener connects s once and
// every listener attached meanwhile receives the same resolutions from the
// moment it attached. When the last listener is disposed the connection is
// released; the next listener reconnects and runs s again.
func Share[T any](s *Signal[T]) *Signal[T] {
	var hub multicast.Hub[T] = multicast.NewHub[T]()
	var (
		connection disposable.Disposable
		connected  bool
		epoch      uint64
	)

	disconnect := func() {
		connected = false
		epoch++
		if connection != nil {
			connection.Dispose()
			connection = nil
		}
	}

	return derive(func(emit Observer[T]) disposable.Disposable {
		attached := hub.Attach(multicast.Observer[T](emit))
		if !connected {
			connected = true
			epoch++
			current := epoch
			conn := s.subscribe(hub.Notify)
			if connected && current == epoch {
				connection = conn
			} else {
				conn.Dispose()
			}
		}
		return disposable.NewDisposable(func() {
			attached.Dispose()
			if hub.Len() == 0 && connected {
				disconnect()
			}
		})
	})
}
