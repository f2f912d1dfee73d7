// Package rxlog instruments signals with logrus.
package rxlog

import (
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/signal"
)

// Trace returns a signal that resolves exactly what s resolves and logs,
// at trace level, every subscription, resolution and disposal. Each
// subscription gets its own ULID so interleaved subscriptions can be told
// apart.
func Trace[T any](log logrus.Ext1FieldLogger, name string, s *signal.Signal[T]) *signal.Signal[T] {
	return signal.Create(func(resolve func(T)) disposable.Disposable {
		entry := log.WithFields(logrus.Fields{
			"signal":       name,
			"subscription": ulid.Make().String(),
		})
		entry.Trace("subscribed")
		seq := 0
		upstream := s.Listen(func(value T) {
			seq++
			entry.WithFields(logrus.Fields{"seq": seq, "value": value}).Trace("resolved")
			resolve(value)
		})
		return disposable.NewDisposable(func() {
			upstream.Dispose()
			entry.WithField("resolved", seq).Trace("disposed")
		})
	})
}
