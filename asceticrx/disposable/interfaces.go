package disposable

// Disposable releases whatever it guards. Dispose is idempotent.
type Disposable interface {
	Dispose()
	IsDisposed() bool
}
