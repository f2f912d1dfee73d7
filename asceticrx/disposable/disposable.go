package disposable

type DisposableImp struct {
	callback func()
	disposed bool
}

// NewDisposable returns a Disposable that runs callback on the first Dispose call.
func NewDisposable(callback func()) *DisposableImp {
	return &DisposableImp{callback: callback}
}

func (d *DisposableImp) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	if d.callback != nil {
		d.callback()
	}
}

func (d *DisposableImp) IsDisposed() bool {
	return d.disposed
}

// Empty returns a Disposable with nothing to release.
func Empty() *DisposableImp {
	return NewDisposable(nil)
}

type CompositeDisposableImp struct {
	delegates []Disposable
	disposed  bool
}

func NewCompositeDisposable(delegates ...Disposable) *CompositeDisposableImp {
	return &CompositeDisposableImp{delegates: delegates}
}

// Add appends a delegate. Adding to an already disposed composite disposes
// the delegate immediately.
func (c *CompositeDisposableImp) Add(d Disposable) {
	if c.disposed {
		d.Dispose()
		return
	}
	c.delegates = append(c.delegates, d)
}

// Dispose disposes delegates in reverse order of registration.
func (c *CompositeDisposableImp) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	for i := len(c.delegates) - 1; i >= 0; i-- {
		c.delegates[i].Dispose()
	}
	c.delegates = nil
}

func (c *CompositeDisposableImp) IsDisposed() bool {
	return c.disposed
}
