package parallax

// Disposable releases a subscription.
type Disposable interface {
	Dispose()
}

// DisposableFunc adapts a cancel function to Disposable. A nil func is a no-op.
type DisposableFunc func()

// Dispose calls f.
func (f DisposableFunc) Dispose() {
	if f != nil {
		f()
	}
}

// DisposeBag collects disposables and releases them together. Anything added
// after Dispose is released immediately. The zero value is ready to use.
type DisposeBag struct {
	items    []Disposable
	disposed bool
}

// Add puts ds in the bag.
func (b *DisposeBag) Add(ds ...Disposable) {
	if b.disposed {
		for _, d := range ds {
			d.Dispose()
		}
		return
	}
	b.items = append(b.items, ds...)
}

// Len returns the number of disposables waiting in the bag.
func (b *DisposeBag) Len() int {
	return len(b.items)
}

// Dispose releases everything in the bag, in the order added. Calling it again
// is a no-op.
func (b *DisposeBag) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	for i, d := range b.items {
		d.Dispose()
		b.items[i] = nil
	}
	b.items = nil
}
