// Package handle provides generic ownership handles: a move-only owning
// slot and a non-owning borrowed slot.
//
// Owned models exclusive ownership. Exactly one owner is responsible for
// releasing the held value; storing a replacement releases the previous
// value first, and taking the value out moves ownership to the caller,
// leaving the slot empty.
//
// Borrowed models access without ownership. The slot never releases what it
// holds; the referent's lifetime is controlled elsewhere, and the owner
// must outlive the borrower.
package handle

// Owned is a move-only slot holding at most one exclusively owned value.
// The dispose function passed to NewOwned is invoked exactly once for each
// value the slot releases.
type Owned[T any] struct {
	value   T
	present bool
	dispose func(T) error
}

// NewOwned creates an empty owned slot. dispose is called when a held value
// is replaced or closed; it may be nil if the values need no release step.
func NewOwned[T any](dispose func(T) error) Owned[T] {
	return Owned[T]{dispose: dispose}
}

// Set stores v, releasing the previously held value if any.
func (o *Owned[T]) Set(v T) error {
	if err := o.releaseCurrent(); err != nil {
		return err
	}
	o.value = v
	o.present = true
	return nil
}

// Take moves the held value out, transferring ownership to the caller and
// leaving the slot empty. It reports false if the slot was empty.
func (o *Owned[T]) Take() (T, bool) {
	if !o.present {
		var zero T
		return zero, false
	}
	v := o.value
	var zero T
	o.value = zero
	o.present = false
	return v, true
}

// Get returns the held value without transferring ownership.
func (o *Owned[T]) Get() (T, bool) {
	if !o.present {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Present reports whether the slot holds a value.
func (o *Owned[T]) Present() bool {
	return o.present
}

// Close releases the held value, if any, and empties the slot.
func (o *Owned[T]) Close() error {
	err := o.releaseCurrent()
	var zero T
	o.value = zero
	o.present = false
	return err
}

func (o *Owned[T]) releaseCurrent() error {
	if !o.present || o.dispose == nil {
		return nil
	}
	return o.dispose(o.value)
}

// Borrowed is a non-owning slot. It never releases what it holds.
type Borrowed[T any] struct {
	value   T
	present bool
}

// Set stores a borrowed reference to v.
func (b *Borrowed[T]) Set(v T) {
	b.value = v
	b.present = true
}

// Get returns the borrowed value. The caller must not release it.
func (b *Borrowed[T]) Get() (T, bool) {
	if !b.present {
		var zero T
		return zero, false
	}
	return b.value, true
}

// Clear drops the borrowed reference without releasing the referent.
func (b *Borrowed[T]) Clear() {
	var zero T
	b.value = zero
	b.present = false
}

// Present reports whether the slot holds a reference.
func (b *Borrowed[T]) Present() bool {
	return b.present
}
