// Package refcount implements a reference-counted text value with checked
// acquisition and release.
//
// A Value tracks the number of outstanding owning references explicitly.
// Construction hands the first reference to the caller, so a new Value
// starts with a count of one. Each Ref adds an owning reference; each Unref
// removes one. The Unref that moves the count from one to zero releases the
// value exactly once. Releasing past zero is a checked failure, not
// undefined behavior.
//
// # Scoped Acquisition
//
// Handle provides scope-bound acquisition so callers do not have to pair
// Ref/Unref calls by hand:
//
//	h, err := v.Acquire()
//	if err != nil {
//		return err
//	}
//	defer h.Release()
//
// # Boundary Holder
//
// Holder is a thin wrapper used to pass a *Value across an API boundary
// with holder-specific conventions: the receiver of a Holder parameter does
// not take over the caller's reference, while a Holder result carries a
// reference the caller owns and must release.
package refcount

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrReleased is returned when a value is used after its count reached zero.
	ErrReleased = errors.New("refcounted value already released")
	// ErrUnderflow is returned when Unref would take the count below zero.
	ErrUnderflow = errors.New("reference count underflow")
)

// Value is a text-datum holder with an explicit reference count.
type Value struct {
	mu sync.Mutex

	id       uuid.UUID
	datum    string
	count    int
	released bool
}

// New creates a Value wrapping datum. The caller holds the first reference,
// so the count starts at one.
func New(datum string) *Value {
	return &Value{
		id:    uuid.New(),
		datum: datum,
		count: 1,
	}
}

// ID returns the instance ID of the value.
func (v *Value) ID() uuid.UUID {
	return v.id
}

// Datum returns the wrapped text datum.
func (v *Value) Datum() string {
	return v.datum
}

// Count returns the current number of outstanding references.
func (v *Value) Count() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.count
}

// Released reports whether the value has been released.
func (v *Value) Released() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.released
}

// Ref adds an owning reference. It returns ErrReleased if the value has
// already been released.
func (v *Value) Ref() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.released {
		return ErrReleased
	}
	v.count++
	return nil
}

// Unref removes an owning reference. The call that takes the count from one
// to zero releases the value. Unref on an already released value returns
// ErrUnderflow.
func (v *Value) Unref() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.released || v.count <= 0 {
		return ErrUnderflow
	}
	v.count--
	if v.count == 0 {
		v.released = true
	}
	return nil
}

// Acquire adds a reference and returns a Handle bound to it. Releasing the
// handle gives the reference back.
func (v *Value) Acquire() (*Handle, error) {
	if err := v.Ref(); err != nil {
		return nil, err
	}
	return &Handle{value: v}, nil
}

// Handle is a scope-bound owning reference to a Value.
type Handle struct {
	value    *Value
	released bool
}

// Value returns the referenced value.
func (h *Handle) Value() *Value {
	return h.value
}

// Release gives back the reference held by the handle. A second Release
// returns ErrReleased and does not touch the count.
func (h *Handle) Release() error {
	if h.released {
		return ErrReleased
	}
	h.released = true
	return h.value.Unref()
}

// Holder carries a *Value across an API boundary. Its conventions differ
// from passing the bare pointer: a Holder parameter does not transfer the
// caller's reference, and a Holder result carries a reference owned by the
// caller.
type Holder struct {
	Value *Value
}
