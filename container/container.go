// Package container implements the reference Container that exercises every
// catalogued ownership convention.
//
// A Container holds a prefix string and four slots, one per discipline:
//
//   - a value slot holding a holder by value (copies in, copies out)
//   - an owned slot holding at most one exclusively owned holder
//   - a borrowed slot holding a non-owning reference
//   - a refcounted slot holding one counted reference to a shared value
//
// # Ownership Rules
//
// The owned slot has exactly one owner at a time. Storing a replacement
// disposes the previous instance first; taking the instance out moves
// ownership to the caller and empties the slot. The borrowed slot is never
// disposed by the container. The refcounted slot holds exactly one counted
// reference, released when the slot is replaced or the container closes.
//
// Conditions that would be silent corruption under manual memory
// management (double release, count underflow, use after release) surface
// here as checked errors.
//
// # Usage
//
//	c := container.New("foo_")
//	defer c.Close()
//
//	h := holder.New("bar")
//	c.SetValue(h)
//
//	copy := c.Value() // independent of h
//
// # Absent Values
//
// Accessors for slots that may be empty return an explicit (value, ok)
// pair rather than a nil sentinel.
package container

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/smnsjas/go-ownership/handle"
	"github.com/smnsjas/go-ownership/holder"
	"github.com/smnsjas/go-ownership/refcount"
)

// ErrClosed is returned when an ownership operation is attempted on a
// closed container.
var ErrClosed = errors.New("container is closed")

// Logger is an optional interface for debug logging.
// If not set, no logging is performed.
type Logger interface {
	// Printf formats and logs a debug message.
	Printf(format string, v ...interface{})
}

// Container aggregates one holder by value, at most one exclusively owned
// holder, at most one borrowed holder and at most one counted reference to
// a shared value.
type Container struct {
	mu sync.Mutex

	id     uuid.UUID
	prefix string
	closed bool

	value      holder.Holder
	owned      handle.Owned[*holder.Holder]
	borrowed   handle.Borrowed[*holder.Holder]
	refcounted *refcount.Value

	logger Logger
}

// New creates a Container with the given prefix. All slots start empty.
func New(prefix string) *Container {
	return &Container{
		id:     uuid.New(),
		prefix: prefix,
		owned:  handle.NewOwned(disposeHolder),
	}
}

func disposeHolder(h *holder.Holder) error {
	if h == nil {
		return nil
	}
	if err := h.Dispose(); err != nil {
		return fmt.Errorf("dispose owned holder: %w", err)
	}
	return nil
}

// ID returns the unique identifier of the container.
func (c *Container) ID() uuid.UUID {
	return c.id
}

// Prefix returns the prefix the container was constructed with.
func (c *Container) Prefix() string {
	return c.prefix
}

// SetLogger sets the logger for debug logging.
// This is optional - if not set, no logging is performed.
func (c *Container) SetLogger(logger Logger) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	c.logger = logger
	return nil
}

// EnableDebugLogging enables debug logging to stderr using the standard log package.
func (c *Container) EnableDebugLogging() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = log.New(os.Stderr, "[ownership] ", log.LstdFlags)
}

// AddPrefix prepends the container's prefix to *message in place and
// returns the resulting length in bytes. A nil message is a no-op and
// returns zero.
func (c *Container) AddPrefix(message *string) int {
	if message == nil {
		return 0
	}
	*message = c.prefix + *message
	return len(*message)
}

// SetValue copies h into the value slot. No ownership transfer: the
// caller's holder stays independent of the container's copy.
func (c *Container) SetValue(h holder.Holder) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = h.Copy()
	c.logf("value slot set by value (datum=%q)", h.Datum())
}

// SetValueRef copies the referenced holder into the value slot. Same
// contract as SetValue; the reference only avoids a copy at the boundary.
// A nil reference is a no-op.
func (c *Container) SetValueRef(h *holder.Holder) {
	if h == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = h.Copy()
	c.logf("value slot set by reference (datum=%q)", h.Datum())
}

// ValueInto writes a copy of the current value into caller-supplied
// storage. A nil out is a no-op.
func (c *Container) ValueInto(out *holder.Holder) {
	if out == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	*out = c.value.Copy()
}

// Value returns an independent copy of the value slot. The caller owns
// the result.
func (c *Container) Value() holder.Holder {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.value.Copy()
}

// SetOwned transfers exclusive ownership of h to the container. If a
// previous instance is held, it is disposed before h becomes current.
// Passing a holder that was already released is a checked failure.
// SetOwned(nil) disposes any held instance and leaves the slot empty.
func (c *Container) SetOwned(h *holder.Holder) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if h != nil && h.Released() {
		return fmt.Errorf("set owned: %w", holder.ErrReleased)
	}

	if h == nil {
		if err := c.owned.Close(); err != nil {
			return err
		}
		c.logf("owned slot cleared")
		return nil
	}

	if err := c.owned.Set(h); err != nil {
		return err
	}
	c.logf("owned slot took %s (datum=%q)", h.ID(), h.Datum())
	return nil
}

// TakeOwned moves the exclusively owned instance out of the container,
// transferring ownership to the caller and leaving the slot empty. It
// reports false if no instance is held.
func (c *Container) TakeOwned() (*holder.Holder, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.owned.Take()
	if ok {
		c.logf("owned slot released %s to caller", h.ID())
	}
	return h, ok
}

// SetBorrowed stores a non-owning reference to h. The caller remains
// responsible for h's lifetime and must outlive the container's use of it;
// the container never disposes it. SetBorrowed(nil) clears the slot.
func (c *Container) SetBorrowed(h *holder.Holder) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if h == nil {
		c.borrowed.Clear()
		return
	}
	c.borrowed.Set(h)
	c.logf("borrowed slot set to %s (datum=%q)", h.ID(), h.Datum())
}

// Borrowed returns the borrowed reference, if any. The caller must not
// dispose the result.
func (c *Container) Borrowed() (*holder.Holder, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.borrowed.Get()
}

// AcquireRefCounted returns the held reference-counted value after adding a
// reference for the caller. The caller owns that reference and must give it
// back with Unref. It reports false if no value is held.
func (c *Container) AcquireRefCounted() (*refcount.Value, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.refcounted == nil {
		return nil, false
	}
	// The container's own reference keeps the value live, so Ref cannot
	// fail while the slot is set.
	if err := c.refcounted.Ref(); err != nil {
		return nil, false
	}
	c.logf("refcounted slot acquired (count=%d)", c.refcounted.Count())
	return c.refcounted, true
}

// PeekRefCounted returns the held reference-counted value without touching
// its count. The caller must not release a reference it did not acquire.
func (c *Container) PeekRefCounted() (*refcount.Value, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.refcounted == nil {
		return nil, false
	}
	return c.refcounted, true
}

// SetRefCountedTransfer stores v, taking over the caller's reference
// without an increment. The previously held reference is given back first,
// which may release the previous value. SetRefCountedTransfer(nil) clears
// the slot.
func (c *Container) SetRefCountedTransfer(v *refcount.Value) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if err := c.releaseRefCounted(); err != nil {
		return err
	}
	c.refcounted = v
	if v != nil {
		c.logf("refcounted slot took transferred reference (count=%d)", v.Count())
	}
	return nil
}

// SetRefCountedShared stores v after acquiring the container's own
// reference; caller and container hold independent references afterwards.
// The previously held reference is given back first.
// SetRefCountedShared(nil) clears the slot.
func (c *Container) SetRefCountedShared(v *refcount.Value) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if v != nil {
		if err := v.Ref(); err != nil {
			return fmt.Errorf("acquire shared reference: %w", err)
		}
	}
	if err := c.releaseRefCounted(); err != nil {
		return err
	}
	c.refcounted = v
	if v != nil {
		c.logf("refcounted slot shares reference (count=%d)", v.Count())
	}
	return nil
}

// SetRefCountedHolder stores the value carried by h with shared semantics:
// the container acquires its own reference and the caller keeps the one
// behind the holder. A holder with no value clears the slot.
func (c *Container) SetRefCountedHolder(h refcount.Holder) error {
	return c.SetRefCountedShared(h.Value)
}

// RefCountedHolder returns a holder wrapping the stored value together with
// a fresh reference the caller owns. It reports false if no value is held.
func (c *Container) RefCountedHolder() (refcount.Holder, bool) {
	v, ok := c.AcquireRefCounted()
	if !ok {
		return refcount.Holder{}, false
	}
	return refcount.Holder{Value: v}, true
}

// Close releases the container's owned holder and its counted reference,
// clears the borrowed slot without disposing the referent, and marks the
// container closed. A second Close returns ErrClosed.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	c.closed = true

	c.borrowed.Clear()

	var errs []error
	if err := c.owned.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := c.releaseRefCounted(); err != nil {
		errs = append(errs, err)
	}
	c.logf("container closed")
	return errors.Join(errs...)
}

// releaseRefCounted gives back the slot's reference and clears the slot.
// Callers must hold c.mu.
func (c *Container) releaseRefCounted() error {
	if c.refcounted == nil {
		return nil
	}
	v := c.refcounted
	c.refcounted = nil
	if err := v.Unref(); err != nil {
		return fmt.Errorf("release refcounted slot: %w", err)
	}
	return nil
}

// logf logs a debug message if a logger is configured.
// Callers must hold c.mu.
func (c *Container) logf(format string, v ...interface{}) {
	if c.logger != nil {
		c.logger.Printf(format, v...)
	}
}

// SlogLogger adapts a *slog.Logger to the Logger interface, emitting
// messages at debug level with the container fields attached by the caller.
type SlogLogger struct {
	Logger *slog.Logger
}

// Printf implements Logger.
func (s SlogLogger) Printf(format string, v ...interface{}) {
	s.Logger.Debug(fmt.Sprintf(format, v...))
}
