// Package holder defines the value-semantics holder types used throughout
// the library.
//
// A Holder wraps a single text datum and behaves as a plain value: copying
// it duplicates the datum, and the copy is fully independent of the
// original. Every holder carries an instance ID so callers can distinguish
// "equal value" from "identical storage".
//
// # Kinds
//
// Holders come in two kinds, Base and Derived. A Derived holder behaves
// identically to a Base holder; the kind exists only so consumers that need
// a distinguishable subtype (for example, tools that map type hierarchies)
// have one to work with. The kind is a tag on the same underlying type, not
// a separate type.
//
// # Release Tracking
//
// When a *Holder is placed under exclusive ownership, the owner releases it
// with Dispose when it is replaced or discarded. Dispose may be called
// exactly once; a second call reports ErrReleased. This makes release
// observable and turns double-free into a checked failure instead of
// silent corruption.
package holder

import (
	"errors"

	"github.com/google/uuid"
)

// ErrReleased is returned when a holder is disposed more than once.
var ErrReleased = errors.New("holder already released")

// Kind distinguishes the base holder type from its derived marker.
type Kind int

const (
	// KindBase is the ordinary value holder.
	KindBase Kind = iota
	// KindDerived marks a holder that plays the role of a subtype.
	// Behavior is identical to KindBase.
	KindDerived
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindBase:
		return "Base"
	case KindDerived:
		return "Derived"
	default:
		return "Unknown"
	}
}

// Holder is an immutable-after-construction wrapper around a text datum.
// The zero value is an empty base holder with a nil instance ID.
type Holder struct {
	id       uuid.UUID
	kind     Kind
	datum    string
	released bool
}

// New creates a base holder wrapping datum.
func New(datum string) Holder {
	return Holder{
		id:    uuid.New(),
		datum: datum,
	}
}

// NewDerived creates a holder tagged as the derived kind.
// It behaves identically to a base holder.
func NewDerived(datum string) Holder {
	return Holder{
		id:    uuid.New(),
		kind:  KindDerived,
		datum: datum,
	}
}

// Datum returns the wrapped text datum.
func (h Holder) Datum() string {
	return h.datum
}

// Kind returns the holder's kind tag.
func (h Holder) Kind() Kind {
	return h.kind
}

// ID returns the instance ID identifying this holder's storage.
// Copies of a holder carry different IDs.
func (h Holder) ID() uuid.UUID {
	return h.id
}

// Copy returns an independent duplicate of the holder. The duplicate has
// the same datum and kind but fresh storage identity and a clear release
// state.
func (h Holder) Copy() Holder {
	return Holder{
		id:    uuid.New(),
		kind:  h.kind,
		datum: h.datum,
	}
}

// Equal reports whether two holders carry the same datum and kind.
// It does not compare storage identity; use ID for that.
func (h Holder) Equal(other Holder) bool {
	return h.datum == other.datum && h.kind == other.kind
}

// Dispose marks the holder as released by its exclusive owner.
// It returns ErrReleased if the holder was already disposed.
func (h *Holder) Dispose() error {
	if h.released {
		return ErrReleased
	}
	h.released = true
	return nil
}

// Released reports whether the holder has been disposed.
func (h *Holder) Released() bool {
	return h.released
}
