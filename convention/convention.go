// Package convention defines the ownership-convention catalogue: a fixed,
// machine-readable description of the parameter-passing and
// ownership-transfer contract of every operation in the container package.
//
// Tools that translate an API surface into another calling convention (for
// example, binding generators) consume this data to decide, per operation,
// how arguments and results cross the boundary: copied, referenced, moved,
// or reference-counted.
//
// # Disciplines
//
// Each operation is tagged along three axes:
//
//   - Passing: how the argument or result crosses the call boundary
//     (by value, by reference, by pointer).
//   - Direction: whether the parameter carries data in, out, or both.
//   - Transfer: what happens to ownership (none, full transfer, or a
//     shared counted reference).
//
// Results additionally record whether the caller owns what is returned and
// therefore must release it.
//
// # Usage
//
//	for _, spec := range convention.Catalogue() {
//		fmt.Println(spec)
//	}
package convention

import "fmt"

// Passing describes how a value crosses the call boundary.
type Passing int

const (
	// ByValue copies the value at the boundary.
	ByValue Passing = iota
	// ByReference passes a reference to avoid the copy; the callee does
	// not retain it past the call.
	ByReference
	// ByPointer passes a pointer the callee may retain.
	ByPointer
	// NoArgument marks operations with no holder-typed parameter.
	NoArgument
)

// String returns a string representation of the passing mode.
func (p Passing) String() string {
	switch p {
	case ByValue:
		return "ByValue"
	case ByReference:
		return "ByReference"
	case ByPointer:
		return "ByPointer"
	case NoArgument:
		return "NoArgument"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// Direction describes which way parameter data flows.
type Direction int

const (
	// DirectionNone applies to operations without a directional parameter.
	DirectionNone Direction = iota
	// DirectionIn carries data from caller to callee.
	DirectionIn
	// DirectionOut carries data from callee to caller.
	DirectionOut
	// DirectionInOut mutates caller-supplied data in place.
	DirectionInOut
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "None"
	case DirectionIn:
		return "In"
	case DirectionOut:
		return "Out"
	case DirectionInOut:
		return "InOut"
	default:
		return fmt.Sprintf("Unknown(%d)", int(d))
	}
}

// Transfer describes what happens to ownership at the boundary.
type Transfer int

const (
	// TransferNone leaves ownership with the caller.
	TransferNone Transfer = iota
	// TransferFull moves exclusive ownership to the receiver.
	TransferFull
	// TransferShared gives the receiver its own counted reference; both
	// sides hold independent references afterwards.
	TransferShared
)

// String returns a string representation of the transfer mode.
func (t Transfer) String() string {
	switch t {
	case TransferNone:
		return "None"
	case TransferFull:
		return "Full"
	case TransferShared:
		return "Shared"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// Spec describes the ownership contract of a single catalogued operation.
type Spec struct {
	// Operation is the method name on container.Container, or the
	// function name for free functions.
	Operation string
	// Passing is how the holder-typed argument or result crosses the
	// boundary.
	Passing Passing
	// Direction is the data flow of the directional parameter, if any.
	Direction Direction
	// Transfer is the ownership effect of the call.
	Transfer Transfer
	// CallerOwnsResult reports whether the caller owns the returned
	// instance and must release it.
	CallerOwnsResult bool
	// RefCounted reports whether the operation works on the
	// reference-counted value type.
	RefCounted bool
	// Note is a short human-readable summary of the contract.
	Note string
}

// String returns a one-line description of the spec.
func (s Spec) String() string {
	return fmt.Sprintf("%s: passing=%s direction=%s transfer=%s callerOwnsResult=%v refcounted=%v",
		s.Operation, s.Passing, s.Direction, s.Transfer, s.CallerOwnsResult, s.RefCounted)
}

// catalogue is the fixed table of operation contracts. Order follows the
// container API surface.
var catalogue = []Spec{
	{
		Operation: "New",
		Passing:   ByValue,
		Direction: DirectionIn,
		Transfer:  TransferNone,
		Note:      "construct with a prefix; all slots start empty",
	},
	{
		Operation: "AddPrefix",
		Passing:   ByReference,
		Direction: DirectionInOut,
		Transfer:  TransferNone,
		Note:      "prepends the prefix in place and returns the new length",
	},
	{
		Operation: "SetValue",
		Passing:   ByValue,
		Direction: DirectionIn,
		Transfer:  TransferNone,
		Note:      "copies the holder into the value slot",
	},
	{
		Operation: "SetValueRef",
		Passing:   ByReference,
		Direction: DirectionIn,
		Transfer:  TransferNone,
		Note:      "same effect as SetValue without copying at the boundary",
	},
	{
		Operation: "ValueInto",
		Passing:   ByReference,
		Direction: DirectionOut,
		Transfer:  TransferNone,
		Note:      "writes the current value into caller-supplied storage",
	},
	{
		Operation:        "Value",
		Passing:          ByValue,
		Direction:        DirectionOut,
		Transfer:         TransferNone,
		CallerOwnsResult: true,
		Note:             "returns an independent copy the caller owns",
	},
	{
		Operation: "SetOwned",
		Passing:   ByPointer,
		Direction: DirectionIn,
		Transfer:  TransferFull,
		Note:      "container takes exclusive ownership; previous instance released first",
	},
	{
		Operation: "SetBorrowed",
		Passing:   ByPointer,
		Direction: DirectionIn,
		Transfer:  TransferNone,
		Note:      "container stores a reference it must never release",
	},
	{
		Operation: "Borrowed",
		Passing:   ByPointer,
		Direction: DirectionOut,
		Transfer:  TransferNone,
		Note:      "non-owning result; caller must not release it",
	},
	{
		Operation:        "TakeOwned",
		Passing:          ByPointer,
		Direction:        DirectionOut,
		Transfer:         TransferFull,
		CallerOwnsResult: true,
		Note:             "moves the owned instance out, leaving the slot empty",
	},
	{
		Operation:        "AcquireRefCounted",
		Passing:          ByPointer,
		Direction:        DirectionOut,
		Transfer:         TransferShared,
		CallerOwnsResult: true,
		RefCounted:       true,
		Note:             "increments the count; caller owns one reference",
	},
	{
		Operation:  "PeekRefCounted",
		Passing:    ByPointer,
		Direction:  DirectionOut,
		Transfer:   TransferNone,
		RefCounted: true,
		Note:       "no count change; caller must not release what it did not acquire",
	},
	{
		Operation:  "SetRefCountedTransfer",
		Passing:    ByPointer,
		Direction:  DirectionIn,
		Transfer:   TransferFull,
		RefCounted: true,
		Note:       "caller's reference moves into the container without an increment",
	},
	{
		Operation:  "SetRefCountedShared",
		Passing:    ByPointer,
		Direction:  DirectionIn,
		Transfer:   TransferShared,
		RefCounted: true,
		Note:       "container takes its own reference; caller keeps its own",
	},
	{
		Operation:  "SetRefCountedHolder",
		Passing:    ByValue,
		Direction:  DirectionIn,
		Transfer:   TransferShared,
		RefCounted: true,
		Note:       "holder wrapper in; container acquires its own reference",
	},
	{
		Operation:        "RefCountedHolder",
		Passing:          ByValue,
		Direction:        DirectionOut,
		Transfer:         TransferShared,
		CallerOwnsResult: true,
		RefCounted:       true,
		Note:             "holder wrapper out carrying a reference the caller owns",
	},
	{
		Operation: "PrintMessage",
		Passing:   ByValue,
		Direction: DirectionIn,
		Transfer:  TransferNone,
		Note:      "free function; writes the message and returns the byte count",
	},
	{
		Operation: "PrintMessageTo",
		Passing:   ByValue,
		Direction: DirectionIn,
		Transfer:  TransferNone,
		Note:      "free function; like PrintMessage with an explicit destination",
	},
}

// Catalogue returns the full operation catalogue. The returned slice is a
// copy; callers may reorder or filter it freely.
func Catalogue() []Spec {
	out := make([]Spec, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup returns the spec for the named operation.
func Lookup(operation string) (Spec, bool) {
	for _, s := range catalogue {
		if s.Operation == operation {
			return s, true
		}
	}
	return Spec{}, false
}
