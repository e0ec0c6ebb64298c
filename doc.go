// Package ownership models the parameter-passing and ownership-transfer
// conventions a binding or introspection tool must recognize: pass by
// value, by reference in/out, by pointer with and without ownership
// transfer, and manual reference counting.
//
// This library is in-memory only - it handles ownership semantics, with no
// transport, persistence or code generation. Tools that translate an API
// surface into another calling convention consume the catalogue and use
// the container as a reference implementation of each contract.
//
// # Architecture
//
// The library is organized into small topical packages:
//
//   - convention: the machine-readable catalogue of per-operation contracts
//   - holder: value-semantics holders with copy and release tracking
//   - refcount: reference-counted values with checked Ref/Unref
//   - handle: generic move-only owned slots and non-owning borrowed slots
//   - container: the reference Container exercising every convention
//
// # Basic Usage
//
//	c := container.New("foo_")
//	defer c.Close()
//
//	// By value: the container copies, no ownership transfer.
//	h := holder.New("bar")
//	c.SetValue(h)
//
//	// Exclusive ownership: the container releases what it replaces.
//	owned := holder.New("owned")
//	if err := c.SetOwned(&owned); err != nil {
//	    return err
//	}
//
//	// Shared ownership: both sides hold counted references.
//	v := refcount.New("shared")
//	if err := c.SetRefCountedShared(v); err != nil {
//	    return err
//	}
//	defer v.Unref()
//
// # Checked Failures
//
// Conditions that are undefined behavior under manual memory management -
// releasing a borrowed reference, double-freeing an owned instance,
// decrementing a reference count below zero - surface as checked errors
// here. See the container and refcount packages for the sentinels.
package ownership

// Version is the library version.
const Version = "0.1.0-dev"
