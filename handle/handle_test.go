package handle

import (
	"errors"
	"testing"
)

// releaseRecorder counts dispose calls per value so tests can verify that
// each released value is disposed exactly once.
type releaseRecorder struct {
	calls map[string]int
}

func newReleaseRecorder() *releaseRecorder {
	return &releaseRecorder{calls: make(map[string]int)}
}

func (r *releaseRecorder) dispose(v string) error {
	r.calls[v]++
	return nil
}

func TestOwnedReplaceReleasesPrevious(t *testing.T) {
	rec := newReleaseRecorder()
	o := NewOwned(rec.dispose)

	if err := o.Set("a"); err != nil {
		t.Fatalf("Set(a) failed: %v", err)
	}
	if err := o.Set("b"); err != nil {
		t.Fatalf("Set(b) failed: %v", err)
	}

	if rec.calls["a"] != 1 {
		t.Errorf("Expected 'a' disposed exactly once, got %d", rec.calls["a"])
	}
	if rec.calls["b"] != 0 {
		t.Errorf("Current value 'b' must not be disposed, got %d", rec.calls["b"])
	}

	v, ok := o.Get()
	if !ok || v != "b" {
		t.Errorf("Expected current value 'b', got %q (present=%v)", v, ok)
	}
}

func TestOwnedTakeMovesOwnership(t *testing.T) {
	rec := newReleaseRecorder()
	o := NewOwned(rec.dispose)

	if err := o.Set("x"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	v, ok := o.Take()
	if !ok || v != "x" {
		t.Fatalf("Expected Take to return 'x', got %q (present=%v)", v, ok)
	}
	if o.Present() {
		t.Error("Slot should be empty after Take")
	}
	if rec.calls["x"] != 0 {
		t.Errorf("Taken value must not be disposed, got %d", rec.calls["x"])
	}

	if _, ok := o.Take(); ok {
		t.Error("Second Take should report absent")
	}
}

func TestOwnedClose(t *testing.T) {
	rec := newReleaseRecorder()
	o := NewOwned(rec.dispose)

	if err := o.Set("x"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := o.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if rec.calls["x"] != 1 {
		t.Errorf("Expected 'x' disposed exactly once on Close, got %d", rec.calls["x"])
	}
	if o.Present() {
		t.Error("Slot should be empty after Close")
	}

	// Closing an empty slot is a no-op.
	if err := o.Close(); err != nil {
		t.Errorf("Close on empty slot failed: %v", err)
	}
}

func TestOwnedSetPropagatesDisposeError(t *testing.T) {
	errBoom := errors.New("boom")
	o := NewOwned(func(string) error { return errBoom })

	if err := o.Set("a"); err != nil {
		t.Fatalf("Set(a) failed: %v", err)
	}
	if err := o.Set("b"); !errors.Is(err, errBoom) {
		t.Errorf("Expected dispose error, got %v", err)
	}
}

func TestOwnedNilDispose(t *testing.T) {
	o := NewOwned[string](nil)

	if err := o.Set("a"); err != nil {
		t.Fatalf("Set(a) failed: %v", err)
	}
	if err := o.Set("b"); err != nil {
		t.Fatalf("Set(b) failed: %v", err)
	}
}

func TestBorrowedNeverReleases(t *testing.T) {
	var b Borrowed[string]

	if _, ok := b.Get(); ok {
		t.Error("Empty borrowed slot should report absent")
	}

	b.Set("x")
	v, ok := b.Get()
	if !ok || v != "x" {
		t.Errorf("Expected 'x', got %q (present=%v)", v, ok)
	}

	b.Clear()
	if b.Present() {
		t.Error("Slot should be empty after Clear")
	}
}
