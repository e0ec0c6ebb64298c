package refcount

import (
	"testing"
)

func TestNewStartsAtOne(t *testing.T) {
	v := New("datum")

	if v.Count() != 1 {
		t.Errorf("Expected initial count 1, got %d", v.Count())
	}
	if v.Datum() != "datum" {
		t.Errorf("Expected datum 'datum', got '%s'", v.Datum())
	}
	if v.Released() {
		t.Error("New value should not be released")
	}
}

func TestRefUnref(t *testing.T) {
	v := New("datum")

	if err := v.Ref(); err != nil {
		t.Fatalf("Ref failed: %v", err)
	}
	if v.Count() != 2 {
		t.Errorf("Expected count 2 after Ref, got %d", v.Count())
	}

	if err := v.Unref(); err != nil {
		t.Fatalf("Unref failed: %v", err)
	}
	if v.Count() != 1 {
		t.Errorf("Expected count 1 after Unref, got %d", v.Count())
	}
	if v.Released() {
		t.Error("Value should not be released while count > 0")
	}
}

func TestReleaseAtZero(t *testing.T) {
	v := New("datum")

	if err := v.Unref(); err != nil {
		t.Fatalf("Unref failed: %v", err)
	}
	if !v.Released() {
		t.Error("Value should be released when count reaches zero")
	}
	if v.Count() != 0 {
		t.Errorf("Expected count 0, got %d", v.Count())
	}
}

func TestUnrefUnderflow(t *testing.T) {
	v := New("datum")

	if err := v.Unref(); err != nil {
		t.Fatalf("Unref failed: %v", err)
	}

	// The value is gone; another Unref must not "free" it a second time.
	if err := v.Unref(); err != ErrUnderflow {
		t.Errorf("Expected ErrUnderflow, got %v", err)
	}
	if v.Count() != 0 {
		t.Errorf("Count should stay at 0, got %d", v.Count())
	}
}

func TestRefAfterRelease(t *testing.T) {
	v := New("datum")

	if err := v.Unref(); err != nil {
		t.Fatalf("Unref failed: %v", err)
	}
	if err := v.Ref(); err != ErrReleased {
		t.Errorf("Expected ErrReleased, got %v", err)
	}
}

func TestAcquireRelease(t *testing.T) {
	v := New("datum")

	h, err := v.Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if h.Value() != v {
		t.Error("Handle should reference the acquired value")
	}
	if v.Count() != 2 {
		t.Errorf("Expected count 2 after Acquire, got %d", v.Count())
	}

	if err := h.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if v.Count() != 1 {
		t.Errorf("Expected count 1 after Release, got %d", v.Count())
	}

	if err := h.Release(); err != ErrReleased {
		t.Errorf("Expected ErrReleased on second Release, got %v", err)
	}
	if v.Count() != 1 {
		t.Errorf("Second Release must not touch the count, got %d", v.Count())
	}
}

func TestAcquireAfterRelease(t *testing.T) {
	v := New("datum")

	if err := v.Unref(); err != nil {
		t.Fatalf("Unref failed: %v", err)
	}
	if _, err := v.Acquire(); err != ErrReleased {
		t.Errorf("Expected ErrReleased, got %v", err)
	}
}

func TestManyReferences(t *testing.T) {
	v := New("datum")

	const n = 10
	for i := 0; i < n; i++ {
		if err := v.Ref(); err != nil {
			t.Fatalf("Ref %d failed: %v", i, err)
		}
	}
	if v.Count() != n+1 {
		t.Fatalf("Expected count %d, got %d", n+1, v.Count())
	}

	// n+1 releases reach zero; the value is freed exactly once, at the end.
	for i := 0; i < n; i++ {
		if err := v.Unref(); err != nil {
			t.Fatalf("Unref %d failed: %v", i, err)
		}
		if v.Released() {
			t.Fatalf("Value released early at Unref %d (count %d)", i, v.Count())
		}
	}
	if err := v.Unref(); err != nil {
		t.Fatalf("Final Unref failed: %v", err)
	}
	if !v.Released() {
		t.Error("Value should be released after final Unref")
	}
}
