package holder

import (
	"testing"
)

func TestNewHolder(t *testing.T) {
	h := New("hello")

	if h.Datum() != "hello" {
		t.Errorf("Expected datum 'hello', got '%s'", h.Datum())
	}
	if h.Kind() != KindBase {
		t.Errorf("Expected KindBase, got %v", h.Kind())
	}
	if h.Released() {
		t.Error("New holder should not be released")
	}
}

func TestNewDerived(t *testing.T) {
	h := NewDerived("hello")

	if h.Kind() != KindDerived {
		t.Errorf("Expected KindDerived, got %v", h.Kind())
	}
	if h.Datum() != "hello" {
		t.Errorf("Expected datum 'hello', got '%s'", h.Datum())
	}

	// Derived behaves identically to base aside from the tag.
	base := New("hello")
	if h.Equal(base) {
		t.Error("Derived holder should not be Equal to base holder with same datum")
	}
}

func TestCopyIndependence(t *testing.T) {
	h := New("datum")
	c := h.Copy()

	if !c.Equal(h) {
		t.Error("Copy should be Equal to the original")
	}
	if c.ID() == h.ID() {
		t.Error("Copy should have fresh storage identity")
	}
}

func TestCopyClearsReleaseState(t *testing.T) {
	h := New("datum")
	if err := h.Dispose(); err != nil {
		t.Fatalf("Dispose failed: %v", err)
	}

	c := h.Copy()
	if c.Released() {
		t.Error("Copy of a released holder should not be released")
	}
}

func TestDisposeOnce(t *testing.T) {
	h := New("datum")

	if err := h.Dispose(); err != nil {
		t.Fatalf("First Dispose failed: %v", err)
	}
	if !h.Released() {
		t.Error("Holder should be released after Dispose")
	}

	if err := h.Dispose(); err != ErrReleased {
		t.Errorf("Expected ErrReleased on second Dispose, got %v", err)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindBase, "Base"},
		{KindDerived, "Derived"},
		{Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestZeroValue(t *testing.T) {
	var h Holder

	if h.Datum() != "" {
		t.Errorf("Zero holder datum should be empty, got '%s'", h.Datum())
	}
	if h.Kind() != KindBase {
		t.Errorf("Zero holder should be KindBase, got %v", h.Kind())
	}
}
