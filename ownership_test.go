package ownership

import (
	"bytes"
	"errors"
	"testing"
)

func TestPrintMessageTo(t *testing.T) {
	var buf bytes.Buffer

	n, err := PrintMessageTo(&buf, "hello")
	if err != nil {
		t.Fatalf("PrintMessageTo failed: %v", err)
	}
	if buf.String() != "hello\n" {
		t.Errorf("Expected 'hello\\n', got %q", buf.String())
	}
	if n != 6 {
		t.Errorf("Expected 6 bytes written, got %d", n)
	}
}

// failWriter always fails, to exercise the error path.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestPrintMessageToError(t *testing.T) {
	if _, err := PrintMessageTo(failWriter{}, "x"); err == nil {
		t.Error("Expected an error from a failing writer")
	}
}
