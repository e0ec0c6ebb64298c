package ownership

import (
	"fmt"
	"io"
	"os"
)

// PrintMessage writes message followed by a newline to standard output and
// returns the number of bytes written. It exists to demonstrate the plain
// free-function convention: value in, count out, no ownership involved.
func PrintMessage(message string) (int, error) {
	return PrintMessageTo(os.Stdout, message)
}

// PrintMessageTo is PrintMessage with an explicit destination.
func PrintMessageTo(w io.Writer, message string) (int, error) {
	n, err := fmt.Fprintln(w, message)
	if err != nil {
		return n, fmt.Errorf("write message: %w", err)
	}
	return n, nil
}
