package ui

import (
	"fmt"
	"io"
	"strings"
)

// FailureMessage is the fixed first line written when detection fails.
const FailureMessage = "ERROR: devcontainer.json is invalid or not found"

// Result writes the detection outcome as a single "true" or "false" line.
func Result(w io.Writer, found bool) error {
	_, err := fmt.Fprintln(w, found)
	return err
}

// Failure writes the fixed diagnostic followed by the underlying error text,
// folded onto a single line.
func Failure(w io.Writer, cause error) {
	fmt.Fprintln(w, FailureMessage)
	fmt.Fprintln(w, strings.Join(strings.Fields(cause.Error()), " "))
}
