package oid

import "testing"

// UseSequence configures a predictable sequence of OIDs for the duration of the test.
func UseSequence(t *testing.T) {
	generator = NewSequenceGenerator()
	t.Cleanup(Reset)
}
