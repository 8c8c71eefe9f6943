package bpe

import (
	"os"
	"testing"
)

// TestMain turns on the debug-mode invariant checks for the whole package
// test binary so every test below continuously exercises the core
// invariants, not just the dedicated property tests.
func TestMain(m *testing.M) {
	Debug = true
	os.Exit(m.Run())
}
