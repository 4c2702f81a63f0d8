// Package integration_test provides end-to-end tests for tally CLI commands.
// Tests compile the binary once via TestMain and run each test with an
// isolated TALLY_HOME and its own fake time-tracking service.
package integration_test

import (
	"log"
	"os"
	"testing"

	"tally/test/integration/harness"
)

func TestMain(m *testing.M) {
	// Build binary once before all tests
	_, err := harness.BuildBinary()
	if err != nil {
		log.Fatalf("Failed to build binary: %v", err)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	harness.CleanupBinary()

	os.Exit(code)
}
