package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// describe renders both streams for assertion messages
func describe(result CommandResult) string {
	return fmt.Sprintf("stdout: %q\nstderr: %q", result.Stdout, result.Stderr)
}

// AssertSuccess verifies tally exited 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Zero(tb, result.ExitCode, "expected exit 0, got %d\n%s", result.ExitCode, describe(result))
}

// AssertExitCode verifies tally exited with expected
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode, "unexpected exit code\n%s", describe(result))
}

// AssertReported verifies tally failed and printed exactly one "Error: <message>" line on stderr
func AssertReported(tb testing.TB, result CommandResult, message string) {
	tb.Helper()
	assert.Equal(tb, 1, result.ExitCode, "expected exit 1\n%s", describe(result))
	assert.Equal(tb, "Error: "+message+"\n", result.Stderr, "unexpected error report\n%s", describe(result))
}

// AssertStdoutContains verifies stdout contains expected
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, describe(result))
}

// AssertStdoutNotContains verifies stdout lacks unexpected
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, describe(result))
}

// AssertStderrContains verifies stderr contains expected
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, describe(result))
}

// AssertStdoutEmpty verifies nothing but whitespace reached stdout
func AssertStdoutEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stdout), describe(result))
}
