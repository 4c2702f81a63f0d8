// Package harness provides utilities for integration testing the tally CLI.
// It handles binary compilation, environment isolation, a fake time-tracking
// service and command execution.
//
// Environment variables managed:
//   - TALLY_HOME: Isolated per test (temp directory)
//   - TALLY_DEBUG: Disabled to reduce noise
//   - TALLY_BASE_URL: Points at the test's fake service
//   - TALLY_LOGIN / TALLY_PASSWORD: Fixed test credentials
package harness
