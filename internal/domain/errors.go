package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAlreadyRunning  = errors.New("there is already a timer running")
	ErrEntryNotFound   = errors.New("entry not found")
	ErrNoMatchingTasks = errors.New("No matching tasks.") //nolint:staticcheck // shown to users as is
	ErrNoMatchingTimer = errors.New("no matching timer found")
	ErrNoRunningTimer  = errors.New("no running timers found")
	ErrNothingToCancel = errors.New("nothing to cancel")
)

// ConfigError reports an unreadable or corrupt local settings file or value.
type ConfigError struct {
	Err  error
	Path string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// UnknownAliasError is returned when @name has no task.<name> setting.
type UnknownAliasError struct {
	Name string
}

func (e *UnknownAliasError) Error() string {
	return fmt.Sprintf("unknown task alias @%s", e.Name)
}

// AmbiguousTaskError is returned when arguments name neither an alias nor an ID pair.
// Aliases carries the known aliases so the user can pick one.
type AmbiguousTaskError struct {
	Aliases []string
}

func (e *AmbiguousTaskError) Error() string {
	if len(e.Aliases) == 0 {
		return "unknown task alias, no aliases defined (see 'tally alias')"
	}
	return "unknown task alias, try one of the following: " + strings.Join(e.Aliases, ", ")
}

// UnknownTaskError is returned when an ID pair is not in the task catalog.
type UnknownTaskError struct {
	ProjectID string
	TaskID    string
}

func (e *UnknownTaskError) Error() string {
	return fmt.Sprintf("unrecognized project and task ID: %s %s", e.ProjectID, e.TaskID)
}

// DeletionFailedError is returned when the service rejects deleting an entry.
type DeletionFailedError struct {
	Entry string
	Err   error
}

func (e *DeletionFailedError) Error() string {
	return fmt.Sprintf("failed to delete %s: %v", e.Entry, e.Err)
}

func (e *DeletionFailedError) Unwrap() error { return e.Err }

// RemoteError is a failure reported by (or while reaching) the time-tracking service.
// Status is 0 when no HTTP response was received.
type RemoteError struct {
	Err     error
	Message string
	Status  int
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("remote service unreachable: %s", e.Message)
	}
	return fmt.Sprintf("remote service error (status %d): %s", e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// IsRemoteStatus reports whether err carries a RemoteError with the given status
func IsRemoteStatus(err error, status int) bool {
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr) && remoteErr.Status == status
}
