package domain

import (
	"strings"
	"unicode"
)

// Task identifies a unit of billable work: a task within a project.
type Task struct {
	Billable    bool
	ClientName  string
	Name        string
	ProjectCode string
	ProjectID   string
	ProjectName string
	TaskID      string
}

// DisplayName renders the task for humans, e.g. "Acme - Website Design".
func (t Task) DisplayName() string {
	project := strings.TrimSpace(t.ProjectName + " " + t.Name)
	if t.ClientName == "" {
		return project
	}
	return t.ClientName + " - " + project
}

// Matches reports whether the task carries the given project and task IDs
func (t Task) Matches(projectID, taskID string) bool {
	return t.ProjectID == projectID && t.TaskID == taskID
}

// TaskReference is a user-supplied pointer to a task, either an alias or an explicit ID pair.
type TaskReference interface {
	isTaskReference()
	String() string
}

// AliasRef refers to a task through a `task.<name>` settings entry.
type AliasRef struct {
	Name string
}

func (AliasRef) isTaskReference() {}

func (r AliasRef) String() string { return "@" + r.Name }

// ExplicitRef refers to a task by its project and task IDs.
type ExplicitRef struct {
	ProjectID string
	TaskID    string
}

func (ExplicitRef) isTaskReference() {}

func (r ExplicitRef) String() string { return r.ProjectID + " " + r.TaskID }

// AliasPrefix is the settings key prefix under which task aliases live
const AliasPrefix = "task."

// ParseTaskReference consumes a task reference from the front of tokens.
// "@name" yields an AliasRef; two numeric tokens yield an ExplicitRef.
// ok is false when tokens do not start with a reference, in which case rest == tokens.
func ParseTaskReference(tokens []string) (ref TaskReference, rest []string, ok bool) {
	if len(tokens) == 0 {
		return nil, tokens, false
	}

	if name, found := strings.CutPrefix(tokens[0], "@"); found && name != "" {
		return AliasRef{Name: name}, tokens[1:], true
	}

	if len(tokens) >= 2 && IsID(tokens[0]) && IsID(tokens[1]) {
		return ExplicitRef{ProjectID: tokens[0], TaskID: tokens[1]}, tokens[2:], true
	}

	return nil, tokens, false
}

// IsID reports whether s looks like a remote identifier (non-empty, digits only)
func IsID(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
