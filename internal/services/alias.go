package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"tally/internal/domain"
	"tally/internal/logging"
)

// Resolution is a task reference resolved against the catalog
type Resolution struct {
	DefaultNote string // text stored after the ID pair of an alias
	Task        domain.Task
}

// AliasResolver translates task references into catalog tasks using
// the task.<name> settings as its alias table.
type AliasResolver struct {
	catalog  *TaskCatalog
	settings *SettingsService
}

// NewAliasResolver creates a new AliasResolver
func NewAliasResolver(settings *SettingsService, catalog *TaskCatalog) *AliasResolver {
	return &AliasResolver{
		catalog:  catalog,
		settings: settings,
	}
}

// Resolve looks up ref and validates the pair it names against the catalog
func (r *AliasResolver) Resolve(ctx context.Context, ref domain.TaskReference) (*Resolution, error) {
	var (
		projectID, taskID string
		defaultNote       string
	)

	switch ref := ref.(type) {
	case domain.AliasRef:
		value, ok := r.settings.Get(domain.AliasPrefix + ref.Name)
		if !ok {
			return nil, &domain.UnknownAliasError{Name: ref.Name}
		}
		fields := strings.Fields(value)
		if len(fields) < 2 {
			return nil, &domain.ConfigError{
				Path: domain.AliasPrefix + ref.Name,
				Err:  fmt.Errorf("expected \"<project_id> <task_id>\", got %q", value),
			}
		}
		projectID, taskID = fields[0], fields[1]
		defaultNote = strings.Join(fields[2:], " ")
	case domain.ExplicitRef:
		projectID, taskID = ref.ProjectID, ref.TaskID
	default:
		return nil, &domain.AmbiguousTaskError{Aliases: r.ListAliases()}
	}

	task, err := r.catalog.Find(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, &domain.UnknownTaskError{ProjectID: projectID, TaskID: taskID}
	}

	logging.Logger.Debug("Task reference resolved", "ref", ref.String(), "project_id", projectID, "task_id", taskID)
	return &Resolution{DefaultNote: defaultNote, Task: *task}, nil
}

// ResolveArgs parses a task reference from the front of tokens and resolves it.
// The tokens following the reference are returned as rest.
func (r *AliasResolver) ResolveArgs(ctx context.Context, tokens []string) (*Resolution, []string, error) {
	ref, rest, ok := domain.ParseTaskReference(tokens)
	if !ok {
		return nil, tokens, &domain.AmbiguousTaskError{Aliases: r.ListAliases()}
	}

	resolution, err := r.Resolve(ctx, ref)
	if err != nil {
		return nil, tokens, err
	}
	return resolution, rest, nil
}

// CreateAlias stores name as an alias for the given pair once the catalog confirms it exists
func (r *AliasResolver) CreateAlias(ctx context.Context, name, projectID, taskID string) (*domain.Task, error) {
	name = strings.TrimPrefix(name, "@")
	if name == "" {
		return nil, fmt.Errorf("alias name must not be empty")
	}

	task, err := r.catalog.Find(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, &domain.UnknownTaskError{ProjectID: projectID, TaskID: taskID}
	}

	if err := r.settings.Set(domain.AliasPrefix+name, projectID+" "+taskID); err != nil {
		return nil, err
	}

	logging.Logger.Info("Alias created", "alias", name, "project_id", projectID, "task_id", taskID)
	return task, nil
}

// RemoveAlias deletes the alias; removing an unknown alias is not an error
func (r *AliasResolver) RemoveAlias(name string) error {
	name = strings.TrimPrefix(name, "@")
	return r.settings.Unset(domain.AliasPrefix + name)
}

// ListAliases returns every alias as "@name", sorted
func (r *AliasResolver) ListAliases() []string {
	names := r.settings.WithPrefix(domain.AliasPrefix)
	aliases := make([]string, 0, len(names))
	for name := range names {
		aliases = append(aliases, "@"+name)
	}
	sort.Strings(aliases)
	return aliases
}
