package cmd

import (
	"context"

	"tally/internal/logging"
	"tally/internal/theme"
)

// AliasCmd creates a task alias
type AliasCmd struct {
	Name      string `arg:"" help:"Alias name (used as @name)"`
	ProjectID string `arg:"" help:"Project ID (see 'tally tasks')"`
	TaskID    string `arg:"" help:"Task ID (see 'tally tasks')"`
}

// Run executes the alias command
func (a *AliasCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing alias command", "alias", a.Name, "project_id", a.ProjectID, "task_id", a.TaskID)

	task, err := cli.Container.Resolver.CreateAlias(context.Background(), a.Name, a.ProjectID, a.TaskID)
	if err != nil {
		return err
	}

	cli.printf("Added alias @%s for %s.\n", a.Name, task.DisplayName())
	return nil
}

// UnaliasCmd removes a task alias
type UnaliasCmd struct {
	Name string `arg:"" help:"Alias name"`
}

// Run executes the unalias command
func (u *UnaliasCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing unalias command", "alias", u.Name)

	if err := cli.Container.Resolver.RemoveAlias(u.Name); err != nil {
		return err
	}

	cli.printf("Removed task alias @%s.\n", u.Name)
	return nil
}

// AliasesCmd lists task aliases
type AliasesCmd struct{}

// Run executes the aliases command
func (a *AliasesCmd) Run(cli *CLI) error {
	color := cli.colorful()
	for _, alias := range cli.Container.Resolver.ListAliases() {
		cli.println(theme.Paint(color, theme.AliasStyle, alias))
	}
	return nil
}
