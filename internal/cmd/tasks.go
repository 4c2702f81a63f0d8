package cmd

import (
	"context"

	"tally/internal/logging"
	"tally/internal/theme"
)

// TasksCmd lists the task catalog
type TasksCmd struct {
	ClearCache  bool   `name:"clearcache" help:"Refresh the cached task list from the remote service"`
	ProjectCode string `arg:"" optional:"" help:"Only list tasks of the project with this code"`
}

// Run executes the tasks command
func (t *TasksCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing tasks command", "clear_cache", t.ClearCache, "project_code", t.ProjectCode)

	tasks, err := cli.Container.Catalog.List(context.Background(), t.ClearCache, t.ProjectCode)
	if err != nil {
		return err
	}

	color := cli.colorful()
	for _, task := range tasks {
		ids := theme.Paint(color, theme.IDStyle, task.ProjectID+" "+task.TaskID)
		cli.printf("%s\t%s\n", ids, task.DisplayName())
	}
	return nil
}
