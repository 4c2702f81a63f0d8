package cmd

import (
	"context"
	"strings"

	"tally/internal/domain"
	"tally/internal/logging"
	"tally/internal/services"
)

// StartCmd starts a timer
type StartCmd struct {
	Args []string `arg:"" optional:"" passthrough:"" help:"[time] <@alias | project_id task_id> [note...]"`
}

// Run executes the start command
func (s *StartCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing start command", "args", s.Args)

	ctx := context.Background()
	params, err := startParams(ctx, cli.Container, s.Args)
	if err != nil {
		return err
	}

	result, err := cli.Container.Entries.Start(ctx, *params)
	if err != nil {
		return err
	}

	cli.printf("Started timer for %s (at %s)\n", result.Entry, clock(result.At))
	return nil
}

// LogCmd records a completed block of time
type LogCmd struct {
	Args []string `arg:"" optional:"" passthrough:"" help:"[time] <@alias | project_id task_id> [note...]"`
}

// Run executes the log command
func (l *LogCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing log command", "args", l.Args)

	ctx := context.Background()
	params, err := startParams(ctx, cli.Container, l.Args)
	if err != nil {
		return err
	}

	result, err := cli.Container.Entries.Log(ctx, *params)
	if err != nil {
		return err
	}

	cli.printf("Stopped %s (at %s)\n", result.Entry, clock(result.At))
	return nil
}

// StopCmd stops the running timer
type StopCmd struct {
	Note []string `arg:"" optional:"" passthrough:"" help:"Note to append before stopping"`
}

// Run executes the stop command
func (s *StopCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing stop command")

	result, err := cli.Container.Entries.Stop(context.Background(), strings.Join(s.Note, " "))
	if err != nil {
		return err
	}

	cli.printf("Stopped %s (at %s)\n", result.Entry, clock(result.At))
	return nil
}

// NoteCmd shows or appends to the notes of the current entry
type NoteCmd struct {
	Text []string `arg:"" optional:"" passthrough:"" help:"Text to append; omit to print the current notes"`
}

// Run executes the note command
func (n *NoteCmd) Run(cli *CLI) error {
	text := strings.Join(n.Text, " ")
	logging.Logger.Info("Executing note command", "append", text != "")

	result, err := cli.Container.Entries.AppendNote(context.Background(), text)
	if err != nil {
		return err
	}

	if text == "" {
		if notes := result.Entry.Notes; notes != "" {
			cli.println(notes)
		}
		return nil
	}

	cli.printf("Added note to %s.\n", result.Entry)
	return nil
}

// CancelCmd deletes the running or most recent entry
type CancelCmd struct {
	Yes bool `help:"Delete without asking for confirmation" short:"y"`
}

// Run executes the cancel command
func (c *CancelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing cancel command", "yes", c.Yes)

	confirmer := cli.Container.Confirmer
	if c.Yes {
		confirmer = nil
	}

	result, err := cli.Container.Entries.Cancel(context.Background(), confirmer)
	if err != nil {
		return err
	}
	if !result.Deleted {
		return nil
	}

	cli.printf("Deleted entry %s.\n", result.Entry)
	return nil
}

// ResumeCmd restarts the last stopped timer
type ResumeCmd struct {
	Task []string `arg:"" optional:"" help:"@alias or project_id task_id; omit for the last entry"`
}

// Run executes the resume command
func (r *ResumeCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing resume command", "task", r.Task)

	var ref domain.TaskReference
	if len(r.Task) > 0 {
		parsed, _, ok := domain.ParseTaskReference(r.Task)
		if !ok {
			return &domain.AmbiguousTaskError{Aliases: cli.Container.Resolver.ListAliases()}
		}
		ref = parsed
	}

	result, err := cli.Container.Entries.Resume(context.Background(), ref)
	if err != nil {
		return err
	}

	cli.printf("Resumed %s (at %s)\n", result.Entry, clock(result.At))
	return nil
}

// startParams turns "[time] <task-ref> [note...]" into StartParams.
// An alias's default note is used when no note is given.
func startParams(ctx context.Context, c *Container, args []string) (*services.StartParams, error) {
	startedAt, hours, rest, err := parseStartingTime(args, c.Now())
	if err != nil {
		return nil, err
	}

	resolution, rest, err := c.Resolver.ResolveArgs(ctx, rest)
	if err != nil {
		return nil, err
	}

	note := strings.Join(rest, " ")
	if note == "" {
		note = resolution.DefaultNote
	}

	return &services.StartParams{
		Hours:     hours,
		Note:      note,
		StartedAt: startedAt,
		Task:      resolution.Task,
	}, nil
}
