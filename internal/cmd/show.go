package cmd

import (
	"context"
	"os"
	"strings"

	"golang.org/x/term"

	"tally/internal/logging"
	"tally/internal/services"
	"tally/internal/theme"
)

// ShowCmd prints the entries of a day, or of several days ending on a date
type ShowCmd struct {
	Days int      `help:"Number of days to include, ending on the given date" default:"1"`
	Date []string `arg:"" optional:"" help:"Date expression, e.g. yesterday, 'last friday', 2024-01-15"`
}

// Run executes the show command
func (s *ShowCmd) Run(cli *CLI) error {
	now := cli.Container.Now()
	date, err := parseDate(s.Date, now)
	if err != nil {
		return err
	}

	logging.Logger.Info("Executing show command", "date", date.Format("2006-01-02"), "days", s.Days)

	summary, err := cli.Container.Summary.Show(context.Background(), date, s.Days)
	if err != nil {
		return err
	}

	out := services.FormatSummary(summary, cli.terminalWidth(), clock(summary.At))
	if cli.colorful() {
		out = paintSummary(out)
	}
	cli.printf("%s", out)
	return nil
}

// terminalWidth returns the output width, or 0 when output is not a terminal
func (c *CLI) terminalWidth() int {
	f, ok := c.Stdout.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 80
	}
	return width
}

func paintSummary(out string) string {
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	for i, line := range lines {
		switch {
		case i == len(lines)-1:
			lines[i] = theme.TotalStyle.Render(line)
		case i == len(lines)-2:
			lines[i] = theme.SeparatorStyle.Render(line)
		case strings.Contains(line, "(running) "):
			lines[i] = strings.Replace(line, "(running) ", theme.RunningStyle.Render("(running)")+" ", 1)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
