package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"tally/internal/config"
	"tally/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`

	Tasks   TasksCmd   `cmd:"tasks" help:"List available tasks"`
	Set     SetCmd     `cmd:"set" help:"Show all settings, or store a setting"`
	Unset   UnsetCmd   `cmd:"unset" help:"Remove a setting"`
	Alias   AliasCmd   `cmd:"alias" help:"Create a task alias"`
	Unalias UnaliasCmd `cmd:"unalias" help:"Remove a task alias"`
	Aliases AliasesCmd `cmd:"aliases" help:"List task aliases"`
	Start   StartCmd   `cmd:"start" help:"Start a timer"`
	Log     LogCmd     `cmd:"log" help:"Record a completed block of time"`
	Stop    StopCmd    `cmd:"stop" help:"Stop the running timer"`
	Note    NoteCmd    `cmd:"note" help:"Show or append to the notes of the current entry"`
	Cancel  CancelCmd  `cmd:"cancel" aliases:"oops,nvm" help:"Delete the current entry"`
	Resume  ResumeCmd  `cmd:"resume" help:"Restart the last stopped timer"`
	Show    ShowCmd    `cmd:"show" help:"Show the entries of a day"`
	Config  ConfigCmd  `cmd:"config" help:"Show the connection configuration"`
	Info    VersionCmd `cmd:"version" name:"version" help:"Show version information"`

	// Internal fields (not flags)
	Container *Container `kong:"-"`
	Stdin     io.Reader  `kong:"-"`
	Stdout    io.Writer  `kong:"-"`
}

// AfterApply initializes logging after CLI parsing and wires the container
func (c *CLI) AfterApply() error {
	if c.Stdin == nil {
		c.Stdin = os.Stdin
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}

	// A container supplied up front (tests) is used as-is
	if c.Container != nil {
		_, err := logging.Initialize(logging.Options{Debug: c.Debug, DebugFile: c.DebugFile, MaxLogFiles: c.MaxLogFiles})
		return err
	}

	// Precedence: CLI flags > TALLY_* env vars > settings file > defaults
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.Debug {
		cfg.Debug = true
	}
	if c.DebugFile != "" {
		cfg.DebugFile = c.DebugFile
	}
	if c.MaxLogFiles != 100 {
		cfg.MaxLogFiles = c.MaxLogFiles
	}

	logFilePath, err := logging.Initialize(logging.Options{
		Debug:       cfg.Debug,
		DebugFile:   cfg.DebugFile,
		LogDir:      filepath.Join(cfg.Home, "logs"),
		MaxLogFiles: cfg.MaxLogFiles,
	})
	if err != nil {
		return err
	}
	if logFilePath != "" {
		logging.Logger.Debug("Logging initialized", "path", logFilePath)
	}

	// Create container AFTER logging is initialized so the cache's GORM logger has a target
	container, err := NewContainer(cfg, c.Stdin, c.Stdout)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.Stdout, format, args...)
}

func (c *CLI) println(s string) {
	fmt.Fprintln(c.Stdout, s)
}

// colorful reports whether output goes to a terminal
func (c *CLI) colorful() bool {
	f, ok := c.Stdout.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
