package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"tally/internal/cmd"
	"tally/internal/theme"
	"tally/version"
)

func main() {
	// Parse CLI arguments with Kong
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("tally"),
		kong.Description(version.Tagline),
		kong.Vars{"version": version.Info()},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	// Execute the selected command
	err := ctx.Run()
	if closeErr := cli.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		color := isatty.IsTerminal(os.Stderr.Fd())
		fmt.Fprintf(os.Stderr, "%s %v\n", theme.Paint(color, theme.ErrorStyle, "Error:"), err)
		os.Exit(1)
	}
}
