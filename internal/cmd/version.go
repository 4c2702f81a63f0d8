package cmd

import "tally/version"

// VersionCmd prints build information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(cli *CLI) error {
	cli.println(version.Info())
	return nil
}
