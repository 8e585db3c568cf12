package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func versionString() string {
	s := fmt.Sprintf("%s %s", appName, version)
	if commit != "none" && commit != "" {
		s += fmt.Sprintf(" (%s)", commit)
	}
	return s
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cinema-tui",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}
