package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release version, set at build time with
// `-ldflags "-X github.com/object88/linkedlists/cmd.Version=..."`
var Version = "0.1.0"

func createVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "linkedlists %s\n", Version)
		},
	}

	return cmd
}
