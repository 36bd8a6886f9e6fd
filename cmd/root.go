package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// InitializeCommands sets up the cobra commands
func InitializeCommands() *cobra.Command {
	rootCmd := createRootCommand()

	rootCmd.AddCommand(
		createDemoCommand(),
		createRunCommand(afero.NewOsFs()),
		createVersionCommand(),
	)

	return rootCmd
}

func createRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linkedlists",
		Short: "linkedlists exercises a singly linked list, a stack, and a queue",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	return cmd
}
