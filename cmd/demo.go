package cmd

import (
	"fmt"
	"strings"

	"github.com/object88/linkedlists/demo"
	"github.com/spf13/cobra"
)

func createDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:       fmt.Sprintf("demo [%s]...", strings.Join(demo.Names(), "|")),
		Short:     "Walk through example operations on each structure",
		ValidArgs: demo.Names(),
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.Run(cmd.OutOrStdout(), args...)
		},
	}

	return cmd
}
