package cmd

import (
	"github.com/object88/linkedlists/log"
	"github.com/object88/linkedlists/script"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const runLogname = "run"

func createRunCommand(fs afero.Fs) *cobra.Command {
	var verbose bool
	var level string

	cmd := &cobra.Command{
		Use:          "run <file>",
		Short:        "Execute a script of structure commands",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := log.GetLog(runLogname, cmd.ErrOrStderr())
			l.SetWriter(cmd.ErrOrStderr())

			lvl, err := log.ParseLevel(level)
			if err != nil {
				return err
			}
			if verbose && lvl < log.Verbose {
				lvl = log.Verbose
			}
			l.SetLevel(lvl)

			i := script.CreateInterpreter(cmd.OutOrStdout(), l)
			return i.RunFile(fs, args[0])
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Report structure errors to stderr as they happen")
	flags.StringVar(&level, "log-level", log.Error.String(), "Log level: none, error, warn, info, verbose, or debug")

	return cmd
}
