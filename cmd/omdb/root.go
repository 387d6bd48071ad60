package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRootCommand() (*cobra.Command, *commandContext) {
	return newRootCommandWithFs(afero.NewOsFs())
}

// execute runs the command tree and then releases the log file. Cobra skips
// post-run hooks when a command fails.
func execute(cmd *cobra.Command, ctx *commandContext) error {
	err := cmd.Execute()
	if cerr := ctx.close(); err == nil {
		err = cerr
	}
	return err
}

func newRootCommandWithFs(fs afero.Fs) (*cobra.Command, *commandContext) {
	flags := &globalFlags{}
	ctx := newCommandContext(flags, fs)

	rootCmd := &cobra.Command{
		Use:           "omdb",
		Short:         "Query the OMDb movie metadata API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.validateOutput()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "table", "Output format: table, json or yaml")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level")
	rootCmd.PersistentFlags().BoolVar(&flags.mock, "mock", false, "Serve canned data instead of calling OMDb")

	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newTitleCommand(ctx))
	rootCmd.AddCommand(newGetCommand(ctx))
	rootCmd.AddCommand(newPosterCommand(ctx))

	return rootCmd, ctx
}
