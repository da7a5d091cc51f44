package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var statsFlag bool
	var statsFormat string

	rootCmd := &cobra.Command{
		Use:           "vttclean <vtt_file>",
		Short:         "Extract plain transcript text from WebVTT captions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError{}
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cleanOptions{
				source:      args[0],
				outputPath:  outputPath,
				statsFormat: statsFormat,
			}
			if cmd.Flags().Changed("stats") {
				opts.stats = &statsFlag
			}
			return runClean(cmd, ctx, opts)
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(ctx.configFlag, "config", "c", "", "Configuration file path")
	flags.StringVar(ctx.logLevelFlag, "log-level", "", "Log level override (debug, info, warn, error)")
	flags.StringVar(ctx.logFormatFlag, "log-format", "", "Log format override (console, json)")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write cleaned text to a file instead of stdout")
	rootCmd.Flags().BoolVar(&statsFlag, "stats", false, "Report cleanup stats on stderr")
	rootCmd.Flags().StringVar(&statsFormat, "stats-format", "", "Stats format (table, json, yaml)")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
