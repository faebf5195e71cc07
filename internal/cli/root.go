// Package cli provides the command-line interface for apimap-gen.
package cli

import (
	"github.com/example/apimap-gen/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	logLevel    string
	development bool
	log         *zap.Logger
}

// Execute creates and runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "apimap-gen",
		Short: "Generate a map of inferred HTTP endpoints from controller sources",
		Long: `apimap-gen scans controller classes, infers an HTTP verb and URL path for
every public method from its name, and writes a plain text route map for
frontend developers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			log, err := logging.New(opts.logLevel, opts.development)
			if err != nil {
				return err
			}
			opts.log = log
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", `Log level: "debug", "info", "warn" or "error"`)
	rootCmd.PersistentFlags().BoolVar(&opts.development, "dev", false, "Human readable log output")

	rootCmd.AddCommand(newGenerateCommand(opts))
	rootCmd.AddCommand(newWatchCommand(opts))
	rootCmd.AddCommand(newValidateCommand(opts))

	return rootCmd
}

func (o *rootOptions) logger() *zap.Logger {
	if o.log == nil {
		return zap.NewNop()
	}
	return o.log
}
