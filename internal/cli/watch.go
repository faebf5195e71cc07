package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/apimap-gen/internal/watcher"
	"github.com/spf13/cobra"
)

func newWatchCommand(root *rootOptions) *cobra.Command {
	var flags GenerateFlags

	cmd := &cobra.Command{
		Use:   "watch [source-dir]",
		Short: "Regenerate the endpoint map whenever a controller changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Resolve(cmd, args)
			if err != nil {
				return err
			}
			log := root.logger()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if _, err := GenerateReport(ctx, cfg, cmd.OutOrStdout(), log); err != nil {
				return err
			}

			w := &watcher.Watcher{
				Dir:       cfg.Source,
				Extension: cfg.Extension,
				Log:       log,
				OnChange: func(ctx context.Context) error {
					_, err := GenerateReport(ctx, cfg, cmd.OutOrStdout(), log)
					return err
				},
			}
			return w.Watch(ctx)
		},
	}
	flags.register(cmd)

	return cmd
}
