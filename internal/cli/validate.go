package cli

import (
	"fmt"

	"github.com/example/apimap-gen/internal/config"
	"github.com/example/apimap-gen/internal/validator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newValidateCommand(root *rootOptions) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "validate <report>",
		Short: "Check that a generated endpoint map is well formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := validator.ValidateReport(args[0], prefix)
			if err != nil {
				return fmt.Errorf("report validation failed: %w", err)
			}

			fields := []zap.Field{zap.String("report", args[0]), zap.Int("endpoints", summary.Endpoints)}
			for verb, n := range summary.Verbs {
				fields = append(fields, zap.Int(verb, n))
			}
			root.logger().Info("Report is valid.", fields...)
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", config.Default().Prefix, "URL prefix every endpoint must start with")

	return cmd
}
