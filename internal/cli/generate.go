package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/example/apimap-gen/internal/config"
	"github.com/example/apimap-gen/internal/generator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// GenerateFlags holds command line values for generation. Only flags set
// explicitly override the config file.
type GenerateFlags struct {
	ConfigPath     string
	Source         string
	Output         string
	Format         string
	Prefix         string
	Extension      string
	Suffix         string
	ExcludeMethods []string
}

func (f *GenerateFlags) register(cmd *cobra.Command) {
	defaults := config.Default()

	cmd.Flags().StringVar(&f.ConfigPath, "config", "", "Path to .apimap.yml config file")
	cmd.Flags().StringVarP(&f.Source, "source", "s", defaults.Source, "Directory containing controller sources")
	cmd.Flags().StringVarP(&f.Output, "output", "o", defaults.Output, "Path to output file or '-' for stdout")
	cmd.Flags().StringVarP(&f.Format, "format", "f", defaults.Format, "Output format: text, json or yaml")
	cmd.Flags().StringVar(&f.Prefix, "prefix", defaults.Prefix, "URL prefix of every endpoint")
	cmd.Flags().StringVar(&f.Extension, "extension", defaults.Extension, "Extension of controller source files")
	cmd.Flags().StringVar(&f.Suffix, "suffix", defaults.Suffix, "Suffix stripped from file names to get the resource name")
	cmd.Flags().StringSliceVar(&f.ExcludeMethods, "exclude", defaults.ExcludeMethods, "Glob patterns of method names to skip")
}

// Resolve loads the config file and applies explicitly set flags over it.
func (f *GenerateFlags) Resolve(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if len(args) > 0 && !flags.Changed("source") {
		cfg.Source = args[0]
	}
	if flags.Changed("source") {
		cfg.Source = f.Source
	}
	if flags.Changed("output") {
		cfg.Output = f.Output
	}
	if flags.Changed("format") {
		cfg.Format = f.Format
	}
	if flags.Changed("prefix") {
		cfg.Prefix = f.Prefix
	}
	if flags.Changed("extension") {
		cfg.Extension = f.Extension
	}
	if flags.Changed("suffix") {
		cfg.Suffix = f.Suffix
	}
	if flags.Changed("exclude") {
		cfg.ExcludeMethods = f.ExcludeMethods
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newGenerateCommand(root *rootOptions) *cobra.Command {
	var flags GenerateFlags

	cmd := &cobra.Command{
		Use:   "generate [source-dir]",
		Short: "Generate the endpoint map",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Resolve(cmd, args)
			if err != nil {
				return err
			}
			_, err = GenerateReport(cmd.Context(), cfg, cmd.OutOrStdout(), root.logger())
			return err
		},
	}
	flags.register(cmd)

	return cmd
}

// GenerateReport runs one full generation and writes the report. stdout
// receives the report when the configured output is "-".
func GenerateReport(ctx context.Context, cfg *config.Config, stdout io.Writer, log *zap.Logger) (*generator.Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	gen := generator.New(generator.Options{
		Prefix:         cfg.Prefix,
		Suffix:         cfg.Suffix,
		Extension:      cfg.Extension,
		ExcludeMethods: cfg.ExcludeMethods,
	}, log)

	result, err := gen.ParseDirectory(ctx, cfg.Source)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := generator.Render(&buf, cfg.Format, result); err != nil {
		return nil, err
	}

	if err := writeOutput(cfg.Output, buf.Bytes(), stdout); err != nil {
		return nil, err
	}

	log.Info("Endpoint map written.",
		zap.String("output", cfg.Output),
		zap.String("format", cfg.Format),
		zap.Int("endpoints", len(result.Endpoints)),
	)
	return result, nil
}

// writeOutput replaces path with data, creating its directory if needed
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}

	outDir := filepath.Dir(path)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
