package generator

import (
	"context"
	"fmt"

	"github.com/example/apimap-gen/internal/source"
	"go.uber.org/zap"
)

// Options tune how source files are turned into endpoints
type Options struct {
	Prefix         string
	Suffix         string
	Extension      string
	ExcludeMethods []string
}

// Result is the outcome of a single generation run
type Result struct {
	Source    string           `json:"source" yaml:"source"`
	Prefix    string           `json:"prefix" yaml:"prefix"`
	Units     []ResourceUnit   `json:"-" yaml:"-"`
	Endpoints []EndpointRecord `json:"endpoints" yaml:"endpoints"`
}

// Generator infers endpoints from controller sources
type Generator struct {
	extractor   *Extractor
	synthesizer *Synthesizer
	extension   string
	log         *zap.Logger
}

// New creates a new generator. A nil logger discards output.
func New(opts Options, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	ext := opts.Extension
	if ext == "" {
		ext = source.DefaultExtension
	}
	suffix := opts.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return &Generator{
		extractor:   NewExtractor(suffix, opts.ExcludeMethods),
		synthesizer: NewSynthesizer(opts.Prefix),
		extension:   ext,
		log:         log,
	}
}

// ParseDirectory reads every source file in dir and generates its endpoints
func (g *Generator) ParseDirectory(ctx context.Context, dir string) (*Result, error) {
	files, err := source.Read(ctx, dir, g.extension)
	if err != nil {
		return nil, fmt.Errorf("failed to parse directory %s: %w", dir, err)
	}

	result := g.Generate(files)
	result.Source = dir
	return result, nil
}

// Generate processes files in the given order. Each call starts from an
// empty record list.
func (g *Generator) Generate(files []source.File) *Result {
	result := &Result{
		Prefix:    g.synthesizer.Prefix(),
		Endpoints: []EndpointRecord{},
	}

	for _, f := range files {
		unit, ok := g.extractor.Extract(f.Path, f.Content)
		if !ok {
			g.log.Debug("No class declaration, skipping.", zap.String("file", f.Path))
			continue
		}
		g.log.Debug("Resource extracted.", zap.Object("unit", unit))

		result.Units = append(result.Units, unit)
		result.Endpoints = append(result.Endpoints, g.unitEndpoints(unit)...)
	}

	g.log.Info("Endpoints generated.",
		zap.Int("files", len(files)),
		zap.Int("resources", len(result.Units)),
		zap.Int("endpoints", len(result.Endpoints)),
	)
	return result
}

func (g *Generator) unitEndpoints(unit ResourceUnit) []EndpointRecord {
	records := make([]EndpointRecord, 0, len(unit.ExposedMethods))
	for _, method := range unit.ExposedMethods {
		record := g.synthesizer.Synthesize(unit.ResourceName, method)
		record.SourceFile = unit.File
		records = append(records, record)
	}
	return records
}
