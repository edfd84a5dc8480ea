package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/toyz/poet/internal/config"
	"github.com/toyz/poet/internal/utils"
	"github.com/toyz/poet/pkg/poet"
)

// Generator coordinates the CLI generation process: it resolves sample
// names, applies file-level configuration, and writes the rendered
// sources to the output directory or stdout.
type Generator struct {
	cfg         *config.Config
	diagnostics *utils.DiagnosticSystem
	summary     GenerationSummary
}

// GenerationSummary captures what a run produced.
type GenerationSummary struct {
	SamplesRun     int
	FilesGenerated []string
	Elapsed        time.Duration
}

// NewGenerator creates a new CLI generator.
func NewGenerator(cfg *config.Config, diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		cfg:         cfg,
		diagnostics: diagnostics,
		summary:     GenerationSummary{FilesGenerated: make([]string, 0)},
	}
}

// GetSummary returns the generation summary of the last run.
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run generates the named samples. With no names it falls back to the
// configured samples, then to every built-in sample.
func (g *Generator) Run(names []string) error {
	startTime := time.Now()
	g.summary = GenerationSummary{FilesGenerated: make([]string, 0)}

	samples, err := g.resolveSamples(names)
	if err != nil {
		return err
	}

	for _, sample := range samples {
		g.diagnostics.PhaseHeader(sample.Name)

		builders, err := sample.Build()
		if err != nil {
			return fmt.Errorf("building sample %s: %w", sample.Name, err)
		}

		for _, builder := range builders {
			file, err := g.finishFile(builder)
			if err != nil {
				return fmt.Errorf("building sample %s: %w", sample.Name, err)
			}
			if err := g.writeFile(file); err != nil {
				return fmt.Errorf("writing sample %s: %w", sample.Name, err)
			}
		}
		g.summary.SamplesRun++
	}

	g.summary.Elapsed = time.Since(startTime)
	return nil
}

func (g *Generator) resolveSamples(names []string) ([]Sample, error) {
	if len(names) == 0 {
		names = g.cfg.Samples
	}
	if len(names) == 0 {
		return Samples(), nil
	}
	out := make([]Sample, 0, len(names))
	for _, name := range names {
		sample, ok := FindSample(name)
		if !ok {
			return nil, fmt.Errorf("unknown sample %q (use -list to see available samples)", name)
		}
		out = append(out, sample)
	}
	return out, nil
}

// finishFile applies the configured indent and file comment, then
// builds the immutable file.
func (g *Generator) finishFile(builder *poet.JavaFileBuilder) (*poet.JavaFile, error) {
	if g.cfg.Indent != "" {
		builder.Indent(g.cfg.Indent)
	}
	if g.cfg.FileComment != "" {
		builder.AddFileComment("$L", g.cfg.FileComment)
	}
	return builder.Build()
}

func (g *Generator) writeFile(file *poet.JavaFile) error {
	if g.cfg.OutputDir == "" {
		g.diagnostics.Verbose("Printing %s to stdout", file.RelativePath())
		return file.WriteTo(os.Stdout)
	}

	path, err := file.WriteToDir(g.cfg.OutputDir)
	if err != nil {
		return err
	}
	g.diagnostics.FileWritten(path)
	g.summary.FilesGenerated = append(g.summary.FilesGenerated, path)
	return nil
}
