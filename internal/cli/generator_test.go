package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/poet/internal/config"
	"github.com/toyz/poet/internal/utils"
)

func testGenerator(t *testing.T, cfg *config.Config) *Generator {
	t.Helper()
	diagnostics := utils.NewQuietDiagnostics()
	diagnostics.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})
	return NewGenerator(cfg, diagnostics)
}

func TestGeneratorRunsHelloWorldSample(t *testing.T) {
	cfg := config.New()
	cfg.OutputDir = t.TempDir()

	gen := testGenerator(t, cfg)
	require.NoError(t, gen.Run([]string{"helloworld"}))

	summary := gen.GetSummary()
	assert.Equal(t, 1, summary.SamplesRun)
	require.Len(t, summary.FilesGenerated, 1)

	path := summary.FilesGenerated[0]
	assert.Equal(t,
		filepath.Join(cfg.OutputDir, "com", "example", "helloworld", "HelloWorld.java"),
		path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)

	assert.True(t, strings.HasPrefix(text, "// Generated code. Do not edit!\n"))
	assert.Contains(t, text, "package com.example.helloworld;")
	assert.Contains(t, text, "public final class HelloWorld {")
	assert.Contains(t, text, `System.out.println("Hello, World!");`)
}

func TestGeneratorRunsAllSamplesByDefault(t *testing.T) {
	cfg := config.New()
	cfg.OutputDir = t.TempDir()

	gen := testGenerator(t, cfg)
	require.NoError(t, gen.Run(nil))

	summary := gen.GetSummary()
	assert.Equal(t, len(Samples()), summary.SamplesRun)
	// The shapes sample alone produces four files.
	assert.Greater(t, len(summary.FilesGenerated), 4)
}

func TestGeneratorUsesConfiguredSamples(t *testing.T) {
	cfg := config.New()
	cfg.OutputDir = t.TempDir()
	cfg.Samples = []string{"shapes"}

	gen := testGenerator(t, cfg)
	require.NoError(t, gen.Run(nil))

	summary := gen.GetSummary()
	assert.Equal(t, 1, summary.SamplesRun)
	assert.Len(t, summary.FilesGenerated, 4)
}

func TestGeneratorRejectsUnknownSample(t *testing.T) {
	cfg := config.New()
	cfg.OutputDir = t.TempDir()

	gen := testGenerator(t, cfg)
	err := gen.Run([]string{"nonsense"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown sample "nonsense"`)
}

func TestGeneratorAppliesIndentAndComment(t *testing.T) {
	cfg := config.New()
	cfg.OutputDir = t.TempDir()
	cfg.Indent = "    "
	cfg.FileComment = "Build artifact."

	gen := testGenerator(t, cfg)
	require.NoError(t, gen.Run([]string{"helloworld"}))

	content, err := os.ReadFile(gen.GetSummary().FilesGenerated[0])
	require.NoError(t, err)
	text := string(content)

	assert.True(t, strings.HasPrefix(text, "// Build artifact.\n"))
	assert.Contains(t, text, "\n    public static void main(String[] args) {")
}

func TestSamplesAreSortedAndFindable(t *testing.T) {
	samples := Samples()
	require.NotEmpty(t, samples)
	for i := 1; i < len(samples); i++ {
		assert.Less(t, samples[i-1].Name, samples[i].Name)
	}

	for _, s := range samples {
		found, ok := FindSample(s.Name)
		require.True(t, ok)
		assert.Equal(t, s.Name, found.Name)
		assert.NotEmpty(t, s.Description)
	}

	_, ok := FindSample("missing")
	assert.False(t, ok)
}

func TestEverySampleBuilds(t *testing.T) {
	for _, sample := range Samples() {
		t.Run(sample.Name, func(t *testing.T) {
			builders, err := sample.Build()
			require.NoError(t, err)
			require.NotEmpty(t, builders)
			for _, b := range builders {
				file, err := b.Build()
				require.NoError(t, err)
				assert.NotEmpty(t, file.Render())
			}
		})
	}
}

func TestShapesSampleOutput(t *testing.T) {
	sample, ok := FindSample("shapes")
	require.True(t, ok)

	builders, err := sample.Build()
	require.NoError(t, err)
	require.Len(t, builders, 4)

	rendered := make(map[string]string)
	for _, b := range builders {
		file, err := b.Build()
		require.NoError(t, err)
		rendered[file.Type().Name()] = file.Render()
	}

	assert.Contains(t, rendered["Shape"],
		"public sealed interface Shape permits Circle, Rectangle {")
	assert.Contains(t, rendered["Circle"],
		"public record Circle(double radius) implements Shape {")
	assert.Contains(t, rendered["Unit"], "METERS(\"m\")")
	assert.Contains(t, rendered["Unit"], "private final String symbol;")
}
