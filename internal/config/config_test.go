package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewDefaults(t *testing.T) {
	cfg := New()
	assert.Empty(t, cfg.OutputDir)
	assert.Equal(t, "  ", cfg.Indent)
	assert.Equal(t, "Generated code. Do not edit!", cfg.FileComment)
	assert.Empty(t, cfg.Samples)
}

func TestLoadYAMLConfig(t *testing.T) {
	path := writeTempConfig(t, "poet.yaml", `
outputDir: build/generated
indent: "    "
samples:
  - helloworld
  - shapes
`)

	cfg := New()
	require.NoError(t, cfg.LoadFile(path))

	assert.Equal(t, "build/generated", cfg.OutputDir)
	assert.Equal(t, "    ", cfg.Indent)
	assert.Equal(t, []string{"helloworld", "shapes"}, cfg.Samples)
	// Unset values keep their defaults.
	assert.Equal(t, "Generated code. Do not edit!", cfg.FileComment)
}

func TestLoadJSONConfig(t *testing.T) {
	path := writeTempConfig(t, "poet.json", `{
  "outputDir": "out",
  "fileComment": "Machine generated."
}`)

	cfg := New()
	require.NoError(t, cfg.LoadFile(path))

	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "Machine generated.", cfg.FileComment)
	assert.Equal(t, "  ", cfg.Indent)
}

func TestLoadConfigWithoutExtension(t *testing.T) {
	path := writeTempConfig(t, "poetrc", "outputDir: generated\n")

	cfg := New()
	require.NoError(t, cfg.LoadFile(path))
	assert.Equal(t, "generated", cfg.OutputDir)
}

func TestLoadMissingConfig(t *testing.T) {
	cfg := New()
	err := cfg.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadMalformedConfig(t *testing.T) {
	path := writeTempConfig(t, "bad.yaml", "outputDir: [unclosed")

	cfg := New()
	require.Error(t, cfg.LoadFile(path))
}
