package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/poet/internal/config"
)

func TestCleanRemovesOnlyGeneratedFiles(t *testing.T) {
	dir := t.TempDir()
	pkgDir := filepath.Join(dir, "com", "example")
	require.NoError(t, os.MkdirAll(pkgDir, 0o755))

	generated := filepath.Join(pkgDir, "Generated.java")
	require.NoError(t, os.WriteFile(generated,
		[]byte("// Generated code. Do not edit!\n\npackage com.example;\n"), 0o644))

	handWritten := filepath.Join(pkgDir, "Handmade.java")
	require.NoError(t, os.WriteFile(handWritten,
		[]byte("package com.example;\n\nclass Handmade {}\n"), 0o644))

	notJava := filepath.Join(pkgDir, "notes.txt")
	require.NoError(t, os.WriteFile(notJava,
		[]byte("// Generated code. Do not edit!\n"), 0o644))

	removed, err := NewCleaner("Generated code. Do not edit!").Clean(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{generated}, removed)
	assert.NoFileExists(t, generated)
	assert.FileExists(t, handWritten)
	assert.FileExists(t, notJava)
}

func TestCleanPrunesEmptiedDirectories(t *testing.T) {
	dir := t.TempDir()
	pkgDir := filepath.Join(dir, "com", "example", "deep")
	require.NoError(t, os.MkdirAll(pkgDir, 0o755))

	generated := filepath.Join(pkgDir, "Only.java")
	require.NoError(t, os.WriteFile(generated,
		[]byte("// Generated code. Do not edit!\n"), 0o644))

	_, err := NewCleaner("Generated code. Do not edit!").Clean(dir)
	require.NoError(t, err)

	assert.NoDirExists(t, pkgDir)
	assert.DirExists(t, dir)
}

func TestCleanRoundTripsWithGenerator(t *testing.T) {
	cfg := config.New()
	cfg.OutputDir = t.TempDir()

	gen := testGenerator(t, cfg)
	require.NoError(t, gen.Run(nil))
	written := gen.GetSummary().FilesGenerated
	require.NotEmpty(t, written)

	removed, err := NewCleaner(cfg.FileComment).Clean(cfg.OutputDir)
	require.NoError(t, err)
	assert.ElementsMatch(t, written, removed)
}

func TestCleanWithEmptyMarkerRemovesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "File.java")
	require.NoError(t, os.WriteFile(path,
		[]byte("// Generated code. Do not edit!\n"), 0o644))

	removed, err := NewCleaner("").Clean(dir)
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.FileExists(t, path)
}

func TestCleanMultilineMarkerMatchesFirstLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "File.java")
	require.NoError(t, os.WriteFile(path,
		[]byte("// Generated by poet.\n// Changes will be lost.\n"), 0o644))

	removed, err := NewCleaner("Generated by poet.\nChanges will be lost.").Clean(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, removed)
}
