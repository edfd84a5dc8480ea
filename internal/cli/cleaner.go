package cli

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Cleaner removes previously generated Java sources from an output
// directory. A file counts as generated when its first line is a
// comment carrying the configured file comment, so hand-written sources
// sitting in the same tree are never touched.
type Cleaner struct {
	marker string
}

// NewCleaner creates a cleaner that recognizes files by the given file
// comment.
func NewCleaner(fileComment string) *Cleaner {
	return &Cleaner{marker: fileComment}
}

// Clean walks dir and removes every generated .java file. It returns
// the paths it removed.
func (c *Cleaner) Clean(dir string) ([]string, error) {
	var removed []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".java") {
			return nil
		}
		generated, err := c.isGenerated(path)
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", path, err)
		}
		if !generated {
			return nil
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
		removed = append(removed, path)
		return nil
	})
	if err != nil {
		return removed, err
	}

	c.pruneEmptyDirs(dir)
	return removed, nil
}

// isGenerated checks whether the file's first line is the generation
// marker comment.
func (c *Cleaner) isGenerated(path string) (bool, error) {
	if c.marker == "" {
		return false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return false, scanner.Err()
	}
	first := strings.TrimSpace(scanner.Text())
	return strings.HasPrefix(first, "// "+firstLine(c.marker)), nil
}

// pruneEmptyDirs removes directories left empty by the clean, deepest
// first. Failures are ignored; an occupied directory simply stays.
func (c *Cleaner) pruneEmptyDirs(root string) {
	var dirs []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err == nil && d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	for i := len(dirs) - 1; i >= 0; i-- {
		os.Remove(dirs[i])
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
