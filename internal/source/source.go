// Package source enumerates and reads the controller files a report is built from.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtension selects which files in the source directory are scanned
const DefaultExtension = ".php"

// File is a source file and its raw content
type File struct {
	Path    string
	Content []byte
}

// List returns the regular files directly inside dir whose name ends in ext,
// sorted by file name. Subdirectories are not descended into.
func List(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read source directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}

// Read lists dir and loads every matching file in order
func Read(ctx context.Context, dir, ext string) ([]File, error) {
	paths, err := List(dir, ext)
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(filepath.Clean(p))
		if err != nil {
			return nil, fmt.Errorf("read source %s: %w", p, err)
		}
		files = append(files, File{Path: p, Content: data})
	}
	return files, nil
}
