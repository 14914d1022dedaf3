package summary

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

const pattern = "**/*.txt"

// Entry is one listed file.
type Entry struct {
	Path string
	Size int64
}

// Walk calls fn with the path of every .txt file at any depth under root, in
// traversal order. Paths are root joined with the file's relative path. An
// error from fn, or any filesystem error, stops the walk and is returned.
func Walk(root string, fn func(path string) error) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("list %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("list %s: not a directory", root)
	}
	err = doublestar.GlobWalk(os.DirFS(root), pattern, func(rel string, _ fs.DirEntry) error {
		return fn(filepath.Join(root, filepath.FromSlash(rel)))
	}, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return fmt.Errorf("list %s: %w", root, err)
	}
	return nil
}

// List collects every .txt file under root with its size.
func List(root string) ([]Entry, error) {
	var entries []Entry
	err := Walk(root, func(path string) error {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
