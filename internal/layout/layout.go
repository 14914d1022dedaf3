package layout

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"resorg/internal/faults"
	"resorg/internal/reservoir"
)

const dirMode = 0o755

// EnsureDir guarantees that path exists and is a directory, creating it and
// any missing parents when absent. An existing non-directory is reported as a
// faults.ErrConflict error. Calling it on an existing directory is a no-op.
func EnsureDir(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return faults.Wrap(faults.ErrConflict, "layout", "ensure directory",
				fmt.Sprintf("something that is not a directory already exists at %s", path), nil)
		}
		return nil
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(path, dirMode); err != nil {
			if errors.Is(err, syscall.ENOTDIR) {
				return faults.Wrap(faults.ErrConflict, "layout", "ensure directory",
					fmt.Sprintf("a parent of %s is not a directory", path), err)
			}
			return fmt.Errorf("create directory %q: %w", path, err)
		}
		return nil
	default:
		if errors.Is(err, syscall.ENOTDIR) {
			return faults.Wrap(faults.ErrConflict, "layout", "ensure directory",
				fmt.Sprintf("a parent of %s is not a directory", path), err)
		}
		return fmt.Errorf("stat %q: %w", path, err)
	}
}

// TargetDir returns the reservoir directory for rec under root.
func TargetDir(root string, rec reservoir.Record) string {
	return filepath.Join(root, rec.Name)
}

// TargetPath returns the organized file path for rec under root:
// <root>/<name>/<name>_<year>.txt.
func TargetPath(root string, rec reservoir.Record) string {
	return filepath.Join(TargetDir(root, rec), rec.FileName())
}

// CheckDir reports a faults.ErrConflict error when something other than a
// directory occupies path. A missing path is not an error. Nothing is created.
func CheckDir(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return faults.Wrap(faults.ErrConflict, "layout", "check directory",
				fmt.Sprintf("something that is not a directory already exists at %s", path), nil)
		}
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case errors.Is(err, syscall.ENOTDIR):
		return faults.Wrap(faults.ErrConflict, "layout", "check directory",
			fmt.Sprintf("a parent of %s is not a directory", path), err)
	default:
		return fmt.Errorf("stat %q: %w", path, err)
	}
}
