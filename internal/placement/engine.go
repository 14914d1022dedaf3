package placement

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"resorg/internal/faults"
	"resorg/internal/fileutil"
	"resorg/internal/layout"
	"resorg/internal/logging"
	"resorg/internal/preflight"
	"resorg/internal/reservoir"
	"resorg/internal/textutil"
)

// Action describes what Place did with a file.
type Action string

const (
	ActionCopied    Action = "copied"
	ActionMoved     Action = "moved"
	ActionUnchanged Action = "unchanged"
	ActionPlanned   Action = "planned"
)

// Result reports a single placement.
type Result struct {
	Source string
	Target string
	Record reservoir.Record
	Bytes  int64
	Action Action
}

// Engine places reservoir files into a destination tree.
type Engine struct {
	opts   Options
	logger *slog.Logger
}

// NewEngine constructs an engine. A nil logger discards output.
func NewEngine(opts Options, logger *slog.Logger) *Engine {
	return &Engine{opts: opts, logger: logging.NewComponentLogger(logger, "placement")}
}

// Place organizes src under destRoot. The context is only consulted before
// work starts; a copy in progress is never interrupted.
func (e *Engine) Place(ctx context.Context, src, destRoot string) (Result, error) {
	result := Result{Source: src}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	rec, err := reservoir.ParseFile(src)
	if err != nil {
		return result, err
	}
	result.Record = rec
	if err := e.checkName(src, rec); err != nil {
		return result, err
	}

	info, err := os.Stat(src)
	if err != nil {
		return result, faults.Wrap(faults.ErrIO, "placement", "stat source", src, err)
	}
	result.Bytes = info.Size()

	targetDir := layout.TargetDir(destRoot, rec)
	result.Target = layout.TargetPath(destRoot, rec)
	logger := e.logger.With(
		logging.String(logging.FieldReservoir, rec.Name),
		logging.String(logging.FieldYear, rec.Year),
	)

	if e.opts.DryRun {
		if err := e.plan(targetDir, result.Target); err != nil {
			return result, err
		}
		result.Action = ActionPlanned
		logger.Info("placement planned",
			logging.String(logging.FieldSource, src),
			logging.String(logging.FieldTarget, result.Target),
			logging.String(logging.FieldAction, e.verb()),
		)
		return result, nil
	}

	if err := layout.EnsureDir(targetDir); err != nil {
		return result, err
	}

	if fileutil.SameFile(src, result.Target) {
		result.Action = ActionUnchanged
		logger.Info("file already in place",
			logging.String(logging.FieldTarget, result.Target),
			logging.String(logging.FieldAction, string(ActionUnchanged)),
		)
		return result, nil
	}

	if e.opts.refuseExisting() {
		if err := refuseIfExists(result.Target); err != nil {
			return result, err
		}
	}

	if err := e.checkSpace(src, targetDir, uint64(info.Size())); err != nil {
		return result, err
	}

	if e.opts.Move {
		if err := fileutil.MoveFile(src, result.Target); err != nil {
			return result, faults.Wrap(faults.ErrIO, "placement", "move", fmt.Sprintf("%s -> %s", src, result.Target), err)
		}
		result.Action = ActionMoved
	} else {
		if err := e.copy(src, result.Target); err != nil {
			return result, faults.Wrap(faults.ErrIO, "placement", "copy", fmt.Sprintf("%s -> %s", src, result.Target), err)
		}
		result.Action = ActionCopied
	}

	logger.Info("file placed",
		logging.String(logging.FieldSource, src),
		logging.String(logging.FieldTarget, result.Target),
		logging.String(logging.FieldAction, string(result.Action)),
		logging.Int64("bytes", result.Bytes),
	)
	return result, nil
}

func (e *Engine) checkName(src string, rec reservoir.Record) error {
	if rec.Name == "" {
		if e.opts.AllowEmptyName {
			return nil
		}
		return faults.Wrap(faults.ErrFormat, "placement", "check name",
			fmt.Sprintf("%s: reservoir name is empty", src), nil)
	}
	if !textutil.IsPathSegment(rec.Name) {
		return faults.Wrap(faults.ErrFormat, "placement", "check name",
			fmt.Sprintf("%s: reservoir name %q cannot be used as a directory name", src, rec.Name), nil)
	}
	return nil
}

func (e *Engine) plan(targetDir, target string) error {
	if err := layout.CheckDir(targetDir); err != nil {
		return err
	}
	if e.opts.refuseExisting() {
		return refuseIfExists(target)
	}
	info, err := os.Stat(target)
	if err == nil && info.IsDir() {
		return faults.Wrap(faults.ErrConflict, "placement", "plan",
			fmt.Sprintf("a directory already exists at %s", target), nil)
	}
	return nil
}

func refuseIfExists(target string) error {
	_, err := os.Lstat(target)
	switch {
	case err == nil:
		return faults.Wrap(faults.ErrConflict, "placement", "check target",
			fmt.Sprintf("%s already exists", target), nil)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return faults.Wrap(faults.ErrIO, "placement", "check target", target, err)
	}
}

// checkSpace skips same-filesystem moves, which only rename.
func (e *Engine) checkSpace(src, targetDir string, size uint64) error {
	if e.opts.Move && preflight.SameDevice(src, targetDir) {
		return nil
	}
	return preflight.CheckFreeSpace("Target filesystem", targetDir, size+e.opts.MinFreeBytes).Err()
}

func (e *Engine) copy(src, dst string) error {
	if e.opts.VerifyCopy {
		if _, err := fileutil.CopyFileVerified(src, dst); err != nil {
			return err
		}
		if e.opts.PreserveTimes {
			return fileutil.CopyTimes(src, dst)
		}
		return nil
	}
	return fileutil.CopyFile(src, dst, fileutil.CopyOptions{PreserveTimes: e.opts.PreserveTimes})
}

func (e *Engine) verb() string {
	if e.opts.Move {
		return "move"
	}
	return "copy"
}
