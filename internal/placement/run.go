package placement

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"resorg/internal/layout"
	"resorg/internal/logging"
	"resorg/internal/preflight"
)

// Run verifies destRoot and places every file in order. Without KeepGoing the
// first failure stops the batch; with it, per-file failures are collected and
// returned together after the last file. A conflict on destRoot itself always
// stops before any file is touched. Results cover the files that succeeded.
func (e *Engine) Run(ctx context.Context, destRoot string, files []string) ([]Result, error) {
	if err := e.prepareDestination(destRoot); err != nil {
		return nil, err
	}

	if e.opts.LockPath != "" && !e.opts.DryRun {
		lock, err := acquireLock(e.opts.LockPath)
		if err != nil {
			return nil, err
		}
		e.logger.Debug("destination lock acquired", logging.String("lock", e.opts.LockPath))
		defer func() {
			if err := lock.Unlock(); err != nil {
				logging.WarnWithContext(e.logger, "failed to release destination lock", "lock_release_failed",
					logging.String("lock", e.opts.LockPath),
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "remove the lock file if no other run is active"),
				)
			}
		}()
	}

	results := make([]Result, 0, len(files))
	var failures *multierror.Error
	for _, src := range files {
		if err := ctx.Err(); err != nil {
			if failures == nil {
				return results, err
			}
			return results, multierror.Append(failures, err)
		}
		res, err := e.Place(ctx, src, destRoot)
		if err != nil {
			if !e.opts.KeepGoing {
				return results, err
			}
			logging.WarnWithContext(e.logger, "file skipped", "placement_failed",
				logging.String(logging.FieldSource, src),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "fix the file and rerun for it"),
			)
			failures = multierror.Append(failures, fmt.Errorf("%s: %w", src, err))
			continue
		}
		results = append(results, res)
	}
	return results, failures.ErrorOrNil()
}

func (e *Engine) prepareDestination(destRoot string) error {
	if e.opts.DryRun {
		return layout.CheckDir(destRoot)
	}
	if err := layout.EnsureDir(destRoot); err != nil {
		return err
	}
	return preflight.FirstFailure(preflight.CheckDirectoryAccess("Destination", destRoot))
}
