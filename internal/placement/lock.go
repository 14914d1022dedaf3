package placement

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked reports that another run holds the destination lock.
var ErrLocked = errors.New("destination is locked by another run")

// LockKey derives the lock file key for destRoot: the first 16 hex digits of
// the SHA-256 of its absolute, cleaned path.
func LockKey(destRoot string) (string, error) {
	abs, err := filepath.Abs(destRoot)
	if err != nil {
		return "", fmt.Errorf("resolve destination: %w", err)
	}
	sum := sha256.Sum256([]byte(filepath.Clean(abs)))
	return hex.EncodeToString(sum[:])[:16], nil
}

func acquireLock(path string) (*flock.Flock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrLocked, path)
	}
	return lock, nil
}
