package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"
)

const lockRetryDelay = 50 * time.Millisecond

// ErrLocked is returned when another process holds the journal lock for
// longer than the configured lock timeout.
var ErrLocked = errors.New("journal is locked by another process")

func lockPath(path string) string {
	return path + ".lock"
}

// LockFile is the advisory lock file used for the journal at path. It
// stays on disk between runs.
func LockFile(path string) string {
	return lockPath(resolvePath(path))
}

// acquireLock takes an advisory lock next to the journal file, shared for
// readers and exclusive otherwise. The lock file is left in place after
// the lock is released.
func acquireLock(ctx context.Context, path string, timeout time.Duration, shared bool) (*flock.Flock, error) {
	fl := flock.New(lockPath(path))

	lockCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	try := fl.TryLockContext
	if shared {
		try = fl.TryRLockContext
	}
	locked, err := try(lockCtx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrLocked, fl.Path())
		}
		return nil, fmt.Errorf("lock journal: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, fl.Path())
	}
	log.FromContext(ctx).Debug("acquired journal lock", "lock", fl.Path(), "shared", shared)
	return fl, nil
}
