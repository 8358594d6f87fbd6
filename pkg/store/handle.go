package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"

	"tableflip.dev/journal/pkg/entry"
)

// Mode selects how Open treats the journal file.
type Mode int

const (
	// ModeRead opens an existing journal read only.
	ModeRead Mode = iota
	// ModeReadWrite opens an existing journal for update.
	ModeReadWrite
	// ModeCreate opens the journal for update, creating it when absent.
	ModeCreate
)

const filePerm = 0o644

var errReadOnly = errors.New("journal opened read only")

// Handle is an open journal file. It must be closed on every path; Close
// also releases the advisory lock when one was taken.
type Handle struct {
	path   string
	mode   Mode
	atomic bool
	file   *os.File
	lock   *flock.Flock
	logger *log.Logger
}

// Open resolves the journal path from cfg and opens it according to mode.
func Open(ctx context.Context, cfg Config, mode Mode) (*Handle, error) {
	path := cfg.JournalPath()
	if path == "" {
		return nil, ErrNoJournalPath
	}
	if mode != ModeCreate {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("open journal: %w", err)
		}
	}

	// Saves go to the file a symlinked journal points at, so an atomic
	// rename never replaces the link itself.
	path = resolvePath(path)
	h := &Handle{
		path:   path,
		mode:   mode,
		atomic: cfg.AtomicWrites(),
		logger: log.FromContext(ctx),
	}

	// The lock is taken before the file is opened so an atomic save by
	// another process can not leave this handle on a replaced inode.
	if cfg.Locking() {
		fl, err := acquireLock(ctx, path, cfg.LockTimeout(), mode == ModeRead)
		var pe *fs.PathError
		switch {
		case err != nil && mode == ModeRead && errors.As(err, &pe):
			h.logger.Debug("reading journal without a lock", "lock", lockPath(path), "err", err)
		case err != nil:
			return nil, err
		default:
			h.lock = fl
		}
	}

	f, err := os.OpenFile(path, mode.flags(), filePerm)
	if err != nil {
		_ = h.unlock()
		return nil, fmt.Errorf("open journal: %w", err)
	}
	h.file = f
	if mode == ModeCreate {
		// A dangling link was just given its target.
		h.path = resolvePath(path)
	}
	h.logger.Debug("opened journal", "path", h.path, "mode", mode)
	return h, nil
}

// resolvePath follows symlinks in path. A path that can not be resolved,
// because it does not exist yet, is returned unchanged.
func resolvePath(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}

func (m Mode) flags() int {
	switch m {
	case ModeRead:
		return os.O_RDONLY
	case ModeCreate:
		return os.O_RDWR | os.O_CREATE
	default:
		return os.O_RDWR
	}
}

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeReadWrite:
		return "read-write"
	case ModeCreate:
		return "create"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Path is the journal file this handle was opened on.
func (h *Handle) Path() string {
	return h.path
}

// Load decodes the whole journal. The read position is rewound before and
// after reading so a following Save starts at the beginning of the file.
func (h *Handle) Load() ([]*entry.Entry, error) {
	if _, err := h.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind journal: %w", err)
	}
	list, err := entry.Decode(h.file)
	if err != nil {
		return nil, err
	}
	if _, err := h.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind journal: %w", err)
	}
	h.logger.Debug("loaded journal", "path", h.path, "entries", len(list))
	return list, nil
}

// Save replaces the entire content of the journal with list.
func (h *Handle) Save(list []*entry.Entry) error {
	if h.mode == ModeRead {
		return errReadOnly
	}
	data, err := entry.MarshalList(list)
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}
	if h.atomic {
		err = h.replace(data)
	} else {
		err = h.rewrite(data)
	}
	if err != nil {
		return err
	}
	h.logger.Debug("saved journal", "path", h.path, "entries", len(list), "bytes", len(data), "atomic", h.atomic)
	return nil
}

// rewrite truncates the open file before writing, so a shorter encoding
// never leaves stale bytes behind.
func (h *Handle) rewrite(data []byte) error {
	if err := h.file.Truncate(0); err != nil {
		return fmt.Errorf("truncate journal: %w", err)
	}
	if _, err := h.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind journal: %w", err)
	}
	if _, err := h.file.Write(data); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	if err := h.file.Sync(); err != nil {
		return fmt.Errorf("sync journal: %w", err)
	}
	return nil
}

// replace writes a temp file next to the journal and renames it into place,
// then reopens the handle on the new file.
func (h *Handle) replace(data []byte) error {
	perm := os.FileMode(filePerm)
	if fi, err := h.file.Stat(); err == nil {
		perm = fi.Mode().Perm()
	}

	dir, base := filepath.Split(h.path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+"-*.tmp")
	if errors.Is(err, fs.ErrPermission) {
		h.logger.Debug("journal directory not writable, saving in place", "dir", dir)
		return h.rewrite(data)
	}
	if err != nil {
		return fmt.Errorf("create temp journal: %w", err)
	}
	tmpPath := tmp.Name()
	fail := func(op string, err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail("write temp journal", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fail("chmod temp journal", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync temp journal", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp journal: %w", err)
	}
	if err := os.Rename(tmpPath, h.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace journal: %w", err)
	}

	f, err := os.OpenFile(h.path, h.mode.flags(), filePerm)
	if err != nil {
		return fmt.Errorf("reopen journal: %w", err)
	}
	_ = h.file.Close()
	h.file = f
	return nil
}

// Close releases the file and the lock. It is safe to call more than once.
func (h *Handle) Close() error {
	var err error
	if h.file != nil {
		err = h.file.Close()
		h.file = nil
	}
	if uerr := h.unlock(); err == nil {
		err = uerr
	}
	if err != nil {
		return fmt.Errorf("close journal: %w", err)
	}
	return nil
}

func (h *Handle) unlock() error {
	if h.lock == nil {
		return nil
	}
	err := h.lock.Unlock()
	h.lock = nil
	return err
}
