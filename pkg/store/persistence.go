package store

import (
	"context"

	"tableflip.dev/journal/pkg/entry"
)

// MutateFunc receives the loaded journal and returns the list to save. When
// it returns an error nothing is written.
type MutateFunc func(list []*entry.Entry) ([]*entry.Entry, error)

// Persistence defines the persistence contract for the journal.
type Persistence interface {
	// Path is the journal file backing this persistence.
	Path() string
	// Load reads the journal. The file must exist.
	Load(ctx context.Context) ([]*entry.Entry, error)
	// Update runs one load, mutate, save cycle. With create set a missing
	// journal is created empty first.
	Update(ctx context.Context, create bool, fn MutateFunc) error
}

// Load creates a Persistence for the journal file named by cfg. A nil cfg
// is resolved with LoadConfig.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig("")
		if err != nil {
			return nil, err
		}
	}
	if cfg.JournalPath() == "" {
		return nil, ErrNoJournalPath
	}
	return &persistence{cfg: cfg}, nil
}

type persistence struct {
	cfg Config
}

func (p *persistence) Path() string {
	return p.cfg.JournalPath()
}

func (p *persistence) Load(ctx context.Context) (list []*entry.Entry, err error) {
	h, err := Open(ctx, p.cfg, ModeRead)
	if err != nil {
		return nil, err
	}
	defer closeHandle(h, &err)

	return h.Load()
}

func (p *persistence) Update(ctx context.Context, create bool, fn MutateFunc) (err error) {
	mode := ModeReadWrite
	if create {
		mode = ModeCreate
	}
	h, err := Open(ctx, p.cfg, mode)
	if err != nil {
		return err
	}
	defer closeHandle(h, &err)

	list, err := h.Load()
	if err != nil {
		return err
	}
	list, err = fn(list)
	if err != nil {
		return err
	}
	return h.Save(list)
}

// closeHandle closes h and reports the close error unless an earlier error
// is already being returned.
func closeHandle(h *Handle, err *error) {
	if cerr := h.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
