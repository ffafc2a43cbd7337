// Package cas persists the fetch journal of a workspace.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/risteon/ic-workspace/internal/core/domain"
	"github.com/risteon/ic-workspace/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.FetchJournal  = (*Journal)(nil)
	_ ports.JournalOpener = (*Opener)(nil)
)

// Journal implements ports.FetchJournal using a flat JSON file.
type Journal struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.FetchRecord
}

// NewJournal creates a journal backed by the file at the given path.
// A missing file is an empty journal.
func NewJournal(path string) (*Journal, error) {
	j := &Journal{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.FetchRecord),
	}
	if err := j.load(); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *Journal) load() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	//nolint:gosec // Path is cleaned and derived from the workspace layout
	data, err := os.ReadFile(j.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrJournalReadFailed, err.Error()), "path", j.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &j.cache); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrJournalUnmarshalFailed, err.Error()), "path", j.path)
	}
	if j.cache == nil {
		j.cache = make(map[string]domain.FetchRecord)
	}

	return nil
}

// save writes the journal. The caller must hold the write lock.
func (j *Journal) save() error {
	data, err := json.MarshalIndent(j.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrJournalWriteFailed, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(j.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrJournalWriteFailed, err.Error()), "path", j.path)
	}

	//nolint:gosec // Path is cleaned and derived from the workspace layout
	if err := os.WriteFile(j.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrJournalWriteFailed, err.Error()), "path", j.path)
	}

	return nil
}

// Get retrieves the record of a package, or nil if it was never fetched.
func (j *Journal) Get(name string) (*domain.FetchRecord, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	record, ok := j.cache[name]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record and writes the journal to disk.
func (j *Journal) Put(record domain.FetchRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.cache[record.Package] = record
	return j.save()
}

// Opener opens the journal of a workspace layout.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open loads the journal at layout.JournalPath.
func (o *Opener) Open(layout domain.Layout) (ports.FetchJournal, error) {
	return NewJournal(layout.JournalPath())
}
