// Package repository persists environments as single JSON documents on the
// filesystem, one per environment under its own directory, serializing
// every operation on a given name through a per-environment advisory lock
// and writing atomically so readers never observe a partial document.
package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/errkind"
)

const documentFileName = "environment.json"

// Repository is the erased (dyn-style) persistence port: it reads and
// writes AnyEnvironmentState documents keyed by environment name, with no
// knowledge of which concrete lifecycle state a caller expects. Typed holds
// the narrowing facade that command handlers should prefer.
type Repository struct {
	dataDir string
	locks   *lockTable
}

// New constructs a Repository rooted at dataDir using the default lock
// acquisition timeout.
func New(dataDir string) *Repository {
	return NewWithLockTimeout(dataDir, DefaultLockTimeout)
}

// NewWithLockTimeout constructs a Repository with a non-default lock
// acquisition timeout, for tests that want to observe LockTimeout quickly
// without waiting the full default.
func NewWithLockTimeout(dataDir string, timeout time.Duration) *Repository {
	return &Repository{dataDir: dataDir, locks: newLockTable(timeout)}
}

func (r *Repository) environmentDir(name string) string {
	return filepath.Join(r.dataDir, name)
}

func (r *Repository) documentPath(name string) string {
	return filepath.Join(r.environmentDir(name), documentFileName)
}

// Save serializes doc and atomically replaces the named environment's
// document: (i) marshal to a buffer, (ii) write to environment.json.tmp,
// (iii) fsync, (iv) rename over environment.json. A reader either observes
// the prior document in full or the new one in full.
func (r *Repository) Save(name string, doc environment.AnyEnvironmentState) error {
	release, err := r.locks.acquire(name)
	if err != nil {
		return err
	}
	defer release()

	path := r.documentPath(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errkind.Wrap(errkind.StatePersistence, "create environment directory", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errkind.Wrap(errkind.StatePersistence, "serialize environment document", err)
	}

	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errkind.Wrap(errkind.StatePersistence, "open temporary environment document", err)
	}
	if _, writeErr := f.Write(data); writeErr != nil {
		f.Close()
		os.Remove(tmpPath)
		return errkind.Wrap(errkind.StatePersistence, "write temporary environment document", writeErr)
	}
	if syncErr := f.Sync(); syncErr != nil {
		f.Close()
		os.Remove(tmpPath)
		return errkind.Wrap(errkind.StatePersistence, "fsync temporary environment document", syncErr)
	}
	if closeErr := f.Close(); closeErr != nil {
		os.Remove(tmpPath)
		return errkind.Wrap(errkind.StatePersistence, "close temporary environment document", closeErr)
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		os.Remove(tmpPath)
		return errkind.Wrap(errkind.StatePersistence, "rename temporary environment document into place", renameErr)
	}
	return nil
}

// Load reads and deserializes the named environment's document. It returns
// (nil, nil), not an error, when no such environment exists.
func (r *Repository) Load(name string) (*environment.AnyEnvironmentState, error) {
	release, err := r.locks.acquire(name)
	if err != nil {
		return nil, err
	}
	defer release()

	data, err := os.ReadFile(r.documentPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errkind.Wrap(errkind.StatePersistence, "read environment document", err)
	}

	var doc environment.AnyEnvironmentState
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errkind.Wrap(errkind.StatePersistence, "deserialize environment document", err)
	}
	return &doc, nil
}

// Exists reports whether an environment document exists for name, without
// deserializing it.
func (r *Repository) Exists(name string) (bool, error) {
	release, err := r.locks.acquire(name)
	if err != nil {
		return false, err
	}
	defer release()

	_, statErr := os.Stat(r.documentPath(name))
	if statErr == nil {
		return true, nil
	}
	if os.IsNotExist(statErr) {
		return false, nil
	}
	return false, errkind.Wrap(errkind.StatePersistence, "stat environment document", statErr)
}

// Delete removes the named environment's entire directory. Idempotent: a
// missing environment is not an error. The lock slot is forgotten once the
// removal has completed, so the table does not grow unbounded across a long
// process lifetime of many create/destroy/purge cycles.
func (r *Repository) Delete(name string) error {
	release, err := r.locks.acquire(name)
	if err != nil {
		return err
	}
	removeErr := os.RemoveAll(r.environmentDir(name))
	release()
	if removeErr != nil {
		return errkind.Wrap(errkind.StatePersistence, "remove environment directory", removeErr)
	}
	r.locks.forget(name)
	return nil
}

// List returns every environment name with a persisted document, sorted for
// deterministic output.
func (r *Repository) List() ([]string, error) {
	entries, err := os.ReadDir(r.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errkind.Wrap(errkind.StatePersistence, "list environments directory", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, statErr := os.Stat(filepath.Join(r.dataDir, entry.Name(), documentFileName)); statErr == nil {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
