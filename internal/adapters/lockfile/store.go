// Package lockfile persists resolved plans next to the project configuration.
package lockfile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.LockfileStore using a JSON file in the project root.
type Store struct{}

// NewStore creates a new lockfile Store.
func NewStore() *Store {
	return &Store{}
}

// Get reads root/droidplan.lock. It returns nil, nil when the file does not exist.
func (s *Store) Get(root string) (*domain.Lockfile, error) {
	path := filepath.Join(filepath.Clean(root), domain.LockFileName)

	//nolint:gosec // Path is derived from the discovered project root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrLockReadFailed, err.Error()), "path", path)
	}

	lock := domain.NewLockfile()
	if len(data) == 0 {
		return lock, nil
	}
	if err := json.Unmarshal(data, lock); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrLockUnmarshalFailed, err.Error()), "path", path)
	}
	if lock.Variants == nil {
		lock.Variants = make(map[string]domain.LockedPlan)
	}

	return lock, nil
}

// Put writes the lockfile to root/droidplan.lock, replacing it atomically.
func (s *Store) Put(root string, lock *domain.Lockfile) error {
	path := filepath.Join(filepath.Clean(root), domain.LockFileName)

	data, err := json.MarshalIndent(lock, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrLockMarshalFailed, err.Error())
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockWriteFailed, err.Error()), "path", dir)
	}

	tmpFile, err := os.CreateTemp(dir, ".droidplan-lock-*")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockWriteFailed, err.Error()), "path", dir)
	}
	tmpPath := tmpFile.Name()
	cleanup := func() {
		_ = os.Remove(tmpPath)
	}

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return zerr.Wrap(domain.ErrLockWriteFailed, writeErr.Error())
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return zerr.Wrap(domain.ErrLockWriteFailed, closeErr.Error())
	}
	if chmodErr := os.Chmod(tmpPath, domain.FilePerm); chmodErr != nil {
		cleanup()
		return zerr.Wrap(domain.ErrLockWriteFailed, chmodErr.Error())
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		cleanup()
		return zerr.With(zerr.Wrap(domain.ErrLockWriteFailed, renameErr.Error()), "path", path)
	}

	return nil
}
