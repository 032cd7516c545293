// Package cas implements a content addressed, file-per-entry graph cache.
package cas

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/ladder/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.GraphCache using one JSON file per graph key.
type Store struct{}

// NewStore creates a new file-backed GraphCache.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// Lookup retrieves the entry stored under key in dir.
func (s *Store) Lookup(_ context.Context, dir string, key domain.GraphKey) (*domain.CacheEntry, error) {
	filename := s.getFilename(dir, key)
	//nolint:gosec // Path is built from the cache directory and a URL-safe key
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", filename)
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, corrupt(key, filename, "malformed entry: "+err.Error())
	}

	if reason := entry.Verify(key); reason != "" {
		return nil, corrupt(key, filename, reason)
	}

	return &entry, nil
}

// Store persists entry under key in dir. The entry is written to a temporary
// file first and renamed into place so readers never see a partial write.
func (s *Store) Store(_ context.Context, dir string, key domain.GraphKey, entry *domain.CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "dir", dir)
	}

	filename := s.getFilename(dir, key)
	tmp, err := os.CreateTemp(dir, key.String()+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", filename)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", filename)
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", filename)
	}

	if err := os.Rename(tmpName, filename); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", filename)
	}

	return nil
}

// Discard removes the entry stored under key in dir.
func (s *Store) Discard(_ context.Context, dir string, key domain.GraphKey) error {
	filename := s.getFilename(dir, key)
	if err := os.Remove(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", filename)
	}
	return nil
}

func (s *Store) getFilename(dir string, key domain.GraphKey) string {
	return filepath.Join(dir, key.String()+domain.CacheEntryExt)
}

func corrupt(key domain.GraphKey, filename, reason string) error {
	err := zerr.Wrap(domain.ErrCacheCorrupt, reason)
	err = zerr.With(err, "key", key.String())
	return zerr.With(err, "path", filename)
}
