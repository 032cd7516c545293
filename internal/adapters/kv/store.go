// Package kv implements the graph cache on an embedded BadgerDB database.
//
// One database is opened lazily per cache directory and kept open until Close.
// Entries are stored under "graph/{fingerprint}-{node_count}" as JSON.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"go.trai.ch/ladder/internal/core/domain"
	"go.trai.ch/ladder/internal/core/ports"
	"go.trai.ch/zerr"
)

// DBDirName is the directory inside a cache directory that holds the database.
const DBDirName = "badger"

const keyPrefix = "graph/"

// Store implements ports.GraphCache on BadgerDB.
type Store struct {
	logger ports.Logger

	mu  sync.Mutex
	dbs map[string]*badger.DB
}

// NewStore creates a new BadgerDB-backed GraphCache. Database warnings are
// forwarded to logger when it is not nil.
func NewStore(logger ports.Logger) *Store {
	return &Store{
		logger: logger,
		dbs:    make(map[string]*badger.DB),
	}
}

// Lookup retrieves the entry stored under key in dir.
func (s *Store) Lookup(_ context.Context, dir string, key domain.GraphKey) (*domain.CacheEntry, error) {
	db, err := s.open(dir)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entryKey(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "key", key.String())
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheCorrupt, "malformed entry: "+err.Error()), "key", key.String())
	}
	if reason := entry.Verify(key); reason != "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheCorrupt, reason), "key", key.String())
	}
	return &entry, nil
}

// Store persists entry under key in dir in a single transaction.
func (s *Store) Store(_ context.Context, dir string, key domain.GraphKey, entry *domain.CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	db, err := s.open(dir)
	if err != nil {
		return err
	}

	if err := db.Update(func(txn *badger.Txn) error {
		return txn.Set(entryKey(key), data)
	}); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key.String())
	}
	return nil
}

// Discard removes the entry stored under key in dir.
func (s *Store) Discard(_ context.Context, dir string, key domain.GraphKey) error {
	db, err := s.open(dir)
	if err != nil {
		return err
	}

	if err := db.Update(func(txn *badger.Txn) error {
		return txn.Delete(entryKey(key))
	}); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key.String())
	}
	return nil
}

// Close closes every database opened by the store.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for dir, db := range s.dbs {
		if err := db.Close(); err != nil {
			errs = append(errs, zerr.With(err, "dir", dir))
		}
		delete(s.dbs, dir)
	}
	return errors.Join(errs...)
}

func (s *Store) open(dir string) (*badger.DB, error) {
	path := filepath.Join(filepath.Clean(dir), DBDirName)

	s.mu.Lock()
	defer s.mu.Unlock()

	if db, ok := s.dbs[path]; ok {
		return db, nil
	}

	opts := badger.DefaultOptions(path).
		WithNumVersionsToKeep(1).
		WithLogger(nil)
	if s.logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: s.logger})
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheOpenFailed.Error()), "path", path)
	}
	s.dbs[path] = db
	return db, nil
}

func entryKey(key domain.GraphKey) []byte {
	return []byte(keyPrefix + key.String())
}

// badgerLogger forwards BadgerDB warnings and errors to a ports.Logger.
type badgerLogger struct {
	logger ports.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Warn("badger: " + fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn("badger: " + fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(string, ...any) {}

func (l *badgerLogger) Debugf(string, ...any) {}
