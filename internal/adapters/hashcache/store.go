// Package hashcache implements the cached hashing backend and its
// persistent store. The store's on-disk schema is internal to this backend
// and opaque to the core.
package hashcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/undup/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultStorePath is where the cache lives when no explicit path is
// configured.
const DefaultStorePath = ".undup-cache.json"

// storeFile is the on-disk layout. Checksum is the xxhash of the entries
// serialized on their own and guards against torn or hand-edited files.
type storeFile struct {
	Checksum string                       `json:"checksum"`
	Entries  map[string]domain.CacheEntry `json:"entries"`
}

// Store persists path -> CacheEntry mappings in a flat JSON file.
type Store struct {
	path string

	mu      sync.RWMutex
	entries map[string]domain.CacheEntry
	dirty   bool
}

// NewStore creates a store backed by the file at path. Nothing is read
// until Load is called.
func NewStore(path string) *Store {
	return &Store{
		path:    filepath.Clean(path),
		entries: make(map[string]domain.CacheEntry),
	}
}

// Load reads previously persisted entries. A missing file is an empty
// cache. A file that cannot be parsed or fails its checksum is discarded:
// Load resets to empty and returns ErrCacheCorrupt so the caller can warn
// without failing the run.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read hash cache store"), "path", s.path)
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		s.entries = make(map[string]domain.CacheEntry)
		return zerr.With(zerr.Wrap(domain.ErrCacheCorrupt, "unparsable store file"), "path", s.path)
	}

	sum, err := checksum(file.Entries)
	if err != nil {
		return err
	}
	if sum != file.Checksum {
		s.entries = make(map[string]domain.CacheEntry)
		return zerr.With(zerr.Wrap(domain.ErrCacheCorrupt, "checksum mismatch"), "path", s.path)
	}

	if file.Entries != nil {
		s.entries = file.Entries
	}
	return nil
}

// Save writes the entries back to disk. It is a no-op when nothing changed
// since Load.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	sum, err := checksum(s.entries)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(storeFile{Checksum: sum, Entries: s.entries}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal hash cache store")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for hash cache store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write hash cache store"), "path", s.path)
	}

	s.dirty = false
	return nil
}

// Get returns the cached entry for path, if any.
func (s *Store) Get(path string) (domain.CacheEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[path]
	return entry, ok
}

// Put records the entry for path. Writes to the same key are serialized by
// the store's lock, so a parallel hasher keeps single-writer-per-key.
func (s *Store) Put(path string, entry domain.CacheEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[path] = entry
	s.dirty = true
}

// Len returns the number of cached paths.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// checksum digests the canonical JSON form of the entries. json.Marshal
// emits map keys in sorted order, so the sum is deterministic.
func checksum(entries map[string]domain.CacheEntry) (string, error) {
	if entries == nil {
		entries = map[string]domain.CacheEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", zerr.Wrap(err, "failed to checksum hash cache entries")
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}
