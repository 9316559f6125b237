package hashcache

import (
	"os"

	"go.trai.ch/undup/internal/core/domain"
	"go.trai.ch/undup/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher wraps another hashing backend with a (size, mtime)-keyed cache so
// unchanged files are not re-read on repeated runs. Any mismatch between
// the observed and stored metadata is a forced miss.
type Hasher struct {
	inner ports.Hasher
	store *Store
}

// New creates a cached Hasher on top of inner.
func New(inner ports.Hasher, store *Store) *Hasher {
	return &Hasher{inner: inner, store: store}
}

// HashFile returns the cached digest for path when its current size and
// modification time match the stored entry, and delegates to the inner
// backend otherwise. os.Stat follows symlinks, matching the
// symlink-transparent hashing of the inner backend.
func (h *Hasher) HashFile(path string) (domain.ContentHash, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}

	size, mtime := info.Size(), info.ModTime().UnixNano()
	if entry, ok := h.store.Get(path); ok && entry.Size == size && entry.ModTimeNano == mtime {
		return entry.Hash, nil
	}

	hash, err := h.inner.HashFile(path)
	if err != nil {
		return "", err
	}

	h.store.Put(path, domain.CacheEntry{Size: size, ModTimeNano: mtime, Hash: hash})
	return hash, nil
}

// Flush persists any newly computed digests.
func (h *Hasher) Flush() error {
	return h.store.Save()
}
