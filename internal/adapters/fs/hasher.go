package fs

import (
	"crypto/sha256"
	"io"
	"os"

	"go.trai.ch/undup/internal/core/domain"
	"go.trai.ch/undup/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher is the uncached hashing backend. It recomputes the SHA-256 digest
// on every call by streaming the file's bytes, never holding the whole file
// in memory.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile computes the content hash of the file at path. os.Open follows
// symlinks, so hashing a link yields the digest of the pointed-at content.
func (h *Hasher) HashFile(path string) (domain.ContentHash, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := sha256.New()
	if _, err := io.Copy(digest, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return domain.NewContentHash(digest.Sum(nil)), nil
}
