// Package fs provides the filesystem adapters for walking trees and hashing
// file content.
package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/undup/internal/core/domain"
	"go.trai.ch/undup/internal/core/ports"
	"go.trai.ch/zerr"
)

// Walker discovers the contents of one or more root paths into a fresh
// Index, hashing every regular file and symlink through the configured
// backend.
type Walker struct {
	hasher   ports.Hasher
	reporter ports.Reporter
}

// NewWalker creates a new Walker using the given hashing backend.
func NewWalker(hasher ports.Hasher, reporter ports.Reporter) *Walker {
	return &Walker{hasher: hasher, reporter: reporter}
}

// Walk builds an Index covering all roots. A root that is not a directory
// is hashed and inserted directly as a single file. The first I/O failure
// aborts the whole call with an error naming the failing path; no partial
// index is returned.
func (w *Walker) Walk(roots ...string) (*domain.Index, error) {
	index := domain.NewIndex()
	for _, root := range roots {
		if err := w.walkRoot(index, root); err != nil {
			return nil, err
		}
	}
	return index, nil
}

func (w *Walker) walkRoot(index *domain.Index, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat root"), "root", root)
	}

	if !info.IsDir() {
		hash, err := w.hasher.HashFile(root)
		if err != nil {
			return err
		}
		index.Add(hash, domain.RegularFile{FilePath: root})
		return nil
	}

	// Pending directories live in an explicit stack rather than on the call
	// stack, so depth is bounded by heap on adversarially deep trees.
	pending := []string{root}
	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read directory"), "dir", dir)
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			switch {
			case entry.IsDir():
				pending = append(pending, path)
			case entry.Type().IsRegular():
				hash, err := w.hasher.HashFile(path)
				if err != nil {
					return err
				}
				index.Add(hash, domain.RegularFile{FilePath: path})
			case entry.Type()&iofs.ModeSymlink != 0:
				if err := w.addSymlink(index, path); err != nil {
					return err
				}
			default:
				w.reporter.SkippedEntry(path, entry.Type())
			}
		}
	}

	return nil
}

// addSymlink hashes through the link, so an already-linked duplicate lands
// in the same bucket as the file it points at.
func (w *Walker) addSymlink(index *domain.Index, path string) error {
	hash, err := w.hasher.HashFile(path)
	if err != nil {
		return err
	}

	target, err := os.Readlink(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read link target"), "path", path)
	}

	index.Add(hash, domain.Symlink{LinkPath: path, TargetPath: target})
	return nil
}
