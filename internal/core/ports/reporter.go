package ports

import (
	"io/fs"

	"go.trai.ch/undup/internal/core/domain"
)

// Reporter is the diagnostics channel for conditions that are absorbed into
// observability instead of failing a call. Only I/O errors escape the core
// as failures; everything else flows through here.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// SkippedEntry records an entry that is neither a directory, a regular
	// file nor a symlink (a device, FIFO, socket, ...). Traversal continues
	// past it.
	SkippedEntry(path string, mode fs.FileMode)

	// UnmatchedBucket records a target hash bucket for which no source
	// candidate exists. The bucket contributes no matches; the operator
	// resolves it by supplying a missing source root.
	UnmatchedBucket(hash domain.ContentHash, entries []domain.Entry)
}
