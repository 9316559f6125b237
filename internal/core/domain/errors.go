package domain

import "go.trai.ch/zerr"

var (
	// ErrNoTargetPaths is returned when a run is requested without any
	// target roots to scan for duplicates.
	ErrNoTargetPaths = zerr.New("no target paths specified")

	// ErrCacheCorrupt is returned when the persisted hash cache fails its
	// checksum or cannot be parsed. It never fails a run; the cache is
	// discarded and rebuilt.
	ErrCacheCorrupt = zerr.New("hash cache store is corrupt")

	// ErrApplyFailed is returned when one or more matches could not be
	// applied. Per-match failures are reported as they occur; this sentinel
	// marks the batch as partially failed.
	ErrApplyFailed = zerr.New("failed to apply one or more matches")
)
