// Package report implements the diagnostics reporter on top of the logger.
package report

import (
	"fmt"
	"io/fs"
	"strings"

	"go.trai.ch/undup/internal/core/domain"
	"go.trai.ch/undup/internal/core/ports"
)

var _ ports.Reporter = (*LogReporter)(nil)

// LogReporter forwards diagnostics to the application logger. Skipped
// entries are warnings; unmatched buckets are informational, since the
// operator resolves them by supplying another source root.
type LogReporter struct {
	logger ports.Logger
}

// New creates a LogReporter.
func New(logger ports.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// SkippedEntry records an entry that is neither a directory, a regular file
// nor a symlink.
func (r *LogReporter) SkippedEntry(path string, mode fs.FileMode) {
	r.logger.Warn(fmt.Sprintf("skipping unsupported entry %s (%s)", path, mode))
}

// UnmatchedBucket records a target hash bucket with no source candidate.
func (r *LogReporter) UnmatchedBucket(hash domain.ContentHash, entries []domain.Entry) {
	paths := make([]string, len(entries))
	for i, entry := range entries {
		paths[i] = entry.Path()
	}
	r.logger.Info(fmt.Sprintf("no source found to link %s (content %s)", strings.Join(paths, ", "), hash))
}
