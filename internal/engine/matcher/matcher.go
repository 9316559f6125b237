// Package matcher implements the cross-tree hash matching engine.
package matcher

import (
	"go.trai.ch/undup/internal/core/domain"
	"go.trai.ch/undup/internal/core/ports"
)

// Matcher decides, for every duplicate regular file discovered in the
// target index, which authoritative path it should be replaced by. It never
// mutates the filesystem.
type Matcher struct {
	reporter ports.Reporter
}

// New creates a new Matcher.
func New(reporter ports.Reporter) *Matcher {
	return &Matcher{reporter: reporter}
}

// Match pairs duplicate target files with source paths by content hash
// only, never by name or location. A target bucket with N duplicate regular
// files yields N matches sharing one source; buckets with no resolvable
// source are reported and skipped.
//
// When a bucket holds several candidates the first in discovery order wins.
// Directory enumeration order is not guaranteed stable, so that tie-break
// is documented rather than deterministic; so is the bucket iteration
// order of the result.
func (m *Matcher) Match(source, target *domain.Index) []domain.MatchingFile {
	var matches []domain.MatchingFile

	for hash, bucket := range target.Buckets() {
		src, ok := m.chooseSource(hash, bucket, source)
		if !ok {
			continue
		}

		for _, entry := range bucket {
			f, isFile := entry.(domain.RegularFile)
			if !isFile {
				// Symlinks are never replaced, even the one that supplied
				// the source path.
				continue
			}
			matches = append(matches, domain.MatchingFile{SrcPath: src, DestPath: f.FilePath})
		}
	}

	return matches
}

// chooseSource resolves the authoritative path for one target bucket.
func (m *Matcher) chooseSource(hash domain.ContentHash, bucket []domain.Entry, source *domain.Index) (string, bool) {
	// An existing link in the bucket wins: its recorded target already is
	// the authoritative copy for this content. The target is trusted as
	// read, without re-verification.
	for _, entry := range bucket {
		link, isLink := entry.(domain.Symlink)
		if !isLink {
			continue
		}
		if len(bucket) == 1 {
			// The bucket is that link alone; nothing left to dedupe.
			return "", false
		}
		return link.TargetPath, true
	}

	if srcBucket := source.Bucket(hash); len(srcBucket) > 0 {
		return srcBucket[0].Path(), true
	}

	m.reporter.UnmatchedBucket(hash, bucket)
	return "", false
}
