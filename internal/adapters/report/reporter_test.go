package report_test

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/undup/internal/adapters/logger"
	"go.trai.ch/undup/internal/adapters/report"
	"go.trai.ch/undup/internal/core/domain"
)

func newReporter(t *testing.T) (*report.LogReporter, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	log := logger.New()
	log.SetOutput(&out)
	return report.New(log), &out
}

func TestSkippedEntryWarns(t *testing.T) {
	reporter, out := newReporter(t)

	reporter.SkippedEntry("/data/ctl.sock", fs.ModeSocket)

	assert.Contains(t, out.String(), "! skipping unsupported entry /data/ctl.sock")
}

func TestUnmatchedBucketListsAllPaths(t *testing.T) {
	reporter, out := newReporter(t)

	reporter.UnmatchedBucket("AAAA", []domain.Entry{
		domain.RegularFile{FilePath: "/tgt/one.txt"},
		domain.RegularFile{FilePath: "/tgt/two.txt"},
	})

	assert.Contains(t, out.String(), "no source found to link /tgt/one.txt, /tgt/two.txt (content AAAA)")
}
