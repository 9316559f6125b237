// Package symlink implements the action executors that consume a match
// plan: a dry-run renderer and an applier that performs the filesystem
// mutation.
package symlink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/undup/internal/core/domain"
	"go.trai.ch/undup/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ActionExecutor = (*DryRun)(nil)
	_ ports.ActionExecutor = (*Applier)(nil)
)

// DryRun renders the plan without touching the filesystem.
type DryRun struct {
	out io.Writer
}

// NewDryRun creates a DryRun writing to out.
func NewDryRun(out io.Writer) *DryRun {
	return &DryRun{out: out}
}

// Execute prints one line per planned replacement.
func (d *DryRun) Execute(_ context.Context, matches []domain.MatchingFile) error {
	for _, m := range matches {
		if _, err := fmt.Fprintf(d.out, "would replace %s with a link to %s\n", m.DestPath, m.SrcPath); err != nil {
			return zerr.Wrap(err, "failed to render dry-run plan")
		}
	}
	_, err := fmt.Fprintf(d.out, "%d replacement(s) planned\n", len(matches))
	if err != nil {
		return zerr.Wrap(err, "failed to render dry-run plan")
	}
	return nil
}

// Applier replaces each duplicate with a symlink to its source.
type Applier struct {
	logger ports.Logger
}

// NewApplier creates an Applier.
func NewApplier(logger ports.Logger) *Applier {
	return &Applier{logger: logger}
}

// Execute applies every match in order, continuing past per-match failures
// and reporting them at the end under ErrApplyFailed. The source path is
// not re-verified here: it may have vanished since discovery, which
// surfaces as a dangling link exactly as it would under any other race.
func (a *Applier) Execute(ctx context.Context, matches []domain.MatchingFile) error {
	var errs error
	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			return errors.Join(errs, err)
		}

		if err := a.apply(m); err != nil {
			a.logger.Error(err)
			errs = errors.Join(errs, err)
			continue
		}
		a.logger.Info(fmt.Sprintf("linked %s -> %s", m.DestPath, m.SrcPath))
	}

	if errs != nil {
		return errors.Join(domain.ErrApplyFailed, errs)
	}
	return nil
}

func (a *Applier) apply(m domain.MatchingFile) error {
	// Re-applying an already replaced duplicate is a no-op.
	if target, err := os.Readlink(m.DestPath); err == nil && target == m.SrcPath {
		return nil
	}

	if err := os.Remove(m.DestPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove duplicate"), "dest", m.DestPath)
	}

	if err := os.Symlink(m.SrcPath, m.DestPath); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create symlink"), "dest", m.DestPath)
	}

	return nil
}
