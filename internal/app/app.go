// Package app implements the application layer for undup.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/undup/internal/adapters/fs"
	"go.trai.ch/undup/internal/adapters/hashcache"
	"go.trai.ch/undup/internal/adapters/symlink"
	"go.trai.ch/undup/internal/adapters/telemetry"
	"go.trai.ch/undup/internal/core/domain"
	"go.trai.ch/undup/internal/core/ports"
	"go.trai.ch/undup/internal/engine/matcher"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	logger    ports.Logger
	reporter  ports.Reporter
	hasher    ports.Hasher
	executor  ports.ActionExecutor
	telemetry ports.Telemetry
	matcher   *matcher.Matcher
	stdout    io.Writer
}

// Components bundles what the CLI entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// New creates a new App instance.
func New(
	log ports.Logger,
	reporter ports.Reporter,
	hasher ports.Hasher,
	executor ports.ActionExecutor,
	telemetry ports.Telemetry,
	match *matcher.Matcher,
) *App {
	return &App{
		logger:    log,
		reporter:  reporter,
		hasher:    hasher,
		executor:  executor,
		telemetry: telemetry,
		matcher:   match,
		stdout:    os.Stdout,
	}
}

// WithStdout overrides the dry-run output stream. Used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Sources are the roots holding authoritative copies. Zero sources is
	// tolerated: target buckets then only resolve against their own links.
	Sources []string
	// Targets are the roots scanned for duplicates.
	Targets []string
	// DryRun renders the plan instead of mutating the filesystem.
	DryRun bool
	// Progress enables the progress recorder for the run's phases.
	Progress bool
	// NoCache bypasses the persistent hash cache and re-reads every file.
	NoCache bool
	// CachePath overrides the location of the persistent hash cache.
	CachePath string
}

// Run builds a fresh index per forest, computes the match plan and hands it
// to the action executor. The two walks run concurrently; each index still
// has exactly one writer, and the first I/O failure on either side aborts
// the whole run with no partial plan.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if len(opts.Targets) == 0 {
		return domain.ErrNoTargetPaths
	}

	tel := a.telemetry
	if !opts.Progress {
		tel = telemetry.NewNoOp()
	}
	defer tel.Close() //nolint:errcheck // Best effort flush on the way out

	hasher, cache := a.selectHasher(opts)
	walker := fs.NewWalker(hasher, a.reporter)

	var sourceIndex, targetIndex *domain.Index

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		index, err := a.walkForest(ctx, tel, walker, "index sources", opts.Sources)
		if err != nil {
			return zerr.Wrap(err, "failed to index source paths")
		}
		sourceIndex = index
		return nil
	})
	g.Go(func() error {
		index, err := a.walkForest(ctx, tel, walker, "index targets", opts.Targets)
		if err != nil {
			return zerr.Wrap(err, "failed to index target paths")
		}
		targetIndex = index
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if cache != nil {
		// A cache that cannot be persisted costs a re-read next run, not
		// this run's result.
		if err := cache.Flush(); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to persist hash cache: %v", err))
		}
	}

	_, v := tel.Record(ctx, "compute matches")
	matches := a.matcher.Match(sourceIndex, targetIndex)
	_, _ = fmt.Fprintf(v, "%d match(es)\n", len(matches))
	v.Done(nil)

	executor := a.executor
	if opts.DryRun {
		executor = symlink.NewDryRun(a.stdout)
	}

	_, v = tel.Record(ctx, "apply matches")
	err := executor.Execute(ctx, matches)
	v.Done(err)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("matched %d duplicate(s) across %d target bucket(s)", len(matches), targetIndex.Len()))
	return nil
}

// selectHasher wraps the base backend with the persistent cache unless the
// run bypasses it. The cached wrapper is also returned concretely so Run
// can flush it.
func (a *App) selectHasher(opts RunOptions) (ports.Hasher, *hashcache.Hasher) {
	if opts.NoCache {
		return a.hasher, nil
	}

	path := opts.CachePath
	if path == "" {
		path = hashcache.DefaultStorePath
	}

	store := hashcache.NewStore(path)
	if err := store.Load(); err != nil {
		// A stale or unreadable cache never fails a run.
		a.logger.Warn(fmt.Sprintf("discarding hash cache: %v", err))
	}

	cache := hashcache.New(a.hasher, store)
	return cache, cache
}

func (a *App) walkForest(ctx context.Context, tel ports.Telemetry, walker *fs.Walker, name string, roots []string) (*domain.Index, error) {
	_, v := tel.Record(ctx, name)
	index, err := walker.Walk(roots...)
	if err != nil {
		v.Done(err)
		return nil, err
	}
	_, _ = fmt.Fprintf(v, "%d content hash(es) across %d root(s)\n", index.Len(), len(roots))
	v.Done(nil)
	return index, nil
}
