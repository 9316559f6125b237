package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/undup/internal/adapters/fs"
	"go.trai.ch/undup/internal/adapters/logger"
	"go.trai.ch/undup/internal/adapters/report"
	"go.trai.ch/undup/internal/adapters/symlink"
	"go.trai.ch/undup/internal/adapters/telemetry"
	"go.trai.ch/undup/internal/app"
	"go.trai.ch/undup/internal/engine/matcher"
)

func testComponents(t *testing.T) *app.Components {
	t.Helper()

	log := logger.New()
	log.SetOutput(io.Discard)
	reporter := report.New(log)

	a := app.New(
		log,
		reporter,
		fs.NewHasher(),
		symlink.NewApplier(log),
		telemetry.NewNoOp(),
		matcher.New(reporter),
	)

	return &app.Components{App: a, Logger: log}
}

func TestRunProviderFailure(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"version"}, &stderr, func(context.Context) (*app.Components, error) {
		return nil, errors.New("wiring broke")
	})

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "wiring broke")
}

func TestRunVersionSucceeds(t *testing.T) {
	components := testComponents(t)

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"version"}, &stderr, func(context.Context) (*app.Components, error) {
		return components, nil
	})

	assert.Equal(t, 0, code)
}

func TestRunWithoutTargetsFails(t *testing.T) {
	components := testComponents(t)
	configPath := t.TempDir() + "/absent.yaml"

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"run", "--config", configPath}, &stderr, func(context.Context) (*app.Components, error) {
		return components, nil
	})

	require.Equal(t, 1, code)
}
