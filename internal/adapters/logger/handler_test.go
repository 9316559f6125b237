package logger_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/undup/internal/adapters/logger"
)

func newLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	log := logger.New()
	log.SetOutput(&out)
	return log, &out
}

func TestInfoIsPlain(t *testing.T) {
	log, out := newLogger(t)
	log.Info("indexing done")
	assert.Equal(t, "indexing done\n", out.String())
}

func TestWarnIsPrefixed(t *testing.T) {
	log, out := newLogger(t)
	log.Warn("cache discarded")
	assert.Equal(t, "! cache discarded\n", out.String())
}

func TestErrorIncludesCause(t *testing.T) {
	log, out := newLogger(t)
	log.Error(errors.New("disk full"))
	assert.Equal(t, "✗ operation failed error=disk full\n", out.String())
}

func TestErrorNilIsSilent(t *testing.T) {
	log, out := newLogger(t)
	log.Error(nil)
	assert.Empty(t, out.String())
}

func TestHandlerRespectsLevel(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	handler := logger.NewPrettyHandler(&out, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelWarn))
}

func TestHandlerFormatsAttrsAndGroups(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	handler := logger.NewPrettyHandler(&out, nil)
	log := slog.New(handler).WithGroup("walk").With("root", "/data")

	log.Info("started", "files", 3)

	require.Equal(t, "started walk.root=/data walk.files=3\n", out.String())
}
