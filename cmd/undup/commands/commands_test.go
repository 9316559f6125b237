package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/undup/internal/adapters/config"
	"go.trai.ch/undup/internal/adapters/hashcache"
	"go.trai.ch/undup/internal/app"
)

// fakeApp captures the options the run command hands to the application.
type fakeApp struct {
	opts app.RunOptions
	err  error
}

func (f *fakeApp) Run(_ context.Context, opts app.RunOptions) error {
	f.opts = opts
	return f.err
}

func execute(t *testing.T, a Application, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cli := New(a)
	cli.SetArgs(args)
	cli.SetOutput(&out, &out)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestRunCommandFlags(t *testing.T) {
	fake := &fakeApp{}
	_, err := execute(t, fake,
		"run",
		"-s", "/data/library",
		"-s", "/data/archive",
		"-t", "/data/downloads",
		"--dry-run",
		"--progress",
		"--no-cache",
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
	)
	require.NoError(t, err)

	assert.Equal(t, app.RunOptions{
		Sources:   []string{"/data/library", "/data/archive"},
		Targets:   []string{"/data/downloads"},
		DryRun:    true,
		Progress:  true,
		NoCache:   true,
		CachePath: hashcache.DefaultStorePath,
	}, fake.opts)
}

func TestRunCommandReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "undup.yaml")
	content := `sources:
  - /data/library
targets:
  - /data/downloads
cache:
  enabled: false
  path: /var/cache/undup.json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fake := &fakeApp{}
	_, err := execute(t, fake, "run", "--config", path)
	require.NoError(t, err)

	assert.Equal(t, app.RunOptions{
		Sources:   []string{"/data/library"},
		Targets:   []string{"/data/downloads"},
		NoCache:   true,
		CachePath: "/var/cache/undup.json",
	}, fake.opts)
}

func TestRunCommandFlagsWinOverConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "undup.yaml")
	content := `sources:
  - /config/source
targets:
  - /config/target
cache:
  path: /config/cache.json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fake := &fakeApp{}
	_, err := execute(t, fake,
		"run",
		"-s", "/flag/source",
		"-t", "/flag/target",
		"--cache", "/flag/cache.json",
		"--config", path,
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"/flag/source"}, fake.opts.Sources)
	assert.Equal(t, []string{"/flag/target"}, fake.opts.Targets)
	assert.Equal(t, "/flag/cache.json", fake.opts.CachePath)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, &fakeApp{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "undup version dev (commit: none, date: unknown)\n", out)
}

func TestMergeConfig(t *testing.T) {
	enabled := true
	disabled := false

	tests := []struct {
		name string
		opts app.RunOptions
		cfg  *config.File
		want app.RunOptions
	}{
		{
			name: "empty everything falls back to defaults",
			opts: app.RunOptions{},
			cfg:  &config.File{},
			want: app.RunOptions{CachePath: hashcache.DefaultStorePath},
		},
		{
			name: "config fills unset options",
			opts: app.RunOptions{},
			cfg: &config.File{
				Sources: []string{"/cfg/src"},
				Targets: []string{"/cfg/tgt"},
				Cache:   config.Cache{Path: "/cfg/cache.json"},
			},
			want: app.RunOptions{
				Sources:   []string{"/cfg/src"},
				Targets:   []string{"/cfg/tgt"},
				CachePath: "/cfg/cache.json",
			},
		},
		{
			name: "flags beat config",
			opts: app.RunOptions{
				Sources:   []string{"/flag/src"},
				Targets:   []string{"/flag/tgt"},
				CachePath: "/flag/cache.json",
			},
			cfg: &config.File{
				Sources: []string{"/cfg/src"},
				Targets: []string{"/cfg/tgt"},
				Cache:   config.Cache{Path: "/cfg/cache.json"},
			},
			want: app.RunOptions{
				Sources:   []string{"/flag/src"},
				Targets:   []string{"/flag/tgt"},
				CachePath: "/flag/cache.json",
			},
		},
		{
			name: "cache disabled in config",
			opts: app.RunOptions{},
			cfg:  &config.File{Cache: config.Cache{Enabled: &disabled}},
			want: app.RunOptions{NoCache: true, CachePath: hashcache.DefaultStorePath},
		},
		{
			name: "cache explicitly enabled in config",
			opts: app.RunOptions{},
			cfg:  &config.File{Cache: config.Cache{Enabled: &enabled}},
			want: app.RunOptions{CachePath: hashcache.DefaultStorePath},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergeConfig(tt.opts, tt.cfg))
		})
	}
}
