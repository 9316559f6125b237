package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/undup/internal/adapters/config"
	"go.trai.ch/undup/internal/adapters/hashcache"
	"go.trai.ch/undup/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Find duplicate target files and replace them with symlinks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sources, _ := cmd.Flags().GetStringArray("source")
			targets, _ := cmd.Flags().GetStringArray("target")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			progress, _ := cmd.Flags().GetBool("progress")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			cachePath, _ := cmd.Flags().GetString("cache")
			configPath, _ := cmd.Flags().GetString("config")

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			opts := mergeConfig(app.RunOptions{
				Sources:   sources,
				Targets:   targets,
				DryRun:    dryRun,
				Progress:  progress,
				NoCache:   noCache,
				CachePath: cachePath,
			}, cfg)

			return c.app.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringArrayP("source", "s", nil, "Source root holding authoritative copies (repeatable)")
	cmd.Flags().StringArrayP("target", "t", nil, "Target root to scan for duplicates (repeatable)")
	cmd.Flags().BoolP("dry-run", "n", false, "Print the plan without touching the filesystem")
	cmd.Flags().Bool("progress", false, "Record per-phase progress output")
	cmd.Flags().Bool("no-cache", false, "Bypass the hash cache and re-read every file")
	cmd.Flags().String("cache", "", "Path of the persistent hash cache")
	cmd.Flags().StringP("config", "c", "undup.yaml", "Path to configuration file")

	return cmd
}

// mergeConfig fills unset options from the configuration file. Flags always
// win over file values.
func mergeConfig(opts app.RunOptions, cfg *config.File) app.RunOptions {
	if len(opts.Sources) == 0 {
		opts.Sources = cfg.Sources
	}
	if len(opts.Targets) == 0 {
		opts.Targets = cfg.Targets
	}
	if opts.CachePath == "" {
		opts.CachePath = cfg.Cache.Path
	}
	if opts.CachePath == "" {
		opts.CachePath = hashcache.DefaultStorePath
	}
	if !opts.NoCache && cfg.Cache.Enabled != nil && !*cfg.Cache.Enabled {
		opts.NoCache = true
	}
	return opts
}
