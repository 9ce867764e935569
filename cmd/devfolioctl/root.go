// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"devfolio/internal/config"
	"devfolio/internal/database"
)

// cli holds state shared by subcommands. cfg is loaded lazily so
// commands like slug run without any environment.
type cli struct {
	verbose bool
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "devfolioctl",
		Short: "Maintenance CLI for the devfolio blog",
		Long: `devfolioctl runs maintenance tasks for the devfolio blog.

Configuration is read from the same environment variables and .env files
as the server.

Example usage:
  devfolioctl migrate                      # Apply pending migrations
  devfolioctl seed                         # Insert sample content
  devfolioctl upload-image cover.jpg       # Upload a featured image
  devfolioctl slug "My New Article"        # Print the slug for a title
  devfolioctl cache flush                  # Drop cached article HTML`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if c.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newMigrateCmd(c),
		newSeedCmd(c),
		newUploadImageCmd(c),
		newSlugCmd(),
		newCacheCmd(c),
	)
	return root
}

// config loads the configuration once.
func (c *cli) config() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.cfg = cfg
	return cfg, nil
}

// openDB connects to PostgreSQL using the loaded configuration.
func (c *cli) openDB() (*sql.DB, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, err
	}
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return db, nil
}
