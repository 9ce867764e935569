// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"devfolio/internal/cache"
)

func newCacheCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered article cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "flush",
		Short: "Delete every cached article rendering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			client, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
			if err != nil {
				return err
			}
			if client == nil {
				return errors.New("VALKEY_HOST is not set")
			}
			defer client.Close()

			n, err := cache.NewRenderCache(client, 0).InvalidateAll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached renderings\n", n)
			return nil
		},
	})
	return cmd
}
