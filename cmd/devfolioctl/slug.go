// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"devfolio/internal/slug"
)

func newSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug <title>",
		Short: "Print the URL slug for an article title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := slug.Generate(strings.Join(args, " "))
			if s == "" {
				return errors.New("title produces an empty slug")
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}
