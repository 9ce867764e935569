// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"devfolio/internal/storage"
)

// imageTypes are the content types accepted for featured images.
var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".avif": "image/avif",
}

func newUploadImageCmd(c *cli) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "upload-image <file>",
		Short: "Upload a featured image and print its public URL",
		Long: `Upload a featured image to the public bucket. Store the printed key
(or URL) in an article's featured_image column.

Examples:
  devfolioctl upload-image cover.jpg
  devfolioctl upload-image cover.jpg --key featured/network-security.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			contentType, err := imageContentType(path)
			if err != nil {
				return err
			}

			cfg, err := c.config()
			if err != nil {
				return err
			}
			client, err := storage.New(storage.Config{
				Endpoint:  cfg.S3Endpoint,
				Region:    cfg.S3Region,
				AccessKey: cfg.S3AccessKey,
				SecretKey: cfg.S3SecretKey,
				Bucket:    cfg.S3Bucket,
				PublicURL: cfg.S3PublicURL,
			})
			if err != nil {
				return err
			}
			if client == nil {
				return errors.New("storage is not configured: set S3_ENDPOINT, S3_ACCESS_KEY and S3_SECRET_KEY")
			}

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			info, err := f.Stat()
			if err != nil {
				return err
			}

			if key == "" {
				key = storage.ImageKey(path)
			}
			if err := client.Upload(cmd.Context(), key, contentType, f, info.Size()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "key: %s\n", key)
			fmt.Fprintf(out, "url: %s\n", client.FileURL(key))
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "object key (default: featured/<name>-<random><ext>)")
	return cmd
}

// imageContentType maps a file extension to an image content type.
func imageContentType(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := imageTypes[ext]; ok {
		return ct, nil
	}
	if ct := mime.TypeByExtension(ext); strings.HasPrefix(ct, "image/") {
		return ct, nil
	}
	return "", fmt.Errorf("%s: not a supported image type", path)
}
