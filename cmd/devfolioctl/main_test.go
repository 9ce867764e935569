// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSlugCommand(t *testing.T) {
	out, err := run(t, "slug", "Advanced Network Security:", "Protecting", "Against", "Modern Threats")
	require.NoError(t, err)
	assert.Equal(t, "advanced-network-security-protecting-against-modern-threats\n", out)
}

func TestSlugCommandEmpty(t *testing.T) {
	_, err := run(t, "slug", "!!!")
	assert.EqualError(t, err, "title produces an empty slug")
}

func TestSlugCommandRequiresTitle(t *testing.T) {
	_, err := run(t, "slug")
	assert.Error(t, err)
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	_, err := run(t, "upload-image", "notes.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a supported image type")
}

func TestUploadImageRequiresCredentials(t *testing.T) {
	t.Setenv("S3_ACCESS_KEY", "")
	t.Setenv("S3_SECRET_KEY", "")

	_, err := run(t, "upload-image", "cover.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_ACCESS_KEY")
}

func TestCacheFlushRequiresValkey(t *testing.T) {
	t.Setenv("VALKEY_HOST", "")

	_, err := run(t, "cache", "flush")
	assert.EqualError(t, err, "VALKEY_HOST is not set")
}

func TestImageContentType(t *testing.T) {
	tests := map[string]string{
		"cover.jpg":   "image/jpeg",
		"COVER.JPEG":  "image/jpeg",
		"diagram.png": "image/png",
		"logo.svg":    "image/svg+xml",
		"photo.webp":  "image/webp",
	}
	for path, want := range tests {
		got, err := imageContentType(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := imageContentType("archive.zip")
	assert.Error(t, err)
}
