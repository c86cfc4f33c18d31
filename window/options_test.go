// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"path/filepath"
	"testing"

	"github.com/PistonDevelopers/winit-window/events/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	opts := NewOptions("my game", 800, 600)
	assert.Equal(t, "my game", opts.Title)
	assert.Equal(t, Size{800, 600}, opts.Size)
	assert.True(t, opts.Resizable)
	assert.True(t, opts.Decorated)
	assert.True(t, opts.VSync)
	assert.True(t, opts.AutomaticClose)
	assert.False(t, opts.ExitOnEsc)
	assert.False(t, opts.Fullscreen)
}

func TestOptionsFixup(t *testing.T) {
	opts := &Options{Samples: -4}
	opts.Fixup()
	assert.Equal(t, "winit-window", opts.Title)
	assert.Equal(t, Size{640, 480}, opts.Size)
	assert.Equal(t, 0, opts.Samples)

	// set fields are left alone
	opts = &Options{Title: "t", Size: Size{1, 2}, Samples: 8}
	opts.Fixup()
	assert.Equal(t, "t", opts.Title)
	assert.Equal(t, Size{1, 2}, opts.Size)
	assert.Equal(t, 8, opts.Samples)
}

func TestOptionsSaveOpen(t *testing.T) {
	opts := NewOptions("roundtrip", 1024, 768)
	opts.ExitOnEsc = true
	opts.Samples = 4
	opts.Layout = key.Standard

	fn := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, opts.Save(fn))

	got, err := OpenOptions(fn)
	require.NoError(t, err)
	assert.Equal(t, opts, got)
}

func TestOpenOptionsErrors(t *testing.T) {
	_, err := OpenOptions(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
