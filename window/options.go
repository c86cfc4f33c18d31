// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/PistonDevelopers/winit-window/events/key"
	"github.com/jeandeaual/go-locale"
	"github.com/pelletier/go-toml/v2"
)

// Options are the settings used to create a new window. A nil or
// zero-valued Options is valid; [Options.Fixup] fills in defaults.
type Options struct {

	// Title is the window title.
	Title string `toml:"title"`

	// Size is the initial inner size of the window in logical units.
	Size Size `toml:"size"`

	// Fullscreen makes the window cover the primary monitor.
	Fullscreen bool `toml:"fullscreen"`

	// Resizable allows the user to resize the window.
	Resizable bool `toml:"resizable"`

	// Decorated gives the window platform decorations (border, title bar).
	Decorated bool `toml:"decorated"`

	// Transparent requests a transparent framebuffer.
	Transparent bool `toml:"transparent"`

	// VSync requests vertical synchronization. This backend performs no
	// buffer swap of its own, so the setting is carried for the
	// renderer that owns the surface.
	VSync bool `toml:"vsync"`

	// Samples is the number of samples for multisample anti-aliasing
	// (0 disables it).
	Samples int `toml:"samples"`

	// ExitOnEsc makes pressing Escape close the window.
	ExitOnEsc bool `toml:"exit_on_esc"`

	// AutomaticClose makes popping a close event set the should-close
	// flag.
	AutomaticClose bool `toml:"automatic_close"`

	// Layout is the key layout mode; see [key.Layouts].
	Layout key.Layouts `toml:"layout"`
}

// NewOptions returns a new [Options] with the given title and logical
// size and all other settings at their defaults.
func NewOptions(title string, width, height float32) *Options {
	opts := &Options{}
	opts.Defaults()
	opts.Title = title
	opts.Size = Size{width, height}
	return opts
}

// Defaults sets standard default values for all options.
func (o *Options) Defaults() {
	o.Title = "winit-window"
	o.Size = Size{640, 480}
	o.Resizable = true
	o.Decorated = true
	o.VSync = true
	o.AutomaticClose = true
	o.Layout = DefaultLayout()
}

// Fixup fills in sensible default values for unset fields.
func (o *Options) Fixup() {
	if o.Title == "" {
		o.Title = "winit-window"
	}
	if o.Size.Width <= 0 {
		o.Size.Width = 640
	}
	if o.Size.Height <= 0 {
		o.Size.Height = 480
	}
	if o.Samples < 0 {
		o.Samples = 0
	}
}

// OpenOptions reads options from the given TOML file. Fields absent
// from the file keep their zero values; callers typically follow with
// [Options.Fixup].
func OpenOptions(filename string) (*Options, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("window: reading options: %w", err)
	}
	o := &Options{}
	if err := toml.Unmarshal(b, o); err != nil {
		return nil, fmt.Errorf("window: parsing options: %w", err)
	}
	return o, nil
}

// Save writes the options to the given file as TOML.
func (o *Options) Save(filename string) error {
	b, err := toml.Marshal(o)
	if err != nil {
		return fmt.Errorf("window: encoding options: %w", err)
	}
	if err := os.WriteFile(filename, b, 0666); err != nil {
		return fmt.Errorf("window: writing options: %w", err)
	}
	return nil
}

// DefaultLayout returns the default key layout mode for the current
// system: [key.Raw] for English locales, where the US-layout shifted
// symbol tables apply, and [key.Standard] (layout-independent physical
// keys) everywhere else.
func DefaultLayout() key.Layouts {
	loc, err := locale.GetLocale()
	if err != nil {
		slog.Warn("window: unable to detect system locale", "err", err)
		return key.Standard
	}
	if strings.HasPrefix(strings.ToLower(loc), "en") {
		return key.Raw
	}
	return key.Standard
}
