// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/PistonDevelopers/winit-window/math32"
)

// Resize is a [WindowResize] event.
type Resize struct {
	Base

	// Size is the new inner size in logical (DPI-corrected) units.
	Size math32.Vector2

	// DrawSize is the new drawable size in framebuffer pixels.
	DrawSize math32.Vector2
}

// NewResize returns a new [WindowResize] event.
func NewResize(size, drawSize math32.Vector2) *Resize {
	ev := &Resize{}
	ev.Typ = WindowResize
	ev.Size = size
	ev.DrawSize = drawSize
	return ev
}

func (ev *Resize) String() string {
	return fmt.Sprintf("%v{Size: %v, DrawSize: %v}", ev.Typ, ev.Size, ev.DrawSize)
}

// Drop is a [DropFile] event for files dragged and dropped onto the
// window.
type Drop struct {
	Base

	// Files are the paths of the dropped files, in platform order.
	Files []string
}

// NewDrop returns a new [DropFile] event at the given logical window
// position.
func NewDrop(where math32.Vector2, files []string) *Drop {
	ev := &Drop{}
	ev.Typ = DropFile
	ev.Where = where
	ev.Files = files
	return ev
}

func (ev *Drop) String() string {
	return fmt.Sprintf("%v{Files: %v, Pos: %v}", ev.Typ, ev.Files, ev.Where)
}
