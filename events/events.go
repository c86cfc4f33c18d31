// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the logical, engine-facing events produced by
// a window backend, independent of platform-specific encodings, along
// with the FIFO queue used to deliver them.
package events

import (
	"fmt"

	"github.com/PistonDevelopers/winit-window/events/key"
	"github.com/PistonDevelopers/winit-window/math32"
)

// Event is the interface for all logical events. Events are created
// once per mapped platform event, are immutable, and are consumed
// exactly once by the caller popping them from the queue.
type Event interface {
	// Type returns the type of the event.
	Type() Types

	fmt.Stringer
}

// Base is the base type for all events, containing the type, the
// active keyboard modifiers, and, for positional events, the cursor
// position in logical (DPI-corrected) window coordinates.
type Base struct {
	Typ   Types
	Mods  key.Modifiers
	Where math32.Vector2
}

func (ev *Base) Type() Types {
	return ev.Typ
}

// Pos returns the cursor position in logical window coordinates,
// for events that have one.
func (ev *Base) Pos() math32.Vector2 {
	return ev.Where
}

// Modifiers returns the keyboard modifiers active for this event.
func (ev *Base) Modifiers() key.Modifiers {
	return ev.Mods
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Pos: %v, Mods: %v}", ev.Typ, ev.Where, ev.Mods)
}

// NewFocus returns a [Focus] or [FocusLost] event.
func NewFocus(focused bool) Event {
	ev := &Base{}
	ev.Typ = FocusLost
	if focused {
		ev.Typ = Focus
	}
	return ev
}

// NewCursorEnter returns a [MouseEnter] or [MouseLeave] event.
func NewCursorEnter(entered bool) Event {
	ev := &Base{}
	ev.Typ = MouseLeave
	if entered {
		ev.Typ = MouseEnter
	}
	return ev
}

// NewClose returns a [WindowClose] event.
func NewClose() Event {
	return &Base{Typ: WindowClose}
}

// NewIdle returns an [Idle] no-op event.
func NewIdle() Event {
	return &Base{Typ: Idle}
}
