// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/PistonDevelopers/winit-window/events/key"
	"github.com/PistonDevelopers/winit-window/math32"
)

// Buttons is a mouse button. NoButton doubles as the documented
// unknown sentinel: any platform button outside the translation table
// maps to it.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right

	// X1 and X2 are the side (back/forward) buttons.
	X1
	X2

	Button6
	Button7
	Button8

	// ButtonsN is the number of defined buttons.
	ButtonsN
)

var buttonNames = [ButtonsN]string{
	NoButton: "NoButton",
	Left:     "Left",
	Middle:   "Middle",
	Right:    "Right",
	X1:       "X1",
	X2:       "X2",
	Button6:  "Button6",
	Button7:  "Button7",
	Button8:  "Button8",
}

func (b Buttons) String() string {
	if b < 0 || b >= ButtonsN {
		return "NoButton"
	}
	return buttonNames[b]
}

// Mouse is a basic mouse event, used for [MouseDown], [MouseUp],
// and [MouseMove].
type Mouse struct {
	Base

	// Button is the button involved, or NoButton for plain motion.
	Button Buttons
}

// NewMouseButton returns a new [MouseDown] or [MouseUp] event.
func NewMouseButton(typ Types, but Buttons, where math32.Vector2, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Typ = typ
	ev.Button = but
	ev.Where = where
	ev.Mods = mods
	return ev
}

// NewMouseMove returns a new absolute [MouseMove] event at the given
// logical window position.
func NewMouseMove(where math32.Vector2) *Mouse {
	ev := &Mouse{}
	ev.Typ = MouseMove
	ev.Where = where
	return ev
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v}", ev.Typ, ev.Button, ev.Where, ev.Mods)
}

// Motion is a [MouseRelative] event carrying the relative cursor
// movement accumulated over one frame while the cursor is captured.
type Motion struct {
	Base

	// Delta is the accumulated movement in logical units.
	Delta math32.Vector2
}

// NewMouseRelative returns a new [MouseRelative] event.
func NewMouseRelative(delta math32.Vector2) *Motion {
	ev := &Motion{}
	ev.Typ = MouseRelative
	ev.Delta = delta
	return ev
}

func (ev *Motion) String() string {
	return fmt.Sprintf("%v{Delta: %v}", ev.Typ, ev.Delta)
}

// MouseScroll is a [Scroll] event, recording the delta of the scroll.
// Pixel-delta and line-delta platform scroll representations both
// normalize to this shape.
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis, in window-scaled
	// logical units.
	Delta math32.Vector2
}

// NewScroll returns a new [Scroll] event.
func NewScroll(where, delta math32.Vector2, mods key.Modifiers) *MouseScroll {
	ev := &MouseScroll{}
	ev.Typ = Scroll
	ev.Where = where
	ev.Delta = delta
	ev.Mods = mods
	return ev
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Mods: %v}", ev.Typ, ev.Delta, ev.Where, ev.Mods)
}
