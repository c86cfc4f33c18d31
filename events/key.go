// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/PistonDevelopers/winit-window/events/key"
)

// Key is a [KeyDown] or [KeyUp] event for one logical key.
type Key struct {
	Base

	// Code is the logical key, already resolved through the window's
	// layout mode.
	Code key.Codes

	// Scancode is the platform hardware scancode, when known (0 otherwise).
	Scancode int
}

// NewKey returns a new [KeyDown] or [KeyUp] event.
func NewKey(typ Types, code key.Codes, scancode int, mods key.Modifiers) *Key {
	ev := &Key{}
	ev.Typ = typ
	ev.Code = code
	ev.Scancode = scancode
	ev.Mods = mods
	return ev
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %v, Scancode: %v, Mods: %v}", ev.Typ, ev.Code, ev.Scancode, ev.Mods)
}

// Text is a [TextInput] event carrying one printable character.
type Text struct {
	Base

	// Rune is the input character.
	Rune rune
}

// NewText returns a new [TextInput] event.
func NewText(r rune, mods key.Modifiers) *Text {
	ev := &Text{}
	ev.Typ = TextInput
	ev.Rune = r
	ev.Mods = mods
	return ev
}

func (ev *Text) String() string {
	return fmt.Sprintf("%v{Rune: %q, Mods: %v}", ev.Typ, ev.Rune, ev.Mods)
}
