// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of logical event. The type includes both
// the source of the event and its action (e.g., MouseDown and MouseUp
// are separate event types). Each raw platform event maps to zero or
// one logical event; categories the platform reports but the engine
// contract does not cover produce no event at all.
type Types int32

const (
	// UnknownType is the zero value, an unknown event type.
	UnknownType Types = iota

	// KeyDown happens when a key is pressed. A held key does not
	// produce repeated KeyDown events; repeats are suppressed by the
	// window state machine.
	KeyDown

	// KeyUp happens when a key is released.
	KeyUp

	// TextInput carries printable character input, decoupled from the
	// KeyDown event for the same keystroke. Control characters are
	// filtered because they are already represented as key events.
	TextInput

	// MouseDown happens when a mouse button is pressed.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// MouseMove is absolute cursor motion in logical window
	// coordinates. It is not delivered while the cursor is captured.
	MouseMove

	// MouseRelative is accumulated relative cursor motion, delivered
	// once per frame boundary while the cursor is captured.
	MouseRelative

	// Scroll is scroll wheel motion as a 2D delta.
	Scroll

	// MouseEnter is when the cursor enters the window.
	MouseEnter

	// MouseLeave is when the cursor leaves the window.
	MouseLeave

	// Focus is when the window gains keyboard focus.
	Focus

	// FocusLost is when the window loses keyboard focus.
	FocusLost

	// WindowResize is when the window inner size has changed.
	WindowResize

	// DropFile is when files are dragged and dropped onto the window.
	DropFile

	// WindowClose is when the platform requests the window to close.
	WindowClose

	// Idle is a no-op event returned by an unbounded wait that woke
	// without any mapped event available.
	Idle

	// TypesN is the number of defined event types.
	TypesN
)

var typeNames = [TypesN]string{
	UnknownType:   "UnknownType",
	KeyDown:       "KeyDown",
	KeyUp:         "KeyUp",
	TextInput:     "TextInput",
	MouseDown:     "MouseDown",
	MouseUp:       "MouseUp",
	MouseMove:     "MouseMove",
	MouseRelative: "MouseRelative",
	Scroll:        "Scroll",
	MouseEnter:    "MouseEnter",
	MouseLeave:    "MouseLeave",
	Focus:         "Focus",
	FocusLost:     "FocusLost",
	WindowResize:  "WindowResize",
	DropFile:      "DropFile",
	WindowClose:   "WindowClose",
	Idle:          "Idle",
}

func (t Types) String() string {
	if t < 0 || t >= TypesN {
		return "UnknownType"
	}
	return typeNames[t]
}
