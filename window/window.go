// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window defines the engine-facing window contract that the
// platform drivers implement, along with the window [Options].
package window

import (
	"time"

	"github.com/PistonDevelopers/winit-window/events"
	"github.com/PistonDevelopers/winit-window/events/key"
)

// Size is a window size. It is in logical (DPI-corrected) units unless
// stated otherwise.
type Size struct {
	Width  float32
	Height float32
}

// Position is a window position in screen coordinates.
type Position struct {
	X int
	Y int
}

// Window is the basic engine window contract: a should-close flag,
// size queries, the event pump, and the frame-boundary hook.
type Window interface {

	// ShouldClose returns whether the window has been requested to close,
	// either by the caller or by a delivered close event when automatic
	// close is enabled.
	ShouldClose() bool

	// SetShouldClose sets the should-close flag.
	SetShouldClose(c bool)

	// Size returns the inner size of the window in logical
	// (DPI-corrected) units.
	Size() Size

	// DrawSize returns the drawable size of the window in framebuffer
	// pixels. This can differ from [Window.Size] on high-DPI screens.
	DrawSize() Size

	// PollEvent pumps the platform loop without blocking and returns the
	// oldest pending event, or nil if there is none.
	PollEvent() events.Event

	// WaitEvent pumps the platform loop, blocking until at least one
	// platform event arrives, and returns the oldest pending event. If
	// the wait woke without any mapped event, an [events.Idle] event is
	// returned instead of blocking again.
	WaitEvent() events.Event

	// WaitEventTimeout is [Window.WaitEvent] with an upper bound on how
	// long the pump may block. It returns nil if no event is available
	// after the timeout.
	WaitEventTimeout(timeout time.Duration) events.Event

	// SwapBuffers marks the end of a frame. This backend performs no
	// buffer swap of its own (the renderer owns the surface); the call
	// is the frame boundary at which captured cursor motion is flushed
	// as a single relative-motion event.
	SwapBuffers()
}

// AdvancedWindow is the extended window contract with title, cursor
// capture, visibility, and geometry control.
type AdvancedWindow interface {
	Window

	// Title returns the window title.
	Title() string

	// SetTitle sets the window title.
	SetTitle(title string)

	// ExitOnEsc returns whether pressing Escape closes the window.
	ExitOnEsc() bool

	// SetExitOnEsc sets whether pressing Escape closes the window.
	// When enabled, the Escape press is swallowed: it sets the
	// should-close flag and never appears as a key event.
	SetExitOnEsc(esc bool)

	// AutomaticClose returns whether popping a close event sets the
	// should-close flag.
	AutomaticClose() bool

	// SetAutomaticClose sets whether popping a close event sets the
	// should-close flag.
	SetAutomaticClose(c bool)

	// SetCaptureCursor enables or disables relative-mouse capture:
	// the cursor is hidden and locked to the window, and absolute
	// motion is replaced by one accumulated relative-motion event per
	// frame. Setting the current value again is a no-op.
	SetCaptureCursor(capture bool)

	// KeyLayout returns the layout mode used to resolve logical keys.
	KeyLayout() key.Layouts

	// SetKeyLayout sets the layout mode used to resolve logical keys.
	SetKeyLayout(layout key.Layouts)

	// Show makes the window visible.
	Show()

	// Hide makes the window invisible.
	Hide()

	// Position returns the outer position of the window, with ok false
	// if the platform cannot report it.
	Position() (pos Position, ok bool)

	// SetPosition sets the outer position of the window.
	SetPosition(pos Position)

	// SetSize sets the inner size of the window, in logical units.
	SetSize(size Size)
}
