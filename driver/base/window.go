// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base provides the platform-independent window state machine
// shared by all drivers: the event queue, escape interception, key
// repeat suppression, and the cursor-capture accumulator. Drivers
// embed [Window] and implement [Platform].
package base

import (
	"log"
	"time"

	"github.com/PistonDevelopers/winit-window/events"
	"github.com/PistonDevelopers/winit-window/events/key"
	"github.com/PistonDevelopers/winit-window/math32"
	"github.com/PistonDevelopers/winit-window/window"
)

// PumpMode selects how long a [Platform.Pump] call may block before
// returning control.
type PumpMode int32

const (
	// Poll dispatches currently pending platform events without blocking.
	Poll PumpMode = iota

	// Wait blocks until at least one platform event arrives.
	Wait

	// WaitTimeout blocks like [Wait], with an upper bound on the
	// suspension duration.
	WaitTimeout
)

// Platform is the set of platform-specific operations a driver must
// provide to the base [Window]. All positions and sizes are in the
// platform's pixel coordinates unless stated otherwise.
type Platform interface {

	// InnerSize returns the inner size of the window in pixels.
	InnerSize() math32.Vector2

	// FramebufferSize returns the drawable size in framebuffer pixels.
	FramebufferSize() math32.Vector2

	// ScaleFactor returns the DPI scale factor mapping pixels to
	// logical units.
	ScaleFactor() float32

	// SetCursorPos moves the OS cursor to the given pixel position
	// within the window.
	SetCursorPos(pos math32.Vector2) error

	// SetCursorGrab locks or unlocks the cursor to the window.
	SetCursorGrab(grab bool) error

	// SetCursorVisible shows or hides the cursor.
	SetCursorVisible(visible bool)

	// ApplyTitle applies the given title to the platform window.
	ApplyTitle(title string)

	// Pump runs the platform event loop once, dispatching any delivered
	// raw events into the window's Handle methods. The pump temporarily
	// owns the platform loop; re-entrant calls are not supported.
	Pump(mode PumpMode, timeout time.Duration)
}

// Window contains the data and logic common to all driver windows:
// the pending-event FIFO, the should-close flag, and the cursor-capture
// state machine. It implements everything of [window.AdvancedWindow]
// that does not require direct platform access.
type Window struct {

	// This is the platform window implementing the platform-specific
	// operations; it is set by the driver embedding this window.
	This Platform

	// Events is the FIFO queue of mapped events awaiting delivery.
	Events events.Queue

	// Titl is the current window title.
	Titl string

	// ExitEsc makes an Escape press set the should-close flag instead
	// of being delivered as a key event.
	ExitEsc bool

	// AutoClose makes popping a close event set the should-close flag.
	AutoClose bool

	// Layout is the key layout mode used by [key.Resolve].
	Layout key.Layouts

	shouldClose   bool
	captureCursor bool

	// lastCursor is the most recent raw cursor position, in logical
	// units, tracked while captured.
	lastCursor math32.Vector2

	// cursorAccum accumulates relative motion, in logical units,
	// between frame boundaries while captured.
	cursorAccum math32.Vector2

	// lastPressed is the key currently held, used to suppress repeated
	// press events; CodeUnknown means none.
	lastPressed key.Codes
}

// Init initializes the window from the given options and sets the
// platform implementation. Drivers must call it exactly once, passing
// themselves as this.
func (w *Window) Init(this Platform, opts *window.Options) {
	w.This = this
	w.Events.Init()
	w.Titl = opts.Title
	w.ExitEsc = opts.ExitOnEsc
	w.AutoClose = opts.AutomaticClose
	w.Layout = opts.Layout
	w.lastPressed = key.CodeUnknown
}

func (w *Window) ShouldClose() bool {
	return w.shouldClose
}

func (w *Window) SetShouldClose(c bool) {
	w.shouldClose = c
}

func (w *Window) Title() string {
	return w.Titl
}

func (w *Window) SetTitle(title string) {
	w.This.ApplyTitle(title)
	w.Titl = title
}

func (w *Window) ExitOnEsc() bool {
	return w.ExitEsc
}

func (w *Window) SetExitOnEsc(esc bool) {
	w.ExitEsc = esc
}

func (w *Window) AutomaticClose() bool {
	return w.AutoClose
}

func (w *Window) SetAutomaticClose(c bool) {
	w.AutoClose = c
}

func (w *Window) KeyLayout() key.Layouts {
	return w.Layout
}

func (w *Window) SetKeyLayout(layout key.Layouts) {
	w.Layout = layout
}

// CursorCaptured returns whether relative-mouse capture is active.
func (w *Window) CursorCaptured() bool {
	return w.captureCursor
}

func (w *Window) Size() window.Size {
	// truncate to whole logical units after the DPI division
	sz := w.This.InnerSize().DivScalar(w.This.ScaleFactor()).Floor()
	return window.Size{Width: sz.X, Height: sz.Y}
}

func (w *Window) DrawSize() window.Size {
	sz := w.This.FramebufferSize()
	return window.Size{Width: sz.X, Height: sz.Y}
}

// center returns the mid-point of the window's inner size, in pixels.
// It is the reference point for capture center-locking, and a raw move
// event exactly at it is treated as re-centering feedback, not input.
func (w *Window) center() math32.Vector2 {
	return w.This.InnerSize().DivScalar(2)
}

// SetCaptureCursor enables or disables relative-mouse capture.
// Setting the current value again is a no-op. Disabling drops any
// accumulated delta without flushing it; this matches the behavior
// consumers depend on (no spurious final jump on release).
func (w *Window) SetCaptureCursor(capture bool) {
	if capture == w.captureCursor {
		return
	}
	if capture {
		if err := w.This.SetCursorGrab(true); err != nil {
			log.Fatalln("winit-window: cursor grab failed:", err)
		}
		w.This.SetCursorVisible(false)
		w.cursorAccum.SetZero()
		w.lastCursor = w.center().DivScalar(w.This.ScaleFactor())
	} else {
		if err := w.This.SetCursorGrab(false); err != nil {
			log.Fatalln("winit-window: cursor ungrab failed:", err)
		}
		w.This.SetCursorVisible(true)
	}
	w.captureCursor = capture
}

// SwapBuffers is the frame-boundary hook. While captured, it
// center-locks the OS cursor, flushes the accumulated motion as a
// single relative event, and resets the accumulator.
func (w *Window) SwapBuffers() {
	if !w.captureCursor {
		return
	}
	center := w.center()
	if err := w.This.SetCursorPos(center); err != nil {
		log.Fatalln("winit-window: cursor center-lock failed:", err)
	}
	w.Events.Send(events.NewMouseRelative(w.cursorAccum))
	w.cursorAccum.SetZero()
}

// HandleKey processes a raw platform key event: escape interception
// first, then layout resolution, then repeat suppression, then a
// queued key event. While exit-on-escape is set, Escape is swallowed
// on both the press and the release edge; it never reaches the caller
// as a key event. Repeated presses of a held key (press is true with
// no intervening release) are suppressed; text input for the same
// keystrokes is unaffected, arriving via [Window.HandleText].
func (w *Window) HandleKey(code key.Codes, scancode int, press bool, mods key.Modifiers) {
	if w.ExitEsc && code == key.CodeEscape {
		w.SetShouldClose(true)
		return
	}
	rc := key.Resolve(code, mods, w.Layout)
	if press {
		if rc != key.CodeUnknown && rc == w.lastPressed {
			return
		}
		w.lastPressed = rc
		w.Events.Send(events.NewKey(events.KeyDown, rc, scancode, mods))
		return
	}
	if rc == w.lastPressed {
		w.lastPressed = key.CodeUnknown
	}
	w.Events.Send(events.NewKey(events.KeyUp, rc, scancode, mods))
}

// HandleText processes raw character input. Control characters are
// filtered: they are already represented as key events.
func (w *Window) HandleText(r rune, mods key.Modifiers) {
	switch r {
	case 0x7f, // delete
		0x1b, // escape
		0x08, // backspace
		'\r', '\n', '\t':
		return
	}
	w.Events.Send(events.NewText(r, mods))
}

// HandleMouseButton processes a raw mouse button event at the given
// pixel position.
func (w *Window) HandleMouseButton(but events.Buttons, press bool, pos math32.Vector2, mods key.Modifiers) {
	typ := events.MouseUp
	if press {
		typ = events.MouseDown
	}
	where := pos.DivScalar(w.This.ScaleFactor())
	w.Events.Send(events.NewMouseButton(typ, but, where, mods))
}

// HandleCursorPos processes a raw absolute cursor move at the given
// pixel position. While captured, the move is intercepted: the last
// cursor position updates, a move exactly at the window center is
// ignored as center-lock feedback, and anything else accumulates into
// the per-frame delta. No motion event is queued until the frame
// boundary. Outside capture, an absolute move event is queued in
// logical coordinates.
func (w *Window) HandleCursorPos(pos math32.Vector2) {
	logical := pos.DivScalar(w.This.ScaleFactor())
	if w.captureCursor {
		prev := w.lastCursor
		w.lastCursor = logical

		if pos == w.center() {
			return
		}

		w.cursorAccum = w.cursorAccum.Add(logical.Sub(prev))
		return
	}
	w.Events.Send(events.NewMouseMove(logical))
}

// HandleScroll processes a raw scroll event with the given delta,
// already normalized to 2D (line deltas and pixel deltas look the
// same here), at the given pixel position.
func (w *Window) HandleScroll(delta, pos math32.Vector2) {
	where := pos.DivScalar(w.This.ScaleFactor())
	w.Events.Send(events.NewScroll(where, delta, 0))
}

// HandleResize processes a raw resize to the given pixel and
// framebuffer sizes.
func (w *Window) HandleResize(size, drawSize math32.Vector2) {
	logical := size.DivScalar(w.This.ScaleFactor())
	w.Events.Send(events.NewResize(logical, drawSize))
}

// HandleFocus processes a raw focus change.
func (w *Window) HandleFocus(focused bool) {
	w.Events.Send(events.NewFocus(focused))
}

// HandleCursorEnter processes the cursor entering or leaving the window.
func (w *Window) HandleCursorEnter(entered bool) {
	w.Events.Send(events.NewCursorEnter(entered))
}

// HandleDrop processes files dropped at the given pixel position.
func (w *Window) HandleDrop(pos math32.Vector2, files []string) {
	if len(files) == 0 {
		return
	}
	where := pos.DivScalar(w.This.ScaleFactor())
	w.Events.Send(events.NewDrop(where, files))
}

// HandleCloseReq processes a platform close request.
func (w *Window) HandleCloseReq() {
	w.Events.Send(events.NewClose())
}

// nextEvent pops the oldest pending event. Popping a close event sets
// the should-close flag when automatic close is enabled.
func (w *Window) nextEvent() events.Event {
	ev := w.Events.NextEvent()
	if ev != nil && ev.Type() == events.WindowClose && w.AutoClose {
		w.SetShouldClose(true)
	}
	return ev
}

func (w *Window) PollEvent() events.Event {
	w.This.Pump(Poll, 0)
	return w.nextEvent()
}

func (w *Window) WaitEvent() events.Event {
	w.This.Pump(Wait, 0)
	if ev := w.nextEvent(); ev != nil {
		return ev
	}
	return events.NewIdle()
}

func (w *Window) WaitEventTimeout(timeout time.Duration) events.Event {
	w.This.Pump(WaitTimeout, timeout)
	return w.nextEvent()
}
