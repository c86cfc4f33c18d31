// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen implements the window contract without any
// platform windowing system. Raw events are injected programmatically
// and dispatched on the next pump, which makes it the driver of choice
// for headless environments and for testing the event state machine.
package offscreen

import (
	"time"

	"github.com/PistonDevelopers/winit-window/driver/base"
	"github.com/PistonDevelopers/winit-window/events"
	"github.com/PistonDevelopers/winit-window/events/key"
	"github.com/PistonDevelopers/winit-window/math32"
	"github.com/PistonDevelopers/winit-window/window"
)

// Window is the offscreen implementation of [window.AdvancedWindow].
// The Inject methods stage raw platform events; a subsequent pump
// (any of the event-fetching methods) dispatches them in order, the
// same way a real platform loop delivers callbacks.
type Window struct {
	base.Window

	// Isz and Fbsz are the simulated inner and framebuffer sizes in
	// pixels.
	Isz  math32.Vector2
	Fbsz math32.Vector2

	// Scale is the simulated DPI scale factor.
	Scale float32

	// Pos is the simulated window position.
	Pos window.Position

	// Visible reflects Show and Hide calls.
	Visible bool

	// CursorVisible reflects SetCursorVisible calls.
	CursorVisible bool

	// GrabCalls, VisibleCalls, and CursorPosCalls record every platform
	// cursor operation, newest last.
	GrabCalls      []bool
	VisibleCalls   []bool
	CursorPosCalls []math32.Vector2

	// AppliedTitle is the last title applied to the platform.
	AppliedTitle string

	pending []func()
}

var _ window.AdvancedWindow = (*Window)(nil)
var _ base.Platform = (*Window)(nil)

// NewWindow creates a new offscreen window from the given options
// (nil means defaults), at scale factor 1.
func NewWindow(opts *window.Options) *Window {
	if opts == nil {
		opts = &window.Options{}
		opts.Defaults()
	}
	opts.Fixup()
	w := &Window{
		Isz:           math32.Vec2(opts.Size.Width, opts.Size.Height),
		Fbsz:          math32.Vec2(opts.Size.Width, opts.Size.Height),
		Scale:         1,
		Visible:       true,
		CursorVisible: true,
		AppliedTitle:  opts.Title,
	}
	w.Init(w, opts)
	return w
}

func (w *Window) InnerSize() math32.Vector2 {
	return w.Isz
}

func (w *Window) FramebufferSize() math32.Vector2 {
	return w.Fbsz
}

func (w *Window) ScaleFactor() float32 {
	return w.Scale
}

func (w *Window) SetCursorPos(pos math32.Vector2) error {
	w.CursorPosCalls = append(w.CursorPosCalls, pos)
	return nil
}

func (w *Window) SetCursorGrab(grab bool) error {
	w.GrabCalls = append(w.GrabCalls, grab)
	return nil
}

func (w *Window) SetCursorVisible(visible bool) {
	w.CursorVisible = visible
	w.VisibleCalls = append(w.VisibleCalls, visible)
}

func (w *Window) ApplyTitle(title string) {
	w.AppliedTitle = title
}

// Pump dispatches all staged raw events. The mode and timeout are
// ignored; there is no platform loop to block on.
func (w *Window) Pump(mode base.PumpMode, timeout time.Duration) {
	staged := w.pending
	w.pending = nil
	for _, f := range staged {
		f()
	}
}

func (w *Window) Show() {
	w.Visible = true
}

func (w *Window) Hide() {
	w.Visible = false
}

func (w *Window) Position() (window.Position, bool) {
	return w.Pos, true
}

func (w *Window) SetPosition(pos window.Position) {
	w.Pos = pos
}

func (w *Window) SetSize(size window.Size) {
	w.Isz = math32.Vec2(size.Width, size.Height).MulScalar(w.Scale)
	w.Fbsz = w.Isz
}

func (w *Window) stage(f func()) {
	w.pending = append(w.pending, f)
}

// InjectKey stages a raw key event in pixel coordinates.
func (w *Window) InjectKey(code key.Codes, scancode int, press bool, mods key.Modifiers) {
	w.stage(func() { w.HandleKey(code, scancode, press, mods) })
}

// InjectChar stages a raw character input event.
func (w *Window) InjectChar(r rune, mods key.Modifiers) {
	w.stage(func() { w.HandleText(r, mods) })
}

// InjectMouseButton stages a raw mouse button event at the given pixel
// position.
func (w *Window) InjectMouseButton(but events.Buttons, press bool, pos math32.Vector2, mods key.Modifiers) {
	w.stage(func() { w.HandleMouseButton(but, press, pos, mods) })
}

// InjectCursorPos stages a raw absolute cursor move in pixels.
func (w *Window) InjectCursorPos(pos math32.Vector2) {
	w.stage(func() { w.HandleCursorPos(pos) })
}

// InjectScroll stages a raw scroll event at the given pixel position.
func (w *Window) InjectScroll(delta, pos math32.Vector2) {
	w.stage(func() { w.HandleScroll(delta, pos) })
}

// InjectResize stages a window resize to the given pixel size. The
// framebuffer tracks the inner size; both are physical units.
func (w *Window) InjectResize(size math32.Vector2) {
	w.stage(func() {
		w.Isz = size
		w.Fbsz = size
		w.HandleResize(w.Isz, w.Fbsz)
	})
}

// InjectFocus stages a focus change.
func (w *Window) InjectFocus(focused bool) {
	w.stage(func() { w.HandleFocus(focused) })
}

// InjectCursorEnter stages the cursor entering or leaving the window.
func (w *Window) InjectCursorEnter(entered bool) {
	w.stage(func() { w.HandleCursorEnter(entered) })
}

// InjectDrop stages a file drop at the given pixel position.
func (w *Window) InjectDrop(pos math32.Vector2, files []string) {
	w.stage(func() { w.HandleDrop(pos, files) })
}

// InjectCloseReq stages a platform close request.
func (w *Window) InjectCloseReq() {
	w.stage(func() { w.HandleCloseReq() })
}
