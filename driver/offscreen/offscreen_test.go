// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"testing"
	"time"

	"github.com/PistonDevelopers/winit-window/events"
	"github.com/PistonDevelopers/winit-window/events/key"
	"github.com/PistonDevelopers/winit-window/math32"
	"github.com/PistonDevelopers/winit-window/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWindow() *Window {
	opts := window.NewOptions("test", 640, 480)
	opts.Layout = key.Raw
	return NewWindow(opts)
}

// drain pops every pending event.
func drain(w *Window) []events.Event {
	var evs []events.Event
	for {
		ev := w.PollEvent()
		if ev == nil {
			return evs
		}
		evs = append(evs, ev)
	}
}

func TestCaptureIdempotent(t *testing.T) {
	w := newTestWindow()
	w.SetCaptureCursor(true)
	w.SetCaptureCursor(true)
	assert.Equal(t, []bool{true}, w.GrabCalls)
	assert.Equal(t, []bool{false}, w.VisibleCalls)
	assert.True(t, w.CursorCaptured())

	w.SetCaptureCursor(false)
	w.SetCaptureCursor(false)
	assert.Equal(t, []bool{true, false}, w.GrabCalls)
	assert.Equal(t, []bool{false, true}, w.VisibleCalls)
	assert.False(t, w.CursorCaptured())
}

func TestCaptureSuppressesMoveEvents(t *testing.T) {
	w := newTestWindow()
	w.SetCaptureCursor(true)
	w.InjectCursorPos(math32.Vec2(100, 100))
	w.InjectCursorPos(math32.Vec2(150, 120))
	assert.Empty(t, drain(w))
}

func TestCaptureFlushAccumulates(t *testing.T) {
	w := newTestWindow()
	w.SetCaptureCursor(true)

	// establish a position and flush it away
	w.InjectCursorPos(math32.Vec2(100, 100))
	drain(w)
	w.SwapBuffers()
	drain(w)

	// two moves coalesce into one delta, end minus start
	w.InjectCursorPos(math32.Vec2(150, 120))
	w.InjectCursorPos(math32.Vec2(200, 90))
	drain(w)
	w.SwapBuffers()

	evs := drain(w)
	require.Len(t, evs, 1)
	motion, ok := evs[0].(*events.Motion)
	require.True(t, ok)
	assert.Equal(t, events.MouseRelative, motion.Type())
	assert.Equal(t, math32.Vec2(100, -10), motion.Delta)

	// the accumulator resets at the flush
	w.SwapBuffers()
	evs = drain(w)
	require.Len(t, evs, 1)
	assert.Equal(t, math32.Vec2(0, 0), evs[0].(*events.Motion).Delta)
}

func TestCaptureCenterLock(t *testing.T) {
	w := newTestWindow()
	w.SetCaptureCursor(true)
	w.SwapBuffers()

	// 640x480 window, center at (320, 240)
	require.Len(t, w.CursorPosCalls, 1)
	assert.Equal(t, math32.Vec2(320, 240), w.CursorPosCalls[0])
}

func TestCaptureCenterFeedbackIgnored(t *testing.T) {
	w := newTestWindow()
	w.SetCaptureCursor(true)

	// a move exactly at the center is re-centering feedback, not input,
	// but it still updates the tracked position
	w.InjectCursorPos(math32.Vec2(320, 240))
	w.InjectCursorPos(math32.Vec2(330, 250))
	drain(w)
	w.SwapBuffers()

	evs := drain(w)
	require.Len(t, evs, 1)
	assert.Equal(t, math32.Vec2(10, 10), evs[0].(*events.Motion).Delta)
}

func TestCaptureExitDropsDelta(t *testing.T) {
	w := newTestWindow()
	w.SetCaptureCursor(true)
	w.InjectCursorPos(math32.Vec2(100, 100))
	drain(w)

	w.SetCaptureCursor(false)
	w.SwapBuffers()
	assert.Empty(t, drain(w))
	assert.Empty(t, w.CursorPosCalls)

	// re-entering starts from a clean accumulator
	w.SetCaptureCursor(true)
	w.SwapBuffers()
	evs := drain(w)
	require.Len(t, evs, 1)
	assert.Equal(t, math32.Vec2(0, 0), evs[0].(*events.Motion).Delta)
}

func TestUncapturedMovePassesThrough(t *testing.T) {
	w := newTestWindow()
	w.InjectCursorPos(math32.Vec2(100, 100))
	evs := drain(w)
	require.Len(t, evs, 1)
	assert.Equal(t, events.MouseMove, evs[0].Type())
	assert.Equal(t, math32.Vec2(100, 100), evs[0].(*events.Mouse).Pos())
}

func TestEscapeInterception(t *testing.T) {
	w := newTestWindow()
	w.SetExitOnEsc(true)
	w.InjectKey(key.CodeEscape, 1, true, 0)
	w.InjectKey(key.CodeEscape, 1, false, 0)
	assert.Empty(t, drain(w))
	assert.True(t, w.ShouldClose())
}

func TestEscapeReleaseIntercepted(t *testing.T) {
	// a release edge alone is also swallowed while exit-on-escape is set
	w := newTestWindow()
	w.SetExitOnEsc(true)
	w.InjectKey(key.CodeEscape, 1, false, 0)
	assert.Empty(t, drain(w))
	assert.True(t, w.ShouldClose())
}

func TestEscapeDeliveredWithoutExitOnEsc(t *testing.T) {
	w := newTestWindow()
	w.InjectKey(key.CodeEscape, 1, true, 0)
	evs := drain(w)
	require.Len(t, evs, 1)
	assert.Equal(t, events.KeyDown, evs[0].Type())
	assert.Equal(t, key.CodeEscape, evs[0].(*events.Key).Code)
	assert.False(t, w.ShouldClose())
}

func TestKeyRepeatSuppression(t *testing.T) {
	w := newTestWindow()
	w.InjectKey(key.CodeA, 30, true, 0)
	w.InjectKey(key.CodeA, 30, true, 0)
	w.InjectKey(key.CodeA, 30, true, 0)
	w.InjectKey(key.CodeA, 30, false, 0)
	w.InjectKey(key.CodeA, 30, true, 0)

	evs := drain(w)
	require.Len(t, evs, 3)
	assert.Equal(t, events.KeyDown, evs[0].Type())
	assert.Equal(t, events.KeyUp, evs[1].Type())
	assert.Equal(t, events.KeyDown, evs[2].Type())
}

func TestRepeatedTextNotSuppressed(t *testing.T) {
	w := newTestWindow()
	w.InjectKey(key.CodeA, 30, true, 0)
	w.InjectChar('a', 0)
	w.InjectKey(key.CodeA, 30, true, 0)
	w.InjectChar('a', 0)

	evs := drain(w)
	require.Len(t, evs, 3)
	assert.Equal(t, events.KeyDown, evs[0].Type())
	assert.Equal(t, events.TextInput, evs[1].Type())
	assert.Equal(t, events.TextInput, evs[2].Type())
	assert.Equal(t, 'a', evs[1].(*events.Text).Rune)
}

func TestControlCharactersFiltered(t *testing.T) {
	w := newTestWindow()
	for _, r := range []rune{0x7f, 0x1b, 0x08, '\r', '\n', '\t'} {
		w.InjectChar(r, 0)
	}
	w.InjectChar('x', 0)
	evs := drain(w)
	require.Len(t, evs, 1)
	assert.Equal(t, 'x', evs[0].(*events.Text).Rune)
}

func TestLayoutResolution(t *testing.T) {
	shift := key.Modifiers(0)
	shift.SetFlag(true, key.Shift)

	w := newTestWindow()
	w.InjectKey(key.Code2, 3, true, shift)
	evs := drain(w)
	require.Len(t, evs, 1)
	assert.Equal(t, key.CodeAt, evs[0].(*events.Key).Code)

	w.SetKeyLayout(key.Standard)
	w.InjectKey(key.Code2, 3, false, shift)
	w.InjectKey(key.Code2, 3, true, shift)
	evs = drain(w)
	require.Len(t, evs, 2)
	assert.Equal(t, key.Code2, evs[1].(*events.Key).Code)
}

func TestAutomaticClose(t *testing.T) {
	w := newTestWindow()
	require.True(t, w.AutomaticClose())
	w.InjectCloseReq()

	ev := w.PollEvent()
	require.NotNil(t, ev)
	assert.Equal(t, events.WindowClose, ev.Type())
	assert.True(t, w.ShouldClose())
}

func TestAutomaticCloseDisabled(t *testing.T) {
	w := newTestWindow()
	w.SetAutomaticClose(false)
	w.InjectCloseReq()

	ev := w.PollEvent()
	require.NotNil(t, ev)
	assert.Equal(t, events.WindowClose, ev.Type())
	assert.False(t, w.ShouldClose())
}

func TestResize(t *testing.T) {
	w := newTestWindow()
	assert.Equal(t, window.Size{Width: 640, Height: 480}, w.Size())

	w.InjectResize(math32.Vec2(800, 600))
	evs := drain(w)
	require.Len(t, evs, 1)
	rsz := evs[0].(*events.Resize)
	assert.Equal(t, math32.Vec2(800, 600), rsz.Size)
	assert.Equal(t, math32.Vec2(800, 600), rsz.DrawSize)
	assert.Equal(t, window.Size{Width: 800, Height: 600}, w.Size())
	assert.Equal(t, window.Size{Width: 800, Height: 600}, w.DrawSize())
}

func TestSizeTruncation(t *testing.T) {
	w := newTestWindow()
	w.Scale = 2
	w.InjectResize(math32.Vec2(801, 601))
	drain(w)
	assert.Equal(t, window.Size{Width: 400, Height: 300}, w.Size())
}

func TestScaleFactor(t *testing.T) {
	w := newTestWindow()
	w.Scale = 2
	w.InjectResize(math32.Vec2(800, 600))
	evs := drain(w)
	require.Len(t, evs, 1)
	rsz := evs[0].(*events.Resize)
	assert.Equal(t, math32.Vec2(400, 300), rsz.Size)
	assert.Equal(t, math32.Vec2(800, 600), rsz.DrawSize)

	w.InjectMouseButton(events.Left, true, math32.Vec2(100, 100), 0)
	evs = drain(w)
	require.Len(t, evs, 1)
	assert.Equal(t, math32.Vec2(50, 50), evs[0].(*events.Mouse).Pos())
}

func TestMouseButtonAndScroll(t *testing.T) {
	w := newTestWindow()
	w.InjectMouseButton(events.Right, true, math32.Vec2(10, 20), 0)
	w.InjectMouseButton(events.Right, false, math32.Vec2(10, 20), 0)
	w.InjectScroll(math32.Vec2(0, -3), math32.Vec2(10, 20))

	evs := drain(w)
	require.Len(t, evs, 3)
	assert.Equal(t, events.MouseDown, evs[0].Type())
	assert.Equal(t, events.Right, evs[0].(*events.Mouse).Button)
	assert.Equal(t, events.MouseUp, evs[1].Type())
	scroll := evs[2].(*events.MouseScroll)
	assert.Equal(t, events.Scroll, scroll.Type())
	assert.Equal(t, math32.Vec2(0, -3), scroll.Delta)
}

func TestFocusAndEnter(t *testing.T) {
	w := newTestWindow()
	w.InjectFocus(true)
	w.InjectFocus(false)
	w.InjectCursorEnter(true)
	w.InjectCursorEnter(false)

	evs := drain(w)
	require.Len(t, evs, 4)
	assert.Equal(t, events.Focus, evs[0].Type())
	assert.Equal(t, events.FocusLost, evs[1].Type())
	assert.Equal(t, events.MouseEnter, evs[2].Type())
	assert.Equal(t, events.MouseLeave, evs[3].Type())
}

func TestDrop(t *testing.T) {
	w := newTestWindow()
	w.InjectDrop(math32.Vec2(5, 5), nil) // empty drops are filtered
	w.InjectDrop(math32.Vec2(5, 5), []string{"a.png", "b.png"})

	evs := drain(w)
	require.Len(t, evs, 1)
	assert.Equal(t, []string{"a.png", "b.png"}, evs[0].(*events.Drop).Files)
}

func TestWaitEventIdle(t *testing.T) {
	w := newTestWindow()
	ev := w.WaitEvent()
	require.NotNil(t, ev)
	assert.Equal(t, events.Idle, ev.Type())

	assert.Nil(t, w.WaitEventTimeout(time.Millisecond))

	w.InjectFocus(true)
	assert.Equal(t, events.Focus, w.WaitEvent().Type())
}

func TestEventOrderPreserved(t *testing.T) {
	w := newTestWindow()
	w.InjectMouseButton(events.Left, true, math32.Vec2(1, 1), 0)
	w.InjectKey(key.CodeB, 48, true, 0)
	w.InjectMouseButton(events.Left, false, math32.Vec2(1, 1), 0)

	evs := drain(w)
	require.Len(t, evs, 3)
	assert.Equal(t, events.MouseDown, evs[0].Type())
	assert.Equal(t, events.KeyDown, evs[1].Type())
	assert.Equal(t, events.MouseUp, evs[2].Type())
}

func TestTitle(t *testing.T) {
	w := newTestWindow()
	assert.Equal(t, "test", w.Title())
	w.SetTitle("renamed")
	assert.Equal(t, "renamed", w.Title())
	assert.Equal(t, "renamed", w.AppliedTitle)
}
