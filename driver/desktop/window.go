// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"fmt"
	"runtime"
	"time"

	"github.com/PistonDevelopers/winit-window/driver/base"
	"github.com/PistonDevelopers/winit-window/math32"
	"github.com/PistonDevelopers/winit-window/window"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the glfw implementation of [window.AdvancedWindow].
type Window struct {
	base.Window

	// Glw is the underlying glfw window. Access it through
	// [Window.Handle], which enforces the lifetime invariant.
	Glw *glfw.Window
}

var _ window.AdvancedWindow = (*Window)(nil)
var _ base.Platform = (*Window)(nil)

// NewWindow creates a new glfw window from the given options (nil means
// defaults) and installs all event callbacks. It must be called from
// the main thread.
func NewWindow(opts *window.Options) (*Window, error) {
	if opts == nil {
		opts = &window.Options{}
		opts.Defaults()
	}
	opts.Fixup()

	if err := Init(); err != nil {
		return nil, err
	}

	glfw.DefaultWindowHints()
	// no GL context: the renderer that consumes the surface owns
	// presentation (and with it the VSync setting)
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, boolHint(opts.Resizable))
	glfw.WindowHint(glfw.Decorated, boolHint(opts.Decorated))
	glfw.WindowHint(glfw.TransparentFramebuffer, boolHint(opts.Transparent))
	glfw.WindowHint(glfw.Samples, opts.Samples)

	var monitor *glfw.Monitor
	if opts.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	glw, err := glfw.CreateWindow(int(opts.Size.Width), int(opts.Size.Height), opts.Title, monitor, nil)
	if err != nil {
		return nil, fmt.Errorf("desktop: failed to create window: %w", err)
	}

	w := &Window{Glw: glw}
	w.Init(w, opts)
	w.installCallbacks()
	return w, nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// Handle returns the underlying glfw window. It fails loudly if the
// window has not been created or has already been closed, rather than
// returning nil for the caller to trip over later.
func (w *Window) Handle() *glfw.Window {
	if w.Glw == nil {
		panic("desktop: window handle accessed before creation or after close")
	}
	return w.Glw
}

// Close destroys the underlying platform window. The window must not
// be used afterwards.
func (w *Window) Close() {
	w.Handle().Destroy()
	w.Glw = nil
}

// pixelScale returns the factor converting glfw window coordinates to
// pixels: glfw reports window coordinates in logical points on macOS
// and in pixels elsewhere.
func (w *Window) pixelScale() float32 {
	if runtime.GOOS == "darwin" {
		return w.ScaleFactor()
	}
	return 1
}

func (w *Window) InnerSize() math32.Vector2 {
	x, y := w.Handle().GetSize()
	return math32.Vec2(float32(x), float32(y)).MulScalar(w.pixelScale())
}

func (w *Window) FramebufferSize() math32.Vector2 {
	x, y := w.Handle().GetFramebufferSize()
	return math32.Vec2(float32(x), float32(y))
}

func (w *Window) ScaleFactor() float32 {
	sx, _ := w.Handle().GetContentScale()
	return sx
}

func (w *Window) SetCursorPos(pos math32.Vector2) error {
	pos = pos.DivScalar(w.pixelScale())
	w.Handle().SetCursorPos(float64(pos.X), float64(pos.Y))
	return nil
}

func (w *Window) SetCursorGrab(grab bool) error {
	// glfw has no grab-without-hide mode; CursorDisabled both locks
	// the cursor to the window and hides it
	if grab {
		w.Handle().SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.Handle().SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
	return nil
}

func (w *Window) SetCursorVisible(visible bool) {
	if w.Handle().GetInputMode(glfw.CursorMode) == glfw.CursorDisabled {
		return // grabbed implies hidden
	}
	if visible {
		w.Handle().SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	} else {
		w.Handle().SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}
}

func (w *Window) ApplyTitle(title string) {
	w.Handle().SetTitle(title)
}

func (w *Window) Pump(mode base.PumpMode, timeout time.Duration) {
	switch mode {
	case base.Wait:
		glfw.WaitEvents()
	case base.WaitTimeout:
		glfw.WaitEventsTimeout(timeout.Seconds())
	default:
		glfw.PollEvents()
	}
}

func (w *Window) Show() {
	w.Handle().Show()
}

func (w *Window) Hide() {
	w.Handle().Hide()
}

func (w *Window) Position() (window.Position, bool) {
	x, y := w.Handle().GetPos()
	return window.Position{X: x, Y: y}, true
}

func (w *Window) SetPosition(pos window.Position) {
	w.Handle().SetPos(pos.X, pos.Y)
}

func (w *Window) SetSize(size window.Size) {
	// logical units -> pixels -> glfw window coordinates
	s := w.ScaleFactor() / w.pixelScale()
	sz := math32.Vec2(size.Width, size.Height).MulScalar(s).Round()
	w.Handle().SetSize(int(sz.X), int(sz.Y))
}
