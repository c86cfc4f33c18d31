// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"github.com/PistonDevelopers/winit-window/events"
	"github.com/PistonDevelopers/winit-window/events/key"
	"github.com/PistonDevelopers/winit-window/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func (w *Window) installCallbacks() {
	glw := w.Glw
	glw.SetKeyCallback(w.keyEvent)
	glw.SetCharModsCallback(w.charEvent)
	glw.SetMouseButtonCallback(w.mouseButtonEvent)
	glw.SetScrollCallback(w.scrollEvent)
	glw.SetCursorPosCallback(w.cursorPosEvent)
	glw.SetCursorEnterCallback(w.cursorEnterEvent)
	glw.SetDropCallback(w.dropEvent)
	glw.SetSizeCallback(w.sizeEvent)
	glw.SetFocusCallback(w.focusEvent)
	glw.SetCloseCallback(w.closeEvent)
	// Intentionally not handled (no engine event exists for them):
	// iconify, maximize, refresh, content-scale change, window move,
	// framebuffer resize (SizeCallback covers resize), joystick,
	// and monitor events.
}

// GlfwMods converts glfw modifier bits to [key.Modifiers].
func GlfwMods(mod glfw.ModifierKey) key.Modifiers {
	var m key.Modifiers
	if mod&glfw.ModShift != 0 {
		m.SetFlag(true, key.Shift)
	}
	if mod&glfw.ModControl != 0 {
		m.SetFlag(true, key.Control)
	}
	if mod&glfw.ModAlt != 0 {
		m.SetFlag(true, key.Alt)
	}
	if mod&glfw.ModSuper != 0 {
		m.SetFlag(true, key.Meta)
	}
	return m
}

func (w *Window) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	// glfw.Repeat is a press; the state machine suppresses held-key repeats
	w.HandleKey(GlfwKeyCode(ky), scancode, action != glfw.Release, GlfwMods(mod))
}

func (w *Window) charEvent(gw *glfw.Window, char rune, mod glfw.ModifierKey) {
	w.HandleText(char, GlfwMods(mod))
}

// cursorPosPixels returns the current cursor position in pixels.
func (w *Window) cursorPosPixels(gw *glfw.Window) math32.Vector2 {
	x, y := gw.GetCursorPos()
	return math32.Vec2(float32(x), float32(y)).MulScalar(w.pixelScale())
}

func (w *Window) mouseButtonEvent(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
	w.HandleMouseButton(GlfwMouseButton(button), action == glfw.Press, w.cursorPosPixels(gw), GlfwMods(mod))
}

func (w *Window) scrollEvent(gw *glfw.Window, xoff, yoff float64) {
	delta := math32.Vec2(float32(xoff), float32(yoff))
	w.HandleScroll(delta, w.cursorPosPixels(gw))
}

func (w *Window) cursorPosEvent(gw *glfw.Window, x, y float64) {
	w.HandleCursorPos(math32.Vec2(float32(x), float32(y)).MulScalar(w.pixelScale()))
}

func (w *Window) cursorEnterEvent(gw *glfw.Window, entered bool) {
	w.HandleCursorEnter(entered)
}

func (w *Window) dropEvent(gw *glfw.Window, names []string) {
	w.HandleDrop(w.cursorPosPixels(gw), names)
}

func (w *Window) sizeEvent(gw *glfw.Window, width, height int) {
	size := math32.Vec2(float32(width), float32(height)).MulScalar(w.pixelScale())
	w.HandleResize(size, w.FramebufferSize())
}

func (w *Window) focusEvent(gw *glfw.Window, focused bool) {
	w.HandleFocus(focused)
}

func (w *Window) closeEvent(gw *glfw.Window) {
	w.HandleCloseReq()
}

// GlfwMouseButton converts a glfw mouse button to [events.Buttons].
// Buttons outside the table map to [events.NoButton].
func GlfwMouseButton(button glfw.MouseButton) events.Buttons {
	switch button {
	case glfw.MouseButtonLeft:
		return events.Left
	case glfw.MouseButtonRight:
		return events.Right
	case glfw.MouseButtonMiddle:
		return events.Middle
	case glfw.MouseButton4:
		return events.X1
	case glfw.MouseButton5:
		return events.X2
	case glfw.MouseButton6:
		return events.Button6
	case glfw.MouseButton7:
		return events.Button7
	case glfw.MouseButton8:
		return events.Button8
	}
	return events.NoButton
}

// GlfwKeyCode converts a glfw key to the logical [key.Codes]
// vocabulary. Keys outside the table map to [key.CodeUnknown].
func GlfwKeyCode(kcode glfw.Key) key.Codes {
	switch kcode {
	case glfw.KeyA:
		return key.CodeA
	case glfw.KeyB:
		return key.CodeB
	case glfw.KeyC:
		return key.CodeC
	case glfw.KeyD:
		return key.CodeD
	case glfw.KeyE:
		return key.CodeE
	case glfw.KeyF:
		return key.CodeF
	case glfw.KeyG:
		return key.CodeG
	case glfw.KeyH:
		return key.CodeH
	case glfw.KeyI:
		return key.CodeI
	case glfw.KeyJ:
		return key.CodeJ
	case glfw.KeyK:
		return key.CodeK
	case glfw.KeyL:
		return key.CodeL
	case glfw.KeyM:
		return key.CodeM
	case glfw.KeyN:
		return key.CodeN
	case glfw.KeyO:
		return key.CodeO
	case glfw.KeyP:
		return key.CodeP
	case glfw.KeyQ:
		return key.CodeQ
	case glfw.KeyR:
		return key.CodeR
	case glfw.KeyS:
		return key.CodeS
	case glfw.KeyT:
		return key.CodeT
	case glfw.KeyU:
		return key.CodeU
	case glfw.KeyV:
		return key.CodeV
	case glfw.KeyW:
		return key.CodeW
	case glfw.KeyX:
		return key.CodeX
	case glfw.KeyY:
		return key.CodeY
	case glfw.KeyZ:
		return key.CodeZ
	case glfw.Key0:
		return key.Code0
	case glfw.Key1:
		return key.Code1
	case glfw.Key2:
		return key.Code2
	case glfw.Key3:
		return key.Code3
	case glfw.Key4:
		return key.Code4
	case glfw.Key5:
		return key.Code5
	case glfw.Key6:
		return key.Code6
	case glfw.Key7:
		return key.Code7
	case glfw.Key8:
		return key.Code8
	case glfw.Key9:
		return key.Code9
	case glfw.KeyMinus:
		return key.CodeMinus
	case glfw.KeyEqual:
		return key.CodeEqual
	case glfw.KeyLeftBracket:
		return key.CodeLeftBracket
	case glfw.KeyRightBracket:
		return key.CodeRightBracket
	case glfw.KeyBackslash:
		return key.CodeBackslash
	case glfw.KeySemicolon:
		return key.CodeSemicolon
	case glfw.KeyApostrophe:
		return key.CodeApostrophe
	case glfw.KeyGraveAccent:
		return key.CodeGrave
	case glfw.KeyComma:
		return key.CodeComma
	case glfw.KeyPeriod:
		return key.CodePeriod
	case glfw.KeySlash:
		return key.CodeSlash
	case glfw.KeySpace:
		return key.CodeSpace
	case glfw.KeyEnter:
		return key.CodeReturn
	case glfw.KeyEscape:
		return key.CodeEscape
	case glfw.KeyBackspace:
		return key.CodeBackspace
	case glfw.KeyTab:
		return key.CodeTab
	case glfw.KeyDelete:
		return key.CodeDelete
	case glfw.KeyInsert:
		return key.CodeInsert
	case glfw.KeyHome:
		return key.CodeHome
	case glfw.KeyEnd:
		return key.CodeEnd
	case glfw.KeyPageUp:
		return key.CodePageUp
	case glfw.KeyPageDown:
		return key.CodePageDown
	case glfw.KeyRight:
		return key.CodeRight
	case glfw.KeyLeft:
		return key.CodeLeft
	case glfw.KeyDown:
		return key.CodeDown
	case glfw.KeyUp:
		return key.CodeUp
	case glfw.KeyCapsLock:
		return key.CodeCapsLock
	case glfw.KeyNumLock:
		return key.CodeNumLock
	case glfw.KeyScrollLock:
		return key.CodeScrollLock
	case glfw.KeyPrintScreen:
		return key.CodePrintScreen
	case glfw.KeyPause:
		return key.CodePause
	case glfw.KeyMenu:
		return key.CodeMenu
	case glfw.KeyF1:
		return key.CodeF1
	case glfw.KeyF2:
		return key.CodeF2
	case glfw.KeyF3:
		return key.CodeF3
	case glfw.KeyF4:
		return key.CodeF4
	case glfw.KeyF5:
		return key.CodeF5
	case glfw.KeyF6:
		return key.CodeF6
	case glfw.KeyF7:
		return key.CodeF7
	case glfw.KeyF8:
		return key.CodeF8
	case glfw.KeyF9:
		return key.CodeF9
	case glfw.KeyF10:
		return key.CodeF10
	case glfw.KeyF11:
		return key.CodeF11
	case glfw.KeyF12:
		return key.CodeF12
	case glfw.KeyF13:
		return key.CodeF13
	case glfw.KeyF14:
		return key.CodeF14
	case glfw.KeyF15:
		return key.CodeF15
	// F16-F25 have no engine-side key
	case glfw.KeyKP0:
		return key.CodeKeypad0
	case glfw.KeyKP1:
		return key.CodeKeypad1
	case glfw.KeyKP2:
		return key.CodeKeypad2
	case glfw.KeyKP3:
		return key.CodeKeypad3
	case glfw.KeyKP4:
		return key.CodeKeypad4
	case glfw.KeyKP5:
		return key.CodeKeypad5
	case glfw.KeyKP6:
		return key.CodeKeypad6
	case glfw.KeyKP7:
		return key.CodeKeypad7
	case glfw.KeyKP8:
		return key.CodeKeypad8
	case glfw.KeyKP9:
		return key.CodeKeypad9
	case glfw.KeyKPDecimal:
		return key.CodeKeypadDecimal
	case glfw.KeyKPDivide:
		return key.CodeKeypadDivide
	case glfw.KeyKPMultiply:
		return key.CodeKeypadMultiply
	case glfw.KeyKPSubtract:
		return key.CodeKeypadSubtract
	case glfw.KeyKPAdd:
		return key.CodeKeypadAdd
	case glfw.KeyKPEnter:
		return key.CodeKeypadEnter
	case glfw.KeyKPEqual:
		return key.CodeKeypadEqual
	case glfw.KeyLeftShift:
		return key.CodeLeftShift
	case glfw.KeyLeftControl:
		return key.CodeLeftControl
	case glfw.KeyLeftAlt:
		return key.CodeLeftAlt
	case glfw.KeyLeftSuper:
		return key.CodeLeftMeta
	case glfw.KeyRightShift:
		return key.CodeRightShift
	case glfw.KeyRightControl:
		return key.CodeRightControl
	case glfw.KeyRightAlt:
		return key.CodeRightAlt
	case glfw.KeyRightSuper:
		return key.CodeRightMeta
	default:
		// KeyWorld1/2 and anything else glfw may add
		return key.CodeUnknown
	}
}
