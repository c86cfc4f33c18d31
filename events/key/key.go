// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the logical key vocabulary delivered to the
// engine, the keyboard modifiers, and the layout-mode resolution that
// maps between physical keys and their shifted symbol variants.
package key

import "strings"

// Codes is the logical key, the engine-facing identity of a keyboard
// key. The vocabulary includes distinct codes for US-layout shifted
// symbol variants (for example [CodeAt] is distinct from [Code2]) so
// that the raw layout mode can report them separately; see [Resolve].
// Unrecognized platform keys map to [CodeUnknown], never to an error.
type Codes int32

const (
	// CodeUnknown is the zero value, used for any key not in the
	// translation tables.
	CodeUnknown Codes = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	Code0
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9

	// shifted digit symbols (US layout)
	CodeExclamation
	CodeAt
	CodeHash
	CodeDollar
	CodePercent
	CodeCaret
	CodeAmpersand
	CodeAsterisk
	CodeLeftParen
	CodeRightParen

	// punctuation and its shifted variants
	CodeMinus
	CodeUnderscore
	CodeEqual
	CodePlus
	CodeLeftBracket
	CodeLeftBrace
	CodeRightBracket
	CodeRightBrace
	CodeBackslash
	CodePipe
	CodeSemicolon
	CodeColon
	CodeApostrophe
	CodeQuote
	CodeGrave
	CodeTilde
	CodeComma
	CodeLess
	CodePeriod
	CodeGreater
	CodeSlash
	CodeQuestion

	CodeSpace
	CodeReturn
	CodeEscape
	CodeBackspace
	CodeTab
	CodeDelete
	CodeInsert

	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeRight
	CodeLeft
	CodeDown
	CodeUp

	CodeCapsLock
	CodeNumLock
	CodeScrollLock
	CodePrintScreen
	CodePause
	CodeMenu

	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
	CodeF13
	CodeF14
	CodeF15

	CodeKeypad0
	CodeKeypad1
	CodeKeypad2
	CodeKeypad3
	CodeKeypad4
	CodeKeypad5
	CodeKeypad6
	CodeKeypad7
	CodeKeypad8
	CodeKeypad9
	CodeKeypadDecimal
	CodeKeypadDivide
	CodeKeypadMultiply
	CodeKeypadSubtract
	CodeKeypadAdd
	CodeKeypadEnter
	CodeKeypadEqual

	CodeLeftShift
	CodeLeftControl
	CodeLeftAlt
	CodeLeftMeta
	CodeRightShift
	CodeRightControl
	CodeRightAlt
	CodeRightMeta

	// CodesN is the number of defined codes.
	CodesN
)

var codeNames = [CodesN]string{
	CodeUnknown: "Unknown",

	CodeA: "A",
	CodeB: "B",
	CodeC: "C",
	CodeD: "D",
	CodeE: "E",
	CodeF: "F",
	CodeG: "G",
	CodeH: "H",
	CodeI: "I",
	CodeJ: "J",
	CodeK: "K",
	CodeL: "L",
	CodeM: "M",
	CodeN: "N",
	CodeO: "O",
	CodeP: "P",
	CodeQ: "Q",
	CodeR: "R",
	CodeS: "S",
	CodeT: "T",
	CodeU: "U",
	CodeV: "V",
	CodeW: "W",
	CodeX: "X",
	CodeY: "Y",
	CodeZ: "Z",

	Code0: "0",
	Code1: "1",
	Code2: "2",
	Code3: "3",
	Code4: "4",
	Code5: "5",
	Code6: "6",
	Code7: "7",
	Code8: "8",
	Code9: "9",

	CodeExclamation: "Exclamation",
	CodeAt:          "At",
	CodeHash:        "Hash",
	CodeDollar:      "Dollar",
	CodePercent:     "Percent",
	CodeCaret:       "Caret",
	CodeAmpersand:   "Ampersand",
	CodeAsterisk:    "Asterisk",
	CodeLeftParen:   "LeftParen",
	CodeRightParen:  "RightParen",

	CodeMinus:        "Minus",
	CodeUnderscore:   "Underscore",
	CodeEqual:        "Equal",
	CodePlus:         "Plus",
	CodeLeftBracket:  "LeftBracket",
	CodeLeftBrace:    "LeftBrace",
	CodeRightBracket: "RightBracket",
	CodeRightBrace:   "RightBrace",
	CodeBackslash:    "Backslash",
	CodePipe:         "Pipe",
	CodeSemicolon:    "Semicolon",
	CodeColon:        "Colon",
	CodeApostrophe:   "Apostrophe",
	CodeQuote:        "Quote",
	CodeGrave:        "Grave",
	CodeTilde:        "Tilde",
	CodeComma:        "Comma",
	CodeLess:         "Less",
	CodePeriod:       "Period",
	CodeGreater:      "Greater",
	CodeSlash:        "Slash",
	CodeQuestion:     "Question",

	CodeSpace:     "Space",
	CodeReturn:    "Return",
	CodeEscape:    "Escape",
	CodeBackspace: "Backspace",
	CodeTab:       "Tab",
	CodeDelete:    "Delete",
	CodeInsert:    "Insert",

	CodeHome:     "Home",
	CodeEnd:      "End",
	CodePageUp:   "PageUp",
	CodePageDown: "PageDown",
	CodeRight:    "Right",
	CodeLeft:     "Left",
	CodeDown:     "Down",
	CodeUp:       "Up",

	CodeCapsLock:    "CapsLock",
	CodeNumLock:     "NumLock",
	CodeScrollLock:  "ScrollLock",
	CodePrintScreen: "PrintScreen",
	CodePause:       "Pause",
	CodeMenu:        "Menu",

	CodeF1:  "F1",
	CodeF2:  "F2",
	CodeF3:  "F3",
	CodeF4:  "F4",
	CodeF5:  "F5",
	CodeF6:  "F6",
	CodeF7:  "F7",
	CodeF8:  "F8",
	CodeF9:  "F9",
	CodeF10: "F10",
	CodeF11: "F11",
	CodeF12: "F12",
	CodeF13: "F13",
	CodeF14: "F14",
	CodeF15: "F15",

	CodeKeypad0:        "Keypad0",
	CodeKeypad1:        "Keypad1",
	CodeKeypad2:        "Keypad2",
	CodeKeypad3:        "Keypad3",
	CodeKeypad4:        "Keypad4",
	CodeKeypad5:        "Keypad5",
	CodeKeypad6:        "Keypad6",
	CodeKeypad7:        "Keypad7",
	CodeKeypad8:        "Keypad8",
	CodeKeypad9:        "Keypad9",
	CodeKeypadDecimal:  "KeypadDecimal",
	CodeKeypadDivide:   "KeypadDivide",
	CodeKeypadMultiply: "KeypadMultiply",
	CodeKeypadSubtract: "KeypadSubtract",
	CodeKeypadAdd:      "KeypadAdd",
	CodeKeypadEnter:    "KeypadEnter",
	CodeKeypadEqual:    "KeypadEqual",

	CodeLeftShift:    "LeftShift",
	CodeLeftControl:  "LeftControl",
	CodeLeftAlt:      "LeftAlt",
	CodeLeftMeta:     "LeftMeta",
	CodeRightShift:   "RightShift",
	CodeRightControl: "RightControl",
	CodeRightAlt:     "RightAlt",
	CodeRightMeta:    "RightMeta",
}

func (c Codes) String() string {
	if c < 0 || c >= CodesN {
		return "Unknown"
	}
	return codeNames[c]
}

// Modifiers are the keyboard modifiers active for an event,
// as a bit flag set.
type Modifiers int32

const (
	Shift Modifiers = 1 << iota
	Control
	Alt

	// Meta is the system key: the Windows key on Windows,
	// Command on macOS, Super on Linux.
	Meta
)

// SetFlag sets the given flags to the given on state.
func (m *Modifiers) SetFlag(on bool, flags Modifiers) {
	if on {
		*m |= flags
	} else {
		*m &^= flags
	}
}

// HasFlag returns whether all of the given flags are set.
func (m Modifiers) HasFlag(flags Modifiers) bool {
	return m&flags == flags
}

func (m Modifiers) String() string {
	if m == 0 {
		return ""
	}
	var parts []string
	if m.HasFlag(Shift) {
		parts = append(parts, "Shift")
	}
	if m.HasFlag(Control) {
		parts = append(parts, "Control")
	}
	if m.HasFlag(Alt) {
		parts = append(parts, "Alt")
	}
	if m.HasFlag(Meta) {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}
