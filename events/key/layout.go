// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import "fmt"

// Layouts selects how shifted symbol keys are resolved into logical
// codes. It is a property of the window, not of individual events.
type Layouts int32

const (
	// Raw reports shifted symbol variants as distinct logical keys:
	// Shift+2 resolves to [CodeAt], not [Code2]. The symbol tables
	// assume a standard US layout.
	Raw Layouts = iota

	// Standard collapses shifted symbol variants onto their unshifted
	// physical key, giving layout-independent physical-key semantics:
	// Shift+2 stays [Code2], and an already-resolved [CodeAt] from the
	// platform collapses back to [Code2].
	Standard

	// LayoutsN is the number of defined layout modes.
	LayoutsN
)

var layoutNames = [LayoutsN]string{
	Raw:      "raw",
	Standard: "standard",
}

func (l Layouts) String() string {
	if l < 0 || l >= LayoutsN {
		return "raw"
	}
	return layoutNames[l]
}

// MarshalText implements [encoding.TextMarshaler].
func (l Layouts) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Layouts) UnmarshalText(text []byte) error {
	for i, nm := range layoutNames {
		if string(text) == nm {
			*l = Layouts(i)
			return nil
		}
	}
	return fmt.Errorf("key: unknown layout mode %q", text)
}

// shifted maps an unshifted US-layout code to its shifted symbol variant.
var shifted = map[Codes]Codes{
	Code1: CodeExclamation,
	Code2: CodeAt,
	Code3: CodeHash,
	Code4: CodeDollar,
	Code5: CodePercent,
	Code6: CodeCaret,
	Code7: CodeAmpersand,
	Code8: CodeAsterisk,
	Code9: CodeLeftParen,
	Code0: CodeRightParen,

	CodeMinus:        CodeUnderscore,
	CodeEqual:        CodePlus,
	CodeLeftBracket:  CodeLeftBrace,
	CodeRightBracket: CodeRightBrace,
	CodeBackslash:    CodePipe,
	CodeSemicolon:    CodeColon,
	CodeApostrophe:   CodeQuote,
	CodeGrave:        CodeTilde,
	CodeComma:        CodeLess,
	CodePeriod:       CodeGreater,
	CodeSlash:        CodeQuestion,
}

// unshifted is the inverse of [shifted], built at init.
var unshifted = map[Codes]Codes{}

func init() {
	for uc, sc := range shifted {
		unshifted[sc] = uc
	}
}

// Resolve returns the logical code for the given physical code,
// modifiers, and layout mode. It is a pure function: the same inputs
// always produce the same code. Codes with no entry in the symbol
// tables pass through unchanged, including [CodeUnknown].
func Resolve(code Codes, mods Modifiers, layout Layouts) Codes {
	switch layout {
	case Standard:
		if uc, ok := unshifted[code]; ok {
			return uc
		}
		return code
	default: // Raw
		if mods.HasFlag(Shift) {
			if sc, ok := shifted[code]; ok {
				return sc
			}
		}
		return code
	}
}

// Shifted returns the shifted US-layout symbol variant of the given
// code, or the code itself if it has none.
func Shifted(code Codes) Codes {
	if sc, ok := shifted[code]; ok {
		return sc
	}
	return code
}

// Unshifted returns the unshifted physical key for the given shifted
// symbol variant, or the code itself if it is not a shifted variant.
func Unshifted(code Codes) Codes {
	if uc, ok := unshifted[code]; ok {
		return uc
	}
	return code
}
