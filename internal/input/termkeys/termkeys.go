// Package termkeys encodes keystrokes as the byte sequences a terminal
// application expects on its input (xterm conventions).
package termkeys

import (
	"fmt"

	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/layout"
)

// Mode is the set of terminal modes that change key encoding.
type Mode uint8

const (
	// ModeAppCursor is DECCKM: cursor keys send SS3 sequences.
	ModeAppCursor Mode = 1 << iota

	// ModeAltScreen is set while the alternate screen is active. Shifted
	// paging keys are passed to the application only in this mode.
	ModeAltScreen
)

// ModeNone is the default mode.
const ModeNone Mode = 0

// Has reports whether all of the given modes are set.
func (m Mode) Has(other Mode) bool {
	return m&other == other
}

// modifierClass groups the modifier combinations the fixed table knows.
type modifierClass uint8

const (
	classNone modifierClass = iota
	classAlt
	classCtrl
	classShift
	classCtrlShift
	classOther
)

func classify(m key.Modifiers) modifierClass {
	switch {
	case m.Platform:
		return classOther
	case !m.Alt && !m.Control && !m.Shift:
		return classNone
	case m.Alt && !m.Control && !m.Shift:
		return classAlt
	case !m.Alt && m.Control && !m.Shift:
		return classCtrl
	case !m.Alt && !m.Control && m.Shift:
		return classShift
	case !m.Alt && m.Control && m.Shift:
		return classCtrlShift
	}
	return classOther
}

type tableKey struct {
	code  key.KeyCode
	class modifierClass
}

// fixed holds sequences that do not depend on the terminal mode.
var fixed = map[tableKey]string{
	{key.KeyTab, classNone}:          "\x09",
	{key.KeyEscape, classNone}:       "\x1b",
	{key.KeyEnter, classNone}:        "\x0d",
	{key.KeyEnter, classShift}:       "\x0d",
	{key.KeyBackspace, classNone}:    "\x7f",
	{key.KeyTab, classShift}:         "\x1b[Z",
	{key.KeyBackspace, classCtrl}:    "\x08",
	{key.KeyBackspace, classAlt}:     "\x1b\x7f",
	{key.KeyBackspace, classShift}:   "\x7f",
	{key.KeySpace, classCtrl}:        "\x00",
	{key.KeyInsert, classNone}:       "\x1b[2~",
	{key.KeyDelete, classNone}:       "\x1b[3~",
	{key.KeyPageUp, classNone}:       "\x1b[5~",
	{key.KeyPageDown, classNone}:     "\x1b[6~",
	{key.KeyLeftBracket, classCtrl}:  "\x1b",
	{key.KeyBackslash, classCtrl}:    "\x1c",
	{key.KeyRightBracket, classCtrl}: "\x1d",
}

// altScreen holds shifted paging keys, sent only on the alternate screen.
var altScreen = map[key.KeyCode]string{
	key.KeyHome:     "\x1b[1;2H",
	key.KeyEnd:      "\x1b[1;2F",
	key.KeyPageUp:   "\x1b[5;2~",
	key.KeyPageDown: "\x1b[6;2~",
}

// cursorKeys maps unmodified cursor keys to their final byte; the prefix
// depends on ModeAppCursor.
var cursorKeys = map[key.KeyCode]byte{
	key.KeyUp:    'A',
	key.KeyDown:  'B',
	key.KeyRight: 'C',
	key.KeyLeft:  'D',
	key.KeyHome:  'H',
	key.KeyEnd:   'F',
}

// functionKeys holds the F-key encodings: SS3 letters for F1-F4, CSI
// numbers for the rest.
var functionKeys = [20]struct {
	letter byte
	number int
}{
	{letter: 'P'}, {letter: 'Q'}, {letter: 'R'}, {letter: 'S'},
	{number: 15}, {number: 17}, {number: 18}, {number: 19}, {number: 20},
	{number: 21}, {number: 23}, {number: 24}, {number: 25}, {number: 26},
	{number: 28}, {number: 29}, {number: 31}, {number: 32}, {number: 33},
	{number: 34},
}

// tildeKeys are the editing keys sent as CSI n ; m ~ when modified.
var tildeKeys = map[key.KeyCode]int{
	key.KeyInsert:   2,
	key.KeyPageUp:   5,
	key.KeyPageDown: 6,
}

// EscapeSequence returns the bytes a terminal sends for ks, or false when
// the keystroke has no special encoding and should be handled as text.
// With altIsMeta, alt or alt-shift plus a printable key is sent as ESC
// followed by the character the key produces.
func EscapeSequence(ks key.Keystroke, mode Mode, altIsMeta bool) (string, bool) {
	code := ks.Key.Base()
	class := classify(ks.Modifiers)

	if s, ok := fixedSequence(code, class, mode); ok {
		return s, true
	}

	if class != classNone {
		if s, ok := modifiedSequence(code, ks.Modifiers.XtermCode()); ok {
			return s, true
		}
	}

	if altIsMeta && isMeta(ks.Modifiers) {
		if text, ok := metaText(code, ks.Modifiers.Shift); ok {
			return "\x1b" + text, true
		}
	}
	return "", false
}

func fixedSequence(code key.KeyCode, class modifierClass, mode Mode) (string, bool) {
	if s, ok := fixed[tableKey{code, class}]; ok {
		return s, true
	}

	switch class {
	case classShift:
		if mode.Has(ModeAltScreen) {
			if s, ok := altScreen[code]; ok {
				return s, true
			}
		}
	case classNone:
		if final, ok := cursorKeys[code]; ok {
			if mode.Has(ModeAppCursor) {
				return "\x1bO" + string(final), true
			}
			return "\x1b[" + string(final), true
		}
		if code.IsFunctionKey() && code <= key.KeyF20 {
			fk := functionKeys[code-key.KeyF1]
			if fk.letter != 0 {
				return "\x1bO" + string(fk.letter), true
			}
			return fmt.Sprintf("\x1b[%d~", fk.number), true
		}
	case classCtrl, classCtrlShift:
		if code.IsLetter() {
			return string(rune(code-key.KeyA) + 1), true
		}
	}
	return "", false
}

// modifiedSequence encodes arrows, F1-F20 and the editing keys with an
// xterm modifier parameter.
func modifiedSequence(code key.KeyCode, modCode int) (string, bool) {
	if final, ok := cursorKeys[code]; ok && (code.IsArrowKey() || modCode != 2) {
		return fmt.Sprintf("\x1b[1;%d%c", modCode, final), true
	}
	if code.IsFunctionKey() && code <= key.KeyF20 {
		fk := functionKeys[code-key.KeyF1]
		if fk.letter != 0 {
			return fmt.Sprintf("\x1b[1;%d%c", modCode, fk.letter), true
		}
		return fmt.Sprintf("\x1b[%d;%d~", fk.number, modCode), true
	}
	// Shift alone on the editing keys is left to the host for scrolling.
	if modCode == 2 {
		return "", false
	}
	if n, ok := tildeKeys[code]; ok {
		return fmt.Sprintf("\x1b[%d;%d~", n, modCode), true
	}
	return "", false
}

// isMeta reports whether the modifiers are alt, optionally with shift.
func isMeta(m key.Modifiers) bool {
	return m.Alt && !m.Control && !m.Platform && !m.Function
}

// metaText returns the character an alt-as-meta press appends to ESC,
// taken from the US layout.
func metaText(code key.KeyCode, shift bool) (string, bool) {
	if code.Base() == key.KeySpace {
		return " ", true
	}
	return layout.US.CharFor(code, key.Modifiers{Shift: shift})
}
