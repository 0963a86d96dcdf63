package native

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/dshills/keychord/internal/input/key"
)

// KeyDown is a normalized key press.
type KeyDown struct {
	Keystroke key.Keystroke

	// IsHeld is true for auto-repeat presses.
	IsHeld bool
}

// NewKeyDown builds the key press for a translated key. text is what the
// platform produced for the press, if anything. It is kept as KeyChar only
// for plain typing: no control, platform or function modifier, except the
// control+alt pair that AltGr reports. Control characters are dropped and
// the text is NFC-normalized.
//
// Modifier keys never produce a KeyDown; ok is false for them.
func NewKeyDown(code key.KeyCode, mods key.Modifiers, text string, held bool) (KeyDown, bool) {
	if code.IsModifier() {
		return KeyDown{}, false
	}
	ks := key.NewKeystroke(code, mods)
	if isPlainTyping(mods) {
		ks.KeyChar = typedText(text)
	}
	return KeyDown{Keystroke: ks, IsHeld: held}, true
}

func isPlainTyping(mods key.Modifiers) bool {
	if mods.Platform || mods.Function {
		return false
	}
	if mods.Control && !mods.Alt {
		return false
	}
	return true
}

func typedText(text string) string {
	if text == "" || strings.IndexFunc(text, unicode.IsControl) >= 0 {
		return ""
	}
	return norm.NFC.String(text)
}
