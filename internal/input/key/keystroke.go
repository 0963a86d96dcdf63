package key

import (
	"strings"
	"unicode/utf8"
)

// Keystroke is a single key press: the physical key, the modifiers held
// and, when an input method produced text, that text.
type Keystroke struct {
	// Modifiers are the modifier keys held during the press.
	Modifiers Modifiers

	// Key is the physical key pressed.
	Key KeyCode

	// KeyChar is the text produced by the press after IME or dead-key
	// composition. Empty when no text was produced.
	KeyChar string

	// Label is an optional display override used by Format.
	Label string
}

// NewKeystroke creates a keystroke without IME text.
func NewKeystroke(code KeyCode, mods Modifiers) Keystroke {
	return Keystroke{Modifiers: mods, Key: code}
}

// WithKeyChar returns a copy of the keystroke carrying the given IME text.
func (k Keystroke) WithKeyChar(s string) Keystroke {
	k.KeyChar = s
	return k
}

// WithLabel returns a copy of the keystroke with a display label.
func (k Keystroke) WithLabel(label string) Keystroke {
	k.Label = label
	return k
}

// ShouldMatch reports whether the typed keystroke k triggers the bound
// keystroke target. Modifiers must be identical and keys must be equal
// under KeyCode.Equal. IME text is not consulted.
func (k Keystroke) ShouldMatch(target Keystroke) bool {
	return k.Modifiers == target.Modifiers && k.Key.Equal(target.Key)
}

// MatchesText reports whether the typed keystroke's IME text equals the
// text the bound keystroke would produce. Used as an opt-in fallback for
// characters only reachable through AltGr or dead keys.
func (k Keystroke) MatchesText(target Keystroke) bool {
	if k.KeyChar == "" {
		return false
	}
	want := target.KeyChar
	if want == "" {
		if target.Modifiers.Control || target.Modifiers.Alt ||
			target.Modifiers.Platform || target.Modifiers.Function {
			return false
		}
		want = target.WithSimulatedIME().KeyChar
	}
	return want != "" && k.KeyChar == want
}

// Equal reports whether two keystrokes are identical apart from Label.
func (k Keystroke) Equal(other Keystroke) bool {
	return k.Modifiers == other.Modifiers && k.Key == other.Key && k.KeyChar == other.KeyChar
}

// hasHardModifier reports whether a modifier that suppresses composition is held.
func (k Keystroke) hasHardModifier() bool {
	return k.Modifiers.Platform || k.Modifiers.Control || k.Modifiers.Function || k.Modifiers.Alt
}

// WithSimulatedIME returns the keystroke with KeyChar filled in the way an
// input method would have for plain typing. Keystrokes that already carry
// IME text, or that hold Cmd, Control, Fn or Alt, are returned unchanged.
func (k Keystroke) WithSimulatedIME() Keystroke {
	if k.KeyChar != "" || k.hasHardModifier() {
		return k
	}
	switch {
	case k.Key.Base() == KeySpace:
		k.KeyChar = " "
	case k.Key.Base() == KeyTab:
		k.KeyChar = "\t"
	case k.Key.Base() == KeyEnter:
		k.KeyChar = "\n"
	case !k.Key.IsPrintable(), k.Key.IsModifier():
		// no text
	default:
		text := k.Key.Name()
		if k.Modifiers.Shift {
			text = strings.ToUpper(text)
		}
		k.KeyChar = text
	}
	return k
}

// IsIMEInProgress reports whether the keystroke left an input method in an
// incomplete state: a printable key with no composed text and no modifier
// that would suppress composition.
func (k Keystroke) IsIMEInProgress() bool {
	return k.KeyChar == "" &&
		(k.Key.IsPrintable() || k.Key == KeyUnknown) &&
		!k.hasHardModifier()
}

// Unparse returns the source form of the keystroke. ParseKeystroke of the
// result yields k again, apart from Label, when Key is not a modifier key
// and KeyChar contains no '-'. Modifier keys come back in the dangling
// modifier form, so "shift-shift" parses as a bare shift press.
func (k Keystroke) Unparse() string {
	var sb strings.Builder
	for _, name := range k.Modifiers.sourceNames() {
		sb.WriteString(name)
		sb.WriteByte('-')
	}
	sb.WriteString(k.Key.Name())
	if k.KeyChar != "" {
		sb.WriteString("->")
		sb.WriteString(k.KeyChar)
	}
	return sb.String()
}

// String returns the source form of the keystroke.
func (k Keystroke) String() string {
	return k.Unparse()
}

// Format renders the keystroke with modifier glyphs for the given platform,
// e.g. "^⇧P" or "⌘K".
func (k Keystroke) Format(style PlatformStyle) string {
	var sb strings.Builder
	if k.Modifiers.Control {
		sb.WriteString("^")
	}
	if k.Modifiers.Alt {
		sb.WriteString("⌥")
	}
	if k.Modifiers.Platform {
		sb.WriteString(style.platformGlyph())
	}
	if k.Modifiers.Shift {
		sb.WriteString("⇧")
	}
	if k.Label != "" {
		sb.WriteString(k.Label)
		return sb.String()
	}
	sb.WriteString(keyGlyph(k.Key, style))
	return sb.String()
}

// keyGlyph returns the display form of a key.
func keyGlyph(code KeyCode, style PlatformStyle) string {
	switch code.Base() {
	case KeyBackspace:
		return "⌫"
	case KeyUp:
		return "↑"
	case KeyDown:
		return "↓"
	case KeyLeft:
		return "←"
	case KeyRight:
		return "→"
	case KeyTab:
		return "⇥"
	case KeyEscape:
		return "⎋"
	case KeyShift:
		return "⇧"
	case KeyControl:
		return "⌃"
	case KeyAlt:
		return "⌥"
	case KeyPlatform:
		return style.platformGlyph()
	}
	name := code.Name()
	if utf8.RuneCountInString(name) == 1 {
		return strings.ToUpper(name)
	}
	return code.Label()
}
