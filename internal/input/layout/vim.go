package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/dshills/keychord/internal/input/key"
)

// VimKeystroke is a keystroke named by the character it stands for rather
// than by physical key, e.g. "ctrl-$" instead of "ctrl-shift-4".
type VimKeystroke struct {
	Modifiers key.Modifiers
	Key       string
	KeyChar   string
}

// String returns the source form, e.g. "ctrl-$".
func (v VimKeystroke) String() string {
	var sb strings.Builder
	if mods := v.Modifiers.String(); mods != "" {
		sb.WriteString(mods)
		sb.WriteByte('-')
	}
	sb.WriteString(v.Key)
	return sb.String()
}

// isImmutableKey reports whether a key is named the same on every layout.
func isImmutableKey(code key.KeyCode) bool {
	if code.IsFunctionKey() || code.IsArrowKey() || code.IsModifier() {
		return true
	}
	switch code.Base() {
	case key.KeyBackspace, key.KeyDelete, key.KeyPageUp, key.KeyPageDown,
		key.KeyInsert, key.KeyHome, key.KeyEnd, key.KeyBrowserBack,
		key.KeyBrowserForward, key.KeyEscape, key.KeySpace, key.KeyTab,
		key.KeyEnter, key.KeyApp:
		return true
	}
	return false
}

// isAlreadyVimStyle reports whether the modifiers need no normalization:
// shift is not held and ctrl+alt (AltGr) is not held together.
func isAlreadyVimStyle(mods key.Modifiers) bool {
	return !mods.Shift && !(mods.Control && mods.Alt)
}

func isSingleChar(s string) bool {
	return s != "" && uniseg.GraphemeClusterCount(s) == 1
}

// keyText returns the text a key is named by on this layout: the character
// it produces when it produces one, its canonical name otherwise.
func (m *KeyboardMapper) keyText(code key.KeyCode) string {
	if isImmutableKey(code) {
		return code.Name()
	}
	if s, ok := m.CodeToChar(code); ok {
		return s
	}
	return code.Name()
}

// ToVimKeystroke normalizes a keystroke to the character it types, so that
// shift-3 on a US layout becomes "#" and ctrl-shift-4 becomes "ctrl-$".
// Keystrokes that cannot be normalized are logged and returned unchanged.
func (m *KeyboardMapper) ToVimKeystroke(ks key.Keystroke) VimKeystroke {
	text := m.keyText(ks.Key)
	unchanged := VimKeystroke{Modifiers: ks.Modifiers, Key: text, KeyChar: ks.KeyChar}

	if isImmutableKey(ks.Key) || ks.Key.IsLetter() || isAlreadyVimStyle(ks.Modifiers) {
		return unchanged
	}

	// The keystroke typed a single character: that character is the key.
	// Control only counts as typing when it is half of AltGr.
	mods := ks.Modifiers
	if isSingleChar(ks.KeyChar) && !mods.Platform && !mods.Function && (!mods.Control || mods.Alt) {
		return VimKeystroke{Key: ks.KeyChar, KeyChar: ks.KeyChar}
	}

	if !isSingleChar(text) {
		m.logger.Error("failed to convert keystroke to vim keystroke",
			"keystroke", ks.String(), "reason", "key is not a single character")
		return unchanged
	}
	entry, ok := m.Lookup(text)
	if !ok {
		m.logger.Error("failed to convert keystroke to vim keystroke",
			"keystroke", ks.String(), "reason", "no key produces "+text)
		return unchanged
	}
	mods = m.requireModifiers(mods, entry.Modifiers, text)

	newKey := text
	if mods.Shift {
		mods.Shift = false
		if shifted, ok := m.CharFor(entry.Code, key.ShiftModifiers); ok && !isControlChar(shifted) {
			newKey = shifted
		}
	}
	return VimKeystroke{Modifiers: mods, Key: newKey, KeyChar: ks.KeyChar}
}

// requireModifiers adds the modifiers a character needs, logging when the
// keystroke already held one of them.
func (m *KeyboardMapper) requireModifiers(mods, required key.Modifiers, char string) key.Modifiers {
	if required.Shift && mods.Shift {
		m.logger.Error("shift already set but required by key", "key", char)
	}
	if required.Control && mods.Control {
		m.logger.Error("ctrl already set but required by key", "key", char)
	}
	if required.Alt && mods.Alt {
		m.logger.Error("alt already set but required by key", "key", char)
	}
	return mods.Union(required)
}

func isControlChar(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r < 0x20 || r == 0x7f
}

// MapKeystroke resolves a character-named keystroke, as written in a
// keymap, to the physical key that types it on this layout. With key
// equivalents the US position of the character is preferred, otherwise
// the character itself is looked up first. Named keys such as "f5" pass
// through. Unresolvable keystrokes are logged and mapped to KeyUnknown.
func (m *KeyboardMapper) MapKeystroke(vk VimKeystroke, useKeyEquivalents bool) key.Keystroke {
	if code, err := key.ParseKeyCode(vk.Key); err == nil && (isImmutableKey(code) || !isSingleChar(vk.Key)) {
		return key.Keystroke{Modifiers: vk.Modifiers, Key: code, KeyChar: vk.KeyChar}
	}

	lookups := []func(string) (Entry, bool){lookupUS, m.Lookup}
	if !useKeyEquivalents {
		lookups[0], lookups[1] = lookups[1], lookups[0]
	}
	for _, lookup := range lookups {
		if e, ok := lookup(vk.Key); ok {
			return key.Keystroke{
				Modifiers: m.requireModifiers(vk.Modifiers, e.Modifiers, vk.Key),
				Key:       e.Code,
				KeyChar:   vk.KeyChar,
			}
		}
	}

	m.logger.Error("failed to map keystroke", "keystroke", vk.String(),
		"use_key_equivalents", useKeyEquivalents)
	return key.Keystroke{Modifiers: vk.Modifiers, Key: key.KeyUnknown, KeyChar: vk.KeyChar}
}

// usMapper indexes the US layout for virtual-key style lookups.
var usMapper = NewKeyboardMapper(US)

// lookupUS resolves a character by its US position, requiring only shift.
func lookupUS(char string) (Entry, bool) {
	e, ok := usMapper.Lookup(char)
	if !ok || e.Modifiers.Alt {
		return Entry{}, false
	}
	return e, true
}
