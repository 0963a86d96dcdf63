package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keychord/internal/input/key"
)

func TestNewKeyDown(t *testing.T) {
	altGr := key.Modifiers{Control: true, Alt: true}

	tests := []struct {
		name     string
		code     key.KeyCode
		mods     key.Modifiers
		text     string
		wantChar string
	}{
		{"plain letter", key.KeyA, key.NoModifiers, "a", "a"},
		{"shifted digit", key.KeyDigit4, key.ShiftModifiers, "$", "$"},
		{"option char", key.KeyS, key.AltModifiers, "ß", "ß"},
		{"altgr char", key.KeyDigit8, altGr, "[", "["},
		{"control drops text", key.KeyC, key.ControlModifiers, "c", ""},
		{"command drops text", key.KeyC, key.CommandModifiers, "c", ""},
		{"control char dropped", key.KeyEnter, key.NoModifiers, "\r", ""},
		{"decomposed text composed", key.KeyE, key.NoModifiers, "e\u0301", "\u00e9"},
		{"no text", key.KeyF5, key.NoModifiers, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := NewKeyDown(tt.code, tt.mods, tt.text, false)
			require.True(t, ok)
			assert.Equal(t, tt.code, ev.Keystroke.Key)
			assert.Equal(t, tt.mods, ev.Keystroke.Modifiers)
			assert.Equal(t, tt.wantChar, ev.Keystroke.KeyChar)
		})
	}
}

func TestNewKeyDownModifierKey(t *testing.T) {
	for _, code := range []key.KeyCode{
		key.KeyShift, key.KeyControl.At(key.PositionLeft), key.KeyPlatform, key.KeyFunction,
	} {
		_, ok := NewKeyDown(code, key.NoModifiers, "", false)
		assert.False(t, ok, code.String())
	}
}

func TestNewKeyDownHeld(t *testing.T) {
	ev, ok := NewKeyDown(FromVirtualKey(0x41), key.NoModifiers, "a", true)
	require.True(t, ok)
	assert.True(t, ev.IsHeld)
	assert.True(t, ev.Keystroke.ShouldMatch(key.MustParse("a")))
}
