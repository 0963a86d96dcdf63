package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keychord/internal/input/key"
)

func TestLookupBuiltins(t *testing.T) {
	for _, id := range []string{"us", "com.apple.keylayout.ABC", "00000409"} {
		l, ok := Lookup(id)
		require.True(t, ok, id)
		assert.Same(t, US, l)
	}
	for _, id := range []string{"de", "com.apple.keylayout.German", "00000407"} {
		l, ok := Lookup(id)
		require.True(t, ok, id)
		assert.Same(t, German, l)
	}
	_, ok := Lookup("xx")
	assert.False(t, ok)

	assert.Subset(t, IDs(), []string{"de", "us"})
}

func TestRegister(t *testing.T) {
	l := &Layout{
		ID:      "test-register",
		Aliases: []string{"test-register-alias"},
		Keys:    map[key.KeyCode]Chars{key.KeyA: {Base: "a"}},
	}
	require.NoError(t, Register(l))

	got, ok := Lookup("test-register-alias")
	require.True(t, ok)
	assert.Same(t, l, got)

	assert.ErrorIs(t, Register(l), ErrDuplicateLayout)
	assert.ErrorIs(t, Register(&Layout{ID: "no-keys"}), ErrInvalidLayout)
	assert.ErrorIs(t, Register(&Layout{Keys: l.Keys}), ErrInvalidLayout)
	assert.Panics(t, func() { MustRegister(&Layout{}) })
}

func TestLayoutCharFor(t *testing.T) {
	tests := []struct {
		name   string
		layout *Layout
		code   key.KeyCode
		mods   key.Modifiers
		want   string
		ok     bool
	}{
		{"us base", US, key.KeyDigit4, key.NoModifiers, "4", true},
		{"us shift", US, key.KeyDigit4, key.ShiftModifiers, "$", true},
		{"us option", US, key.KeyS, key.AltModifiers, "ß", true},
		{"us ctrl types nothing", US, key.KeyS, key.ControlModifiers, "", false},
		{"de base", German, key.KeyLeftBracket, key.NoModifiers, "ß", true},
		{"de shift", German, key.KeyDigit8, key.ShiftModifiers, "(", true},
		{"de altgr", German, key.KeyDigit8, key.Modifiers{Control: true, Alt: true}, "[", true},
		{"de alt alone types nothing", German, key.KeyDigit8, key.AltModifiers, "", false},
		{"de altgr empty column", German, key.KeyDigit4, key.Modifiers{Control: true, Alt: true}, "", false},
		{"unknown key", US, key.KeyF1, key.NoModifiers, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.layout.CharFor(tt.code, tt.mods)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeometryString(t *testing.T) {
	assert.Equal(t, "ansi", GeometryANSI.String())
	assert.Equal(t, "iso", German.Geometry.String())
}
