package key

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPositionEqual(t *testing.T) {
	tests := []struct {
		a, b KeyPosition
		want bool
	}{
		{PositionAny, PositionAny, true},
		{PositionAny, PositionLeft, true},
		{PositionRight, PositionAny, true},
		{PositionLeft, PositionLeft, true},
		{PositionLeft, PositionRight, false},
		{PositionRight, PositionLeft, false},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+"/"+tt.b.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestKeyCodeEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b KeyCode
		want bool
	}{
		{"shift any vs left", KeyShift, KeyShift.At(PositionLeft), true},
		{"shift any vs right", KeyShift, KeyShift.At(PositionRight), true},
		{"left vs right", KeyShift.At(PositionLeft), KeyShift.At(PositionRight), false},
		{"control vs shift", KeyControl.At(PositionLeft), KeyShift.At(PositionLeft), false},
		{"same letter", KeyA, KeyA, true},
		{"different letter", KeyA, KeyB, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestKeyCodeAt(t *testing.T) {
	left := KeyAlt.At(PositionLeft)
	assert.Equal(t, KeyAlt, left.Base())
	assert.Equal(t, PositionLeft, left.Position())
	assert.Equal(t, "LeftAlt", left.String())

	// Non-positional keys ignore the position.
	assert.Equal(t, KeyA, KeyA.At(PositionRight))
	assert.Equal(t, PositionAny, KeyA.At(PositionRight).Position())
}

func TestParseKeyCode(t *testing.T) {
	tests := []struct {
		input string
		want  KeyCode
	}{
		{"a", KeyA},
		{"z", KeyZ},
		{"0", KeyDigit0},
		{"9", KeyDigit9},
		{"enter", KeyEnter},
		{"Enter", KeyEnter},
		{"escape", KeyEscape},
		{"f1", KeyF1},
		{"F24", KeyF24},
		{"-", KeyMinus},
		{"=", KeyPlus},
		{"`", KeyTilde},
		{"\\", KeyBackslash},
		{"[", KeyLeftBracket},
		{"]", KeyRightBracket},
		{";", KeySemicolon},
		{"'", KeyQuote},
		{",", KeyComma},
		{".", KeyPeriod},
		{"/", KeySlash},
		{"back", KeyBrowserBack},
		{"forward", KeyBrowserForward},
		{"win", KeyPlatform},
		{"super", KeyPlatform},
		{"cmd", KeyPlatform},
		{"menu", KeyApp},
		{"pageup", KeyPageUp},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKeyCode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKeyCodeInvalid(t *testing.T) {
	for _, input := range []string{"", "A", "foo", "f25", "ctrl+a"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseKeyCode(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidKeyName))
		})
	}
}

func TestKeyCodeNamesRoundTrip(t *testing.T) {
	for _, code := range KeyCodes() {
		name := code.Name()
		if name == "" {
			continue
		}
		got, err := ParseKeyCode(name)
		require.NoError(t, err, "name %q", name)
		assert.Equal(t, code, got, "name %q", name)
	}
}

func TestKeyCodeIsPrintable(t *testing.T) {
	notPrintable := []KeyCode{
		KeyF1, KeyF12, KeyF24, KeyBackspace, KeyDelete, KeyLeft, KeyUp, KeyRight,
		KeyDown, KeyPageUp, KeyPageDown, KeyInsert, KeyHome, KeyEnd,
		KeyBrowserBack, KeyBrowserForward, KeyEscape,
	}
	for _, code := range notPrintable {
		assert.False(t, code.IsPrintable(), code.String())
	}

	printable := []KeyCode{KeyA, KeyDigit5, KeySpace, KeyTab, KeyEnter, KeyMinus, KeyQuote}
	for _, code := range printable {
		assert.True(t, code.IsPrintable(), code.String())
	}
}

func TestKeyCodeClassification(t *testing.T) {
	assert.True(t, KeyShift.At(PositionRight).IsModifier())
	assert.True(t, KeyFunction.IsModifier())
	assert.False(t, KeyA.IsModifier())

	assert.True(t, KeyQ.IsLetter())
	assert.False(t, KeyDigit1.IsLetter())
	assert.True(t, KeyDigit1.IsDigit())
	assert.True(t, KeyF13.IsFunctionKey())
	assert.True(t, KeyDown.IsArrowKey())
	assert.False(t, KeyHome.IsArrowKey())
}

func TestKeyCodeLabel(t *testing.T) {
	assert.Equal(t, "A", KeyA.Label())
	assert.Equal(t, "Esc", KeyEscape.Label())
	assert.Equal(t, "F5", KeyF5.Label())
	assert.Equal(t, "Unknown", KeyUnknown.Label())
	assert.Equal(t, "Unknown", KeyCode(0xff).Label())
}
