package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keychord/internal/input/key"
)

func TestFromVirtualKey(t *testing.T) {
	tests := []struct {
		vk   uint16
		want key.KeyCode
	}{
		{0x08, key.KeyBackspace},
		{0x0D, key.KeyEnter},
		{0x1B, key.KeyEscape},
		{0x20, key.KeySpace},
		{0x30, key.KeyDigit0},
		{0x39, key.KeyDigit9},
		{0x41, key.KeyA},
		{0x5A, key.KeyZ},
		{0x60, key.KeyNumpad0},
		{0x69, key.KeyNumpad9},
		{0x70, key.KeyF1},
		{0x87, key.KeyF24},
		{0x10, key.KeyShift},
		{0xA0, key.KeyShift.At(key.PositionLeft)},
		{0xA1, key.KeyShift.At(key.PositionRight)},
		{0xA3, key.KeyControl.At(key.PositionRight)},
		{0xA4, key.KeyAlt.At(key.PositionLeft)},
		{0x5C, key.KeyPlatform.At(key.PositionRight)},
		{0xBA, key.KeySemicolon},
		{0xC0, key.KeyTilde},
		{0xDC, key.KeyBackslash},
		{0xE2, key.KeyOEM102},
		{0xE5, key.KeyProcessKey},
		{0xFE, key.KeyOEMClear},
		{0x07, key.KeyUnknown},
		{0xFFFF, key.KeyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, FromVirtualKey(tt.vk))
		})
	}
}

func TestVirtualKeyPositionsMatch(t *testing.T) {
	left := FromVirtualKey(0xA2)
	right := FromVirtualKey(0xA3)
	assert.True(t, left.Equal(key.KeyControl))
	assert.True(t, right.Equal(key.KeyControl))
	assert.False(t, left.Equal(right))
}

func TestVirtualKeyFor(t *testing.T) {
	tests := []struct {
		code key.KeyCode
		want uint16
	}{
		{key.KeyA, 0x41},
		{key.KeyF12, 0x7B},
		{key.KeyShift, 0x10},
		{key.KeyShift.At(key.PositionRight), 0xA1},
		{key.KeyPlatform, 0x5B},
		{key.KeyQuote, 0xDE},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			vk, ok := VirtualKeyFor(tt.code)
			require.True(t, ok)
			assert.Equal(t, tt.want, vk)
		})
	}

	_, ok := VirtualKeyFor(key.KeyFunction)
	assert.False(t, ok)
}

func TestVirtualKeyRoundTrip(t *testing.T) {
	for vk := uint16(0); vk <= 0xFF; vk++ {
		code := FromVirtualKey(vk)
		if code == key.KeyUnknown {
			continue
		}
		back, ok := VirtualKeyFor(code)
		require.True(t, ok, "vk 0x%02X", vk)
		assert.Equal(t, vk, back, "vk 0x%02X", vk)
	}
}

func TestModifiersFromVirtualKeys(t *testing.T) {
	down := map[uint16]bool{0x11: true, 0x5C: true}
	mods := ModifiersFromVirtualKeys(func(vk uint16) bool { return down[vk] })
	assert.Equal(t, key.Modifiers{Control: true, Platform: true}, mods)
}
