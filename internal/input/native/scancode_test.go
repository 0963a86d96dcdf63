package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/layout"
)

func TestFromScanCode(t *testing.T) {
	const german = "com.apple.keylayout.German"

	tests := []struct {
		name     string
		scan     uint16
		geometry layout.Geometry
		layoutID string
		want     key.KeyCode
	}{
		{"us letter", 0x00, layout.GeometryANSI, "us", key.KeyA},
		{"us z", 0x06, layout.GeometryANSI, "com.apple.keylayout.ABC", key.KeyZ},
		{"us grave", 0x32, layout.GeometryANSI, "us", key.KeyTilde},
		{"us semicolon", 0x29, layout.GeometryANSI, "us", key.KeySemicolon},
		{"left shift", 0x38, layout.GeometryANSI, "us", key.KeyShift.At(key.PositionLeft)},
		{"right command", 0x36, layout.GeometryANSI, "us", key.KeyPlatform.At(key.PositionRight)},
		{"fn", 0x3F, layout.GeometryANSI, "us", key.KeyFunction},
		{"f17", 0x40, layout.GeometryANSI, "us", key.KeyF17},
		{"unknown layout uses ansi", 0x29, layout.GeometryISO, "com.example.xx", key.KeySemicolon},
		{"unmapped", 0x66, layout.GeometryANSI, "us", key.KeyUnknown},

		{"de ö", 0x29, layout.GeometryANSI, german, key.KeyTilde},
		{"de ü", 0x21, layout.GeometryANSI, german, key.KeySemicolon},
		{"de ß", 0x1B, layout.GeometryANSI, german, key.KeyLeftBracket},
		{"de plus", 0x1E, layout.GeometryANSI, german, key.KeyPlus},
		{"de z swap", 0x10, layout.GeometryANSI, german, key.KeyZ},
		{"de y swap", 0x06, layout.GeometryANSI, german, key.KeyY},
		{"de ansi caret", 0x32, layout.GeometryANSI, german, key.KeyBackslash},
		{"de iso caret", 0x0A, layout.GeometryISO, german, key.KeyBackslash},
		{"de iso angle", 0x32, layout.GeometryISO, german, key.KeyOEM102},
		{"de unchanged", 0x00, layout.GeometryISO, "de", key.KeyA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromScanCode(tt.scan, tt.geometry, tt.layoutID))
		})
	}
}

func TestScanCodeFor(t *testing.T) {
	scan, ok := ScanCodeFor(key.KeyEscape)
	require.True(t, ok)
	assert.Equal(t, uint16(0x35), scan)

	scan, ok = ScanCodeFor(key.KeyAlt)
	require.True(t, ok)
	assert.Equal(t, uint16(0x3A), scan)

	scan, ok = ScanCodeFor(key.KeyAlt.At(key.PositionRight))
	require.True(t, ok)
	assert.Equal(t, uint16(0x3D), scan)

	_, ok = ScanCodeFor(key.KeyF24)
	assert.False(t, ok)
}

func TestScanCodeRoundTrip(t *testing.T) {
	for scan, code := range macScanCodes {
		back, ok := ScanCodeFor(code)
		require.True(t, ok, code.String())
		assert.Equal(t, scan, back, code.String())
	}
}

func TestModifiersFromFlags(t *testing.T) {
	assert.Equal(t, key.NoModifiers, ModifiersFromFlags(0))
	assert.Equal(t,
		key.Modifiers{Platform: true, Shift: true},
		ModifiersFromFlags(1<<20|1<<17))
	assert.Equal(t,
		key.Modifiers{Control: true, Alt: true, Function: true},
		ModifiersFromFlags(1<<18|1<<19|1<<23|1<<16))
}
