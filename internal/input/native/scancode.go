package native

import (
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/layout"
)

// macScanCodes maps macOS hardware scan codes on an ANSI keyboard to keys.
var macScanCodes = map[uint16]key.KeyCode{
	0x3F: key.KeyFunction,
	0x33: key.KeyBackspace,
	0x30: key.KeyTab,
	0x24: key.KeyEnter,
	0x35: key.KeyEscape,
	0x31: key.KeySpace,
	0x74: key.KeyPageUp,
	0x79: key.KeyPageDown,
	0x77: key.KeyEnd,
	0x73: key.KeyHome,
	0x7B: key.KeyLeft,
	0x7E: key.KeyUp,
	0x7C: key.KeyRight,
	0x7D: key.KeyDown,
	0x72: key.KeyInsert,
	0x75: key.KeyDelete,

	0x38: key.KeyShift.At(key.PositionLeft),
	0x3C: key.KeyShift.At(key.PositionRight),
	0x3B: key.KeyControl.At(key.PositionLeft),
	0x3E: key.KeyControl.At(key.PositionRight),
	0x3A: key.KeyAlt.At(key.PositionLeft),
	0x3D: key.KeyAlt.At(key.PositionRight),
	0x37: key.KeyPlatform.At(key.PositionLeft),
	0x36: key.KeyPlatform.At(key.PositionRight),
	0x39: key.KeyCapital,

	0x1D: key.KeyDigit0,
	0x12: key.KeyDigit1,
	0x13: key.KeyDigit2,
	0x14: key.KeyDigit3,
	0x15: key.KeyDigit4,
	0x17: key.KeyDigit5,
	0x16: key.KeyDigit6,
	0x1A: key.KeyDigit7,
	0x1C: key.KeyDigit8,
	0x19: key.KeyDigit9,

	0x00: key.KeyA,
	0x0B: key.KeyB,
	0x08: key.KeyC,
	0x02: key.KeyD,
	0x0E: key.KeyE,
	0x03: key.KeyF,
	0x05: key.KeyG,
	0x04: key.KeyH,
	0x22: key.KeyI,
	0x26: key.KeyJ,
	0x28: key.KeyK,
	0x25: key.KeyL,
	0x2E: key.KeyM,
	0x2D: key.KeyN,
	0x1F: key.KeyO,
	0x23: key.KeyP,
	0x0C: key.KeyQ,
	0x0F: key.KeyR,
	0x01: key.KeyS,
	0x11: key.KeyT,
	0x20: key.KeyU,
	0x09: key.KeyV,
	0x0D: key.KeyW,
	0x07: key.KeyX,
	0x10: key.KeyY,
	0x06: key.KeyZ,

	0x52: key.KeyNumpad0,
	0x53: key.KeyNumpad1,
	0x54: key.KeyNumpad2,
	0x55: key.KeyNumpad3,
	0x56: key.KeyNumpad4,
	0x57: key.KeyNumpad5,
	0x58: key.KeyNumpad6,
	0x59: key.KeyNumpad7,
	0x5B: key.KeyNumpad8,
	0x5C: key.KeyNumpad9,
	0x43: key.KeyMultiply,
	0x45: key.KeyAdd,
	0x4E: key.KeySubtract,
	0x41: key.KeyDecimal,
	0x4D: key.KeyDivide,

	0x7A: key.KeyF1,
	0x78: key.KeyF2,
	0x63: key.KeyF3,
	0x76: key.KeyF4,
	0x60: key.KeyF5,
	0x61: key.KeyF6,
	0x62: key.KeyF7,
	0x64: key.KeyF8,
	0x65: key.KeyF9,
	0x6D: key.KeyF10,
	0x67: key.KeyF11,
	0x6F: key.KeyF12,
	0x69: key.KeyF13,
	0x6B: key.KeyF14,
	0x71: key.KeyF15,
	0x6A: key.KeyF16,
	0x40: key.KeyF17,
	0x4F: key.KeyF18,
	0x50: key.KeyF19,
	0x5A: key.KeyF20,

	0x4A: key.KeyVolumeMute,
	0x49: key.KeyVolumeDown,
	0x48: key.KeyVolumeUp,

	0x29: key.KeySemicolon,
	0x18: key.KeyPlus,
	0x2B: key.KeyComma,
	0x1B: key.KeyMinus,
	0x2F: key.KeyPeriod,
	0x2C: key.KeySlash,
	0x32: key.KeyTilde,
	0x21: key.KeyLeftBracket,
	0x2A: key.KeyBackslash,
	0x1E: key.KeyRightBracket,
	0x27: key.KeyQuote,
}

// germanANSI overrides the punctuation keys so a German layout reports
// the same keys as the German Windows virtual-key codes.
var germanANSI = map[uint16]key.KeyCode{
	0x32: key.KeyBackslash,
	0x1B: key.KeyLeftBracket,
	0x18: key.KeyRightBracket,
	0x21: key.KeySemicolon,
	0x1E: key.KeyPlus,
	0x2A: key.KeySlash,
	0x29: key.KeyTilde,
	0x27: key.KeyQuote,
	0x2C: key.KeyMinus,
	0x06: key.KeyY,
	0x10: key.KeyZ,
}

// germanISO differs from germanANSI in the two keys ISO boards place
// differently.
var germanISO = func() map[uint16]key.KeyCode {
	m := make(map[uint16]key.KeyCode, len(germanANSI)+1)
	for scan, code := range germanANSI {
		m[scan] = code
	}
	m[0x0A] = key.KeyBackslash
	m[0x32] = key.KeyOEM102
	return m
}()

var macScanCodesReverse = func() map[key.KeyCode]uint16 {
	m := make(map[key.KeyCode]uint16, len(macScanCodes))
	for scan, code := range macScanCodes {
		m[code] = scan
	}
	return m
}()

// FromScanCode returns the key for a macOS scan code. The geometry and the
// layout identifier select the German punctuation overrides; every other
// layout uses the ANSI table.
func FromScanCode(scan uint16, geometry layout.Geometry, layoutID string) key.KeyCode {
	if l, ok := layout.Lookup(layoutID); ok && l == layout.German {
		overrides := germanANSI
		if geometry == layout.GeometryISO {
			overrides = germanISO
		}
		if code, ok := overrides[scan]; ok {
			return code
		}
	}
	if code, ok := macScanCodes[scan]; ok {
		return code
	}
	return key.KeyUnknown
}

// ScanCodeFor returns the ANSI scan code for a key. PositionAny modifiers
// map to their left-hand key.
func ScanCodeFor(code key.KeyCode) (uint16, bool) {
	if scan, ok := macScanCodesReverse[code]; ok {
		return scan, true
	}
	if code.IsPositional() && code.Position() == key.PositionAny {
		scan, ok := macScanCodesReverse[code.At(key.PositionLeft)]
		return scan, ok
	}
	return 0, false
}

// macOS event modifier flags.
const (
	flagShift    = 1 << 17
	flagControl  = 1 << 18
	flagOption   = 1 << 19
	flagCommand  = 1 << 20
	flagFunction = 1 << 23
)

// ModifiersFromFlags converts macOS event modifier flags.
func ModifiersFromFlags(flags uint64) key.Modifiers {
	return key.Modifiers{
		Control:  flags&flagControl != 0,
		Alt:      flags&flagOption != 0,
		Shift:    flags&flagShift != 0,
		Platform: flags&flagCommand != 0,
		Function: flags&flagFunction != 0,
	}
}
