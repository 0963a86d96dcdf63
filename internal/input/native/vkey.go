package native

import "github.com/dshills/keychord/internal/input/key"

// Windows virtual-key codes.
const (
	vkCancel            = 0x03
	vkBack              = 0x08
	vkTab               = 0x09
	vkClear             = 0x0C
	vkReturn            = 0x0D
	vkShift             = 0x10
	vkControl           = 0x11
	vkMenu              = 0x12
	vkPause             = 0x13
	vkCapital           = 0x14
	vkKana              = 0x15
	vkKanji             = 0x19
	vkEscape            = 0x1B
	vkConvert           = 0x1C
	vkNonConvert        = 0x1D
	vkSpace             = 0x20
	vkPrior             = 0x21
	vkNext              = 0x22
	vkEnd               = 0x23
	vkHome              = 0x24
	vkLeft              = 0x25
	vkUp                = 0x26
	vkRight             = 0x27
	vkDown              = 0x28
	vkSelect            = 0x29
	vkPrint             = 0x2A
	vkExecute           = 0x2B
	vkSnapshot          = 0x2C
	vkInsert            = 0x2D
	vkDelete            = 0x2E
	vkHelp              = 0x2F
	vk0                 = 0x30
	vkA                 = 0x41
	vkLWin              = 0x5B
	vkRWin              = 0x5C
	vkApps              = 0x5D
	vkSleep             = 0x5F
	vkNumpad0           = 0x60
	vkMultiply          = 0x6A
	vkAdd               = 0x6B
	vkSeparator         = 0x6C
	vkSubtract          = 0x6D
	vkDecimal           = 0x6E
	vkDivide            = 0x6F
	vkF1                = 0x70
	vkNumLock           = 0x90
	vkScroll            = 0x91
	vkLShift            = 0xA0
	vkRShift            = 0xA1
	vkLControl          = 0xA2
	vkRControl          = 0xA3
	vkLMenu             = 0xA4
	vkRMenu             = 0xA5
	vkBrowserBack       = 0xA6
	vkBrowserForward    = 0xA7
	vkBrowserRefresh    = 0xA8
	vkBrowserStop       = 0xA9
	vkBrowserSearch     = 0xAA
	vkBrowserFavorites  = 0xAB
	vkBrowserHome       = 0xAC
	vkVolumeMute        = 0xAD
	vkVolumeDown        = 0xAE
	vkVolumeUp          = 0xAF
	vkMediaNextTrack    = 0xB0
	vkMediaPrevTrack    = 0xB1
	vkMediaStop         = 0xB2
	vkMediaPlayPause    = 0xB3
	vkLaunchMail        = 0xB4
	vkLaunchMediaSelect = 0xB5
	vkLaunchApp1        = 0xB6
	vkLaunchApp2        = 0xB7
	vkOEM1              = 0xBA
	vkOEMPlus           = 0xBB
	vkOEMComma          = 0xBC
	vkOEMMinus          = 0xBD
	vkOEMPeriod         = 0xBE
	vkOEM2              = 0xBF
	vkOEM3              = 0xC0
	vkOEM4              = 0xDB
	vkOEM5              = 0xDC
	vkOEM6              = 0xDD
	vkOEM7              = 0xDE
	vkOEM8              = 0xDF
	vkOEM102            = 0xE2
	vkProcessKey        = 0xE5
	vkPacket            = 0xE7
	vkAttn              = 0xF6
	vkCrSel             = 0xF7
	vkExSel             = 0xF8
	vkEREOF             = 0xF9
	vkPlay              = 0xFA
	vkZoom              = 0xFB
	vkPA1               = 0xFD
	vkOEMClear          = 0xFE
)

var virtualKeys = map[uint16]key.KeyCode{
	vkCancel:            key.KeyCancel,
	vkBack:              key.KeyBackspace,
	vkTab:               key.KeyTab,
	vkClear:             key.KeyClear,
	vkReturn:            key.KeyEnter,
	vkShift:             key.KeyShift,
	vkControl:           key.KeyControl,
	vkMenu:              key.KeyAlt,
	vkPause:             key.KeyPause,
	vkCapital:           key.KeyCapital,
	vkKana:              key.KeyKana,
	vkKanji:             key.KeyKanji,
	vkEscape:            key.KeyEscape,
	vkConvert:           key.KeyConvert,
	vkNonConvert:        key.KeyNonConvert,
	vkSpace:             key.KeySpace,
	vkPrior:             key.KeyPageUp,
	vkNext:              key.KeyPageDown,
	vkEnd:               key.KeyEnd,
	vkHome:              key.KeyHome,
	vkLeft:              key.KeyLeft,
	vkUp:                key.KeyUp,
	vkRight:             key.KeyRight,
	vkDown:              key.KeyDown,
	vkSelect:            key.KeySelect,
	vkPrint:             key.KeyPrint,
	vkExecute:           key.KeyExecute,
	vkSnapshot:          key.KeyPrintScreen,
	vkInsert:            key.KeyInsert,
	vkDelete:            key.KeyDelete,
	vkHelp:              key.KeyHelp,
	vkLWin:              key.KeyPlatform.At(key.PositionLeft),
	vkRWin:              key.KeyPlatform.At(key.PositionRight),
	vkApps:              key.KeyApp,
	vkSleep:             key.KeySleep,
	vkMultiply:          key.KeyMultiply,
	vkAdd:               key.KeyAdd,
	vkSeparator:         key.KeySeparator,
	vkSubtract:          key.KeySubtract,
	vkDecimal:           key.KeyDecimal,
	vkDivide:            key.KeyDivide,
	vkNumLock:           key.KeyNumLock,
	vkScroll:            key.KeyScrollLock,
	vkLShift:            key.KeyShift.At(key.PositionLeft),
	vkRShift:            key.KeyShift.At(key.PositionRight),
	vkLControl:          key.KeyControl.At(key.PositionLeft),
	vkRControl:          key.KeyControl.At(key.PositionRight),
	vkLMenu:             key.KeyAlt.At(key.PositionLeft),
	vkRMenu:             key.KeyAlt.At(key.PositionRight),
	vkBrowserBack:       key.KeyBrowserBack,
	vkBrowserForward:    key.KeyBrowserForward,
	vkBrowserRefresh:    key.KeyBrowserRefresh,
	vkBrowserStop:       key.KeyBrowserStop,
	vkBrowserSearch:     key.KeyBrowserSearch,
	vkBrowserFavorites:  key.KeyBrowserFavorites,
	vkBrowserHome:       key.KeyBrowserHome,
	vkVolumeMute:        key.KeyVolumeMute,
	vkVolumeDown:        key.KeyVolumeDown,
	vkVolumeUp:          key.KeyVolumeUp,
	vkMediaNextTrack:    key.KeyMediaNextTrack,
	vkMediaPrevTrack:    key.KeyMediaPrevTrack,
	vkMediaStop:         key.KeyMediaStop,
	vkMediaPlayPause:    key.KeyMediaPlayPause,
	vkLaunchMail:        key.KeyLaunchMail,
	vkLaunchMediaSelect: key.KeyLaunchMediaSelect,
	vkLaunchApp1:        key.KeyLaunchApp1,
	vkLaunchApp2:        key.KeyLaunchApp2,
	vkOEM1:              key.KeySemicolon,
	vkOEMPlus:           key.KeyPlus,
	vkOEMComma:          key.KeyComma,
	vkOEMMinus:          key.KeyMinus,
	vkOEMPeriod:         key.KeyPeriod,
	vkOEM2:              key.KeySlash,
	vkOEM3:              key.KeyTilde,
	vkOEM4:              key.KeyLeftBracket,
	vkOEM5:              key.KeyBackslash,
	vkOEM6:              key.KeyRightBracket,
	vkOEM7:              key.KeyQuote,
	vkOEM8:              key.KeyOEM8,
	vkOEM102:            key.KeyOEM102,
	vkProcessKey:        key.KeyProcessKey,
	vkPacket:            key.KeyPacket,
	vkAttn:              key.KeyAttn,
	vkCrSel:             key.KeyCrSel,
	vkExSel:             key.KeyExSel,
	vkEREOF:             key.KeyEraseEOF,
	vkPlay:              key.KeyPlay,
	vkZoom:              key.KeyZoom,
	vkPA1:               key.KeyPA1,
	vkOEMClear:          key.KeyOEMClear,
}

// virtualKeyCodes is the reverse of virtualKeys.
var virtualKeyCodes = make(map[key.KeyCode]uint16, len(virtualKeys)+80)

func init() {
	for i := uint16(0); i < 10; i++ {
		virtualKeys[vk0+i] = key.KeyDigit0 + key.KeyCode(i)
		virtualKeys[vkNumpad0+i] = key.KeyNumpad0 + key.KeyCode(i)
	}
	for i := uint16(0); i < 26; i++ {
		virtualKeys[vkA+i] = key.KeyA + key.KeyCode(i)
	}
	for i := uint16(0); i < 24; i++ {
		virtualKeys[vkF1+i] = key.KeyF1 + key.KeyCode(i)
	}
	for vk, code := range virtualKeys {
		virtualKeyCodes[code] = vk
	}
}

// FromVirtualKey returns the key for a Windows virtual-key code. The
// left/right modifier codes (VK_LSHIFT and friends) keep their position.
func FromVirtualKey(vk uint16) key.KeyCode {
	if code, ok := virtualKeys[vk]; ok {
		return code
	}
	return key.KeyUnknown
}

// VirtualKeyFor returns the Windows virtual-key code for a key. A
// positional key without a position maps to the generic code (VK_SHIFT).
// PositionAny Platform has no generic code and maps to VK_LWIN.
func VirtualKeyFor(code key.KeyCode) (uint16, bool) {
	if vk, ok := virtualKeyCodes[code]; ok {
		return vk, true
	}
	if code == key.KeyPlatform {
		return vkLWin, true
	}
	return 0, false
}

// ModifiersFromVirtualKeys builds the modifier state from a key-state
// query such as GetKeyState. pressed reports whether a virtual key is down.
func ModifiersFromVirtualKeys(pressed func(vk uint16) bool) key.Modifiers {
	return key.Modifiers{
		Control:  pressed(vkControl),
		Alt:      pressed(vkMenu),
		Shift:    pressed(vkShift),
		Platform: pressed(vkLWin) || pressed(vkRWin),
	}
}
