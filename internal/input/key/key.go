package key

import (
	"fmt"
	"strings"
)

// KeyPosition identifies which physical instance of a duplicated key was
// pressed. Only modifier keys carry a position.
type KeyPosition uint8

const (
	// PositionAny matches both the left and right variants of a key.
	PositionAny KeyPosition = iota

	// PositionLeft is the left-hand variant.
	PositionLeft

	// PositionRight is the right-hand variant.
	PositionRight
)

// Equal reports whether two positions match. Any equals everything,
// Left and Right never equal each other.
func (p KeyPosition) Equal(other KeyPosition) bool {
	if p == PositionAny || other == PositionAny {
		return true
	}
	return p == other
}

// String returns the position name.
func (p KeyPosition) String() string {
	switch p {
	case PositionLeft:
		return "Left"
	case PositionRight:
		return "Right"
	default:
		return "Any"
	}
}

// KeyCode identifies a key. The low byte holds the base key, the next two
// bits hold the KeyPosition for the positional modifier keys.
type KeyCode uint16

const (
	baseMask      KeyCode = 0x00ff
	positionShift         = 8
)

const (
	// KeyUnknown represents an unrecognized key.
	KeyUnknown KeyCode = iota
	KeyFunction
	KeyCancel
	KeyBackspace
	KeyTab
	KeyClear
	KeyEnter
	KeyShift
	KeyControl
	KeyAlt
	KeyPause
	KeyCapital
	KeyKana
	KeyKanji
	KeyEscape
	KeyConvert
	KeyNonConvert
	KeySpace
	KeyPageUp
	KeyPageDown
	KeyEnd
	KeyHome
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeySelect
	KeyPrint
	KeyExecute
	KeyPrintScreen
	KeyInsert
	KeyDelete
	KeyHelp

	// Digit row
	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// KeyPlatform is Cmd on macOS, Super on Linux and Win on Windows.
	KeyPlatform
	KeyApp
	KeySleep

	// Numeric keypad
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyMultiply
	KeyAdd
	KeySeparator
	KeySubtract
	KeyDecimal
	KeyDivide

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	KeyNumLock
	KeyScrollLock

	// Browser and media keys
	KeyBrowserBack
	KeyBrowserForward
	KeyBrowserRefresh
	KeyBrowserStop
	KeyBrowserSearch
	KeyBrowserFavorites
	KeyBrowserHome
	KeyVolumeMute
	KeyVolumeDown
	KeyVolumeUp
	KeyMediaNextTrack
	KeyMediaPrevTrack
	KeyMediaStop
	KeyMediaPlayPause
	KeyLaunchMail
	KeyLaunchMediaSelect
	KeyLaunchApp1
	KeyLaunchApp2

	// Punctuation, named after the US layout. Other layouts reuse these
	// codes for whatever character sits at the same physical position.
	KeySemicolon
	KeyPlus
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeyTilde
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyQuote
	KeyOEM8
	KeyOEM102

	KeyProcessKey
	KeyPacket
	KeyAttn
	KeyCrSel
	KeyExSel
	KeyEraseEOF
	KeyPlay
	KeyZoom
	KeyPA1
	KeyOEMClear

	keyCodeCount
)

type keyInfo struct {
	name  string // canonical lowercase source name
	label string // human-readable label
}

var keyTable = [keyCodeCount]keyInfo{
	KeyUnknown:           {"", "Unknown"},
	KeyFunction:          {"fn", "Fn"},
	KeyCancel:            {"cancel", "Cancel"},
	KeyBackspace:         {"backspace", "Backspace"},
	KeyTab:               {"tab", "Tab"},
	KeyClear:             {"clear", "Clear"},
	KeyEnter:             {"enter", "Enter"},
	KeyShift:             {"shift", "Shift"},
	KeyControl:           {"ctrl", "Ctrl"},
	KeyAlt:               {"alt", "Alt"},
	KeyPause:             {"pause", "Pause"},
	KeyCapital:           {"capslock", "CapsLock"},
	KeyKana:              {"kana", "Kana"},
	KeyKanji:             {"kanji", "Kanji"},
	KeyEscape:            {"escape", "Esc"},
	KeyConvert:           {"convert", "Convert"},
	KeyNonConvert:        {"nonconvert", "NonConvert"},
	KeySpace:             {"space", "Space"},
	KeyPageUp:            {"pageup", "PageUp"},
	KeyPageDown:          {"pagedown", "PageDown"},
	KeyEnd:               {"end", "End"},
	KeyHome:              {"home", "Home"},
	KeyLeft:              {"left", "Left"},
	KeyUp:                {"up", "Up"},
	KeyRight:             {"right", "Right"},
	KeyDown:              {"down", "Down"},
	KeySelect:            {"select", "Select"},
	KeyPrint:             {"print", "Print"},
	KeyExecute:           {"execute", "Execute"},
	KeyPrintScreen:       {"printscreen", "PrintScreen"},
	KeyInsert:            {"insert", "Insert"},
	KeyDelete:            {"delete", "Delete"},
	KeyHelp:              {"help", "Help"},
	KeyDigit0:            {"0", "0"},
	KeyDigit1:            {"1", "1"},
	KeyDigit2:            {"2", "2"},
	KeyDigit3:            {"3", "3"},
	KeyDigit4:            {"4", "4"},
	KeyDigit5:            {"5", "5"},
	KeyDigit6:            {"6", "6"},
	KeyDigit7:            {"7", "7"},
	KeyDigit8:            {"8", "8"},
	KeyDigit9:            {"9", "9"},
	KeyA:                 {"a", "A"},
	KeyB:                 {"b", "B"},
	KeyC:                 {"c", "C"},
	KeyD:                 {"d", "D"},
	KeyE:                 {"e", "E"},
	KeyF:                 {"f", "F"},
	KeyG:                 {"g", "G"},
	KeyH:                 {"h", "H"},
	KeyI:                 {"i", "I"},
	KeyJ:                 {"j", "J"},
	KeyK:                 {"k", "K"},
	KeyL:                 {"l", "L"},
	KeyM:                 {"m", "M"},
	KeyN:                 {"n", "N"},
	KeyO:                 {"o", "O"},
	KeyP:                 {"p", "P"},
	KeyQ:                 {"q", "Q"},
	KeyR:                 {"r", "R"},
	KeyS:                 {"s", "S"},
	KeyT:                 {"t", "T"},
	KeyU:                 {"u", "U"},
	KeyV:                 {"v", "V"},
	KeyW:                 {"w", "W"},
	KeyX:                 {"x", "X"},
	KeyY:                 {"y", "Y"},
	KeyZ:                 {"z", "Z"},
	KeyPlatform:          {"cmd", "Cmd"},
	KeyApp:               {"menu", "Menu"},
	KeySleep:             {"sleep", "Sleep"},
	KeyNumpad0:           {"numpad0", "Num0"},
	KeyNumpad1:           {"numpad1", "Num1"},
	KeyNumpad2:           {"numpad2", "Num2"},
	KeyNumpad3:           {"numpad3", "Num3"},
	KeyNumpad4:           {"numpad4", "Num4"},
	KeyNumpad5:           {"numpad5", "Num5"},
	KeyNumpad6:           {"numpad6", "Num6"},
	KeyNumpad7:           {"numpad7", "Num7"},
	KeyNumpad8:           {"numpad8", "Num8"},
	KeyNumpad9:           {"numpad9", "Num9"},
	KeyMultiply:          {"multiply", "Num*"},
	KeyAdd:               {"add", "Num+"},
	KeySeparator:         {"separator", "Num,"},
	KeySubtract:          {"subtract", "Num-"},
	KeyDecimal:           {"decimal", "Num."},
	KeyDivide:            {"divide", "Num/"},
	KeyF1:                {"f1", "F1"},
	KeyF2:                {"f2", "F2"},
	KeyF3:                {"f3", "F3"},
	KeyF4:                {"f4", "F4"},
	KeyF5:                {"f5", "F5"},
	KeyF6:                {"f6", "F6"},
	KeyF7:                {"f7", "F7"},
	KeyF8:                {"f8", "F8"},
	KeyF9:                {"f9", "F9"},
	KeyF10:               {"f10", "F10"},
	KeyF11:               {"f11", "F11"},
	KeyF12:               {"f12", "F12"},
	KeyF13:               {"f13", "F13"},
	KeyF14:               {"f14", "F14"},
	KeyF15:               {"f15", "F15"},
	KeyF16:               {"f16", "F16"},
	KeyF17:               {"f17", "F17"},
	KeyF18:               {"f18", "F18"},
	KeyF19:               {"f19", "F19"},
	KeyF20:               {"f20", "F20"},
	KeyF21:               {"f21", "F21"},
	KeyF22:               {"f22", "F22"},
	KeyF23:               {"f23", "F23"},
	KeyF24:               {"f24", "F24"},
	KeyNumLock:           {"numlock", "NumLock"},
	KeyScrollLock:        {"scrolllock", "ScrollLock"},
	KeyBrowserBack:       {"back", "Back"},
	KeyBrowserForward:    {"forward", "Forward"},
	KeyBrowserRefresh:    {"browserrefresh", "Refresh"},
	KeyBrowserStop:       {"browserstop", "Stop"},
	KeyBrowserSearch:     {"browsersearch", "Search"},
	KeyBrowserFavorites:  {"browserfavorites", "Favorites"},
	KeyBrowserHome:       {"browserhome", "BrowserHome"},
	KeyVolumeMute:        {"volumemute", "Mute"},
	KeyVolumeDown:        {"volumedown", "VolumeDown"},
	KeyVolumeUp:          {"volumeup", "VolumeUp"},
	KeyMediaNextTrack:    {"medianext", "NextTrack"},
	KeyMediaPrevTrack:    {"mediaprev", "PrevTrack"},
	KeyMediaStop:         {"mediastop", "MediaStop"},
	KeyMediaPlayPause:    {"mediaplaypause", "PlayPause"},
	KeyLaunchMail:        {"launchmail", "Mail"},
	KeyLaunchMediaSelect: {"launchmedia", "Media"},
	KeyLaunchApp1:        {"launchapp1", "App1"},
	KeyLaunchApp2:        {"launchapp2", "App2"},
	KeySemicolon:         {";", ";"},
	KeyPlus:              {"=", "="},
	KeyComma:             {",", ","},
	KeyMinus:             {"-", "-"},
	KeyPeriod:            {".", "."},
	KeySlash:             {"/", "/"},
	KeyTilde:             {"`", "`"},
	KeyLeftBracket:       {"[", "["},
	KeyBackslash:         {"\\", "\\"},
	KeyRightBracket:      {"]", "]"},
	KeyQuote:             {"'", "'"},
	KeyOEM8:              {"oem8", "OEM8"},
	KeyOEM102:            {"oem102", "OEM102"},
	KeyProcessKey:        {"processkey", "Process"},
	KeyPacket:            {"packet", "Packet"},
	KeyAttn:              {"attn", "Attn"},
	KeyCrSel:             {"crsel", "CrSel"},
	KeyExSel:             {"exsel", "ExSel"},
	KeyEraseEOF:          {"ereof", "EraseEOF"},
	KeyPlay:              {"play", "Play"},
	KeyZoom:              {"zoom", "Zoom"},
	KeyPA1:               {"pa1", "PA1"},
	KeyOEMClear:          {"oemclear", "OEMClear"},
}

// keyNameMap maps source names to key codes. Built from keyTable plus aliases.
var keyNameMap = func() map[string]KeyCode {
	m := make(map[string]KeyCode, int(keyCodeCount)+16)
	for code := KeyCode(1); code < keyCodeCount; code++ {
		if name := keyTable[code].name; name != "" {
			m[name] = code
		}
	}
	for alias, code := range map[string]KeyCode{
		"super":     KeyPlatform,
		"win":       KeyPlatform,
		"control":   KeyControl,
		"esc":       KeyEscape,
		"return":    KeyEnter,
		"del":       KeyDelete,
		"pgup":      KeyPageUp,
		"pgdn":      KeyPageDown,
		"backquote": KeyTilde,
	} {
		m[alias] = code
	}
	return m
}()

// ParseKeyCode parses a key name as written in keystroke source strings.
// Single-character names are matched exactly, longer names are
// case-insensitive.
func ParseKeyCode(name string) (KeyCode, error) {
	lookup := name
	if len(name) > 1 {
		lookup = strings.ToLower(name)
	}
	if code, ok := keyNameMap[lookup]; ok {
		return code, nil
	}
	return KeyUnknown, fmt.Errorf("%w: %q", ErrInvalidKeyName, name)
}

// Base returns the key with its position stripped.
func (k KeyCode) Base() KeyCode {
	return k & baseMask
}

// Position returns the key's position. Non-positional keys report PositionAny.
func (k KeyCode) Position() KeyPosition {
	return KeyPosition((k >> positionShift) & 0x3)
}

// IsPositional reports whether the key exists as left/right variants.
func (k KeyCode) IsPositional() bool {
	switch k.Base() {
	case KeyShift, KeyControl, KeyAlt, KeyPlatform:
		return true
	}
	return false
}

// At returns the key at the given position. Keys that are not positional
// are returned unchanged.
func (k KeyCode) At(pos KeyPosition) KeyCode {
	if !k.IsPositional() {
		return k
	}
	return k.Base() | KeyCode(pos)<<positionShift
}

// Equal reports whether two key codes match. Positional keys compare their
// positions with KeyPosition.Equal, so Shift equals LeftShift and
// RightShift but LeftShift does not equal RightShift.
func (k KeyCode) Equal(other KeyCode) bool {
	if k.Base() != other.Base() {
		return false
	}
	return k.Position().Equal(other.Position())
}

// IsModifier reports whether the key is one of the modifier keys.
func (k KeyCode) IsModifier() bool {
	return k.IsPositional() || k.Base() == KeyFunction
}

// IsLetter reports whether the key is A through Z.
func (k KeyCode) IsLetter() bool {
	b := k.Base()
	return b >= KeyA && b <= KeyZ
}

// IsDigit reports whether the key is on the digit row.
func (k KeyCode) IsDigit() bool {
	b := k.Base()
	return b >= KeyDigit0 && b <= KeyDigit9
}

// IsFunctionKey reports whether the key is F1 through F24.
func (k KeyCode) IsFunctionKey() bool {
	b := k.Base()
	return b >= KeyF1 && b <= KeyF24
}

// IsArrowKey reports whether the key is an arrow key.
func (k KeyCode) IsArrowKey() bool {
	switch k.Base() {
	case KeyLeft, KeyUp, KeyRight, KeyDown:
		return true
	}
	return false
}

// IsPrintable reports whether pressing the key would normally produce text.
func (k KeyCode) IsPrintable() bool {
	if k.IsFunctionKey() || k.IsArrowKey() {
		return false
	}
	switch k.Base() {
	case KeyBackspace, KeyDelete, KeyPageUp, KeyPageDown, KeyInsert,
		KeyHome, KeyEnd, KeyBrowserBack, KeyBrowserForward, KeyEscape:
		return false
	}
	return true
}

// Name returns the canonical source name of the key ("a", "enter", "f5", ";").
func (k KeyCode) Name() string {
	b := k.Base()
	if b >= keyCodeCount {
		return ""
	}
	return keyTable[b].name
}

// Label returns a human-readable label for the key ("A", "Enter", "F5").
func (k KeyCode) Label() string {
	b := k.Base()
	if b >= keyCodeCount {
		return keyTable[KeyUnknown].label
	}
	return keyTable[b].label
}

// String returns the label, prefixed with the position for sided keys.
func (k KeyCode) String() string {
	if pos := k.Position(); pos != PositionAny {
		return pos.String() + k.Label()
	}
	return k.Label()
}

// KeyCodes returns every defined key code at PositionAny, excluding KeyUnknown.
func KeyCodes() []KeyCode {
	codes := make([]KeyCode, 0, keyCodeCount-1)
	for code := KeyCode(1); code < keyCodeCount; code++ {
		codes = append(codes, code)
	}
	return codes
}
