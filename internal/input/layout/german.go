package layout

import "github.com/dshills/keychord/internal/input/key"

// German is the German QWERTZ layout. Keys are named by the code the
// platform reports for them, so the punctuation slots follow the Windows
// German VK assignments (the ß key is KeyLeftBracket, ü is KeySemicolon).
// The Alt column holds the AltGr characters.
var German = &Layout{
	ID:         "de",
	Aliases:    []string{"com.apple.keylayout.German", "00000407"},
	Name:       "German",
	Geometry:   GeometryISO,
	ThirdLevel: key.Modifiers{Control: true, Alt: true},
	Keys: map[key.KeyCode]Chars{
		key.KeyDigit0:       {"0", "=", "}", ""},
		key.KeyDigit1:       {"1", "!", "", ""},
		key.KeyDigit2:       {"2", "\"", "²", ""},
		key.KeyDigit3:       {"3", "§", "³", ""},
		key.KeyDigit4:       {"4", "$", "", ""},
		key.KeyDigit5:       {"5", "%", "", ""},
		key.KeyDigit6:       {"6", "&", "", ""},
		key.KeyDigit7:       {"7", "/", "{", ""},
		key.KeyDigit8:       {"8", "(", "[", ""},
		key.KeyDigit9:       {"9", ")", "]", ""},
		key.KeySemicolon:    {"ü", "Ü", "", ""},
		key.KeyPlus:         {"+", "*", "~", ""},
		key.KeyComma:        {",", ";", "", ""},
		key.KeyMinus:        {"-", "_", "", ""},
		key.KeyPeriod:       {".", ":", "", ""},
		key.KeySlash:        {"#", "'", "", ""},
		key.KeyTilde:        {"ö", "Ö", "", ""},
		key.KeyLeftBracket:  {"ß", "?", "\\", ""},
		key.KeyBackslash:    {"^", "°", "", ""},
		key.KeyRightBracket: {"´", "`", "", ""},
		key.KeyQuote:        {"ä", "Ä", "", ""},
		key.KeyOEM102:       {"<", ">", "|", ""},
		key.KeyA:            {"a", "A", "", ""},
		key.KeyB:            {"b", "B", "", ""},
		key.KeyC:            {"c", "C", "", ""},
		key.KeyD:            {"d", "D", "", ""},
		key.KeyE:            {"e", "E", "€", ""},
		key.KeyF:            {"f", "F", "", ""},
		key.KeyG:            {"g", "G", "", ""},
		key.KeyH:            {"h", "H", "", ""},
		key.KeyI:            {"i", "I", "", ""},
		key.KeyJ:            {"j", "J", "", ""},
		key.KeyK:            {"k", "K", "", ""},
		key.KeyL:            {"l", "L", "", ""},
		key.KeyM:            {"m", "M", "µ", ""},
		key.KeyN:            {"n", "N", "", ""},
		key.KeyO:            {"o", "O", "", ""},
		key.KeyP:            {"p", "P", "", ""},
		key.KeyQ:            {"q", "Q", "@", ""},
		key.KeyR:            {"r", "R", "", ""},
		key.KeyS:            {"s", "S", "", ""},
		key.KeyT:            {"t", "T", "", ""},
		key.KeyU:            {"u", "U", "", ""},
		key.KeyV:            {"v", "V", "", ""},
		key.KeyW:            {"w", "W", "", ""},
		key.KeyX:            {"x", "X", "", ""},
		key.KeyY:            {"y", "Y", "", ""},
		key.KeyZ:            {"z", "Z", "", ""},
	},
	DeadKeys: map[string]bool{
		"^": true,
		"´": true,
		"`": true,
	},
	KeyEquivalents: map[rune]rune{
		'"':  '`',
		'#':  '§',
		'&':  '/',
		'(':  ')',
		')':  '=',
		'*':  '(',
		'/':  'ß',
		':':  'Ü',
		';':  'ü',
		'<':  ';',
		'=':  '*',
		'>':  ':',
		'@':  '"',
		'[':  'ö',
		'\'': '´',
		'\\': '#',
		']':  'ä',
		'^':  '&',
		'`':  '<',
		'{':  'Ö',
		'|':  '\'',
		'}':  'Ä',
	},
}
