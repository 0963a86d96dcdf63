package layout

import "github.com/dshills/keychord/internal/input/key"

// US is the US English layout. The Alt column holds the macOS Option
// characters.
var US = &Layout{
	ID:         "us",
	Aliases:    []string{"com.apple.keylayout.ABC", "com.apple.keylayout.US", "00000409"},
	Name:       "U.S.",
	Geometry:   GeometryANSI,
	ThirdLevel: key.AltModifiers,
	Keys: map[key.KeyCode]Chars{
		key.KeyDigit0:       {"0", ")", "º", "‚"},
		key.KeyDigit1:       {"1", "!", "¡", "⁄"},
		key.KeyDigit2:       {"2", "@", "™", "€"},
		key.KeyDigit3:       {"3", "#", "£", "‹"},
		key.KeyDigit4:       {"4", "$", "¢", "›"},
		key.KeyDigit5:       {"5", "%", "∞", "ﬁ"},
		key.KeyDigit6:       {"6", "^", "§", "ﬂ"},
		key.KeyDigit7:       {"7", "&", "¶", "‡"},
		key.KeyDigit8:       {"8", "*", "•", "°"},
		key.KeyDigit9:       {"9", "(", "ª", "·"},
		key.KeySemicolon:    {";", ":", "…", "Ú"},
		key.KeyPlus:         {"=", "+", "≠", "±"},
		key.KeyComma:        {",", "<", "≤", "¯"},
		key.KeyMinus:        {"-", "_", "–", "—"},
		key.KeyPeriod:       {".", ">", "≥", "˘"},
		key.KeySlash:        {"/", "?", "÷", "¿"},
		key.KeyTilde:        {"`", "~", "", "`"},
		key.KeyLeftBracket:  {"[", "{", "“", "”"},
		key.KeyBackslash:    {"\\", "|", "«", "»"},
		key.KeyRightBracket: {"]", "}", "‘", "’"},
		key.KeyQuote:        {"'", "\"", "æ", "Æ"},
		key.KeyA:            {"a", "A", "å", "Å"},
		key.KeyB:            {"b", "B", "∫", "ı"},
		key.KeyC:            {"c", "C", "ç", "Ç"},
		key.KeyD:            {"d", "D", "∂", "Î"},
		key.KeyE:            {"e", "E", "´", "´"},
		key.KeyF:            {"f", "F", "ƒ", "Ï"},
		key.KeyG:            {"g", "G", "©", "˝"},
		key.KeyH:            {"h", "H", "˙", "Ó"},
		key.KeyI:            {"i", "I", "ˆ", "ˆ"},
		key.KeyJ:            {"j", "J", "∆", "Ô"},
		key.KeyK:            {"k", "K", "˚", ""},
		key.KeyL:            {"l", "L", "¬", "Ò"},
		key.KeyM:            {"m", "M", "µ", "Â"},
		key.KeyN:            {"n", "N", "˜", "˜"},
		key.KeyO:            {"o", "O", "ø", "Ø"},
		key.KeyP:            {"p", "P", "π", "∏"},
		key.KeyQ:            {"q", "Q", "œ", "Œ"},
		key.KeyR:            {"r", "R", "®", "‰"},
		key.KeyS:            {"s", "S", "ß", "Í"},
		key.KeyT:            {"t", "T", "†", "ˇ"},
		key.KeyU:            {"u", "U", "¨", "¨"},
		key.KeyV:            {"v", "V", "√", "◊"},
		key.KeyW:            {"w", "W", "∑", "„"},
		key.KeyX:            {"x", "X", "≈", "˛"},
		key.KeyY:            {"y", "Y", "¥", "Á"},
		key.KeyZ:            {"z", "Z", "Ω", "¸"},
	},
	DeadKeys: map[string]bool{
		"´": true,
		"ˆ": true,
		"˜": true,
		"¨": true,
	},
}
