package layout

import (
	"log/slog"

	"github.com/dshills/keychord/internal/input/key"
)

// Entry is a key plus the modifiers needed to produce a character.
type Entry struct {
	Code      key.KeyCode
	Modifiers key.Modifiers
}

// mappedCodes is the order in which keys are scanned when building the
// character index. The first key producing a character wins.
var mappedCodes = []key.KeyCode{
	key.KeyDigit0, key.KeyDigit1, key.KeyDigit2, key.KeyDigit3, key.KeyDigit4,
	key.KeyDigit5, key.KeyDigit6, key.KeyDigit7, key.KeyDigit8, key.KeyDigit9,
	key.KeySemicolon, key.KeyPlus, key.KeyComma, key.KeyMinus, key.KeyPeriod,
	key.KeySlash, key.KeyTilde, key.KeyLeftBracket, key.KeyBackslash,
	key.KeyRightBracket, key.KeyQuote,
	key.KeyA, key.KeyB, key.KeyC, key.KeyD, key.KeyE, key.KeyF, key.KeyG,
	key.KeyH, key.KeyI, key.KeyJ, key.KeyK, key.KeyL, key.KeyM, key.KeyN,
	key.KeyO, key.KeyP, key.KeyQ, key.KeyR, key.KeyS, key.KeyT, key.KeyU,
	key.KeyV, key.KeyW, key.KeyX, key.KeyY, key.KeyZ,
	key.KeyOEM102, key.KeyOEM8,
}

// usPunctuation maps the US-named digit and punctuation tokens to their
// key slots, independent of the active layout.
var usPunctuation = map[string]key.KeyCode{
	"0": key.KeyDigit0, "1": key.KeyDigit1, "2": key.KeyDigit2,
	"3": key.KeyDigit3, "4": key.KeyDigit4, "5": key.KeyDigit5,
	"6": key.KeyDigit6, "7": key.KeyDigit7, "8": key.KeyDigit8,
	"9": key.KeyDigit9,
	";": key.KeySemicolon, "=": key.KeyPlus, ",": key.KeyComma,
	"-": key.KeyMinus, ".": key.KeyPeriod, "/": key.KeySlash,
	"`": key.KeyTilde, "[": key.KeyLeftBracket, "\\": key.KeyBackslash,
	"]": key.KeyRightBracket, "'": key.KeyQuote,
}

// KeyboardMapper indexes a Layout for lookups in both directions.
type KeyboardMapper struct {
	layout     *Layout
	letter     map[string]key.KeyCode
	other      map[string]Entry
	codeToChar map[key.KeyCode]string
	logger     *slog.Logger
}

// MapperOption configures a KeyboardMapper.
type MapperOption func(*KeyboardMapper)

// WithCommandLayout makes the letters a to z always resolve to their own
// keys, as on layouts that switch to QWERTY while Cmd is held.
func WithCommandLayout(enabled bool) MapperOption {
	return func(m *KeyboardMapper) {
		if !enabled {
			m.letter = map[string]key.KeyCode{}
			return
		}
		for code := key.KeyA; code <= key.KeyZ; code++ {
			m.letter[code.Name()] = code
		}
	}
}

// WithMapperLogger sets the logger used for normalization failures.
func WithMapperLogger(logger *slog.Logger) MapperOption {
	return func(m *KeyboardMapper) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewKeyboardMapper builds the lookup tables for a layout.
func NewKeyboardMapper(l *Layout, opts ...MapperOption) *KeyboardMapper {
	m := &KeyboardMapper{
		layout:     l,
		letter:     make(map[string]key.KeyCode),
		other:      make(map[string]Entry),
		codeToChar: make(map[key.KeyCode]string),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}

	shiftAlt := l.ThirdLevel
	shiftAlt.Shift = true
	for _, code := range mappedCodes {
		chars, ok := l.Chars(code)
		if !ok {
			continue
		}
		if chars.Base != "" {
			m.codeToChar[code] = chars.Base
		}
		m.index(chars.Base, code, key.NoModifiers)
		m.index(chars.Shift, code, key.ShiftModifiers)
		m.index(chars.Alt, code, l.ThirdLevel)
		m.index(chars.ShiftAlt, code, shiftAlt)
	}
	return m
}

func (m *KeyboardMapper) index(s string, code key.KeyCode, mods key.Modifiers) {
	if s == "" || m.layout.IsDeadKey(s) {
		return
	}
	if _, exists := m.other[s]; exists {
		return
	}
	m.other[s] = Entry{Code: code, Modifiers: mods}
}

// Layout returns the layout the mapper was built from.
func (m *KeyboardMapper) Layout() *Layout {
	return m.layout
}

// Parse resolves a binding token. Without char matching, letters resolve
// through the command layout and digits and punctuation resolve to their
// US key slots; anything else is looked up by character. With char
// matching, the token is looked up by the character it produces on this
// layout first.
func (m *KeyboardMapper) Parse(input string, charMatching bool) (key.KeyCode, key.Modifiers, bool) {
	if !charMatching {
		if code, ok := m.letter[input]; ok {
			return code, key.NoModifiers, true
		}
		if code, ok := usPunctuation[input]; ok {
			return code, key.NoModifiers, true
		}
		// Characters with no US slot (key equivalents such as ö) still
		// resolve by what they produce.
		if e, ok := m.other[input]; ok {
			return e.Code, e.Modifiers, true
		}
		return key.KeyUnknown, key.NoModifiers, false
	}
	if e, ok := m.other[input]; ok {
		return e.Code, e.Modifiers, true
	}
	if code, ok := m.letter[input]; ok {
		return code, key.NoModifiers, true
	}
	return key.KeyUnknown, key.NoModifiers, false
}

// ResolveKey implements key.KeyResolver.
func (m *KeyboardMapper) ResolveKey(token string, charMatching bool) (key.KeyCode, key.Modifiers, bool) {
	return m.Parse(token, charMatching)
}

// Lookup returns the key and modifiers that produce a character.
func (m *KeyboardMapper) Lookup(char string) (Entry, bool) {
	e, ok := m.other[char]
	return e, ok
}

// CodeToChar returns the character a key produces without modifiers.
func (m *KeyboardMapper) CodeToChar(code key.KeyCode) (string, bool) {
	s, ok := m.codeToChar[code.Base()]
	return s, ok
}

// CharFor returns the character a key produces under the given modifiers.
func (m *KeyboardMapper) CharFor(code key.KeyCode, mods key.Modifiers) (string, bool) {
	return m.layout.CharFor(code, mods)
}

// ParseOptions returns key parse options that resolve binding tokens
// against this layout.
func (m *KeyboardMapper) ParseOptions(useKeyEquivalents bool) key.ParseOptions {
	opts := key.ParseOptions{Resolver: m, CharMatching: !useKeyEquivalents}
	if useKeyEquivalents {
		opts.KeyEquivalents = m.layout.KeyEquivalents
	}
	return opts
}
