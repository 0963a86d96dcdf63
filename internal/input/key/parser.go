package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parsing errors.
var (
	// ErrInvalidKeyName is returned when a key token names no known key.
	ErrInvalidKeyName = errors.New("invalid key name")

	// ErrInvalidKeystroke is returned for malformed keystroke source strings.
	ErrInvalidKeystroke = errors.New("invalid keystroke")
)

// KeystrokeError describes a keystroke source string that failed to parse.
type KeystrokeError struct {
	// Source is the full source string.
	Source string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *KeystrokeError) Error() string {
	if e.Err == nil || errors.Is(e.Err, ErrInvalidKeystroke) {
		return fmt.Sprintf("invalid keystroke %q", e.Source)
	}
	return fmt.Sprintf("invalid keystroke %q: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause.
func (e *KeystrokeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidKeystroke, so every
// KeystrokeError matches it regardless of cause.
func (e *KeystrokeError) Is(target error) bool {
	return target == ErrInvalidKeystroke
}

// KeyResolver resolves a key token against a keyboard layout. It returns
// the key code and any modifiers needed to produce the token, or false
// when the layout has no opinion and the layout-independent name table
// should be used instead.
type KeyResolver interface {
	ResolveKey(token string, charMatching bool) (KeyCode, Modifiers, bool)
}

// ParseOptions adjusts how keystroke source strings are interpreted.
type ParseOptions struct {
	// KeyEquivalents remaps single-character key tokens before lookup,
	// used for layouts that move shortcuts to other physical keys.
	KeyEquivalents map[rune]rune

	// Resolver, when set, is consulted before the name table.
	Resolver KeyResolver

	// CharMatching asks the resolver to match tokens by the character they
	// produce instead of by physical position.
	CharMatching bool
}

// ParseKeystroke parses a keystroke source string such as "ctrl-shift-p",
// "ctrl--" or "alt-s->ß".
func ParseKeystroke(source string) (Keystroke, error) {
	return ParseWith(source, ParseOptions{})
}

// MustParse parses a keystroke and panics on error.
// Only use with known-valid strings.
func MustParse(source string) Keystroke {
	k, err := ParseKeystroke(source)
	if err != nil {
		panic(err)
	}
	return k
}

// ParseWith parses a keystroke source string with the given options.
func ParseWith(source string, opts ParseOptions) (Keystroke, error) {
	var (
		mods    Modifiers
		code    KeyCode
		hasKey  bool
		keyChar string
	)
	if source == "" {
		return Keystroke{}, &KeystrokeError{Source: source, Err: ErrInvalidKeystroke}
	}

	components := strings.Split(source, "-")
	for i := 0; i < len(components); i++ {
		if hasKey {
			return Keystroke{}, &KeystrokeError{Source: source, Err: ErrInvalidKeystroke}
		}
		component := components[i]
		if m, ok := ModifierFromName(component); ok {
			mods = mods.Union(m)
			continue
		}

		token := component
		if i+1 < len(components) {
			next := components[i+1]
			switch {
			case component == "" && next == "" && i+2 < len(components) && isIMESuffix(components[i+2]):
				token, keyChar = "-", components[i+2][1:]
				i += 2
			case component == "" && next == "" && strings.HasSuffix(source, "-"):
				token = "-"
				i = len(components)
			case isIMESuffix(next):
				keyChar = next[1:]
				i++
			default:
				return Keystroke{}, &KeystrokeError{Source: source, Err: ErrInvalidKeystroke}
			}
		}

		c, extra, err := parseKeyToken(token, opts)
		if err != nil {
			return Keystroke{}, &KeystrokeError{Source: source, Err: err}
		}
		code, hasKey = c, true
		mods = mods.Union(extra)
	}

	if !hasKey {
		switch {
		case mods.Shift:
			code, mods.Shift = KeyShift, false
		case mods.Control:
			code, mods.Control = KeyControl, false
		case mods.Alt:
			code, mods.Alt = KeyAlt, false
		case mods.Platform:
			code, mods.Platform = KeyPlatform.At(PositionLeft), false
		case mods.Function:
			code, mods.Function = KeyFunction, false
		default:
			return Keystroke{}, &KeystrokeError{Source: source, Err: ErrInvalidKeystroke}
		}
	}

	return Keystroke{Modifiers: mods, Key: code, KeyChar: keyChar}, nil
}

// isIMESuffix reports whether a component is a "->text" suffix.
func isIMESuffix(component string) bool {
	return len(component) > 1 && component[0] == '>'
}

// parseKeyToken resolves a single key token, applying key equivalents and
// the layout resolver before falling back to the name table.
func parseKeyToken(token string, opts ParseOptions) (KeyCode, Modifiers, error) {
	if len(opts.KeyEquivalents) > 0 && utf8.RuneCountInString(token) == 1 {
		r, _ := utf8.DecodeRuneInString(token)
		if eq, ok := opts.KeyEquivalents[r]; ok {
			token = string(eq)
		}
	}
	if opts.Resolver != nil {
		if code, mods, ok := opts.Resolver.ResolveKey(token, opts.CharMatching); ok {
			return code, mods, nil
		}
	}
	code, err := ParseKeyCode(token)
	return code, NoModifiers, err
}
