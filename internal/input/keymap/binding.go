package keymap

import (
	"fmt"
	"strings"

	"github.com/dshills/keychord/internal/input/key"
)

// MatchResult is the outcome of matching typed keystrokes against a chord.
type MatchResult uint8

const (
	// NoMatch means the typed keystrokes cannot lead to this binding.
	NoMatch MatchResult = iota

	// PartialMatch means the typed keystrokes are a strict prefix of the
	// chord; more input is needed.
	PartialMatch

	// FullMatch means the typed keystrokes are the whole chord.
	FullMatch
)

// String returns the result name.
func (r MatchResult) String() string {
	switch r {
	case PartialMatch:
		return "partial"
	case FullMatch:
		return "full"
	default:
		return "none"
	}
}

// KeyBinding associates a chord with an action and an optional context
// predicate. The chord is never empty.
type KeyBinding struct {
	action     Action
	keystrokes []key.Keystroke
	predicate  *Predicate
}

// LoadKeyBinding parses a whitespace-separated chord and builds a binding.
// When useKeyEquivalents is set, single-character key tokens are remapped
// through keyEquivalents before lookup. Fails on the first keystroke that
// does not parse.
func LoadKeyBinding(keystrokes string, action Action, predicate *Predicate, keyEquivalents map[rune]rune, useKeyEquivalents bool) (*KeyBinding, error) {
	opts := key.ParseOptions{CharMatching: !useKeyEquivalents}
	if useKeyEquivalents {
		opts.KeyEquivalents = keyEquivalents
	}
	return LoadKeyBindingWith(keystrokes, action, predicate, opts)
}

// LoadKeyBindingWith is LoadKeyBinding with explicit parse options, used
// when a layout mapper resolves key tokens.
func LoadKeyBindingWith(keystrokes string, action Action, predicate *Predicate, opts key.ParseOptions) (*KeyBinding, error) {
	if action == nil {
		return nil, fmt.Errorf("binding %q: nil action", keystrokes)
	}

	seq, err := key.ParseSequenceWith(keystrokes, opts)
	if err != nil {
		return nil, err
	}
	if seq.IsEmpty() {
		return nil, &key.KeystrokeError{Source: keystrokes, Err: key.ErrInvalidKeystroke}
	}

	return &KeyBinding{
		action:     action,
		keystrokes: seq.Keystrokes,
		predicate:  predicate,
	}, nil
}

// New builds a binding from source text and an optional context
// expression.
func New(keystrokes string, action Action, context string) (*KeyBinding, error) {
	var predicate *Predicate
	if context != "" {
		p, err := ParsePredicate(context)
		if err != nil {
			return nil, err
		}
		predicate = p
	}
	return LoadKeyBinding(keystrokes, action, predicate, nil, false)
}

// MustNew is New for compile-time-constant bindings. It panics on error.
func MustNew(keystrokes string, action Action, context string) *KeyBinding {
	b, err := New(keystrokes, action, context)
	if err != nil {
		panic(err)
	}
	return b
}

// MatchKeystrokes matches typed keystrokes, oldest first, against the
// chord. Each typed keystroke must match the chord keystroke at the same
// position under key.Keystroke.ShouldMatch.
func (b *KeyBinding) MatchKeystrokes(typed []key.Keystroke) MatchResult {
	return b.match(typed, MatchOptions{})
}

func (b *KeyBinding) match(typed []key.Keystroke, opts MatchOptions) MatchResult {
	if len(typed) > len(b.keystrokes) {
		return NoMatch
	}
	for i, ks := range typed {
		target := b.keystrokes[i]
		if ks.ShouldMatch(target) {
			continue
		}
		if opts.IMEFallback && ks.MatchesText(target) {
			continue
		}
		return NoMatch
	}
	if len(b.keystrokes) > len(typed) {
		return PartialMatch
	}
	return FullMatch
}

// Keystrokes returns the chord. The slice must not be modified.
func (b *KeyBinding) Keystrokes() []key.Keystroke {
	return b.keystrokes
}

// Sequence returns a copy of the chord as a key.Sequence.
func (b *KeyBinding) Sequence() *key.Sequence {
	return key.NewSequenceFrom(b.keystrokes...).Clone()
}

// Action returns the bound action.
func (b *KeyBinding) Action() Action {
	return b.action
}

// Predicate returns the context predicate, or nil if the binding applies
// in every context.
func (b *KeyBinding) Predicate() *Predicate {
	return b.predicate
}

// Clone deep-copies the action and shares the predicate.
func (b *KeyBinding) Clone() *KeyBinding {
	keystrokes := make([]key.Keystroke, len(b.keystrokes))
	copy(keystrokes, b.keystrokes)
	return &KeyBinding{
		action:     b.action.Clone(),
		keystrokes: keystrokes,
		predicate:  b.predicate,
	}
}

// String returns the chord, action and predicate in a readable form.
func (b *KeyBinding) String() string {
	var sb strings.Builder
	sb.WriteString(key.NewSequenceFrom(b.keystrokes...).String())
	sb.WriteString(" -> ")
	sb.WriteString(b.action.Name())
	if b.predicate != nil {
		sb.WriteString(" [")
		sb.WriteString(b.predicate.String())
		sb.WriteString("]")
	}
	return sb.String()
}
