package key

import (
	"strings"
)

// Sequence represents a series of keystrokes forming a chord.
// Examples: "ctrl-k ctrl-c", "g g", "ctrl-x ctrl-s"
type Sequence struct {
	// Keystrokes contains the keystrokes in chord order.
	Keystrokes []Keystroke
}

// NewSequence creates an empty key sequence.
func NewSequence() *Sequence {
	return &Sequence{
		Keystrokes: make([]Keystroke, 0, 4), // Most chords are short
	}
}

// NewSequenceFrom creates a sequence from the given keystrokes.
func NewSequenceFrom(keystrokes ...Keystroke) *Sequence {
	return &Sequence{
		Keystrokes: keystrokes,
	}
}

// Len returns the number of keystrokes in the sequence.
func (s *Sequence) Len() int {
	return len(s.Keystrokes)
}

// IsEmpty returns true if the sequence has no keystrokes.
func (s *Sequence) IsEmpty() bool {
	return len(s.Keystrokes) == 0
}

// Add appends a keystroke to the sequence.
func (s *Sequence) Add(k Keystroke) {
	s.Keystrokes = append(s.Keystrokes, k)
}

// Clear removes all keystrokes from the sequence.
func (s *Sequence) Clear() {
	s.Keystrokes = s.Keystrokes[:0]
}

// Last returns the last keystroke, or nil if empty.
func (s *Sequence) Last() *Keystroke {
	if len(s.Keystrokes) == 0 {
		return nil
	}
	return &s.Keystrokes[len(s.Keystrokes)-1]
}

// At returns the keystroke at the given index, or nil if out of bounds.
func (s *Sequence) At(index int) *Keystroke {
	if index < 0 || index >= len(s.Keystrokes) {
		return nil
	}
	return &s.Keystrokes[index]
}

// String returns the source form, keystrokes separated by spaces.
func (s *Sequence) String() string {
	if s == nil || len(s.Keystrokes) == 0 {
		return ""
	}

	parts := make([]string, len(s.Keystrokes))
	for i, k := range s.Keystrokes {
		parts[i] = k.Unparse()
	}
	return strings.Join(parts, " ")
}

// Format renders each keystroke with platform glyphs, separated by spaces.
func (s *Sequence) Format(style PlatformStyle) string {
	if s == nil || len(s.Keystrokes) == 0 {
		return ""
	}

	parts := make([]string, len(s.Keystrokes))
	for i, k := range s.Keystrokes {
		parts[i] = k.Format(style)
	}
	return strings.Join(parts, " ")
}

// Equals returns true if two sequences are identical.
func (s *Sequence) Equals(other *Sequence) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.Keystrokes) != len(other.Keystrokes) {
		return false
	}
	for i, k := range s.Keystrokes {
		if !k.Equal(other.Keystrokes[i]) {
			return false
		}
	}
	return true
}

// HasPrefix returns true if the typed keystrokes in prefix trigger the
// start of this sequence under Keystroke.ShouldMatch.
func (s *Sequence) HasPrefix(prefix *Sequence) bool {
	if prefix == nil || prefix.IsEmpty() {
		return true
	}
	if len(prefix.Keystrokes) > len(s.Keystrokes) {
		return false
	}
	for i, k := range prefix.Keystrokes {
		if !k.ShouldMatch(s.Keystrokes[i]) {
			return false
		}
	}
	return true
}

// Clone returns a copy of the sequence.
func (s *Sequence) Clone() *Sequence {
	if s == nil {
		return nil
	}
	keystrokes := make([]Keystroke, len(s.Keystrokes))
	copy(keystrokes, s.Keystrokes)
	return &Sequence{Keystrokes: keystrokes}
}

// Tail returns a new sequence without the first n keystrokes.
func (s *Sequence) Tail(n int) *Sequence {
	if n < 0 {
		n = 0
	}
	if n >= len(s.Keystrokes) {
		return NewSequence()
	}
	keystrokes := make([]Keystroke, len(s.Keystrokes)-n)
	copy(keystrokes, s.Keystrokes[n:])
	return &Sequence{Keystrokes: keystrokes}
}

// ParseSequence parses a whitespace-separated chord such as "ctrl-k ctrl-c".
func ParseSequence(s string) (*Sequence, error) {
	return ParseSequenceWith(s, ParseOptions{})
}

// ParseSequenceWith parses a whitespace-separated chord with the given options.
func ParseSequenceWith(s string, opts ParseOptions) (*Sequence, error) {
	seq := NewSequence()
	for _, part := range strings.Fields(s) {
		k, err := ParseWith(part, opts)
		if err != nil {
			return nil, err
		}
		seq.Add(k)
	}
	return seq, nil
}

// MustParseSequence parses a sequence string and panics on error.
// Use only for known-valid sequences in initialization code.
func MustParseSequence(s string) *Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return seq
}
