package layout

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/keychord/internal/input/key"
)

// Registry errors.
var (
	// ErrDuplicateLayout is returned when registering an id twice.
	ErrDuplicateLayout = errors.New("layout already registered")

	// ErrInvalidLayout is returned for layouts without an id or keys.
	ErrInvalidLayout = errors.New("invalid layout")
)

// Geometry is the physical keyboard shape.
type Geometry uint8

const (
	// GeometryANSI is the US-style board with a wide left shift.
	GeometryANSI Geometry = iota

	// GeometryISO has the extra key next to left shift.
	GeometryISO
)

// String returns the geometry name.
func (g Geometry) String() string {
	if g == GeometryISO {
		return "iso"
	}
	return "ansi"
}

// Chars holds the characters a key produces on each shift level.
// Empty strings mean the level produces nothing.
type Chars struct {
	Base     string
	Shift    string
	Alt      string
	ShiftAlt string
}

// Layout is a keyboard layout's character table.
type Layout struct {
	// ID is the primary identifier, e.g. "us".
	ID string

	// Aliases are OS-specific identifiers for the same layout, such as
	// "com.apple.keylayout.ABC" or the Windows KLID "00000409".
	Aliases []string

	// Name is a human-readable name.
	Name string

	// Geometry is the physical shape the table was written for.
	Geometry Geometry

	// ThirdLevel is the modifier set that selects the Alt column: Option on
	// macOS layouts, AltGr (ctrl+alt) on Windows layouts.
	ThirdLevel key.Modifiers

	// Keys maps each character-producing key to its characters.
	Keys map[key.KeyCode]Chars

	// DeadKeys lists characters that start a composition instead of
	// producing text.
	DeadKeys map[string]bool

	// KeyEquivalents remaps shortcut characters for bindings written
	// against the US layout.
	KeyEquivalents map[rune]rune
}

// Chars returns the characters for a key.
func (l *Layout) Chars(code key.KeyCode) (Chars, bool) {
	c, ok := l.Keys[code.Base()]
	return c, ok
}

// CharFor returns the character a key produces under the given modifiers.
// Only Shift and the layout's third-level modifiers select a column; any
// other modifier yields no character.
func (l *Layout) CharFor(code key.KeyCode, mods key.Modifiers) (string, bool) {
	c, ok := l.Chars(code)
	if !ok {
		return "", false
	}
	third := l.ThirdLevel.Modified() && l.ThirdLevel.IsSubsetOf(mods)
	rest := mods
	rest.Shift = false
	if third {
		if l.ThirdLevel.Control {
			rest.Control = false
		}
		if l.ThirdLevel.Alt {
			rest.Alt = false
		}
	}
	if rest.Modified() {
		return "", false
	}

	var s string
	switch {
	case third && mods.Shift:
		s = c.ShiftAlt
	case third:
		s = c.Alt
	case mods.Shift:
		s = c.Shift
	default:
		s = c.Base
	}
	return s, s != ""
}

// IsDeadKey reports whether a character is a dead key on this layout.
func (l *Layout) IsDeadKey(s string) bool {
	return l.DeadKeys[s]
}

func (l *Layout) validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLayout)
	}
	if len(l.Keys) == 0 {
		return fmt.Errorf("%w: %s has no keys", ErrInvalidLayout, l.ID)
	}
	return nil
}

// registry holds the known layouts by id and alias.
var registry = struct {
	mu    sync.RWMutex
	byID  map[string]*Layout
	names []string
}{byID: make(map[string]*Layout)}

// Register adds a layout under its id and aliases.
func Register(l *Layout) error {
	if err := l.validate(); err != nil {
		return err
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	ids := append([]string{l.ID}, l.Aliases...)
	for _, id := range ids {
		if _, exists := registry.byID[id]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateLayout, id)
		}
	}
	for _, id := range ids {
		registry.byID[id] = l
	}
	registry.names = append(registry.names, l.ID)
	return nil
}

// MustRegister registers a layout and panics on error.
func MustRegister(l *Layout) {
	if err := Register(l); err != nil {
		panic(err)
	}
}

// Lookup returns the layout registered under an id or alias.
func Lookup(id string) (*Layout, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	l, ok := registry.byID[id]
	return l, ok
}

// IDs returns the primary ids of all registered layouts, sorted.
func IDs() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	ids := make([]string, len(registry.names))
	copy(ids, registry.names)
	sort.Strings(ids)
	return ids
}

func init() {
	MustRegister(US)
	MustRegister(German)
}
