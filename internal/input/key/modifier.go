package key

import "strings"

// Modifiers is the set of modifier keys held during a keystroke.
type Modifiers struct {
	// Control is the Control key.
	Control bool

	// Alt is the Alt key (Option on macOS).
	Alt bool

	// Shift is the Shift key.
	Shift bool

	// Platform is Cmd on macOS, Super on Linux and Win on Windows.
	Platform bool

	// Function is the Fn key.
	Function bool
}

// Preset modifier sets.
var (
	NoModifiers           = Modifiers{}
	CommandModifiers      = Modifiers{Platform: true}
	ControlModifiers      = Modifiers{Control: true}
	AltModifiers          = Modifiers{Alt: true}
	ShiftModifiers        = Modifiers{Shift: true}
	CommandShiftModifiers = Modifiers{Platform: true, Shift: true}
	ControlShiftModifiers = Modifiers{Control: true, Shift: true}
	WindowsModifiers      = Modifiers{Platform: true}
	SuperModifiers        = Modifiers{Platform: true}
)

// SecondaryModifiers returns the modifier set holding only the platform's
// primary shortcut modifier: Cmd on macOS, Control elsewhere.
func SecondaryModifiers(style PlatformStyle) Modifiers {
	if style == PlatformMac {
		return CommandModifiers
	}
	return ControlModifiers
}

// Modified reports whether any modifier is held.
func (m Modifiers) Modified() bool {
	return m.Control || m.Alt || m.Shift || m.Platform || m.Function
}

// IsEmpty reports whether no modifier is held.
func (m Modifiers) IsEmpty() bool {
	return !m.Modified()
}

// Secondary reports whether the platform's primary shortcut modifier is held.
func (m Modifiers) Secondary(style PlatformStyle) bool {
	if style == PlatformMac {
		return m.Platform
	}
	return m.Control
}

// NumberOfModifiers counts the held modifiers.
func (m Modifiers) NumberOfModifiers() int {
	n := 0
	for _, held := range [...]bool{m.Control, m.Alt, m.Shift, m.Platform, m.Function} {
		if held {
			n++
		}
	}
	return n
}

// IsSubsetOf reports whether every modifier held in m is also held in other.
func (m Modifiers) IsSubsetOf(other Modifiers) bool {
	return (!m.Control || other.Control) &&
		(!m.Alt || other.Alt) &&
		(!m.Shift || other.Shift) &&
		(!m.Platform || other.Platform) &&
		(!m.Function || other.Function)
}

// Union returns the modifiers held in either set.
func (m Modifiers) Union(other Modifiers) Modifiers {
	return Modifiers{
		Control:  m.Control || other.Control,
		Alt:      m.Alt || other.Alt,
		Shift:    m.Shift || other.Shift,
		Platform: m.Platform || other.Platform,
		Function: m.Function || other.Function,
	}
}

// XtermCode returns the xterm modifier parameter: 1 + shift + 2*alt + 4*ctrl.
func (m Modifiers) XtermCode() int {
	code := 1
	if m.Shift {
		code++
	}
	if m.Alt {
		code += 2
	}
	if m.Control {
		code += 4
	}
	return code
}

// String returns the modifiers in source form, like "ctrl-alt-shift".
// Platform is written as "cmd".
func (m Modifiers) String() string {
	return strings.Join(m.sourceNames(), "-")
}

// sourceNames returns modifier tokens in canonical source order.
func (m Modifiers) sourceNames() []string {
	var parts []string
	if m.Control {
		parts = append(parts, "ctrl")
	}
	if m.Alt {
		parts = append(parts, "alt")
	}
	if m.Platform {
		parts = append(parts, "cmd")
	}
	if m.Shift {
		parts = append(parts, "shift")
	}
	if m.Function {
		parts = append(parts, "fn")
	}
	return parts
}

// modifierNameMap maps modifier tokens to the single-modifier set they name.
var modifierNameMap = map[string]Modifiers{
	"ctrl":  {Control: true},
	"alt":   {Alt: true},
	"shift": {Shift: true},
	"fn":    {Function: true},
	"cmd":   {Platform: true},
	"super": {Platform: true},
	"win":   {Platform: true},
}

// ModifierFromName returns the modifier named by a keystroke token.
func ModifierFromName(name string) (Modifiers, bool) {
	m, ok := modifierNameMap[name]
	return m, ok
}
