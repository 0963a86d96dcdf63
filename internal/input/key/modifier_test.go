package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModifiersModified(t *testing.T) {
	assert.False(t, NoModifiers.Modified())
	assert.True(t, NoModifiers.IsEmpty())
	assert.True(t, ShiftModifiers.Modified())
	assert.True(t, Modifiers{Function: true}.Modified())
}

func TestModifiersSecondary(t *testing.T) {
	tests := []struct {
		style PlatformStyle
		mods  Modifiers
		want  bool
	}{
		{PlatformMac, CommandModifiers, true},
		{PlatformMac, ControlModifiers, false},
		{PlatformLinux, ControlModifiers, true},
		{PlatformLinux, SuperModifiers, false},
		{PlatformWindows, ControlModifiers, true},
		{PlatformWindows, WindowsModifiers, false},
	}

	for _, tt := range tests {
		t.Run(tt.style.String()+"/"+tt.mods.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mods.Secondary(tt.style))
		})
	}

	assert.Equal(t, CommandModifiers, SecondaryModifiers(PlatformMac))
	assert.Equal(t, ControlModifiers, SecondaryModifiers(PlatformWindows))
	assert.Equal(t, ControlModifiers, SecondaryModifiers(PlatformLinux))
}

func TestModifiersNumberOfModifiers(t *testing.T) {
	assert.Equal(t, 0, NoModifiers.NumberOfModifiers())
	assert.Equal(t, 2, CommandShiftModifiers.NumberOfModifiers())
	assert.Equal(t, 5, Modifiers{true, true, true, true, true}.NumberOfModifiers())
}

func TestModifiersIsSubsetOf(t *testing.T) {
	tests := []struct {
		name string
		a, b Modifiers
		want bool
	}{
		{"empty of empty", NoModifiers, NoModifiers, true},
		{"empty of any", NoModifiers, ControlShiftModifiers, true},
		{"ctrl of ctrl-shift", ControlModifiers, ControlShiftModifiers, true},
		{"ctrl-shift of ctrl", ControlShiftModifiers, ControlModifiers, false},
		{"alt of ctrl", AltModifiers, ControlModifiers, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.IsSubsetOf(tt.b))
		})
	}
}

func TestModifiersXtermCode(t *testing.T) {
	tests := []struct {
		mods Modifiers
		want int
	}{
		{NoModifiers, 1},
		{ShiftModifiers, 2},
		{AltModifiers, 3},
		{Modifiers{Shift: true, Alt: true}, 4},
		{ControlModifiers, 5},
		{ControlShiftModifiers, 6},
		{Modifiers{Control: true, Alt: true}, 7},
		{Modifiers{Control: true, Alt: true, Shift: true}, 8},
		// Platform and Fn are not encoded.
		{CommandModifiers, 1},
	}

	for _, tt := range tests {
		t.Run(tt.mods.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mods.XtermCode())
		})
	}
}

func TestModifiersString(t *testing.T) {
	assert.Equal(t, "", NoModifiers.String())
	assert.Equal(t, "ctrl-shift", ControlShiftModifiers.String())
	assert.Equal(t, "ctrl-alt-cmd-shift-fn", Modifiers{true, true, true, true, true}.String())
}

func TestModifierFromName(t *testing.T) {
	for _, name := range []string{"cmd", "super", "win"} {
		m, ok := ModifierFromName(name)
		assert.True(t, ok)
		assert.Equal(t, CommandModifiers, m)
	}
	_, ok := ModifierFromName("control")
	assert.False(t, ok)
}

func TestParsePlatformStyle(t *testing.T) {
	tests := []struct {
		input string
		want  PlatformStyle
	}{
		{"mac", PlatformMac},
		{"MacOS", PlatformMac},
		{"linux", PlatformLinux},
		{"windows", PlatformWindows},
		{"", CurrentPlatformStyle()},
		{"auto", CurrentPlatformStyle()},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePlatformStyle(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParsePlatformStyle("beos")
	assert.Error(t, err)
}
