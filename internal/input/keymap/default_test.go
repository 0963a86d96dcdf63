package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keychord/internal/input/key"
)

func TestDefaultKeymap(t *testing.T) {
	tests := []struct {
		style key.PlatformStyle
		save  string
	}{
		{key.PlatformMac, "cmd-s"},
		{key.PlatformLinux, "ctrl-s"},
		{key.PlatformWindows, "ctrl-s"},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			km := DefaultKeymap(tt.style)
			d := NewDispatcher(km)
			res := d.Dispatch(key.MustParse(tt.save), nil)
			require.Len(t, res.Fired, 1)
			assert.Equal(t, ActionSave, res.Fired[0].Binding.Action().Name())
		})
	}
}

func TestDefaultKeymapActionsRegistered(t *testing.T) {
	actions := DefaultActions()
	for _, b := range DefaultKeymap(key.PlatformLinux).Bindings() {
		assert.True(t, actions.Has(b.Action().Name()), b.String())
	}
}

func TestDefaultKeymapMenuContext(t *testing.T) {
	d := NewDispatcher(DefaultKeymap(key.PlatformLinux))

	res := d.Dispatch(key.MustParse("escape"), NewContext("menu"))
	require.Len(t, res.Fired, 1)
	assert.Equal(t, ActionMenuCancel, res.Fired[0].Binding.Action().Name())

	res = d.Dispatch(key.MustParse("escape"), NewContext("Editor"))
	assert.Empty(t, res.Fired)
}
