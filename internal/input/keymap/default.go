package keymap

import (
	"strings"

	"github.com/dshills/keychord/internal/input/key"
)

// Default action names.
const (
	ActionSave           = "file.save"
	ActionUndo           = "edit.undo"
	ActionRedo           = "edit.redo"
	ActionCopy           = "edit.copy"
	ActionCut            = "edit.cut"
	ActionPaste          = "edit.paste"
	ActionSelectAll      = "edit.select_all"
	ActionCommentLine    = "editor.toggle_comment"
	ActionCloseTab       = "pane.close_tab"
	ActionCloseWindow    = "workspace.close_window"
	ActionCommandPalette = "command_palette.toggle"
	ActionMenuCancel     = "menu.cancel"
	ActionMenuConfirm    = "menu.confirm"
	ActionMenuNext       = "menu.select_next"
	ActionMenuPrev       = "menu.select_prev"
)

// DefaultActions returns a registry with every action the default keymap
// uses registered as a NamedAction.
func DefaultActions() *ActionRegistry {
	r := NewActionRegistry()
	r.RegisterNamed(
		ActionSave, ActionUndo, ActionRedo, ActionCopy, ActionCut,
		ActionPaste, ActionSelectAll, ActionCommentLine, ActionCloseTab,
		ActionCloseWindow, ActionCommandPalette, ActionMenuCancel,
		ActionMenuConfirm, ActionMenuNext, ActionMenuPrev,
	)
	return r
}

// DefaultKeymap returns the built-in bindings. The platform style selects
// the accelerator: cmd on macOS, ctrl elsewhere.
func DefaultKeymap(style key.PlatformStyle) *Keymap {
	mod := "ctrl"
	if style == key.PlatformMac {
		mod = "cmd"
	}
	bind := func(keys, action, context string) *KeyBinding {
		return MustNew(expandSecondary(keys, mod), NewAction(action, nil), context)
	}

	return NewKeymap("default").Add(
		bind("secondary-s", ActionSave, ""),
		bind("secondary-z", ActionUndo, ""),
		bind("secondary-shift-z", ActionRedo, ""),
		bind("secondary-c", ActionCopy, ""),
		bind("secondary-x", ActionCut, ""),
		bind("secondary-v", ActionPaste, ""),
		bind("secondary-a", ActionSelectAll, "Editor"),
		bind("secondary-shift-p", ActionCommandPalette, ""),
		bind("ctrl-k ctrl-c", ActionCloseTab, ""),
		bind("ctrl-k ctrl-w", ActionCloseWindow, ""),
		bind("secondary-/", ActionCommentLine, "Editor && mode != insert"),
		bind("escape", ActionMenuCancel, "menu"),
		bind("enter", ActionMenuConfirm, "menu"),
		bind("down", ActionMenuNext, "menu"),
		bind("up", ActionMenuPrev, "menu"),
	)
}

// expandSecondary substitutes the platform accelerator for the
// "secondary" placeholder.
func expandSecondary(keys, mod string) string {
	return strings.ReplaceAll(keys, "secondary", mod)
}
