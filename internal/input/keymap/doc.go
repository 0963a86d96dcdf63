// Package keymap binds key chords to actions and resolves typed input
// against them.
//
// # Key Concepts
//
// KeyBinding: a chord (one or more keystrokes), an Action, and an optional
// context Predicate. MatchKeystrokes compares typed keystrokes against the
// chord and reports NoMatch, PartialMatch or FullMatch.
//
// Keymap: an ordered binding table. Later bindings take precedence, so a
// user layer added with Extend overrides the defaults beneath it.
//
// Dispatcher: buffers keystrokes while a chord is partially matched and
// fires the binding once the chord completes.
//
// # Binding Precedence
//
// When several bindings fully match the typed keystrokes in a context, the
// one added last wins. A binding to the reserved "none" action hides
// earlier bindings of the same chord.
//
// # Context Predicates
//
//	binding := keymap.MustNew("ctrl-/", keymap.NewAction("editor.toggle_comment", nil),
//	    "Editor && mode != insert")
//
// # Keymap Files
//
// Keymap files are TOML, YAML or JSON. Each section carries a context and
// an ordered list of bindings:
//
//	[[section]]
//	context = "Editor"
//	use_key_equivalents = true
//
//	[[section.bindings]]
//	keys = "ctrl-k ctrl-c"
//	action = "pane.close_tab"
//
// Entries that fail to parse, or name an unregistered action, are logged
// and skipped; the rest of the file still loads.
//
// # Usage
//
//	loader := keymap.NewLoader(keymap.DefaultActions())
//	user, _, err := loader.LoadFile("keymap.toml")
//	km := keymap.DefaultKeymap(key.CurrentPlatformStyle()).Extend(user)
//
//	d := keymap.NewDispatcher(km)
//	res := d.Dispatch(key.MustParse("ctrl-k"), keymap.NewContext("Editor"))
//	if res.Pending {
//	    // Wait for the rest of the chord
//	}
package keymap
