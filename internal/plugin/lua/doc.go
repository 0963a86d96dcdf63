// Package lua runs keymap scripts in a sandboxed gopher-lua state.
//
// A script registers bindings through the global keymap table:
//
//	keymap.bind("ctrl-k ctrl-c", "pane.close_tab")
//	keymap.bind("escape", "menu.cancel", "menu")
//	keymap.bind{keys = "ctrl-g", action = "go_to_line", args = {line = 1}}
//	keymap.unbind("ctrl-w", "Terminal")
//
// bind returns true, or nil and a message when the binding is rejected;
// rejected bindings are also reported by LoadScript. Only the base, table,
// string and math libraries are available; scripts cannot load code or
// touch the file system.
package lua
