// Package config loads keychord's application configuration.
//
// Settings come from a TOML file and KEYCHORD_* environment variables,
// layered in that order over built-in defaults:
//
//	[keyboard]
//	layout = "de"              # layout id, see layout.IDs
//	platform = "auto"          # mac, linux, windows or auto
//	command_layout = false     # letters always resolve to QWERTY keys
//
//	[keymap]
//	paths = ["~/.config/keychord/keymap.toml"]
//	scripts = ["bindings.lua"]
//	watch = true
//	pending_timeout = "1s"     # 0 disables chord timeouts
//	ime_fallback = false
//
//	[log]
//	level = "info"
//	format = "text"
//	file = ""
//
// Relative keymap and script paths are resolved against the directory of
// the config file. A missing config file is not an error.
package config
