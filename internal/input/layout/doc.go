// Package layout maps keys to the characters a keyboard layout produces and
// back.
//
// A Layout is a static character table keyed by key.KeyCode. A
// KeyboardMapper is built from a Layout and answers three questions:
//
//   - which key (and modifiers) produce a given character
//   - which character a key produces without modifiers
//   - how a layout-dependent keystroke normalizes for vim-style bindings
//
// The Manager caches one KeyboardMapper per layout identifier. Callers
// report layout changes through Manager.Refresh; unknown identifiers fall
// back to the US table instead of failing.
package layout
