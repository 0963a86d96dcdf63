// Package key provides keystroke types and parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - KeyCode: Identifies a physical or logical key, optionally carrying a
//     left/right position for modifier keys
//   - Modifiers: The set of modifier keys held during a keystroke
//   - Keystroke: A single key press with modifiers and optional IME text
//   - Sequence: A series of keystrokes forming a chord
//
// # Keystroke Source Strings
//
// Keystrokes are written as hyphen-separated components. Modifier names come
// first, the key name comes last:
//
//   - Simple keys: "a", "enter", "f5", ";"
//   - With modifiers: "ctrl-s", "alt-f4", "cmd-shift-p"
//   - The minus key: "ctrl--" (a trailing hyphen names the minus key)
//   - An explicit IME result: "alt-s->ß"
//   - A lone modifier: "shift" (the modifier becomes the key)
//
// "cmd", "super" and "win" all name the platform modifier.
//
// # Matching
//
// Two keystrokes match when their modifiers are exactly equal and their key
// codes are equal. A key code with an unspecified position matches both the
// left and right variants of that key; left never matches right.
package key
