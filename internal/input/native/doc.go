// Package native translates platform key codes into key.KeyCode values.
//
// Three sources are supported:
//
//   - Windows virtual-key codes (FromVirtualKey)
//   - macOS hardware scan codes (FromScanCode)
//   - terminal key events delivered by tcell (FromTcellEvent)
//
// Translation never fails: codes without a mapping become key.KeyUnknown.
// NewKeyDown turns a translated key plus the platform's text into the
// keystroke a keymap matches against.
package native
