package layout

import (
	"strings"

	"github.com/dshills/keychord/internal/input/key"
)

// PlatformKeyboard renders keys the way the active layout labels them.
type PlatformKeyboard interface {
	// CodeToKey returns the display label for a key.
	CodeToKey(code key.KeyCode) string

	// ToNativeKeystroke fills the keystroke's Label for display.
	ToNativeKeystroke(ks *key.Keystroke)
}

// Keyboard implements PlatformKeyboard over a Manager's active layout.
type Keyboard struct {
	manager *Manager
}

// NewKeyboard creates a keyboard that follows the manager's active layout.
func NewKeyboard(manager *Manager) *Keyboard {
	return &Keyboard{manager: manager}
}

// CodeToKey returns the character the key types on the active layout, or
// the key's label when it types nothing.
func (k *Keyboard) CodeToKey(code key.KeyCode) string {
	if isImmutableKey(code) {
		return code.Label()
	}
	if s, ok := k.manager.Current().CodeToChar(code); ok {
		return s
	}
	return code.Label()
}

// ToNativeKeystroke sets the keystroke's Label to the active layout's
// label for its key. Keys named the same everywhere are left unlabeled.
func (k *Keyboard) ToNativeKeystroke(ks *key.Keystroke) {
	if ks == nil || isImmutableKey(ks.Key) {
		return
	}
	ks.Label = strings.ToUpper(k.CodeToKey(ks.Key))
}
