package keymap

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/keychord/internal/input/key"
)

// Keymap is an ordered table of bindings. Bindings added later take
// precedence over earlier ones.
type Keymap struct {
	mu sync.RWMutex

	// Name identifies the keymap in logs.
	Name string

	bindings   []*KeyBinding
	generation uuid.UUID
}

// NewKeymap creates an empty keymap with a fresh generation id.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:       name,
		bindings:   make([]*KeyBinding, 0),
		generation: uuid.New(),
	}
}

// Generation identifies this build of the keymap. It changes whenever the
// binding table changes.
func (k *Keymap) Generation() uuid.UUID {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.generation
}

// Add appends bindings.
func (k *Keymap) Add(bindings ...*KeyBinding) *Keymap {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.bindings = append(k.bindings, bindings...)
	k.generation = uuid.New()
	return k
}

// Extend layers other on top of k: other's bindings are cloned and
// appended, so they take precedence.
func (k *Keymap) Extend(other *Keymap) *Keymap {
	if other == nil || other == k {
		return k
	}
	layer := other.Bindings()
	clones := make([]*KeyBinding, len(layer))
	for i, b := range layer {
		clones[i] = b.Clone()
	}
	return k.Add(clones...)
}

// Clone returns a deep copy with a new generation id.
func (k *Keymap) Clone() *Keymap {
	clone := NewKeymap(k.Name)
	return clone.Extend(k)
}

// Bindings returns a snapshot of the bindings in table order.
func (k *Keymap) Bindings() []*KeyBinding {
	k.mu.RLock()
	defer k.mu.RUnlock()
	out := make([]*KeyBinding, len(k.bindings))
	copy(out, k.bindings)
	return out
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.bindings)
}

// BindingsForAction returns the bindings for the named action, highest
// precedence first.
func (k *Keymap) BindingsForAction(name string) []*KeyBinding {
	k.mu.RLock()
	defer k.mu.RUnlock()

	var out []*KeyBinding
	for i := len(k.bindings) - 1; i >= 0; i-- {
		if b := k.bindings[i]; b.action.Name() == name {
			out = append(out, b)
		}
	}
	return out
}

// BindingsForInput returns the bindings fully matched by typed in ctx,
// highest precedence first, and whether some binding matched typed only
// partially. A NoActionName binding hides earlier bindings of the same
// chord, both as full and as partial matches, and is not returned.
func (k *Keymap) BindingsForInput(typed []key.Keystroke, ctx *Context, opts MatchOptions) ([]*KeyBinding, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	var (
		matches  []*KeyBinding
		disabled []*KeyBinding
		pending  bool
	)
	for i := len(k.bindings) - 1; i >= 0; i-- {
		b := k.bindings[i]
		if !b.predicate.Eval(ctx) {
			continue
		}
		result := b.match(typed, opts)
		if result == NoMatch || isDisabled(b, disabled) {
			continue
		}
		if IsNoAction(b.action) {
			disabled = append(disabled, b)
			continue
		}
		switch result {
		case PartialMatch:
			pending = true
		case FullMatch:
			matches = append(matches, b)
		}
	}
	return matches, pending
}

func isDisabled(b *KeyBinding, disabled []*KeyBinding) bool {
	for _, d := range disabled {
		if sameChord(b.keystrokes, d.keystrokes) {
			return true
		}
	}
	return false
}

func sameChord(a, b []key.Keystroke) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Modifiers != b[i].Modifiers || !a[i].Key.Equal(b[i].Key) {
			return false
		}
	}
	return true
}
