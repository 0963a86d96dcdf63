package keymap

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownAction is returned when a binding names an action that has not
// been registered.
var ErrUnknownAction = errors.New("unknown action")

// Action is the command a binding triggers.
type Action interface {
	// Name returns the action identifier, e.g. "editor.save".
	Name() string

	// Clone returns a deep copy of the action.
	Clone() Action
}

// NamedAction is an Action identified by name with optional fixed arguments.
type NamedAction struct {
	name string

	// Args are fixed arguments passed to the action handler.
	Args map[string]any
}

// NewAction creates a named action.
func NewAction(name string, args map[string]any) *NamedAction {
	return &NamedAction{name: name, Args: args}
}

// Name returns the action name.
func (a *NamedAction) Name() string {
	return a.name
}

// Clone returns a copy with the arguments deep-copied.
func (a *NamedAction) Clone() Action {
	clone := &NamedAction{name: a.name}
	if a.Args != nil {
		clone.Args = cloneValue(a.Args).(map[string]any)
	}
	return clone
}

// String returns the action name.
func (a *NamedAction) String() string {
	return a.name
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, item := range v {
			m[k] = cloneValue(item)
		}
		return m
	case []any:
		s := make([]any, len(v))
		for i, item := range v {
			s[i] = cloneValue(item)
		}
		return s
	default:
		return v
	}
}

// NoActionName is the reserved action that disables earlier bindings for
// the same keystrokes.
const NoActionName = "none"

// IsNoAction reports whether a is the reserved unbinding action.
func IsNoAction(a Action) bool {
	return a != nil && a.Name() == NoActionName
}

// ActionFactory builds an action from the arguments given in a keymap file.
type ActionFactory func(args map[string]any) (Action, error)

// ActionRegistry maps action names to factories. Keymap loading rejects
// names that are not registered.
type ActionRegistry struct {
	mu        sync.RWMutex
	factories map[string]ActionFactory
}

// NewActionRegistry creates a registry containing only NoActionName.
func NewActionRegistry() *ActionRegistry {
	r := &ActionRegistry{factories: make(map[string]ActionFactory)}
	r.RegisterNamed(NoActionName)
	return r
}

// Register adds or replaces the factory for an action name.
func (r *ActionRegistry) Register(name string, factory ActionFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// RegisterNamed registers plain NamedAction factories for each name.
func (r *ActionRegistry) RegisterNamed(names ...string) {
	for _, name := range names {
		name := name
		r.Register(name, func(args map[string]any) (Action, error) {
			return NewAction(name, args), nil
		})
	}
}

// Has reports whether name is registered.
func (r *ActionRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Build creates the action registered under name.
func (r *ActionRegistry) Build(name string, args map[string]any) (Action, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}

	action, err := factory(args)
	if err != nil {
		return nil, fmt.Errorf("building action %q: %w", name, err)
	}
	return action, nil
}

// Names returns the registered action names, sorted.
func (r *ActionRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
