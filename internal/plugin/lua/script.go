package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keychord/internal/input/keymap"
)

// LoadScript runs the Lua file at path and returns a keymap holding the
// bindings it registered, in registration order. Rejected bindings are
// returned as load errors; a script error fails the whole load.
func LoadScript(path string, loader *keymap.Loader, opts ...StateOption) (*keymap.Keymap, []*keymap.LoadError, error) {
	s := newScript(path, loader, opts...)
	defer s.state.Close()

	if err := s.state.DoFile(path); err != nil {
		return nil, s.skipped, fmt.Errorf("run keymap script %s: %w", path, err)
	}
	return s.km, s.skipped, nil
}

// LoadString is LoadScript for in-memory source.
func LoadString(name, src string, loader *keymap.Loader, opts ...StateOption) (*keymap.Keymap, []*keymap.LoadError, error) {
	s := newScript(name, loader, opts...)
	defer s.state.Close()

	if err := s.state.DoString(src); err != nil {
		return nil, s.skipped, fmt.Errorf("run keymap script %s: %w", name, err)
	}
	return s.km, s.skipped, nil
}

type script struct {
	name    string
	state   *State
	loader  *keymap.Loader
	km      *keymap.Keymap
	skipped []*keymap.LoadError
}

func newScript(name string, loader *keymap.Loader, opts ...StateOption) *script {
	s := &script{
		name:   name,
		state:  NewState(name, opts...),
		loader: loader,
		km:     keymap.NewKeymap(name),
	}

	L := s.state.L
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"bind":   s.bind,
		"unbind": s.unbind,
	})
	L.SetGlobal("keymap", mod)
	return s
}

// bindRequest is one keymap.bind call in either positional or table form.
type bindRequest struct {
	keys              string
	action            string
	context           string
	args              map[string]any
	useKeyEquivalents bool
}

func (s *script) bind(L *lua.LState) int {
	var req bindRequest
	if t, ok := L.Get(1).(*lua.LTable); ok {
		req = bindRequest{
			keys:              lua.LVAsString(t.RawGetString("keys")),
			action:            lua.LVAsString(t.RawGetString("action")),
			context:           lua.LVAsString(t.RawGetString("context")),
			args:              tableToArgs(t.RawGetString("args")),
			useKeyEquivalents: lua.LVAsBool(t.RawGetString("use_key_equivalents")),
		}
	} else {
		req = bindRequest{
			keys:    L.CheckString(1),
			action:  L.CheckString(2),
			context: L.OptString(3, ""),
			args:    tableToArgs(L.Get(4)),
		}
	}
	return s.add(L, req)
}

func (s *script) unbind(L *lua.LState) int {
	return s.add(L, bindRequest{
		keys:    L.CheckString(1),
		action:  keymap.NoActionName,
		context: L.OptString(2, ""),
	})
}

func (s *script) add(L *lua.LState, req bindRequest) int {
	b, err := s.loader.Bind(req.keys, req.action, req.args, req.context, req.useKeyEquivalents)
	if err != nil {
		s.skipped = append(s.skipped, &keymap.LoadError{File: s.name, Keys: req.keys, Err: err})
		s.state.logger.Warn("skipping keymap entry", "file", s.name, "keys", req.keys, "error", err)
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	s.km.Add(b)
	L.Push(lua.LTrue)
	return 1
}
