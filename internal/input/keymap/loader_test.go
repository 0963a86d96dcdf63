package keymap

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/layout"
)

const tomlKeymap = `
[[section]]

[[section.bindings]]
keys = "ctrl-k ctrl-c"
action = "CloseTab"

[[section.bindings]]
keys = "ctrl-k ctrl-w"
action = "CloseWindow"

[[section]]
context = "Editor && mode == normal"

[[section.bindings]]
keys = "ctrl-bogus"
action = "CloseTab"

[[section.bindings]]
keys = "ctrl-d"
action = "Unregistered"

[[section.bindings]]
keys = "ctrl-g"
action = "GoToLine"
args = { line = 10 }

[[section]]
context = "Editor &&"

[[section.bindings]]
keys = "ctrl-x"
action = "CloseTab"
`

const yamlKeymap = `
section:
  - context: Editor
    bindings:
      - keys: ctrl-s
        action: Save
      - keys: ctrl-shift-s
        action: Save
        args:
          all: true
`

const jsonKeymap = `{
  "section": [
    {"bindings": [
      {"keys": "cmd-s", "action": "Save"},
      {"keys": "cmd-", "action": "Save"}
    ]}
  ]
}`

func testActions() *ActionRegistry {
	r := NewActionRegistry()
	r.RegisterNamed("CloseTab", "CloseWindow", "Save", "GoToLine")
	return r
}

func newTestLoader(opts ...LoaderOption) (*Loader, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return NewLoader(testActions(), append([]LoaderOption{WithLoaderLogger(logger)}, opts...)...), &buf
}

func TestLoaderTOML(t *testing.T) {
	l, logs := newTestLoader()

	km, skipped, err := l.Load([]byte(tomlKeymap), FormatTOML, "user.toml")
	require.NoError(t, err)
	require.Equal(t, 3, km.Len())
	assert.Equal(t, "user.toml", km.Name)

	require.Len(t, skipped, 3)
	assert.ErrorIs(t, skipped[0], key.ErrInvalidKeystroke)
	assert.Equal(t, "ctrl-bogus", skipped[0].Keys)
	assert.Equal(t, 1, skipped[0].Section)
	assert.ErrorIs(t, skipped[1], ErrUnknownAction)
	assert.ErrorIs(t, skipped[2], ErrInvalidPredicate)
	assert.Equal(t, 2, skipped[2].Section)

	assert.Contains(t, logs.String(), "skipping keymap entry")
	assert.Contains(t, logs.String(), "ctrl-bogus")

	bindings := km.Bindings()
	assert.Equal(t, "CloseTab", bindings[0].Action().Name())
	assert.Nil(t, bindings[0].Predicate())

	goTo := bindings[2]
	assert.Equal(t, "Editor && mode == normal", goTo.Predicate().String())
	assert.EqualValues(t, 10, goTo.Action().(*NamedAction).Args["line"])
}

func TestLoaderChordScenario(t *testing.T) {
	l, _ := newTestLoader()
	km, _, err := l.Load([]byte(tomlKeymap), FormatTOML, "user.toml")
	require.NoError(t, err)

	closeTab, closeWindow := km.Bindings()[0], km.Bindings()[1]

	first := typed("ctrl-k")
	assert.Equal(t, PartialMatch, closeTab.MatchKeystrokes(first))
	assert.Equal(t, PartialMatch, closeWindow.MatchKeystrokes(first))

	both := typed("ctrl-k", "ctrl-c")
	assert.Equal(t, FullMatch, closeTab.MatchKeystrokes(both))
	assert.Equal(t, NoMatch, closeWindow.MatchKeystrokes(both))
}

func TestLoaderYAMLAndJSON(t *testing.T) {
	l, _ := newTestLoader()

	km, skipped, err := l.Load([]byte(yamlKeymap), FormatYAML, "user.yaml")
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Equal(t, 2, km.Len())
	assert.Equal(t, true, km.Bindings()[1].Action().(*NamedAction).Args["all"])

	km, skipped, err = l.Load([]byte(jsonKeymap), FormatJSON, "user.json")
	require.NoError(t, err)
	assert.Len(t, skipped, 1)
	assert.Equal(t, 1, km.Len())
}

func TestLoaderPredicatesShared(t *testing.T) {
	l, _ := newTestLoader()
	km, _, err := l.Load([]byte(yamlKeymap), FormatYAML, "user.yaml")
	require.NoError(t, err)
	b := km.Bindings()
	assert.Same(t, b[0].Predicate(), b[1].Predicate())
}

func TestLoaderDecodeError(t *testing.T) {
	l, _ := newTestLoader()
	_, _, err := l.Load([]byte("[[section"), FormatTOML, "bad.toml")
	assert.Error(t, err)
}

func TestLoaderFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	user := filepath.Join(dir, "user.yaml")
	require.NoError(t, os.WriteFile(base, []byte(tomlKeymap), 0o644))
	require.NoError(t, os.WriteFile(user, []byte(yamlKeymap), 0o644))

	l, _ := newTestLoader()

	km, skipped, err := l.LoadFile(base)
	require.NoError(t, err)
	assert.Equal(t, 3, km.Len())
	assert.Len(t, skipped, 3)

	merged, _, err := l.LoadFiles("merged", base, user, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Equal(t, 5, merged.Len())

	_, _, err = l.LoadFile(filepath.Join(dir, "keymap.ini"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.toml", FormatTOML},
		{"a.YAML", FormatYAML},
		{"a.yml", FormatYAML},
		{"a.json", FormatJSON},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.want.String(), got.String())
	}
}

func TestLoaderWithMapper(t *testing.T) {
	l, _ := newTestLoader(WithMapper(layout.NewKeyboardMapper(layout.US)))

	b, err := l.Bind("ctrl-$", "Save", nil, "", false)
	require.NoError(t, err)
	assert.Equal(t, key.NewKeystroke(key.KeyDigit4, key.ControlShiftModifiers), b.Keystrokes()[0])

	de, _ := newTestLoader(WithMapper(layout.NewKeyboardMapper(layout.German)))
	b, err = de.Bind("cmd-[", "Save", nil, "Editor", true)
	require.NoError(t, err)
	assert.Equal(t, key.NewKeystroke(key.KeyTilde, key.CommandModifiers), b.Keystrokes()[0])
	assert.Equal(t, "Editor", b.Predicate().String())

	_, err = de.Bind("cmd-s", "Save", nil, "(", false)
	assert.ErrorIs(t, err, ErrInvalidPredicate)
}

func TestLoadErrorMessage(t *testing.T) {
	le := &LoadError{File: "k.toml", Section: 2, Keys: "ctrl-q", Err: ErrUnknownAction}
	assert.Equal(t, `k.toml: section 2: "ctrl-q": unknown action`, le.Error())

	le.Keys = ""
	assert.Equal(t, "k.toml: section 2: unknown action", le.Error())
}
