package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/keymap"
	"github.com/dshills/keychord/internal/logging"
)

func testConfig(t *testing.T, keymapTOML, script string) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Path = filepath.Join(dir, "config.toml")
	cfg.Keyboard.Platform = "linux"
	cfg.Keymap.Watch = false

	if keymapTOML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "keymap.toml"), []byte(keymapTOML), 0o644))
		cfg.Keymap.Paths = []string{"keymap.toml"}
	}
	if script != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "keys.lua"), []byte(script), 0o644))
		cfg.Keymap.Scripts = []string{"keys.lua"}
	}
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	a, err := New(cfg, WithLogger(logging.Discard()))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func fired(res keymap.Result) []string {
	names := make([]string, 0, len(res.Fired))
	for _, m := range res.Fired {
		names = append(names, m.Binding.Action().Name())
	}
	return names
}

const userKeymap = `
[[section]]

[[section.bindings]]
keys = "ctrl-s"
action = "edit.undo"

[[section.bindings]]
keys = "ctrl-bogus"
action = "file.save"
`

func TestAppDefaults(t *testing.T) {
	a := newTestApp(t, testConfig(t, "", ""))

	res := a.HandleKey(key.MustParse("ctrl-s"), nil)
	assert.Equal(t, []string{keymap.ActionSave}, fired(res))

	a.HandleKey(key.MustParse("ctrl-k"), nil)
	res = a.HandleKey(key.MustParse("ctrl-w"), nil)
	assert.Equal(t, []string{keymap.ActionCloseWindow}, fired(res))
}

func TestAppUserKeymapOverrides(t *testing.T) {
	a := newTestApp(t, testConfig(t, userKeymap, ""))

	res := a.HandleKey(key.MustParse("ctrl-s"), nil)
	assert.Equal(t, keymap.ActionUndo, fired(res)[0])
}

func TestAppScriptOverridesFiles(t *testing.T) {
	script := `keymap.bind("ctrl-s", "edit.redo")`
	a := newTestApp(t, testConfig(t, userKeymap, script))

	res := a.HandleKey(key.MustParse("ctrl-s"), nil)
	assert.Equal(t, keymap.ActionRedo, fired(res)[0])
}

func TestAppBrokenSourcesAreSkipped(t *testing.T) {
	cfg := testConfig(t, "", "this is not lua")
	cfg.Keymap.Paths = []string{"missing.toml"}
	a := newTestApp(t, cfg)

	res := a.HandleKey(key.MustParse("ctrl-s"), nil)
	assert.Equal(t, []string{keymap.ActionSave}, fired(res))
}

func TestAppReload(t *testing.T) {
	cfg := testConfig(t, userKeymap, "")
	a := newTestApp(t, cfg)
	gen := a.Dispatcher().Keymap().Generation()

	require.NoError(t, os.WriteFile(cfg.KeymapPaths()[0], []byte(""), 0o644))
	require.NoError(t, a.Reload())

	assert.NotEqual(t, gen, a.Dispatcher().Keymap().Generation())
	res := a.HandleKey(key.MustParse("ctrl-s"), nil)
	assert.Equal(t, []string{keymap.ActionSave}, fired(res))
}

func TestAppSetLayout(t *testing.T) {
	a := newTestApp(t, testConfig(t, "", ""))
	assert.Equal(t, "us", a.Layouts().CurrentID())

	require.NoError(t, a.SetLayout("de"))
	assert.Equal(t, "de", a.Layouts().CurrentID())
	assert.Same(t, a.Layouts().Current(), a.Mapper())
	assert.Equal(t, "ü", a.Keyboard().CodeToKey(key.KeySemicolon))
}

func TestAppWatchReloads(t *testing.T) {
	cfg := testConfig(t, userKeymap, "")
	cfg.Keymap.Watch = true
	a := newTestApp(t, cfg)
	require.NoError(t, a.Watch())
	require.NoError(t, a.Watch())

	gen := a.Dispatcher().Keymap().Generation()
	require.NoError(t, os.WriteFile(cfg.KeymapPaths()[0], []byte(""), 0o644))

	assert.Eventually(t, func() bool {
		return a.Dispatcher().Keymap().Generation() != gen
	}, 5*time.Second, 20*time.Millisecond)
}

func TestAppWatchDisabled(t *testing.T) {
	a := newTestApp(t, testConfig(t, userKeymap, ""))
	require.NoError(t, a.Watch())
	assert.Nil(t, a.watcher)
}

func TestAppClose(t *testing.T) {
	a, err := New(testConfig(t, "", ""), WithLogger(logging.Discard()))
	require.NoError(t, err)
	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
	assert.ErrorIs(t, a.Reload(), ErrClosed)
	assert.ErrorIs(t, a.Watch(), ErrClosed)
}

func TestAppInvalidLogConfig(t *testing.T) {
	cfg := testConfig(t, "", "")
	cfg.Log.Level = "loud"
	_, err := New(cfg)
	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, "logging", initErr.Component)
}
