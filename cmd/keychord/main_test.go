package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keychord/internal/app"
	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/keymap"
	"github.com/dshills/keychord/internal/logging"
)

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunUsage(t *testing.T) {
	code, _, stderr := runCLI()
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Usage:")

	code, _, stderr = runCLI("frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `unknown command "frobnicate"`)

	code, stdout, _ := runCLI("version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "keychord dev")

	code, _, _ = runCLI("parse", "-h")
	assert.Equal(t, 0, code)
}

func TestRunParse(t *testing.T) {
	code, stdout, stderr := runCLI("parse", "ctrl-shift-a", "cmd-ctrl-bogus", "alt-f4")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "bogus")

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)

	fields := strings.Split(lines[0], "\t")
	assert.Equal(t, "ctrl-shift-a", fields[0])
	assert.Equal(t, "xterm=6", fields[len(fields)-1])
	assert.True(t, strings.HasPrefix(lines[1], "alt-f4\t"))
}

func TestRunParseWithLayout(t *testing.T) {
	code, stdout, _ := runCLI("parse", "-layout", "us", "ctrl-$")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "ctrl-shift-4\t"))
}

func TestRunVim(t *testing.T) {
	code, stdout, _ := runCLI("vim", "ctrl-shift-4", "escape")
	require.Equal(t, 0, code)
	assert.Equal(t, "ctrl-shift-4\tctrl-$\nescape\tescape\n", stdout)
}

func TestRunEsc(t *testing.T) {
	code, stdout, _ := runCLI("esc", "-app-cursor", "up", "a", "ctrl-c")
	require.Equal(t, 0, code)
	assert.Equal(t, "up\t\"\\x1bOA\"\na\t(text)\nctrl-c\t\"\\x03\"\n", stdout)

	_, stdout, _ = runCLI("esc", "-alt-meta", "alt-x")
	assert.Equal(t, "alt-x\t\"\\x1bx\"\n", stdout)
}

func TestRunMatch(t *testing.T) {
	code, stdout, stderr := runCLI("match", "-platform", "linux", "ctrl-k ctrl-c", "a", "ctrl-k")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, strings.Join([]string{
		"ctrl-k\tpending",
		"ctrl-c\tfired pane.close_tab [ctrl-k ctrl-c]",
		"a\tunhandled [a]",
		"ctrl-k\tpending",
		"(end)\tunhandled [ctrl-k]",
	}, "\n")+"\n", stdout)
}

func TestRunMatchWithKeymapAndContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[section]]
context = "Terminal"

[[section.bindings]]
keys = "ctrl-s"
action = "edit.undo"
`), 0o644))

	code, stdout, _ := runCLI("match", "-platform", "linux", "-keymap", path, "-context", "Terminal shell=zsh", "ctrl-s")
	require.Equal(t, 0, code)
	assert.Equal(t, "ctrl-s\tfired edit.undo [ctrl-s]\n", stdout)

	_, stdout, _ = runCLI("match", "-platform", "linux", "-keymap", path, "ctrl-s")
	assert.Equal(t, "ctrl-s\tfired file.save [ctrl-s]\n", stdout)
}

func TestRunMatchBadInput(t *testing.T) {
	code, _, stderr := runCLI("match", "ctrl-nope")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "keychord match")

	code, _, _ = runCLI("match", "-platform", "amiga", "a")
	assert.Equal(t, 1, code)
}

func TestDescribeOmitsKeyChar(t *testing.T) {
	q := key.MustParse("q").WithSimulatedIME()
	require.Equal(t, "q", q.KeyChar)

	res := keymap.Result{Unhandled: []key.Keystroke{q, key.MustParse("shift-a->A")}}
	assert.Equal(t, "unhandled [q shift-a]", describe(res))
	assert.Equal(t, "alt-s", keysText(key.MustParse("alt-s->ß")))
}

func TestParseContext(t *testing.T) {
	ctx := parseContext("Editor  mode=normal")
	assert.True(t, ctx.Identifiers["Editor"])
	assert.Equal(t, "normal", ctx.Values["mode"])
}

func TestListener(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(100, 10)

	cfg := config.Default()
	cfg.Keyboard.Platform = "linux"
	cfg.Keymap.Watch = false
	a, err := app.New(cfg, app.WithLogger(logging.Discard()))
	require.NoError(t, err)
	defer a.Close()

	screen.InjectKey(tcell.KeyCtrlK, 0, tcell.ModCtrl)
	screen.InjectKey(tcell.KeyCtrlW, 0, tcell.ModCtrl)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	l := newListener(screen, a, nil)
	require.NoError(t, l.run())

	out := strings.Join(l.lines, "\n")
	assert.Contains(t, out, "pending")
	assert.Contains(t, out, "fired workspace.close_window [ctrl-k ctrl-w]")
	assert.Contains(t, out, "unhandled [q]")
}
