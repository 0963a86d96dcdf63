package keymap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keychord/internal/input/key"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func chordKeymap() *Keymap {
	return NewKeymap("test").Add(
		MustNew("ctrl-k ctrl-c", NewAction("CloseTab", nil), ""),
		MustNew("ctrl-k ctrl-w", NewAction("CloseWindow", nil), ""),
		MustNew("ctrl-s", NewAction("Save", nil), ""),
	)
}

func firedNames(res Result) []string {
	names := make([]string, len(res.Fired))
	for i, m := range res.Fired {
		names[i] = m.Binding.Action().Name()
	}
	return names
}

func TestDispatcherChord(t *testing.T) {
	d := NewDispatcher(chordKeymap())

	res := d.Dispatch(key.MustParse("ctrl-k"), nil)
	assert.True(t, res.Pending)
	assert.Empty(t, res.Fired)
	assert.Len(t, d.Pending(), 1)

	res = d.Dispatch(key.MustParse("ctrl-c"), nil)
	assert.False(t, res.Pending)
	assert.Equal(t, []string{"CloseTab"}, firedNames(res))
	assert.Len(t, res.Fired[0].Keystrokes, 2)
	assert.Empty(t, d.Pending())
}

func TestDispatcherSingleKey(t *testing.T) {
	d := NewDispatcher(chordKeymap())
	res := d.Dispatch(key.MustParse("ctrl-s"), nil)
	assert.Equal(t, []string{"Save"}, firedNames(res))
	assert.True(t, res.Handled())
}

func TestDispatcherUnhandled(t *testing.T) {
	d := NewDispatcher(chordKeymap())
	res := d.Dispatch(key.MustParse("a"), nil)
	assert.False(t, res.Handled())
	assert.Equal(t, typed("a"), res.Unhandled)
}

func TestDispatcherBrokenChordRetriesLastKey(t *testing.T) {
	d := NewDispatcher(chordKeymap())

	d.Dispatch(key.MustParse("ctrl-k"), nil)
	res := d.Dispatch(key.MustParse("ctrl-s"), nil)

	assert.Equal(t, typed("ctrl-k"), res.Unhandled)
	assert.Equal(t, []string{"Save"}, firedNames(res))
	assert.False(t, res.Pending)
}

func TestDispatcherBrokenChordStartsNewChord(t *testing.T) {
	d := NewDispatcher(chordKeymap())

	d.Dispatch(key.MustParse("ctrl-k"), nil)
	res := d.Dispatch(key.MustParse("ctrl-k"), nil)

	assert.Equal(t, typed("ctrl-k"), res.Unhandled)
	assert.True(t, res.Pending)
	assert.Equal(t, typed("ctrl-k"), d.Pending())
}

func TestDispatcherFallbackOnBrokenChord(t *testing.T) {
	km := NewKeymap("test").Add(
		MustNew("g", NewAction("goto", nil), ""),
		MustNew("g g", NewAction("top", nil), ""),
	)
	d := NewDispatcher(km)

	res := d.Dispatch(key.MustParse("g"), nil)
	assert.True(t, res.Pending)
	assert.Empty(t, res.Fired)

	res = d.Dispatch(key.MustParse("x"), nil)
	assert.Equal(t, []string{"goto"}, firedNames(res))
	assert.Equal(t, typed("x"), res.Unhandled)
}

func TestDispatcherFlush(t *testing.T) {
	km := NewKeymap("test").Add(
		MustNew("g", NewAction("goto", nil), ""),
		MustNew("g g", NewAction("top", nil), ""),
	)
	d := NewDispatcher(km)

	d.Dispatch(key.MustParse("g"), nil)
	res := d.Flush()
	assert.Equal(t, []string{"goto"}, firedNames(res))
	assert.Empty(t, d.Pending())

	d = NewDispatcher(chordKeymap())
	d.Dispatch(key.MustParse("ctrl-k"), nil)
	res = d.Flush()
	assert.Empty(t, res.Fired)
	assert.Equal(t, typed("ctrl-k"), res.Unhandled)

	assert.Equal(t, Result{}, d.Flush())
}

func TestDispatcherTimeout(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := NewDispatcher(chordKeymap(),
		WithPendingTimeout(500*time.Millisecond),
		WithClock(clock.now))

	d.Dispatch(key.MustParse("ctrl-k"), nil)

	_, ok := d.FlushExpired()
	assert.False(t, ok)

	clock.advance(time.Second)
	res := d.Dispatch(key.MustParse("ctrl-c"), nil)
	assert.Equal(t, typed("ctrl-k", "ctrl-c"), res.Unhandled)
	assert.Empty(t, res.Fired)

	d.Dispatch(key.MustParse("ctrl-k"), nil)
	clock.advance(time.Second)
	res, ok = d.FlushExpired()
	require.True(t, ok)
	assert.Equal(t, typed("ctrl-k"), res.Unhandled)
}

func TestDispatcherTimeoutDisabled(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := NewDispatcher(chordKeymap(), WithPendingTimeout(0), WithClock(clock.now))

	d.Dispatch(key.MustParse("ctrl-k"), nil)
	clock.advance(time.Hour)
	res := d.Dispatch(key.MustParse("ctrl-c"), nil)
	assert.Equal(t, []string{"CloseTab"}, firedNames(res))
}

func TestDispatcherSetKeymapResets(t *testing.T) {
	d := NewDispatcher(chordKeymap())
	d.Dispatch(key.MustParse("ctrl-k"), nil)

	next := NewKeymap("next").Add(MustNew("ctrl-c", NewAction("Copy", nil), ""))
	d.SetKeymap(next)
	assert.Empty(t, d.Pending())
	assert.Same(t, next, d.Keymap())

	res := d.Dispatch(key.MustParse("ctrl-c"), nil)
	assert.Equal(t, []string{"Copy"}, firedNames(res))

	d.SetKeymap(nil)
	assert.Same(t, next, d.Keymap())
}

func TestDispatcherReset(t *testing.T) {
	d := NewDispatcher(chordKeymap())
	d.Dispatch(key.MustParse("ctrl-k"), nil)
	d.Reset()
	assert.Empty(t, d.Pending())

	res := d.Dispatch(key.MustParse("ctrl-c"), nil)
	assert.Empty(t, res.Fired)
}

func TestDispatcherIMEFallback(t *testing.T) {
	km := NewKeymap("test").Add(MustNew("[", NewAction("open_bracket", nil), ""))
	altGr8 := key.NewKeystroke(key.KeyDigit8, key.Modifiers{Control: true, Alt: true}).WithKeyChar("[")

	strict := NewDispatcher(km)
	assert.Empty(t, strict.Dispatch(altGr8, nil).Fired)

	lenient := NewDispatcher(km, WithMatchOptions(MatchOptions{IMEFallback: true}))
	assert.Equal(t, []string{"open_bracket"}, firedNames(lenient.Dispatch(altGr8, nil)))
}

func TestDispatcherNilKeymap(t *testing.T) {
	d := NewDispatcher(nil)
	res := d.Dispatch(key.MustParse("a"), nil)
	assert.Len(t, res.Unhandled, 1)
}
