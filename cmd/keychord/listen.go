package main

import (
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/keychord/internal/app"
	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/keymap"
	"github.com/dshills/keychord/internal/input/native"
	"github.com/dshills/keychord/internal/input/termkeys"
)

const (
	listenHistory = 200
	flushInterval = 100 * time.Millisecond
)

func runListen(args []string, _, stderr io.Writer) error {
	fs := newFlagSet("listen", stderr)
	var f appFlags
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if f.config == "" {
		f.config = config.DefaultPath()
	}

	a, err := f.newApp(stderr, true)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.Watch(); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return newListener(screen, a, parseContext(f.context)).run()
}

// listener shows each key event, its escape encoding and what the
// dispatcher did with it. Ctrl-C exits.
type listener struct {
	screen tcell.Screen
	app    *app.App
	ctx    *keymap.Context
	style  key.PlatformStyle
	lines  []string
	done   chan struct{}
}

func newListener(screen tcell.Screen, a *app.App, ctx *keymap.Context) *listener {
	return &listener{
		screen: screen,
		app:    a,
		ctx:    ctx,
		style:  a.Config().PlatformStyle(),
		done:   make(chan struct{}),
	}
}

func (l *listener) run() error {
	go l.flushExpired()
	defer close(l.done)

	l.add("keychord listen: press keys, ctrl-c to quit")
	l.draw()
	for {
		switch ev := l.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			l.screen.Sync()
		case *tcell.EventInterrupt:
			if res, ok := ev.Data().(keymap.Result); ok {
				l.add(fmt.Sprintf("%-24s %s", "(timeout)", describe(res)))
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			l.handleKey(ev)
		}
		l.draw()
	}
}

func (l *listener) handleKey(ev *tcell.EventKey) {
	ks := native.FromTcellEvent(ev, l.app.Mapper())
	display := ks
	l.app.Keyboard().ToNativeKeystroke(&display)

	esc := "(text)"
	if seq, ok := termkeys.EscapeSequence(ks, termkeys.ModeNone, false); ok {
		esc = fmt.Sprintf("%q", seq)
	}
	res := l.app.HandleKey(ks, l.ctx)
	l.add(fmt.Sprintf("%-24s %-10s %-12s %s", keysText(ks), display.Format(l.style), esc, describe(res)))
}

// flushExpired fires or drops chords that waited past the pending
// timeout and reports them through the event loop.
func (l *listener) flushExpired() {
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			if res, ok := l.app.Dispatcher().FlushExpired(); ok {
				_ = l.screen.PostEvent(tcell.NewEventInterrupt(res))
			}
		}
	}
}

func (l *listener) add(line string) {
	l.lines = append(l.lines, line)
	if len(l.lines) > listenHistory {
		l.lines = l.lines[len(l.lines)-listenHistory:]
	}
}

func (l *listener) draw() {
	l.screen.Clear()
	_, height := l.screen.Size()
	start := 0
	if len(l.lines) > height {
		start = len(l.lines) - height
	}
	for y, line := range l.lines[start:] {
		drawText(l.screen, 0, y, line, tcell.StyleDefault)
	}
	l.screen.Show()
}

// drawText writes s one grapheme cluster per cell run.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	width, _ := screen.Size()
	g := uniseg.NewGraphemes(s)
	for g.Next() && x < width {
		runes := g.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += max(g.Width(), 1)
	}
}
