// Package app wires keychord's components together: configuration,
// logging, the keyboard layout manager, keymap loading and the chord
// dispatcher, with optional live reload of keymap files.
package app

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/config/watcher"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/keymap"
	"github.com/dshills/keychord/internal/input/layout"
	"github.com/dshills/keychord/internal/logging"
	"github.com/dshills/keychord/internal/plugin/lua"
)

// App owns the running components.
type App struct {
	mu sync.Mutex

	cfg        *config.Config
	logger     *slog.Logger
	layouts    *layout.Manager
	keyboard   *layout.Keyboard
	actions    *keymap.ActionRegistry
	dispatcher *keymap.Dispatcher
	watcher    *watcher.Watcher

	closers []io.Closer
	closed  bool
}

// Option configures an App.
type Option func(*App)

// WithLogger uses logger instead of building one from the config.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithActions sets the action registry keymap entries are checked
// against. The default is keymap.DefaultActions.
func WithActions(actions *keymap.ActionRegistry) Option {
	return func(a *App) {
		if actions != nil {
			a.actions = actions
		}
	}
}

// New builds the application from cfg and loads the keymap. Problems in
// user keymap files are logged and skipped.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{
		cfg:     cfg,
		actions: keymap.DefaultActions(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		logger, closer, err := logging.New(cfg.Log)
		if err != nil {
			return nil, &InitError{Component: "logging", Err: err}
		}
		a.logger = logger
		a.closers = append(a.closers, closer)
	}

	a.layouts = layout.NewManager(cfg.Keyboard.Layout,
		layout.WithLogger(a.logger),
		layout.WithManagerCommandLayout(cfg.Keyboard.CommandLayout),
	)
	a.keyboard = layout.NewKeyboard(a.layouts)

	a.dispatcher = keymap.NewDispatcher(a.buildKeymap(),
		keymap.WithPendingTimeout(cfg.PendingTimeout()),
		keymap.WithMatchOptions(keymap.MatchOptions{IMEFallback: cfg.Keymap.IMEFallback}),
		keymap.WithDispatcherLogger(a.logger),
	)
	return a, nil
}

// Config returns the configuration the app was built from.
func (a *App) Config() *config.Config { return a.cfg }

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Layouts returns the keyboard layout manager.
func (a *App) Layouts() *layout.Manager { return a.layouts }

// Keyboard returns the display keyboard for the active layout.
func (a *App) Keyboard() *layout.Keyboard { return a.keyboard }

// Dispatcher returns the chord dispatcher.
func (a *App) Dispatcher() *keymap.Dispatcher { return a.dispatcher }

// Mapper returns the mapper for the active layout.
func (a *App) Mapper() *layout.KeyboardMapper { return a.layouts.Current() }

// Loader returns a keymap loader that resolves characters through the
// active layout.
func (a *App) Loader() *keymap.Loader {
	return keymap.NewLoader(a.actions,
		keymap.WithLoaderLogger(a.logger),
		keymap.WithMapper(a.layouts.Current()),
	)
}

// HandleKey feeds one keystroke to the dispatcher.
func (a *App) HandleKey(ks key.Keystroke, ctx *keymap.Context) keymap.Result {
	return a.dispatcher.Dispatch(ks, ctx)
}

// buildKeymap layers the built-in bindings, the keymap files and the Lua
// scripts, in that order of increasing precedence.
func (a *App) buildKeymap() *keymap.Keymap {
	km := keymap.DefaultKeymap(a.cfg.PlatformStyle()).Clone()
	km.Name = "keychord"
	loader := a.Loader()

	if paths := a.cfg.KeymapPaths(); len(paths) > 0 {
		user, skipped, err := loader.LoadFiles("user", paths...)
		if err != nil {
			a.logger.Warn("keymap files failed to load", "error", err)
		}
		if len(skipped) > 0 {
			a.logger.Warn("keymap entries skipped", "count", len(skipped))
		}
		km.Extend(user)
	}

	for _, path := range a.cfg.ScriptPaths() {
		script, _, err := lua.LoadScript(path, loader, lua.WithLogger(a.logger))
		if err != nil {
			a.logger.Warn("keymap script failed", "script", path, "error", err)
			continue
		}
		km.Extend(script)
	}
	return km
}

// Reload rebuilds the keymap from its sources and installs it. Any
// pending chord is dropped.
func (a *App) Reload() error {
	a.mu.Lock()
	closed := a.closed
	a.mu.Unlock()
	if closed {
		return ErrClosed
	}
	a.dispatcher.SetKeymap(a.buildKeymap())
	return nil
}

// SetLayout switches the active keyboard layout and reloads the keymap so
// character bindings resolve on the new layout.
func (a *App) SetLayout(id string) error {
	if a.layouts.CurrentID() == id {
		return nil
	}
	a.layouts.Refresh(id)
	return a.Reload()
}

// Watch starts reloading the keymap when any keymap file or script
// changes. It does nothing when watching is disabled in the config.
func (a *App) Watch() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return ErrClosed
	}
	if !a.cfg.Keymap.Watch || a.watcher != nil {
		return nil
	}

	w, err := watcher.New(a.onFilesChanged, watcher.WithLogger(a.logger))
	if err != nil {
		return &ComponentError{Component: "watcher", Action: "start", Err: err}
	}
	for _, path := range append(a.cfg.KeymapPaths(), a.cfg.ScriptPaths()...) {
		if err := w.Watch(path); err != nil {
			w.Close()
			return &ComponentError{Component: "watcher", Action: "watch " + path, Err: err}
		}
	}
	a.watcher = w
	a.closers = append(a.closers, w)
	return nil
}

func (a *App) onFilesChanged(events []watcher.Event) {
	for _, ev := range events {
		a.logger.Info("keymap source changed", "path", ev.Path, "op", ev.Op.String())
	}
	if err := a.Reload(); err != nil && !errors.Is(err, ErrClosed) {
		a.logger.Error("keymap reload failed", "error", err)
	}
}

// Close stops the watcher and closes the log file.
func (a *App) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	closers := a.closers
	a.closers = nil
	a.mu.Unlock()

	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
