package keymap

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dshills/keychord/internal/input/key"
)

// MatchOptions adjusts how typed keystrokes match bound ones.
type MatchOptions struct {
	// IMEFallback also accepts a typed keystroke whose composed text equals
	// the text the bound keystroke would type. Off by default.
	IMEFallback bool
}

// Match is a binding that fired and the keystrokes that triggered it.
type Match struct {
	Binding    *KeyBinding
	Keystrokes []key.Keystroke
}

// Result reports what one call into the Dispatcher did.
type Result struct {
	// Fired lists the bindings that fired, in order.
	Fired []Match

	// Unhandled lists keystrokes no binding consumed, in arrival order.
	// Callers usually insert their text.
	Unhandled []key.Keystroke

	// Pending is true when a chord is in progress after the call.
	Pending bool
}

// Handled reports whether anything fired or a chord is in progress.
func (r Result) Handled() bool {
	return len(r.Fired) > 0 || r.Pending
}

// DefaultPendingTimeout is how long a partial chord waits for more input.
const DefaultPendingTimeout = time.Second

// Dispatcher buffers typed keystrokes and resolves them against a keymap.
// Keystrokes are processed strictly in arrival order.
type Dispatcher struct {
	mu sync.Mutex

	keymap   *Keymap
	pending  []key.Keystroke
	fallback *KeyBinding
	last     time.Time

	timeout time.Duration
	opts    MatchOptions
	now     func() time.Time
	logger  *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithPendingTimeout sets how long a partial chord waits before it is
// flushed. Zero disables the timeout.
func WithPendingTimeout(d time.Duration) DispatcherOption {
	return func(disp *Dispatcher) {
		disp.timeout = d
	}
}

// WithMatchOptions sets the keystroke matching options.
func WithMatchOptions(opts MatchOptions) DispatcherOption {
	return func(d *Dispatcher) {
		d.opts = opts
	}
}

// WithDispatcherLogger sets the logger.
func WithDispatcherLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithClock sets the time source used for the pending timeout.
func WithClock(now func() time.Time) DispatcherOption {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// NewDispatcher creates a dispatcher over km.
func NewDispatcher(km *Keymap, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		keymap:  km,
		timeout: DefaultPendingTimeout,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.keymap == nil {
		d.keymap = NewKeymap("empty")
	}
	return d
}

// Dispatch feeds one typed keystroke. A stale pending chord is flushed
// first and its outcome is included in the result.
func (d *Dispatcher) Dispatch(ks key.Keystroke, ctx *Context) Result {
	d.mu.Lock()
	defer d.mu.Unlock()

	var res Result
	now := d.now()
	if d.expiredLocked(now) {
		d.logger.Debug("pending chord timed out",
			"keys", key.NewSequenceFrom(d.pending...).String())
		d.flushLocked(&res)
	}
	d.last = now

	d.feed(ks, ctx, &res)
	res.Pending = len(d.pending) > 0
	return res
}

// feed processes one keystroke against the current pending chord.
func (d *Dispatcher) feed(ks key.Keystroke, ctx *Context, res *Result) {
	typed := make([]key.Keystroke, len(d.pending), len(d.pending)+1)
	copy(typed, d.pending)
	typed = append(typed, ks)

	matches, pending := d.keymap.BindingsForInput(typed, ctx, d.opts)
	switch {
	case pending:
		d.pending = typed
		d.fallback = nil
		if len(matches) > 0 {
			d.fallback = matches[0]
		}
	case len(matches) > 0:
		d.clearLocked()
		res.Fired = append(res.Fired, Match{Binding: matches[0], Keystrokes: typed})
	case len(d.pending) == 0:
		res.Unhandled = append(res.Unhandled, ks)
	default:
		// The chord in progress cannot continue: settle it, then retry the
		// new keystroke on its own.
		d.flushLocked(res)
		d.feed(ks, ctx, res)
	}
}

// Flush settles the pending chord: the exact match remembered while
// buffering fires, otherwise the buffered keystrokes are returned as
// unhandled.
func (d *Dispatcher) Flush() Result {
	d.mu.Lock()
	defer d.mu.Unlock()

	var res Result
	d.flushLocked(&res)
	return res
}

// FlushExpired flushes the pending chord if it has waited longer than the
// timeout. ok is false when nothing was flushed.
func (d *Dispatcher) FlushExpired() (Result, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var res Result
	if !d.expiredLocked(d.now()) {
		return res, false
	}
	d.flushLocked(&res)
	return res, true
}

func (d *Dispatcher) flushLocked(res *Result) {
	if len(d.pending) == 0 {
		return
	}
	if d.fallback != nil {
		res.Fired = append(res.Fired, Match{Binding: d.fallback, Keystrokes: d.pending})
	} else {
		res.Unhandled = append(res.Unhandled, d.pending...)
	}
	d.clearLocked()
}

func (d *Dispatcher) expiredLocked(now time.Time) bool {
	return d.timeout > 0 && len(d.pending) > 0 && now.Sub(d.last) > d.timeout
}

// Reset discards the pending chord without firing anything.
func (d *Dispatcher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clearLocked()
}

func (d *Dispatcher) clearLocked() {
	d.pending = nil
	d.fallback = nil
}

// Pending returns a copy of the keystrokes buffered for the chord in
// progress.
func (d *Dispatcher) Pending() []key.Keystroke {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]key.Keystroke, len(d.pending))
	copy(out, d.pending)
	return out
}

// SetKeymap replaces the keymap and discards any pending chord.
func (d *Dispatcher) SetKeymap(km *Keymap) {
	if km == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keymap = km
	d.clearLocked()
	d.logger.Info("keymap installed",
		"name", km.Name,
		"generation", km.Generation().String(),
		"bindings", km.Len())
}

// Keymap returns the active keymap.
func (d *Dispatcher) Keymap() *Keymap {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.keymap
}
