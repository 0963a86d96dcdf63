package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dshills/keychord/internal/app"
	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/keymap"
	"github.com/dshills/keychord/internal/input/layout"
	"github.com/dshills/keychord/internal/input/termkeys"
	"github.com/dshills/keychord/internal/logging"
)

var platforms = []key.PlatformStyle{key.PlatformMac, key.PlatformLinux, key.PlatformWindows}

func cliLogger(stderr io.Writer) *slog.Logger {
	logger, err := logging.NewWithWriter(logging.Config{Level: "warn"}, stderr)
	if err != nil {
		return logging.Discard()
	}
	return logger
}

func mapperFor(id string, stderr io.Writer) *layout.KeyboardMapper {
	return layout.NewManager(id, layout.WithLogger(cliLogger(stderr))).Current()
}

func runParse(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("parse", stderr)
	layoutID := fs.String("layout", "", "resolve characters through this keyboard layout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var opts key.ParseOptions
	if *layoutID != "" {
		opts = mapperFor(*layoutID, stderr).ParseOptions(false)
	}

	var errs []error
	for _, arg := range fs.Args() {
		ks, err := key.ParseWith(arg, opts)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fields := []string{ks.Unparse()}
		for _, style := range platforms {
			fields = append(fields, style.String()+"="+ks.Format(style))
		}
		fields = append(fields, fmt.Sprintf("xterm=%d", ks.Modifiers.XtermCode()))
		fmt.Fprintln(stdout, strings.Join(fields, "\t"))
	}
	return errors.Join(errs...)
}

func runVim(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("vim", stderr)
	layoutID := fs.String("layout", "us", "keyboard layout id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	mapper := mapperFor(*layoutID, stderr)
	var errs []error
	for _, arg := range fs.Args() {
		ks, err := key.ParseKeystroke(arg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\n", ks.Unparse(), mapper.ToVimKeystroke(ks))
	}
	return errors.Join(errs...)
}

func runEsc(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("esc", stderr)
	appCursor := fs.Bool("app-cursor", false, "application cursor mode (DECCKM)")
	altScreen := fs.Bool("alt-screen", false, "alternate screen active")
	altMeta := fs.Bool("alt-meta", false, "send alt as an ESC prefix")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var mode termkeys.Mode
	if *appCursor {
		mode |= termkeys.ModeAppCursor
	}
	if *altScreen {
		mode |= termkeys.ModeAltScreen
	}

	var errs []error
	for _, arg := range fs.Args() {
		ks, err := key.ParseKeystroke(arg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if seq, ok := termkeys.EscapeSequence(ks, mode, *altMeta); ok {
			fmt.Fprintf(stdout, "%s\t%q\n", ks.Unparse(), seq)
		} else {
			fmt.Fprintf(stdout, "%s\t(text)\n", ks.Unparse())
		}
	}
	return errors.Join(errs...)
}

// appFlags are the flags shared by the commands that build the full app.
type appFlags struct {
	config   string
	keymaps  stringList
	context  string
	platform string
}

func (f *appFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.config, "config", "", "config file")
	fs.Var(&f.keymaps, "keymap", "extra keymap file (repeatable)")
	fs.StringVar(&f.context, "context", "", `context, e.g. "Editor mode=normal"`)
	fs.StringVar(&f.platform, "platform", "", "mac, linux or windows")
}

func (f *appFlags) newApp(stderr io.Writer, watch bool) (*app.App, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return nil, err
	}
	if f.platform != "" {
		cfg.Keyboard.Platform = f.platform
	}
	for _, p := range f.keymaps {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		cfg.Keymap.Paths = append(cfg.Keymap.Paths, abs)
	}
	cfg.Keymap.Watch = cfg.Keymap.Watch && watch
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []app.Option
	if cfg.Log.File == "" {
		logger, err := logging.NewWithWriter(cfg.Log, stderr)
		if err != nil {
			return nil, err
		}
		opts = append(opts, app.WithLogger(logger))
	}
	return app.New(cfg, opts...)
}

// parseContext reads "Editor mode=normal" into a context: bare words are
// identifiers, name=value pairs are values.
func parseContext(s string) *keymap.Context {
	ctx := keymap.NewContext()
	for _, field := range strings.Fields(s) {
		if name, value, ok := strings.Cut(field, "="); ok {
			ctx.Set(name, value)
			continue
		}
		ctx.Add(field)
	}
	return ctx
}

func runMatch(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("match", stderr)
	var f appFlags
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := f.newApp(stderr, false)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := parseContext(f.context)
	opts := a.Mapper().ParseOptions(false)
	for _, arg := range fs.Args() {
		seq, err := key.ParseSequenceWith(arg, opts)
		if err != nil {
			return err
		}
		for _, ks := range seq.Keystrokes {
			fmt.Fprintf(stdout, "%s\t%s\n", ks.Unparse(), describe(a.HandleKey(ks, ctx)))
		}
	}
	if res := a.Dispatcher().Flush(); res.Handled() || len(res.Unhandled) > 0 {
		fmt.Fprintf(stdout, "(end)\t%s\n", describe(res))
	}
	return nil
}

func describe(res keymap.Result) string {
	var parts []string
	for _, m := range res.Fired {
		parts = append(parts, fmt.Sprintf("fired %s [%s]", m.Binding.Action().Name(), keysText(m.Keystrokes...)))
	}
	if len(res.Unhandled) > 0 {
		parts = append(parts, fmt.Sprintf("unhandled [%s]", keysText(res.Unhandled...)))
	}
	if res.Pending {
		parts = append(parts, "pending")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "; ")
}

// keysText writes keystrokes in source form without their IME text, so
// plain typing shows as "q" rather than "q->q".
func keysText(keystrokes ...key.Keystroke) string {
	parts := make([]string, len(keystrokes))
	for i, ks := range keystrokes {
		parts[i] = ks.WithKeyChar("").Unparse()
	}
	return strings.Join(parts, " ")
}
