package keymap

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/layout"
)

// ErrUnsupportedFormat is returned for keymap files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported keymap format")

// Format is a keymap file encoding.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
	FormatJSON
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "toml"
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// File is the decoded form of a keymap file.
type File struct {
	Sections []Section `toml:"section" yaml:"section" json:"section"`
}

// Section groups bindings that share a context predicate.
type Section struct {
	// Context is the predicate gating every binding in the section.
	Context string `toml:"context" yaml:"context" json:"context"`

	// UseKeyEquivalents binds by US key position, remapped through the
	// layout's key equivalents, instead of by typed character.
	UseKeyEquivalents bool `toml:"use_key_equivalents" yaml:"use_key_equivalents" json:"use_key_equivalents"`

	Bindings []Entry `toml:"bindings" yaml:"bindings" json:"bindings"`
}

// Entry is one binding in a keymap file.
type Entry struct {
	Keys   string         `toml:"keys" yaml:"keys" json:"keys"`
	Action string         `toml:"action" yaml:"action" json:"action"`
	Args   map[string]any `toml:"args" yaml:"args" json:"args,omitempty"`
}

// LoadError describes a keymap entry that was skipped.
type LoadError struct {
	File    string
	Section int
	Keys    string
	Err     error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Keys == "" {
		return fmt.Sprintf("%s: section %d: %v", e.File, e.Section, e.Err)
	}
	return fmt.Sprintf("%s: section %d: %q: %v", e.File, e.Section, e.Keys, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader builds keymaps from keymap files. Malformed entries are logged
// and skipped; the rest of the file still loads.
type Loader struct {
	actions    *ActionRegistry
	predicates *PredicateCache
	mapper     *layout.KeyboardMapper
	logger     *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLoaderLogger sets the logger for skipped entries.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithMapper resolves key tokens against a keyboard layout.
func WithMapper(m *layout.KeyboardMapper) LoaderOption {
	return func(l *Loader) {
		l.mapper = m
	}
}

// WithPredicateCache shares a predicate cache between loaders.
func WithPredicateCache(c *PredicateCache) LoaderOption {
	return func(l *Loader) {
		if c != nil {
			l.predicates = c
		}
	}
}

// NewLoader creates a loader that builds actions from the registry.
func NewLoader(actions *ActionRegistry, opts ...LoaderOption) *Loader {
	l := &Loader{
		actions:    actions,
		predicates: NewPredicateCache(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile loads one keymap file. The returned error is non-nil only when
// the file cannot be read or decoded.
func (l *Loader) LoadFile(path string) (*Keymap, []*LoadError, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading keymap file: %w", err)
	}
	return l.Load(data, format, path)
}

// LoadFiles loads the files in order and layers them into one keymap, so
// later files take precedence. Files that cannot be read are skipped and
// reported in the joined error.
func (l *Loader) LoadFiles(name string, paths ...string) (*Keymap, []*LoadError, error) {
	km := NewKeymap(name)
	var (
		skipped []*LoadError
		errs    []error
	)
	for _, path := range paths {
		layer, entryErrs, err := l.LoadFile(path)
		if err != nil {
			l.logger.Warn("skipping keymap file", "file", path, "error", err)
			errs = append(errs, err)
			continue
		}
		skipped = append(skipped, entryErrs...)
		km.Add(layer.Bindings()...)
	}
	return km, skipped, errors.Join(errs...)
}

// Load decodes keymap data. source names the data in errors and logs.
func (l *Loader) Load(data []byte, format Format, source string) (*Keymap, []*LoadError, error) {
	var file File
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &file)
	case FormatJSON:
		err = json.Unmarshal(data, &file)
	default:
		err = toml.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("decoding %s keymap %s: %w", format, source, err)
	}

	km, skipped := l.Build(file, source)
	return km, skipped, nil
}

// Build turns decoded sections into a keymap, skipping bad entries.
func (l *Loader) Build(file File, source string) (*Keymap, []*LoadError) {
	km := NewKeymap(source)
	var skipped []*LoadError

	skip := func(le *LoadError) {
		l.logger.Warn("skipping keymap entry",
			"file", le.File,
			"section", le.Section,
			"keys", le.Keys,
			"error", le.Err)
		skipped = append(skipped, le)
	}

	bindings := make([]*KeyBinding, 0)
	for i, sec := range file.Sections {
		predicate, err := l.predicates.Get(sec.Context)
		if err != nil {
			skip(&LoadError{File: source, Section: i, Err: err})
			continue
		}
		for _, e := range sec.Bindings {
			b, err := l.bind(e.Keys, e.Action, e.Args, predicate, sec.UseKeyEquivalents)
			if err != nil {
				skip(&LoadError{File: source, Section: i, Keys: e.Keys, Err: err})
				continue
			}
			bindings = append(bindings, b)
		}
	}
	km.Add(bindings...)
	return km, skipped
}

// Bind builds a single binding the way keymap files do.
func (l *Loader) Bind(keys, action string, args map[string]any, context string, useKeyEquivalents bool) (*KeyBinding, error) {
	predicate, err := l.predicates.Get(context)
	if err != nil {
		return nil, err
	}
	return l.bind(keys, action, args, predicate, useKeyEquivalents)
}

func (l *Loader) bind(keys, action string, args map[string]any, predicate *Predicate, useKeyEquivalents bool) (*KeyBinding, error) {
	a, err := l.actions.Build(action, args)
	if err != nil {
		return nil, err
	}
	return LoadKeyBindingWith(keys, a, predicate, l.parseOptions(useKeyEquivalents))
}

func (l *Loader) parseOptions(useKeyEquivalents bool) key.ParseOptions {
	if l.mapper != nil {
		return l.mapper.ParseOptions(useKeyEquivalents)
	}
	return key.ParseOptions{CharMatching: !useKeyEquivalents}
}
