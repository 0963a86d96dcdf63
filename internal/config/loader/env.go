package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Kind is how an environment value is converted.
type Kind int

const (
	// KindString keeps the value as is.
	KindString Kind = iota
	// KindBool parses with strconv.ParseBool.
	KindBool
	// KindList splits on the OS path list separator.
	KindList
)

// EnvVar maps one environment variable to a dotted setting path.
type EnvVar struct {
	Name string
	Path string
	Kind Kind
}

// DefaultEnvVars are the KEYCHORD_* overrides.
var DefaultEnvVars = []EnvVar{
	{Name: "KEYCHORD_LAYOUT", Path: "keyboard.layout"},
	{Name: "KEYCHORD_PLATFORM", Path: "keyboard.platform"},
	{Name: "KEYCHORD_LOG_LEVEL", Path: "log.level"},
	{Name: "KEYCHORD_LOG_FORMAT", Path: "log.format"},
	{Name: "KEYCHORD_LOG_FILE", Path: "log.file"},
	{Name: "KEYCHORD_KEYMAPS", Path: "keymap.paths", Kind: KindList},
	{Name: "KEYCHORD_WATCH", Path: "keymap.watch", Kind: KindBool},
}

// EnvLoader loads settings from environment variables.
type EnvLoader struct {
	vars   []EnvVar
	lookup func(string) (string, bool)
}

// NewEnvLoader creates a loader for the default variables.
func NewEnvLoader() *EnvLoader {
	return NewEnvLoaderWith(DefaultEnvVars, os.LookupEnv)
}

// NewEnvLoaderWith creates a loader with custom variables and lookup.
func NewEnvLoaderWith(vars []EnvVar, lookup func(string) (string, bool)) *EnvLoader {
	return &EnvLoader{vars: vars, lookup: lookup}
}

// Load returns the settings for every variable that is set. An empty
// value counts as set.
func (l *EnvLoader) Load() (map[string]any, error) {
	settings := make(map[string]any)
	for _, v := range l.vars {
		raw, ok := l.lookup(v.Name)
		if !ok {
			continue
		}
		val, err := convert(raw, v.Kind)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v.Name, err)
		}
		setByPath(settings, v.Path, val)
	}
	return settings, nil
}

func convert(raw string, kind Kind) (any, error) {
	switch kind {
	case KindBool:
		return strconv.ParseBool(raw)
	case KindList:
		var out []any
		for _, p := range filepath.SplitList(raw) {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	}
	return raw, nil
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
