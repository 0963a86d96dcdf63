// Package loader reads configuration sources into plain maps that the
// config package layers and decodes.
//
// Sources are a TOML file and KEYCHORD_* environment variables. Each
// returns a nested map keyed by section then setting; maps from later
// sources override earlier ones through DeepMerge.
package loader

import (
	"io/fs"
	"os"
)

// Loader is a configuration source.
type Loader interface {
	// Load returns the source's settings. It returns nil, nil when the
	// source does not exist.
	Load() (map[string]any, error)
}

// FileSystem abstracts file reads so tests can supply files in memory.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS reads from the real file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// MapFS serves files from memory.
type MapFS map[string]string

// ReadFile returns the file contents or fs.ErrNotExist.
func (m MapFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}
