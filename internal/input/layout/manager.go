package layout

import (
	"log/slog"
	"sync"
)

// Manager caches one KeyboardMapper per layout identifier and tracks the
// active layout. Mappers are built on first use and kept for the life of
// the Manager. It is safe for concurrent use.
type Manager struct {
	mu            sync.RWMutex
	mappers       map[string]*KeyboardMapper
	current       string
	commandLayout bool
	logger        *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger for the manager and the mappers it builds.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithManagerCommandLayout builds every mapper with WithCommandLayout.
func WithManagerCommandLayout(enabled bool) ManagerOption {
	return func(m *Manager) {
		m.commandLayout = enabled
	}
}

// NewManager creates a manager whose active layout is initial.
func NewManager(initial string, opts ...ManagerOption) *Manager {
	m := &Manager{
		mappers: make(map[string]*KeyboardMapper),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if initial == "" {
		initial = US.ID
	}
	m.Refresh(initial)
	return m
}

// Refresh makes id the active layout, building its mapper if needed.
// Call it whenever the OS reports a layout change.
func (m *Manager) Refresh(id string) *KeyboardMapper {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != id {
		m.logger.Debug("keyboard layout changed", "from", m.current, "to", id)
	}
	m.current = id
	return m.mapperLocked(id)
}

// Mapper returns the mapper for a layout, building it if needed.
func (m *Manager) Mapper(id string) *KeyboardMapper {
	m.mu.RLock()
	mapper, ok := m.mappers[id]
	m.mu.RUnlock()
	if ok {
		return mapper
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mapperLocked(id)
}

// Current returns the mapper for the active layout.
func (m *Manager) Current() *KeyboardMapper {
	return m.Mapper(m.CurrentID())
}

// CurrentID returns the active layout identifier.
func (m *Manager) CurrentID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Len returns the number of cached mappers.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.mappers)
}

func (m *Manager) mapperLocked(id string) *KeyboardMapper {
	if mapper, ok := m.mappers[id]; ok {
		return mapper
	}
	l, ok := Lookup(id)
	if !ok {
		m.logger.Warn("unknown keyboard layout, using US tables", "layout", id)
		l = US
	}
	mapper := NewKeyboardMapper(l,
		WithCommandLayout(m.commandLayout),
		WithMapperLogger(m.logger),
	)
	m.mappers[id] = mapper
	return mapper
}
