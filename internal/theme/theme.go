// Package theme tracks the light/dark preference, persists it and mirrors it
// into a presentation attribute.
package theme

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/ideaslot/internal/logger"
)

const (
	// StoreKey is the preference key the mode is persisted under.
	StoreKey = "theme"
	// Attribute is the presentation attribute the mode is applied to.
	Attribute = "data-theme"
)

// Mode is a presentation mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode converts s into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
	}
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Icon returns the glyph shown on the toggle control.
func (m Mode) Icon() string {
	if m == Dark {
		return "☀️"
	}
	return "🌙"
}

func (m Mode) String() string {
	return string(m)
}

// Store is the persistent key/value store the preference lives in.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Sink receives the presentation attribute.
type Sink interface {
	SetAttribute(name, value string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(name, value string)

// SetAttribute calls f.
func (f SinkFunc) SetAttribute(name, value string) {
	f(name, value)
}

// Manager reads, toggles and persists the theme. Persistence failures are
// logged and otherwise ignored, so the mode keeps working in memory.
type Manager struct {
	store Store
	sink  Sink
	log   *logger.Logger
	mode  Mode
}

// NewManager creates a Manager in light mode. Call Initialize before use.
func NewManager(store Store, sink Sink, log *logger.Logger) *Manager {
	return &Manager{
		store: store,
		sink:  sink,
		log:   log.With("component", "theme"),
		mode:  Light,
	}
}

// Initialize loads the persisted mode, defaulting to light, and applies it.
func (m *Manager) Initialize() Mode {
	m.mode = m.load()
	m.apply()
	m.log.Debug("theme initialized: " + m.mode.String())
	return m.mode
}

// Toggle flips the mode, persists it and applies it.
func (m *Manager) Toggle() Mode {
	return m.Set(m.mode.Opposite())
}

// Set switches to mode, persists it and applies it.
func (m *Manager) Set(mode Mode) Mode {
	m.mode = mode
	m.persist()
	m.apply()
	return m.mode
}

// Mode returns the current mode.
func (m *Manager) Mode() Mode {
	return m.mode
}

func (m *Manager) load() Mode {
	if m.store == nil {
		return Light
	}

	raw, ok, err := m.store.Get(StoreKey)
	if err != nil {
		m.log.Warn(err, "theme preference unreadable, using light")
		return Light
	}
	if !ok {
		return Light
	}

	mode, err := ParseMode(raw)
	if err != nil {
		m.log.Warn(err, "theme preference invalid, using light")
		return Light
	}
	return mode
}

func (m *Manager) persist() {
	if m.store == nil {
		return
	}
	if err := m.store.Set(StoreKey, m.mode.String()); err != nil {
		m.log.Warn(err, "theme preference not saved")
	}
}

func (m *Manager) apply() {
	if m.sink == nil {
		return
	}
	m.sink.SetAttribute(Attribute, m.mode.String())
}
