package roster

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var ErrRosterNotFound = errors.New("roster not found")

// Manager handles roster loading and caching from a directory of YAML
// files. The embedded default roster is always available under the
// name "default".
type Manager struct {
	rosterDir     string
	defaultRoster *Roster
	rosters       map[string]*Roster
	mu            sync.RWMutex
}

// NewManager creates a roster manager over the given directory. An
// empty directory path serves only the embedded default.
func NewManager(rosterDir string) (*Manager, error) {
	if rosterDir != "" {
		if _, err := os.Stat(rosterDir); os.IsNotExist(err) {
			return nil, fmt.Errorf("roster directory does not exist: %s", rosterDir)
		}
	}

	defaultRoster, err := parseRoster(defaultsYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded default roster: %w", err)
	}

	return &Manager{
		rosterDir:     rosterDir,
		defaultRoster: defaultRoster,
		rosters:       make(map[string]*Roster),
	}, nil
}

// LoadRoster loads a roster by name, with or without the .yaml
// extension. Loaded rosters are cached.
func (m *Manager) LoadRoster(name string) (*Roster, error) {
	if name == "" || name == "default" {
		return m.GetDefault(), nil
	}

	m.mu.RLock()
	if r, exists := m.rosters[name]; exists {
		m.mu.RUnlock()
		return r, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if r, exists := m.rosters[name]; exists {
		return r, nil
	}

	if m.rosterDir == "" {
		return nil, ErrRosterNotFound
	}

	filename := name
	if !strings.HasSuffix(filename, ".yaml") && !strings.HasSuffix(filename, ".yml") {
		filename = name + ".yaml"
	}

	data, err := os.ReadFile(filepath.Join(m.rosterDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrRosterNotFound
		}
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	r, err := parseRoster(data)
	if err != nil {
		return nil, err
	}

	m.rosters[name] = r
	return r, nil
}

// ListRosters returns every valid roster in the directory, the
// embedded default first.
func (m *Manager) ListRosters() ([]*Roster, error) {
	rosters := []*Roster{m.GetDefault()}
	if m.rosterDir == "" {
		return rosters, nil
	}

	entries, err := os.ReadDir(m.rosterDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}
		r, err := m.LoadRoster(strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml"))
		if err != nil {
			// Skip invalid rosters
			continue
		}
		rosters = append(rosters, r)
	}

	return rosters, nil
}

// SaveRoster validates and writes a roster to the directory.
func (m *Manager) SaveRoster(name string, r *Roster) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if m.rosterDir == "" {
		return errors.New("no roster directory configured")
	}

	filename := name
	if !strings.HasSuffix(filename, ".yaml") && !strings.HasSuffix(filename, ".yml") {
		filename = name + ".yaml"
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal roster: %w", err)
	}
	if err := os.WriteFile(filepath.Join(m.rosterDir, filename), data, 0644); err != nil {
		return fmt.Errorf("failed to write roster file: %w", err)
	}

	m.mu.Lock()
	m.rosters[name] = r
	m.mu.Unlock()
	return nil
}

// GetDefault returns the embedded default roster.
func (m *Manager) GetDefault() *Roster {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultRoster
}

func parseRoster(data []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoster, err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}
