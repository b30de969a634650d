package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"time"
)

var (
	ErrRunNotFound      = errors.New("run not found")
	ErrRunAlreadyExists = errors.New("run already exists")
)

// Manager stores finished runs in memory, keyed case-insensitively by
// short random IDs.
type Manager struct {
	runs map[string]*Run
	mu   sync.RWMutex
}

// NewManager creates an empty run manager.
func NewManager() *Manager {
	return &Manager{
		runs: make(map[string]*Run),
	}
}

// Add stores a run, generating an ID when the run has none.
func (m *Manager) Add(run *Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if run.ID == "" {
		run.ID = m.generateRunID()
	}
	if _, exists := m.runs[strings.ToLower(run.ID)]; exists {
		return ErrRunAlreadyExists
	}

	run.CreatedAt = time.Now()
	run.LastAccessedAt = run.CreatedAt
	m.runs[strings.ToLower(run.ID)] = run
	return nil
}

// Get retrieves a run by ID (case-insensitive) and refreshes its
// access time.
func (m *Manager) Get(id string) (*Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	run, exists := m.runs[strings.ToLower(id)]
	if !exists {
		return nil, ErrRunNotFound
	}
	run.LastAccessedAt = time.Now()
	return run, nil
}

// List returns all stored runs.
func (m *Manager) List() []*Run {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*Run, 0, len(m.runs))
	for _, run := range m.runs {
		result = append(result, run)
	}
	return result
}

// Delete removes a run.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(id)
	if _, exists := m.runs[key]; !exists {
		return ErrRunNotFound
	}
	delete(m.runs, key)
	return nil
}

// CleanupExpiredRuns removes runs not accessed within maxAge and
// reports how many were dropped.
func (m *Manager) CleanupExpiredRuns(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, run := range m.runs {
		if run.LastAccessedAt.Before(cutoff) {
			delete(m.runs, id)
			removed++
		}
	}
	return removed
}

// Count returns the number of stored runs.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.runs)
}

// generateRunID generates a random 4-character run ID.
func (m *Manager) generateRunID() string {
	for {
		bytes := make([]byte, 2)
		rand.Read(bytes)
		id := hex.EncodeToString(bytes)
		if _, exists := m.runs[id]; !exists {
			return id
		}
	}
}
