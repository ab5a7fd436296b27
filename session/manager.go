package session

import "sync"

// Manager maps chat thread IDs to their selection stores.
// Sessions are created on first access and live for the process lifetime.
// It is safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Selections
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Selections),
	}
}

// Session returns the selection store for a thread, creating it if needed.
func (m *Manager) Session(threadID string) *Selections {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[threadID]
	if !ok {
		s = NewSelections()
		m.sessions[threadID] = s
	}
	return s
}

// Len returns the number of active sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
