package fieldparse

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Manager keeps sessions by ID for callers that span requests.
type Manager struct {
	mu        sync.Mutex
	sessions  map[string]*entry
	extractor Extractor
	idle      time.Duration
	logger    *zap.Logger
	now       func() time.Time

	sweepTicker *time.Ticker
	sweepStop   chan struct{}
	stopOnce    sync.Once
}

// NewManager creates a Manager whose sessions use extractor. Sessions not
// looked up for longer than idle are cancelled and forgotten. With idle <= 0
// they live until Delete or Close.
func NewManager(extractor Extractor, idle time.Duration, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		sessions:  make(map[string]*entry),
		extractor: extractor,
		idle:      idle,
		logger:    logger,
		now:       time.Now,
	}

	if idle > 0 {
		m.sweepTicker = time.NewTicker(idle / 2)
		m.sweepStop = make(chan struct{})
		go m.sweepLoop()
	}
	return m
}

// Create starts a session over text.
func (m *Manager) Create(text string) *Session {
	s := NewSession(uuid.NewString(), m.extractor, text, m.logger)

	m.mu.Lock()
	m.sessions[s.ID()] = &entry{session: s, lastSeen: m.now()}
	m.mu.Unlock()
	return s
}

// Get returns a session or ErrSessionNotFound. A cancelled session is
// forgotten on lookup.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if e.session.Cancelled() {
		delete(m.sessions, id)
		return nil, ErrSessionNotFound
	}
	e.lastSeen = m.now()
	return e.session, nil
}

// Delete cancels a session if it is still running and forgets it.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	e, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	if err := e.session.Cancel(); err != nil && err != ErrFinished {
		return err
	}
	return nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) sweepLoop() {
	for {
		select {
		case <-m.sweepTicker.C:
			m.sweep()
		case <-m.sweepStop:
			return
		}
	}
}

// sweep forgets cancelled sessions and cancels those idle past the timeout.
func (m *Manager) sweep() {
	cutoff := m.now().Add(-m.idle)

	var expired []*Session
	m.mu.Lock()
	for id, e := range m.sessions {
		if e.session.Cancelled() || (m.idle > 0 && e.lastSeen.Before(cutoff)) {
			delete(m.sessions, id)
			expired = append(expired, e.session)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		_ = s.Cancel()
	}
	if len(expired) > 0 {
		m.logger.Debug("field sessions evicted", zap.Int("count", len(expired)))
	}
}

// Close stops the sweeper, cancels every running session and forgets them
// all. It is safe to call more than once.
func (m *Manager) Close() {
	m.stopOnce.Do(func() {
		if m.sweepTicker != nil {
			m.sweepTicker.Stop()
			close(m.sweepStop)
		}
	})

	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*entry)
	m.mu.Unlock()

	for _, e := range sessions {
		_ = e.session.Cancel()
	}
	if len(sessions) > 0 {
		m.logger.Info("field sessions closed", zap.Int("count", len(sessions)))
	}
}
