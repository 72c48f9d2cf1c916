// Package session owns the per-visitor state of the application.
//
// Each Session holds its own sleep log and milestone log. Sessions are created
// on a visitor's first request, found again through a cookie, and discarded
// once idle for longer than the configured timeout or when the server stops.
package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/mukundan1989/baebyzleep/internal"
	"github.com/mukundan1989/baebyzleep/internal/storage"
)

type Session struct {
	ID         string
	CreatedAt  time.Time
	Sleep      storage.SleepLogRepository
	Milestones storage.MilestoneRepository

	lastSeen atomic.Int64 // unix nanoseconds
}

func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

type Manager struct {
	sessions      map[string]*Session
	mu            sync.RWMutex
	idleTimeout   time.Duration
	sweepInterval time.Duration
	logger        internal.Logger
	now           func() time.Time
}

func NewManager(idleTimeout, sweepInterval time.Duration, logger internal.Logger) *Manager {
	return &Manager{
		sessions:      make(map[string]*Session),
		idleTimeout:   idleTimeout,
		sweepInterval: sweepInterval,
		logger:        logger,
		now:           time.Now,
	}
}

// Create starts a session with empty logs.
func (m *Manager) Create() *Session {
	now := m.now()
	id := uuid.NewString()
	sleepRepo, milestoneRepo := storage.NewSessionRepositories(m.logger.With("session_id", id))
	s := &Session{
		ID:         id,
		CreatedAt:  now,
		Sleep:      sleepRepo,
		Milestones: milestoneRepo,
	}
	s.touch(now)

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	m.logger.Debugf("session: %s started", id)
	return s
}

// Get returns a live session and marks it as used. Expired sessions are
// reported as missing even before the sweeper removes them.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	now := m.now()
	if m.expired(s, now) {
		return nil, false
	}
	s.touch(now)
	return s, true
}

// End discards a session and everything logged in it.
func (m *Manager) End(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	m.logger.Debugf("session: %s ended", id)
	return true
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep removes idle sessions and reports how many were removed.
func (m *Manager) Sweep() int {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps on every interval until ctx is done, then drops all sessions.
func (m *Manager) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.logger.Infof("session: expired %d idle sessions", n)
			}
		case <-ctx.Done():
			m.mu.Lock()
			n := len(m.sessions)
			m.sessions = make(map[string]*Session)
			m.mu.Unlock()
			m.logger.Infof("session: discarded %d sessions on shutdown", n)
			return nil
		}
	}
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return now.Sub(s.LastSeen()) > m.idleTimeout
}
