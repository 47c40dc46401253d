package api

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/liquidswrds/csec3330-labs/pkg/quiz"
	"github.com/liquidswrds/csec3330-labs/pkg/registry"
	"github.com/liquidswrds/csec3330-labs/pkg/session"
)

var (
	// ErrSessionNotFound indicates the session ID does not exist
	ErrSessionNotFound = errors.New("session not found")
	// ErrUnknownLab indicates the lab ID is not in the catalog
	ErrUnknownLab = errors.New("unknown lab")
	// ErrSessionLimit indicates the manager is at capacity
	ErrSessionLimit = errors.New("session limit reached")
)

// labEntry pairs a registry constructor with its quiz questions.
// The constructor runs per session so labs never share state.
type labEntry struct {
	build     func() *registry.Registry
	questions func() []quiz.Question
}

// labCatalog is the set of labs the server can host.
var labCatalog = map[string]labEntry{
	"system-boundary-lab":    {build: registry.BoundaryLab},
	"dual-axis-boundary-lab": {build: registry.DualAxisLab},
	"interconnection-lab": {
		build:     registry.InterconnectionLab,
		questions: quiz.InterconnectionQuestions,
	},
}

// labOrder fixes the catalog listing order.
var labOrder = []string{
	"system-boundary-lab",
	"dual-axis-boundary-lab",
	"interconnection-lab",
}

// Session is one student's working state for one lab.
type Session struct {
	ID        string
	LabID     string
	Store     *session.Store
	Quiz      *quiz.Attempt
	CreatedAt time.Time
}

// SessionManager tracks active sessions in memory. Sessions older than the
// TTL are treated as abandoned: Get rejects them and Create sweeps them
// before the capacity check, so a full server recovers slots without a
// restart. A zero TTL disables expiry.
type SessionManager struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	maxSessions int
	ttl         time.Duration
}

// NewSessionManager creates a session manager with the given capacity and
// session TTL.
func NewSessionManager(maxSessions int, ttl time.Duration) *SessionManager {
	return &SessionManager{
		sessions:    make(map[string]*Session),
		maxSessions: maxSessions,
		ttl:         ttl,
	}
}

func (m *SessionManager) expiredLocked(sess *Session, now time.Time) bool {
	return m.ttl > 0 && now.Sub(sess.CreatedAt) > m.ttl
}

func (m *SessionManager) sweepLocked(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	for id, sess := range m.sessions {
		if m.expiredLocked(sess, now) {
			delete(m.sessions, id)
		}
	}
}

// Create starts a new session for the given lab.
func (m *SessionManager) Create(labID string) (*Session, error) {
	entry, ok := labCatalog[labID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLab, labID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweepLocked(time.Now())
	if len(m.sessions) >= m.maxSessions {
		return nil, ErrSessionLimit
	}

	sess := &Session{
		ID:        uuid.NewString(),
		LabID:     labID,
		Store:     session.NewStore(entry.build()),
		CreatedAt: time.Now().UTC(),
	}
	if entry.questions != nil {
		sess.Quiz = quiz.NewAttempt(entry.questions())
	}

	m.sessions[sess.ID] = sess
	return sess, nil
}

// Get returns the session with the given ID. Expired sessions are removed
// and reported as not found.
func (m *SessionManager) Get(sessionID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if m.expiredLocked(sess, time.Now()) {
		delete(m.sessions, sessionID)
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return sess, nil
}

// Delete removes a session. Deleting a missing session is a no-op.
func (m *SessionManager) Delete(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// Count returns the number of active sessions.
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
