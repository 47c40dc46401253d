// Package session holds the learner's mutable state for one lab session: area
// assignments per element and user-drawn connections. A Store is safe for
// concurrent use; writes are serialized so a validation run always observes
// the latest assignment.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/liquidswrds/csec3330-labs/pkg/registry"
)

// Assignment is the learner's current classification of one element. A nil
// axis means no assignment on that axis.
type Assignment struct {
	ElementID   string                    `json:"elementId"`
	Functional  *registry.FunctionalArea  `json:"functional"`
	Operational *registry.OperationalArea `json:"operational"`
}

func (a Assignment) empty() bool {
	return a.Functional == nil && a.Operational == nil
}

// Store manages session state against one lab registry.
type Store struct {
	reg         *registry.Registry
	assignments map[string]Assignment
	connections []registry.Connection
	pairs       map[string]string // unordered pair key -> connection id
	mu          sync.RWMutex
}

// NewStore creates an empty store bound to the given registry.
func NewStore(reg *registry.Registry) *Store {
	return &Store{
		reg:         reg,
		assignments: make(map[string]Assignment),
		pairs:       make(map[string]string),
	}
}

// Registry returns the answer-key registry this store is bound to.
func (s *Store) Registry() *registry.Registry {
	return s.reg
}

// SetFunctional sets or clears the functional axis of an element's
// assignment. Passing nil clears the axis. The record is removed once both
// axes are clear, so Has reports false again.
func (s *Store) SetFunctional(elementID string, area *registry.FunctionalArea) error {
	if !s.reg.HasElement(elementID) {
		return fmt.Errorf("%w: %s", ErrUnknownElement, elementID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.assignments[elementID]
	a.ElementID = elementID
	a.Functional = area
	s.storeAssignment(a)
	return nil
}

// SetOperational sets or clears the operational axis of an element's
// assignment. Passing nil clears the axis.
func (s *Store) SetOperational(elementID string, area *registry.OperationalArea) error {
	if !s.reg.HasElement(elementID) {
		return fmt.Errorf("%w: %s", ErrUnknownElement, elementID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.assignments[elementID]
	a.ElementID = elementID
	a.Operational = area
	s.storeAssignment(a)
	return nil
}

// storeAssignment writes or removes the record. Caller holds the lock.
func (s *Store) storeAssignment(a Assignment) {
	if a.empty() {
		delete(s.assignments, a.ElementID)
		return
	}
	s.assignments[a.ElementID] = a
}

// Assignment returns the learner's current assignment for an element. The
// second return is false when no assignment exists.
func (s *Store) Assignment(elementID string) (Assignment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assignments[elementID]
	return a, ok
}

// Has reports whether the element currently has an assignment with at least
// one non-nil axis.
func (s *Store) Has(elementID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.assignments[elementID]
	return ok
}

// AssignmentCount returns the number of elements with an assignment.
func (s *Store) AssignmentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.assignments)
}

// CreateConnection records a user-drawn connection between two elements.
// Endpoints must exist in the registry, the unordered pair must not already
// have a user connection, and unidirectional flows must declare a direction.
// Bidirectional flows carry no direction; any supplied one is discarded.
func (s *Store) CreateConnection(sourceID, targetID string, connType registry.ConnectionType, flow registry.DataFlow, direction registry.Direction) (registry.Connection, error) {
	if !s.reg.HasElement(sourceID) {
		return registry.Connection{}, fmt.Errorf("%w: %s", ErrUnknownEndpoint, sourceID)
	}
	if !s.reg.HasElement(targetID) {
		return registry.Connection{}, fmt.Errorf("%w: %s", ErrUnknownEndpoint, targetID)
	}
	if sourceID == targetID {
		return registry.Connection{}, fmt.Errorf("%w: %s", ErrSelfConnection, sourceID)
	}

	switch flow {
	case registry.FlowUnidirectional:
		if direction == registry.DirectionNone {
			return registry.Connection{}, ErrMissingDirection
		}
	case registry.FlowBidirectional:
		direction = registry.DirectionNone
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := registry.PairKey(sourceID, targetID)
	if existing, dup := s.pairs[key]; dup {
		return registry.Connection{}, fmt.Errorf("%w: %s <-> %s (connection %s)", ErrDuplicateConnection, sourceID, targetID, existing)
	}

	conn := registry.Connection{
		ID:             uuid.NewString(),
		SourceID:       sourceID,
		TargetID:       targetID,
		ConnectionType: connType,
		DataFlow:       flow,
		Direction:      direction,
		UserCreated:    true,
	}
	s.pairs[key] = conn.ID
	s.connections = append(s.connections, conn)
	return conn, nil
}

// DeleteConnection removes one user connection by id. Deleting an unknown id
// is a no-op.
func (s *Store) DeleteConnection(connectionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, conn := range s.connections {
		if conn.ID == connectionID {
			delete(s.pairs, conn.PairKey())
			s.connections = append(s.connections[:i], s.connections[i+1:]...)
			return
		}
	}
}

// Connection returns one user connection by id.
func (s *Store) Connection(connectionID string) (registry.Connection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, conn := range s.connections {
		if conn.ID == connectionID {
			return conn, true
		}
	}
	return registry.Connection{}, false
}

// Connections returns the user connections in creation order.
func (s *Store) Connections() []registry.Connection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]registry.Connection, len(s.connections))
	copy(out, s.connections)
	return out
}

// ConnectionCount returns the number of user connections.
func (s *Store) ConnectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

// Reset clears all assignments and user connections, leaving the store
// indistinguishable from a freshly constructed one.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments = make(map[string]Assignment)
	s.connections = nil
	s.pairs = make(map[string]string)
}

// Snapshot is an immutable copy of the session state, taken atomically so a
// validation run never sees a half-applied mutation.
type Snapshot struct {
	Assignments map[string]Assignment `json:"assignments"`
	Connections []registry.Connection `json:"connections"`
}

// Snapshot copies the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Assignments: make(map[string]Assignment, len(s.assignments)),
		Connections: make([]registry.Connection, len(s.connections)),
	}
	for id, a := range s.assignments {
		snap.Assignments[id] = a
	}
	copy(snap.Connections, s.connections)
	return snap
}
