// Package registry holds the immutable answer key for a lab: the catalog of
// classifiable elements with their ground-truth areas, and the expected
// system-to-system connections for the interconnection lab.
package registry

import (
	"errors"
	"fmt"
)

var (
	ErrElementNotFound    = errors.New("element not found")
	ErrDuplicateElement   = errors.New("duplicate element id")
	ErrDuplicatePair      = errors.New("duplicate ground-truth connection pair")
	ErrUnknownEndpoint    = errors.New("connection endpoint not in registry")
	ErrInvalidGroundTruth = errors.New("invalid ground truth for element kind")
)

// Registry is the immutable catalog for one lab variant. Construct it once
// with New and share it freely; all methods are read-only.
type Registry struct {
	labID       string
	elements    []Element
	elementIdx  map[string]int
	connections []Connection
	pairIdx     map[string]int
	meta        map[string]SystemMeta
}

// New builds a registry from static element and connection definitions.
// It verifies the registry invariants up front: unique element ids, ground
// truth present for every required axis, connection endpoints resolvable, and
// at most one ground-truth connection per unordered pair.
func New(labID string, elements []Element, connections []Connection) (*Registry, error) {
	r := &Registry{
		labID:      labID,
		elements:   make([]Element, 0, len(elements)),
		elementIdx: make(map[string]int, len(elements)),
		pairIdx:    make(map[string]int, len(connections)),
		meta:       make(map[string]SystemMeta),
	}

	for _, el := range elements {
		if _, exists := r.elementIdx[el.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateElement, el.ID)
		}
		if err := checkGroundTruth(el); err != nil {
			return nil, err
		}
		r.elementIdx[el.ID] = len(r.elements)
		r.elements = append(r.elements, el)
	}

	for _, conn := range connections {
		if _, ok := r.elementIdx[conn.SourceID]; !ok {
			return nil, fmt.Errorf("%w: %s (connection %s)", ErrUnknownEndpoint, conn.SourceID, conn.ID)
		}
		if _, ok := r.elementIdx[conn.TargetID]; !ok {
			return nil, fmt.Errorf("%w: %s (connection %s)", ErrUnknownEndpoint, conn.TargetID, conn.ID)
		}
		key := conn.PairKey()
		if _, exists := r.pairIdx[key]; exists {
			return nil, fmt.Errorf("%w: %s <-> %s", ErrDuplicatePair, conn.SourceID, conn.TargetID)
		}
		conn.UserCreated = false
		r.pairIdx[key] = len(r.connections)
		r.connections = append(r.connections, conn)
	}

	return r, nil
}

func checkGroundTruth(el Element) error {
	if el.Kind.RequiresFunctional() && el.GroundTruth.Functional == "" {
		return fmt.Errorf("%w: element %s requires a functional area", ErrInvalidGroundTruth, el.ID)
	}
	if el.Kind.RequiresOperational() && el.GroundTruth.Operational == "" {
		return fmt.Errorf("%w: element %s requires an operational area", ErrInvalidGroundTruth, el.ID)
	}
	return nil
}

// LabID identifies which lab variant this registry describes.
func (r *Registry) LabID() string {
	return r.labID
}

// Elements returns the catalog in definition order. The returned slice is
// shared; callers must not modify it. Iteration order is stable and is the
// order feedback is reported in.
func (r *Registry) Elements() []Element {
	return r.elements
}

// Element looks up one element by id.
func (r *Registry) Element(id string) (Element, error) {
	idx, ok := r.elementIdx[id]
	if !ok {
		return Element{}, fmt.Errorf("%w: %s", ErrElementNotFound, id)
	}
	return r.elements[idx], nil
}

// HasElement reports whether the id names a cataloged element.
func (r *Registry) HasElement(id string) bool {
	_, ok := r.elementIdx[id]
	return ok
}

// ElementCount returns the number of cataloged elements.
func (r *Registry) ElementCount() int {
	return len(r.elements)
}

// Connections returns the ground-truth connection list in definition order.
// The returned slice is shared; callers must not modify it.
func (r *Registry) Connections() []Connection {
	return r.connections
}

// ConnectionCount returns the number of ground-truth connections.
func (r *Registry) ConnectionCount() int {
	return len(r.connections)
}

// MatchConnection finds the ground-truth connection for an unordered endpoint
// pair. The second return is false when no expected connection joins the pair.
func (r *Registry) MatchConnection(sourceID, targetID string) (Connection, bool) {
	idx, ok := r.pairIdx[PairKey(sourceID, targetID)]
	if !ok {
		return Connection{}, false
	}
	return r.connections[idx], true
}

// SystemMeta returns the descriptive metadata for a system node, if any was
// registered.
func (r *Registry) SystemMeta(id string) (SystemMeta, bool) {
	m, ok := r.meta[id]
	return m, ok
}

func (r *Registry) setMeta(id string, m SystemMeta) {
	r.meta[id] = m
}
