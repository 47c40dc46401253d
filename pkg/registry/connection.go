package registry

// Connection is an expected or user-asserted relationship between two
// elements. Ground-truth connections are static and immutable; user
// connections live in the session store.
type Connection struct {
	ID             string         `json:"id"`
	SourceID       string         `json:"sourceId"`
	TargetID       string         `json:"targetId"`
	ConnectionType ConnectionType `json:"connectionType"`
	DataFlow       DataFlow       `json:"dataFlow"`
	Direction      Direction      `json:"direction,omitempty"`
	UserCreated    bool           `json:"userCreated"`
}

// PairKey returns a canonical key for the connection's unordered endpoint
// pair. A connection from A to B and one from B to A share the same key.
func (c Connection) PairKey() string {
	return PairKey(c.SourceID, c.TargetID)
}

// PairKey builds the canonical unordered-pair key for two element ids.
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// SameEndpoints reports whether two connections join the same unordered pair
// of elements, regardless of declared direction.
func (c Connection) SameEndpoints(other Connection) bool {
	return (c.SourceID == other.SourceID && c.TargetID == other.TargetID) ||
		(c.SourceID == other.TargetID && c.TargetID == other.SourceID)
}
