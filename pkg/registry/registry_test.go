package registry

import (
	"errors"
	"testing"
)

func testElements() []Element {
	return []Element{
		{ID: "zone-a", Name: "Zone A", Kind: OperationalOnly, GroundTruth: GroundTruth{Operational: OperationalExternal}},
		{ID: "station-1", Name: "Station 1", Kind: FunctionalOnly, GroundTruth: GroundTruth{Functional: FunctionalProduction}},
		{ID: "station-2", Name: "Station 2", Kind: FunctionalOnly, GroundTruth: GroundTruth{Functional: FunctionalControl}},
		{ID: "sys-1", Name: "System 1", Kind: Unclassified},
	}
}

func TestNew(t *testing.T) {
	r, err := New("test-lab", testElements(), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if r.LabID() != "test-lab" {
		t.Errorf("Expected lab ID test-lab, got %s", r.LabID())
	}
	if r.ElementCount() != 4 {
		t.Errorf("Expected 4 elements, got %d", r.ElementCount())
	}

	el, err := r.Element("station-1")
	if err != nil {
		t.Fatalf("Element lookup failed: %v", err)
	}
	if el.GroundTruth.Functional != FunctionalProduction {
		t.Errorf("Expected ground truth production, got %s", el.GroundTruth.Functional)
	}

	if _, err := r.Element("nope"); !errors.Is(err, ErrElementNotFound) {
		t.Errorf("Expected ErrElementNotFound, got %v", err)
	}
}

func TestNew_DuplicateElement(t *testing.T) {
	elements := testElements()
	elements = append(elements, Element{ID: "station-1", Name: "Dup", Kind: Unclassified})

	if _, err := New("test-lab", elements, nil); !errors.Is(err, ErrDuplicateElement) {
		t.Errorf("Expected ErrDuplicateElement, got %v", err)
	}
}

func TestNew_MissingGroundTruth(t *testing.T) {
	tests := []struct {
		name string
		el   Element
	}{
		{"functional required", Element{ID: "x", Kind: FunctionalOnly}},
		{"operational required", Element{ID: "x", Kind: OperationalOnly}},
		{"both required, one missing", Element{ID: "x", Kind: BothAxes, GroundTruth: GroundTruth{Functional: FunctionalControl}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New("test-lab", []Element{tt.el}, nil); !errors.Is(err, ErrInvalidGroundTruth) {
				t.Errorf("Expected ErrInvalidGroundTruth, got %v", err)
			}
		})
	}
}

func TestNew_ConnectionValidation(t *testing.T) {
	conns := []Connection{
		{ID: "c1", SourceID: "sys-1", TargetID: "station-1", ConnectionType: ConnectionNetwork, DataFlow: FlowBidirectional},
	}
	r, err := New("test-lab", testElements(), conns)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if r.ConnectionCount() != 1 {
		t.Errorf("Expected 1 connection, got %d", r.ConnectionCount())
	}

	// Unknown endpoint
	bad := []Connection{
		{ID: "c1", SourceID: "sys-1", TargetID: "ghost", ConnectionType: ConnectionNetwork, DataFlow: FlowBidirectional},
	}
	if _, err := New("test-lab", testElements(), bad); !errors.Is(err, ErrUnknownEndpoint) {
		t.Errorf("Expected ErrUnknownEndpoint, got %v", err)
	}

	// Same unordered pair twice, endpoints flipped
	dup := []Connection{
		{ID: "c1", SourceID: "sys-1", TargetID: "station-1", ConnectionType: ConnectionNetwork, DataFlow: FlowBidirectional},
		{ID: "c2", SourceID: "station-1", TargetID: "sys-1", ConnectionType: ConnectionPhysical, DataFlow: FlowBidirectional},
	}
	if _, err := New("test-lab", testElements(), dup); !errors.Is(err, ErrDuplicatePair) {
		t.Errorf("Expected ErrDuplicatePair, got %v", err)
	}
}

func TestMatchConnection_UnorderedPair(t *testing.T) {
	conns := []Connection{
		{ID: "c1", SourceID: "sys-1", TargetID: "station-1", ConnectionType: ConnectionNetwork, DataFlow: FlowBidirectional},
	}
	r, err := New("test-lab", testElements(), conns)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, ok := r.MatchConnection("sys-1", "station-1"); !ok {
		t.Error("Expected match in definition order")
	}
	if _, ok := r.MatchConnection("station-1", "sys-1"); !ok {
		t.Error("Expected match with endpoints flipped")
	}
	if _, ok := r.MatchConnection("sys-1", "station-2"); ok {
		t.Error("Expected no match for unrelated pair")
	}
}

func TestPairKey(t *testing.T) {
	if PairKey("a", "b") != PairKey("b", "a") {
		t.Error("PairKey must be order-independent")
	}
	if PairKey("a", "b") == PairKey("a", "c") {
		t.Error("Distinct pairs must have distinct keys")
	}
}

func TestElementKind(t *testing.T) {
	tests := []struct {
		kind        ElementKind
		functional  bool
		operational bool
	}{
		{Unclassified, false, false},
		{FunctionalOnly, true, false},
		{OperationalOnly, false, true},
		{BothAxes, true, true},
	}

	for _, tt := range tests {
		if got := tt.kind.RequiresFunctional(); got != tt.functional {
			t.Errorf("%s.RequiresFunctional() = %v, want %v", tt.kind, got, tt.functional)
		}
		if got := tt.kind.RequiresOperational(); got != tt.operational {
			t.Errorf("%s.RequiresOperational() = %v, want %v", tt.kind, got, tt.operational)
		}
	}
}

func TestParseFunctions(t *testing.T) {
	if _, err := ParseFunctionalArea("production"); err != nil {
		t.Errorf("ParseFunctionalArea(production) failed: %v", err)
	}
	if _, err := ParseFunctionalArea("bogus"); err == nil {
		t.Error("Expected error for unknown functional area")
	}
	if _, err := ParseOperationalArea("network"); err != nil {
		t.Errorf("ParseOperationalArea(network) failed: %v", err)
	}
	if _, err := ParseConnectionType("wireless"); err != nil {
		t.Errorf("ParseConnectionType(wireless) failed: %v", err)
	}
	if _, err := ParseDataFlow("sideways"); err == nil {
		t.Error("Expected error for unknown data flow")
	}
	if d, err := ParseDirection(""); err != nil || d != DirectionNone {
		t.Errorf("ParseDirection(empty) = %v, %v; want DirectionNone, nil", d, err)
	}
}

func TestBuiltinLabs(t *testing.T) {
	boundary := BoundaryLab()
	if boundary.ElementCount() != 23 {
		t.Errorf("Boundary lab: expected 23 elements, got %d", boundary.ElementCount())
	}
	if boundary.ConnectionCount() != 0 {
		t.Errorf("Boundary lab: expected no ground-truth connections, got %d", boundary.ConnectionCount())
	}

	dual := DualAxisLab()
	for _, el := range dual.Elements() {
		if el.Kind != BothAxes {
			t.Errorf("Dual-axis lab element %s: expected BothAxes, got %s", el.ID, el.Kind)
		}
	}

	inter := InterconnectionLab()
	if inter.ConnectionCount() != 12 {
		t.Errorf("Interconnection lab: expected 12 ground-truth connections, got %d", inter.ConnectionCount())
	}
	for _, el := range inter.Elements() {
		if el.Kind != Unclassified {
			t.Errorf("Interconnection lab element %s: expected Unclassified, got %s", el.ID, el.Kind)
		}
	}
	if _, ok := inter.SystemMeta("recipe-management"); !ok {
		t.Error("Expected system metadata for recipe-management")
	}
}
