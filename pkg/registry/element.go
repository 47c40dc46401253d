package registry

// ElementKind is the tagged variant deciding which classification axes an
// element requires. It is fixed at registry construction and never inferred
// from field presence at grading time.
type ElementKind int

const (
	// Unclassified elements require no classification; they exist only as
	// connection endpoints (interconnection lab system nodes).
	Unclassified ElementKind = iota
	// FunctionalOnly elements require only a functional area.
	FunctionalOnly
	// OperationalOnly elements require only an operational area.
	OperationalOnly
	// BothAxes elements require a functional and an operational area.
	BothAxes
)

func (k ElementKind) String() string {
	switch k {
	case Unclassified:
		return "Unclassified"
	case FunctionalOnly:
		return "FunctionalOnly"
	case OperationalOnly:
		return "OperationalOnly"
	case BothAxes:
		return "BothAxes"
	default:
		return "Unknown"
	}
}

// RequiresFunctional reports whether elements of this kind need a functional
// area assignment.
func (k ElementKind) RequiresFunctional() bool {
	return k == FunctionalOnly || k == BothAxes
}

// RequiresOperational reports whether elements of this kind need an
// operational area assignment.
func (k ElementKind) RequiresOperational() bool {
	return k == OperationalOnly || k == BothAxes
}

// GroundTruth holds the correct classification for an element. Which fields
// are meaningful is decided by the element's Kind.
type GroundTruth struct {
	Functional  FunctionalArea  `json:"functional,omitempty"`
	Operational OperationalArea `json:"operational,omitempty"`
}

// Element is one classifiable factory system, zone, or component. Elements are
// created once at lab initialization and are immutable for the session.
type Element struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Kind        ElementKind `json:"-"`
	GroundTruth GroundTruth `json:"-"`
}

// SystemZone locates a system node within the facility.
type SystemZone string

const (
	ZoneProductionFloor SystemZone = "production_floor"
	ZoneControlRoom     SystemZone = "control_room"
	ZoneServerRoom      SystemZone = "server_room"
	ZoneOffice          SystemZone = "office"
	ZoneExternal        SystemZone = "external"
)

// Criticality ranks how essential a system is to operations.
type Criticality string

const (
	CriticalityLow      Criticality = "low"
	CriticalityMedium   Criticality = "medium"
	CriticalityHigh     Criticality = "high"
	CriticalityCritical Criticality = "critical"
)

// SystemMeta carries the descriptive metadata the interconnection lab attaches
// to each system node. Informational only; never consulted by grading.
type SystemMeta struct {
	Type        string      `json:"type"`     // production, support, business, infrastructure
	Category    string      `json:"category"` // control_system, sensor, server, network, external_service
	Criticality Criticality `json:"criticality"`
	Zone        SystemZone  `json:"zone"`
}
