package registry

import "fmt"

// FunctionalArea answers "what does this system do".
type FunctionalArea string

const (
	FunctionalProduction  FunctionalArea = "production"
	FunctionalControl     FunctionalArea = "control"
	FunctionalMonitoring  FunctionalArea = "monitoring"
	FunctionalLogistics   FunctionalArea = "logistics"
	FunctionalMaintenance FunctionalArea = "maintenance"
	FunctionalQuality     FunctionalArea = "quality"
)

// FunctionalAreas lists every functional area in display order.
var FunctionalAreas = []FunctionalArea{
	FunctionalProduction,
	FunctionalControl,
	FunctionalMonitoring,
	FunctionalLogistics,
	FunctionalMaintenance,
	FunctionalQuality,
}

// OperationalArea answers "how/where is this system organizationally grouped".
type OperationalArea string

const (
	OperationalManufacturing OperationalArea = "manufacturing"
	OperationalSupport       OperationalArea = "support"
	OperationalExternal      OperationalArea = "external"
	OperationalNetwork       OperationalArea = "network"
)

// OperationalAreas lists every operational area in display order.
var OperationalAreas = []OperationalArea{
	OperationalManufacturing,
	OperationalSupport,
	OperationalExternal,
	OperationalNetwork,
}

// ConnectionType categorizes how two systems are linked.
type ConnectionType string

const (
	ConnectionPhysical ConnectionType = "physical"
	ConnectionNetwork  ConnectionType = "network"
	ConnectionWireless ConnectionType = "wireless"
	ConnectionLogical  ConnectionType = "logical"
)

// ConnectionTypes lists every connection type in display order.
var ConnectionTypes = []ConnectionType{
	ConnectionPhysical,
	ConnectionNetwork,
	ConnectionWireless,
	ConnectionLogical,
}

// DataFlow describes whether data moves one way or both ways across a connection.
type DataFlow string

const (
	FlowUnidirectional DataFlow = "unidirectional"
	FlowBidirectional  DataFlow = "bidirectional"
)

// Direction disambiguates the data source for unidirectional flows.
type Direction string

const (
	DirectionNone           Direction = ""
	DirectionSourceToTarget Direction = "source_to_target"
	DirectionTargetToSource Direction = "target_to_source"
)

// ParseFunctionalArea converts a string to a FunctionalArea.
func ParseFunctionalArea(s string) (FunctionalArea, error) {
	for _, a := range FunctionalAreas {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown functional area: %q", s)
}

// ParseOperationalArea converts a string to an OperationalArea.
func ParseOperationalArea(s string) (OperationalArea, error) {
	for _, a := range OperationalAreas {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown operational area: %q", s)
}

// ParseConnectionType converts a string to a ConnectionType.
func ParseConnectionType(s string) (ConnectionType, error) {
	for _, t := range ConnectionTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown connection type: %q", s)
}

// ParseDataFlow converts a string to a DataFlow.
func ParseDataFlow(s string) (DataFlow, error) {
	switch DataFlow(s) {
	case FlowUnidirectional:
		return FlowUnidirectional, nil
	case FlowBidirectional:
		return FlowBidirectional, nil
	default:
		return "", fmt.Errorf("unknown data flow: %q", s)
	}
}

// ParseDirection converts a string to a Direction. An empty string is valid
// and means no declared direction (bidirectional flows).
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionNone, DirectionSourceToTarget, DirectionTargetToSource:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("unknown direction: %q", s)
	}
}

// AreaLabel holds display metadata for a functional or operational area.
type AreaLabel struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// FunctionalAreaLabels carries the display metadata for functional areas.
var FunctionalAreaLabels = []AreaLabel{
	{ID: "production", Label: "Production", Color: "green", Description: "Direct manufacturing processes that create or modify products."},
	{ID: "control", Label: "Control", Color: "blue", Description: "Systems that regulate and manage operational processes."},
	{ID: "monitoring", Label: "Monitoring", Color: "cyan", Description: "Systems that observe, measure, and report on operational conditions without directly controlling them."},
	{ID: "logistics", Label: "Logistics", Color: "orange", Description: "Supply chain and material handling operations."},
	{ID: "maintenance", Label: "Maintenance", Color: "purple", Description: "Equipment upkeep and repair activities."},
	{ID: "quality", Label: "Quality Assurance", Color: "red", Description: "Testing, inspection, and compliance activities."},
}

// OperationalAreaLabels carries the display metadata for operational areas.
var OperationalAreaLabels = []AreaLabel{
	{ID: "manufacturing", Label: "Manufacturing", Color: "blue", Description: "Core production operations directly involved in creating products."},
	{ID: "support", Label: "Support", Color: "purple", Description: "Auxiliary operations that enable manufacturing but don't directly create products."},
	{ID: "external", Label: "External", Color: "red", Description: "Third-party entities and outside-the-fence operations."},
	{ID: "network", Label: "Network", Color: "orange", Description: "Information technology infrastructure and communications systems."},
}
