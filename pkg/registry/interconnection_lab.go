package registry

// InterconnectionLab builds the interconnection and dataflow lab registry:
// the factory system nodes and the ground-truth connections learners are
// expected to identify between them.
func InterconnectionLab() *Registry {
	elements := []Element{
		system("recipe-management", "Recipe Management System", "Central system managing cookie recipes, ingredient proportions, and production parameters"),
		system("mixing-station-controller", "Mixing Station Controller", "PLC controlling ingredient mixing processes, timing, and quality parameters"),
		system("baking-oven-controller", "Baking Oven Temperature Controller", "Temperature control system for industrial baking ovens with precise heating control"),
		system("packaging-line-automation", "Packaging Line Automation", "Automated packaging system with wrapping, sealing, and labeling capabilities"),
		system("temperature-sensors", "Temperature Sensors", "Network of temperature sensors throughout production areas monitoring ambient and equipment temperatures"),
		system("quality-sensors", "Quality Control Sensors", "Inline quality sensors measuring moisture, weight, and visual defects in real-time"),
		system("production-cameras", "Production Line Cameras", "High-resolution cameras for quality inspection and process monitoring"),
		system("inventory-management", "Inventory Management System", "Automated inventory tracking for ingredients, packaging materials, and finished products"),
		system("hvac-control", "HVAC Control System", "Building automation system controlling temperature, humidity, and air quality"),
		system("security-cameras", "Security Camera System", "Facility-wide security camera network with recording and monitoring capabilities"),
		system("access-control", "Access Control System", "Electronic access control for secure areas with badge readers and biometric scanners"),
		system("erp-system", "ERP System", "Enterprise Resource Planning system managing finances, HR, and business operations"),
		system("customer-orders", "Customer Order Management", "Web-based system for processing customer orders and delivery scheduling"),
		system("supply-chain", "Supply Chain Coordination", "System coordinating with suppliers for ingredient delivery and logistics"),
		system("employee-management", "Employee Management System", "HR system managing schedules, training records, and employee access permissions"),
		system("industrial-network-switch", "Industrial Network Switch", "Managed Ethernet switch connecting production floor devices"),
		system("corporate-firewall", "Corporate Firewall", "Next-generation firewall protecting corporate network from external threats"),
		system("ot-firewall", "OT Network Firewall", "Specialized firewall separating operational technology from corporate network"),
		system("domain-controller", "Active Directory Server", "Windows domain controller managing user authentication and network resources"),
		system("wireless-access-points", "Wireless Access Points", "Enterprise WiFi access points providing wireless connectivity throughout the facility"),
		system("data-historian", "Data Historian Server", "Industrial data historian collecting and storing time-series data from production systems"),
		system("flour-supplier", "Flour Supplier System", "External supplier system for automated flour delivery scheduling and quality certificates"),
		system("packaging-supplier", "Packaging Supplier", "Automated ordering system for packaging materials and supplies"),
		system("quality-lab", "External Quality Lab", "Third-party quality testing laboratory for regulatory compliance testing"),
	}

	connections := []Connection{
		{ID: "conn-recipe-mixing", SourceID: "recipe-management", TargetID: "mixing-station-controller", ConnectionType: ConnectionNetwork, DataFlow: FlowBidirectional},
		{ID: "conn-recipe-baking", SourceID: "recipe-management", TargetID: "baking-oven-controller", ConnectionType: ConnectionNetwork, DataFlow: FlowBidirectional},
		{ID: "conn-temp-baking", SourceID: "temperature-sensors", TargetID: "baking-oven-controller", ConnectionType: ConnectionPhysical, DataFlow: FlowUnidirectional, Direction: DirectionSourceToTarget},
		{ID: "conn-quality-packaging", SourceID: "quality-sensors", TargetID: "packaging-line-automation", ConnectionType: ConnectionNetwork, DataFlow: FlowUnidirectional, Direction: DirectionSourceToTarget},
		{ID: "conn-switch-mixing", SourceID: "industrial-network-switch", TargetID: "mixing-station-controller", ConnectionType: ConnectionPhysical, DataFlow: FlowBidirectional},
		{ID: "conn-switch-baking", SourceID: "industrial-network-switch", TargetID: "baking-oven-controller", ConnectionType: ConnectionPhysical, DataFlow: FlowBidirectional},
		{ID: "conn-ot-firewall-switch", SourceID: "ot-firewall", TargetID: "industrial-network-switch", ConnectionType: ConnectionPhysical, DataFlow: FlowBidirectional},
		{ID: "conn-corp-firewall-ot-firewall", SourceID: "corporate-firewall", TargetID: "ot-firewall", ConnectionType: ConnectionPhysical, DataFlow: FlowBidirectional},
		{ID: "conn-erp-inventory", SourceID: "erp-system", TargetID: "inventory-management", ConnectionType: ConnectionLogical, DataFlow: FlowBidirectional},
		{ID: "conn-supply-chain-inventory", SourceID: "supply-chain", TargetID: "inventory-management", ConnectionType: ConnectionLogical, DataFlow: FlowBidirectional},
		{ID: "conn-flour-supplier-supply-chain", SourceID: "flour-supplier", TargetID: "supply-chain", ConnectionType: ConnectionNetwork, DataFlow: FlowBidirectional},
		{ID: "conn-historian-mixing", SourceID: "data-historian", TargetID: "mixing-station-controller", ConnectionType: ConnectionNetwork, DataFlow: FlowUnidirectional, Direction: DirectionTargetToSource},
	}

	r, err := New("interconnection-lab", elements, connections)
	if err != nil {
		panic(err)
	}

	for id, m := range systemMetadata {
		r.setMeta(id, m)
	}
	return r
}

func system(id, name, description string) Element {
	return Element{ID: id, Name: name, Description: description, Kind: Unclassified}
}

// systemMetadata carries the descriptive attributes the lab UI displays for
// each system node. Grading never reads these.
var systemMetadata = map[string]SystemMeta{
	"recipe-management":         {Type: "production", Category: "control_system", Criticality: CriticalityCritical, Zone: ZoneControlRoom},
	"mixing-station-controller": {Type: "production", Category: "control_system", Criticality: CriticalityCritical, Zone: ZoneProductionFloor},
	"baking-oven-controller":    {Type: "production", Category: "control_system", Criticality: CriticalityCritical, Zone: ZoneProductionFloor},
	"packaging-line-automation": {Type: "production", Category: "control_system", Criticality: CriticalityHigh, Zone: ZoneProductionFloor},
	"temperature-sensors":       {Type: "production", Category: "sensor", Criticality: CriticalityHigh, Zone: ZoneProductionFloor},
	"quality-sensors":           {Type: "production", Category: "sensor", Criticality: CriticalityHigh, Zone: ZoneProductionFloor},
	"production-cameras":        {Type: "production", Category: "sensor", Criticality: CriticalityMedium, Zone: ZoneProductionFloor},
	"inventory-management":      {Type: "support", Category: "server", Criticality: CriticalityHigh, Zone: ZoneOffice},
	"hvac-control":              {Type: "support", Category: "control_system", Criticality: CriticalityMedium, Zone: ZoneServerRoom},
	"security-cameras":          {Type: "support", Category: "sensor", Criticality: CriticalityMedium, Zone: ZoneServerRoom},
	"access-control":            {Type: "support", Category: "control_system", Criticality: CriticalityHigh, Zone: ZoneServerRoom},
	"erp-system":                {Type: "business", Category: "server", Criticality: CriticalityCritical, Zone: ZoneServerRoom},
	"customer-orders":           {Type: "business", Category: "server", Criticality: CriticalityHigh, Zone: ZoneServerRoom},
	"supply-chain":              {Type: "business", Category: "server", Criticality: CriticalityHigh, Zone: ZoneOffice},
	"employee-management":       {Type: "business", Category: "server", Criticality: CriticalityMedium, Zone: ZoneOffice},
	"industrial-network-switch": {Type: "infrastructure", Category: "network", Criticality: CriticalityCritical, Zone: ZoneProductionFloor},
	"corporate-firewall":        {Type: "infrastructure", Category: "network", Criticality: CriticalityCritical, Zone: ZoneServerRoom},
	"ot-firewall":               {Type: "infrastructure", Category: "network", Criticality: CriticalityCritical, Zone: ZoneServerRoom},
	"domain-controller":         {Type: "infrastructure", Category: "server", Criticality: CriticalityCritical, Zone: ZoneServerRoom},
	"wireless-access-points":    {Type: "infrastructure", Category: "network", Criticality: CriticalityMedium, Zone: ZoneOffice},
	"data-historian":            {Type: "infrastructure", Category: "server", Criticality: CriticalityHigh, Zone: ZoneServerRoom},
	"flour-supplier":            {Type: "business", Category: "external_service", Criticality: CriticalityMedium, Zone: ZoneExternal},
	"packaging-supplier":        {Type: "business", Category: "external_service", Criticality: CriticalityMedium, Zone: ZoneExternal},
	"quality-lab":               {Type: "business", Category: "external_service", Criticality: CriticalityLow, Zone: ZoneExternal},
}
