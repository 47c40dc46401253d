package registry

// DualAxisLab builds the first-module lab registry, where every element
// carries both a functional and an operational ground truth and the learner
// must identify both.
func DualAxisLab() *Registry {
	elements := []Element{
		// External operations
		dual("external-ops-zone", "External Operations Area", "Operational area containing third-party facilities", FunctionalLogistics, OperationalExternal),
		dual("flour-supplier", "Flour & Sugar Supplier", "Bulk ingredient suppliers with EDI ordering", FunctionalLogistics, OperationalExternal),
		dual("packaging-supplier", "Packaging Materials Supplier", "Film, boxes, labels with RFID tracking", FunctionalLogistics, OperationalExternal),
		dual("quality-lab", "External Quality Lab", "Third-party microbiological testing", FunctionalQuality, OperationalExternal),
		dual("distributors", "Distribution Centers", "Temperature-controlled logistics network", FunctionalLogistics, OperationalExternal),
		dual("regulatory-agency", "Food Safety Regulatory Agency", "FDA/USDA inspection and compliance", FunctionalQuality, OperationalExternal),

		// Manufacturing operations
		dual("manufacturing-ops-zone", "Manufacturing Operations Area", "Operational area containing the production line", FunctionalProduction, OperationalManufacturing),
		dual("ingredient-prep-area", "Ingredient Preparation Area", "Central staging area for ingredient processing", FunctionalProduction, OperationalManufacturing),
		dual("flour-silos", "Flour Storage Silos", "Bulk storage tanks with pneumatic delivery", FunctionalLogistics, OperationalManufacturing),
		dual("ingredient-scales", "Automated Weighing Systems", "High-precision digital scales with batch control", FunctionalProduction, OperationalManufacturing),
		dual("moisture-sensors", "Ingredient Moisture Sensors", "Real-time humidity monitoring probes", FunctionalMonitoring, OperationalManufacturing),
		dual("mixing-area", "Dough Mixing Area", "High-capacity dough preparation zone", FunctionalProduction, OperationalManufacturing),
		dual("industrial-mixers", "Industrial Dough Mixers", "Variable-speed planetary mixers (500L capacity)", FunctionalProduction, OperationalManufacturing),
		dual("recipe-control", "Recipe Management System", "Automated ingredient dosing control", FunctionalControl, OperationalManufacturing),
		dual("mixing-sensors", "Mixing Time & Speed Monitors", "Torque and consistency measurement sensors", FunctionalMonitoring, OperationalManufacturing),
		dual("forming-area", "Cookie Forming Area", "Automated cookie shaping and cutting zone", FunctionalProduction, OperationalManufacturing),
		dual("forming-machines", "Cookie Forming Machines", "Rotary molding and wire-cutting stations", FunctionalProduction, OperationalManufacturing),
		dual("shape-inspection", "Shape Quality Cameras", "Machine vision systems for dimensional check", FunctionalMonitoring, OperationalManufacturing),
		dual("baking-area", "Industrial Baking Area", "High-temperature continuous baking zone", FunctionalProduction, OperationalManufacturing),
		dual("tunnel-ovens", "Continuous Tunnel Ovens", "Multi-zone gas-fired ovens (400°F-450°F)", FunctionalProduction, OperationalManufacturing),
		dual("oven-controls", "Oven Temperature Control", "Zone-based heating and airflow control", FunctionalControl, OperationalManufacturing),
		dual("temperature-monitoring", "Multi-Zone Temperature Sensors", "Infrared and thermocouple monitoring", FunctionalMonitoring, OperationalManufacturing),
		dual("conveyor-sensors", "Conveyor Speed Monitors", "Belt speed and tension monitoring systems", FunctionalMonitoring, OperationalManufacturing),
		dual("cooling-area", "Cookie Cooling Area", "Controlled cooling and conditioning zone", FunctionalProduction, OperationalManufacturing),
		dual("cooling-conveyors", "Cooling Conveyor Systems", "Multi-tier spiral cooling belts", FunctionalProduction, OperationalManufacturing),
		dual("cooling-fans", "Industrial Cooling Fans", "Variable-speed air circulation systems", FunctionalProduction, OperationalManufacturing),
		dual("packaging-area", "Automated Packaging Line", "High-speed packaging and labeling zone", FunctionalProduction, OperationalManufacturing),
		dual("wrapping-machines", "Cookie Wrapping Machines", "Flow-wrap and heat-seal packaging systems", FunctionalProduction, OperationalManufacturing),
		dual("boxing-machines", "Automated Boxing Systems", "Robotic case packing and sealing", FunctionalProduction, OperationalManufacturing),
		dual("weight-checkers", "Package Weight Verification", "High-speed checkweigher systems", FunctionalMonitoring, OperationalManufacturing),
		dual("date-coding", "Date/Lot Code Printers", "Inkjet and laser marking systems", FunctionalProduction, OperationalManufacturing),

		// Support operations
		dual("support-ops-zone", "Support Operations Area", "Operational area containing auxiliary facilities", FunctionalControl, OperationalSupport),
		dual("control-room", "Central Control Room", "Main operations center", FunctionalControl, OperationalSupport),
		dual("hmi-stations", "Operator HMI Stations", "Touchscreen operator interfaces", FunctionalControl, OperationalSupport),
		dual("scada-system", "SCADA System", "Supervisory control and data acquisition", FunctionalControl, OperationalSupport),
		dual("production-database", "Production Database Server", "Batch records and production history", FunctionalControl, OperationalSupport),
		dual("quality-lab-internal", "On-Site Quality Lab", "Internal testing and sampling facility", FunctionalQuality, OperationalSupport),
		dual("lab-equipment", "Testing Equipment", "Analytical instruments and sample prep", FunctionalQuality, OperationalSupport),
		dual("sample-tracking", "Sample Tracking System", "Chain-of-custody tracking for lab samples", FunctionalQuality, OperationalSupport),
		dual("maintenance-shop", "Maintenance Workshop", "Repair bays and tooling", FunctionalMaintenance, OperationalSupport),
		dual("spare-parts", "Spare Parts Inventory", "Critical spares and consumables stock", FunctionalMaintenance, OperationalSupport),
		dual("cmms", "Equipment Maintenance Database", "Computerized maintenance management system", FunctionalMaintenance, OperationalSupport),

		// Network operations
		dual("network-ops-zone", "Network Operations Area", "Operational area containing IT and OT infrastructure", FunctionalControl, OperationalNetwork),
		dual("server-room", "Data Center/Server Room", "Compute and storage infrastructure", FunctionalControl, OperationalNetwork),
		dual("ot-network", "OT Production Network", "Isolated operational technology network", FunctionalControl, OperationalNetwork),
		dual("it-network", "IT Corporate Network", "Business systems, internet access", FunctionalControl, OperationalNetwork),
		dual("wireless-network", "Wireless Network Infrastructure", "Facility WiFi and wireless sensors", FunctionalControl, OperationalNetwork),
		dual("firewall-systems", "Network Security Firewalls", "Perimeter and OT/IT boundary firewalls", FunctionalControl, OperationalNetwork),
		dual("network-switches", "Industrial Network Switches", "Managed switching for the production floor", FunctionalControl, OperationalNetwork),
	}

	r, err := New("dual-axis-boundary-lab", elements, nil)
	if err != nil {
		panic(err)
	}
	return r
}

func dual(id, name, description string, fn FunctionalArea, op OperationalArea) Element {
	return Element{
		ID:          id,
		Name:        name,
		Description: description,
		Kind:        BothAxes,
		GroundTruth: GroundTruth{Functional: fn, Operational: op},
	}
}
