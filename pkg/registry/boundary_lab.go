package registry

// BoundaryLab builds the system-boundary lab registry: operational zones the
// learner labels with an operational area, and facility stations labeled with
// a functional area.
func BoundaryLab() *Registry {
	elements := []Element{
		{
			ID:          "external-ops-zone",
			Name:        "Zone A",
			Description: "Operational area containing third-party and outside-the-fence facilities",
			Kind:        OperationalOnly,
			GroundTruth: GroundTruth{Operational: OperationalExternal},
		},
		{
			ID:          "flour-supplier",
			Name:        "Flour & Sugar Supplier",
			Description: "Third-party vendor providing raw materials. Contains: delivery trucks, storage silos, supplier contracts",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalLogistics},
		},
		{
			ID:          "packaging-supplier",
			Name:        "Packaging Materials Supplier",
			Description: "External vendor for boxes, labels, wrapping. Contains: delivery schedules, inventory tracking",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalLogistics},
		},
		{
			ID:          "quality-lab",
			Name:        "Third-Party Testing Lab",
			Description: "Independent facility for product testing. Contains: testing equipment, certification processes",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalQuality},
		},
		{
			ID:          "distributors",
			Name:        "Distribution Centers",
			Description: "Warehouses and shipping facilities. Contains: loading docks, tracking systems, delivery routes",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalLogistics},
		},
		{
			ID:          "regulatory-agency",
			Name:        "Food Safety Regulatory Agency",
			Description: "Government oversight organization. Contains: inspection schedules, compliance documentation",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalQuality},
		},
		{
			ID:          "manufacturing-ops-zone",
			Name:        "Zone B",
			Description: "Operational area containing the core production line",
			Kind:        OperationalOnly,
			GroundTruth: GroundTruth{Operational: OperationalManufacturing},
		},
		{
			ID:          "ingredient-preparation-functional-zone",
			Name:        "Ingredient Preparation Station",
			Description: "Raw material processing area. Contains: mixing bowls, measuring equipment, ingredient scales",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalProduction},
		},
		{
			ID:          "mixing-recipe-functional-zone",
			Name:        "Mixing & Recipe Control Station",
			Description: "Dough preparation area. Contains: industrial mixers, recipe terminals, batch tracking systems",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalProduction},
		},
		{
			ID:          "cookie-forming-functional-zone",
			Name:        "Cookie Forming Station",
			Description: "Shape creation area. Contains: molding machines, cutting equipment, conveyor belts",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalProduction},
		},
		{
			ID:          "baking-operations-functional-zone",
			Name:        "Baking Operations Station",
			Description: "Heat treatment area. Contains: industrial ovens, temperature sensors, timing controls",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalProduction},
		},
		{
			ID:          "cooling-systems-functional-zone",
			Name:        "Cooling Systems Station",
			Description: "Temperature reduction area. Contains: cooling racks, ventilation systems, humidity controls",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalProduction},
		},
		{
			ID:          "packaging-finishing-functional-zone",
			Name:        "Packaging & Finishing Station",
			Description: "Final processing area. Contains: wrapping machines, labeling equipment, boxing systems",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalProduction},
		},
		{
			ID:          "support-ops-zone",
			Name:        "Zone C",
			Description: "Operational area containing auxiliary facilities that enable production",
			Kind:        OperationalOnly,
			GroundTruth: GroundTruth{Operational: OperationalSupport},
		},
		{
			ID:          "process-control-functional-zone",
			Name:        "Process Control Center",
			Description: "Central monitoring facility. Contains: SCADA systems, control panels, operator workstations",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalControl},
		},
		{
			ID:          "quality-assurance-functional-zone",
			Name:        "Internal Quality Lab",
			Description: "On-site testing facility. Contains: testing equipment, sample storage, analysis workbenches",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalQuality},
		},
		{
			ID:          "maintenance-operations-functional-zone",
			Name:        "Equipment Maintenance Shop",
			Description: "Repair and upkeep facility. Contains: tool storage, spare parts, maintenance schedules",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalMaintenance},
		},
		{
			ID:          "network-ops-zone",
			Name:        "Zone D",
			Description: "Operational area containing IT and communications infrastructure",
			Kind:        OperationalOnly,
			GroundTruth: GroundTruth{Operational: OperationalNetwork},
		},
		{
			ID:          "data-center-functional-zone",
			Name:        "Data Center Infrastructure",
			Description: "Computing infrastructure facility. Contains: servers, storage systems, backup equipment",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalControl},
		},
		{
			ID:          "network-infrastructure-functional-zone",
			Name:        "Network Infrastructure",
			Description: "Communication systems facility. Contains: switches, routers, firewalls, wireless access points",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalControl},
		},
		{
			ID:          "environmental-monitoring-functional-zone",
			Name:        "Environmental Monitoring Station",
			Description: "Facility climate and safety monitoring. Contains: temperature sensors, humidity sensors, air quality monitors, leak detection systems",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalMonitoring},
		},
		{
			ID:          "production-monitoring-functional-zone",
			Name:        "Production Line Monitoring Station",
			Description: "Real-time production oversight. Contains: conveyor belt sensors, product counters, quality cameras, throughput monitors",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalMonitoring},
		},
		{
			ID:          "security-surveillance-functional-zone",
			Name:        "Security Surveillance Center",
			Description: "Facility security monitoring. Contains: CCTV cameras, access control readers, motion detectors, alarm systems",
			Kind:        FunctionalOnly,
			GroundTruth: GroundTruth{Functional: FunctionalMonitoring},
		},
	}

	r, err := New("system-boundary-lab", elements, nil)
	if err != nil {
		// Static definitions; a failure here is a programming error.
		panic(err)
	}
	return r
}
