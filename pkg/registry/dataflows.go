package registry

// DataflowInfo describes one category of data moving through the factory.
// Reference material for the dataflow analysis panel; not graded.
type DataflowInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	DataType       string `json:"dataType"`       // control_commands, sensor_data, status_reports, configuration, business_data, alarms, logs
	Classification string `json:"classification"` // operational, business, safety_critical
	Sensitivity    string `json:"sensitivity"`    // public, internal, confidential, restricted
	Volume         string `json:"volume"`         // low, medium, high
}

// SecurityThreat describes a threat scenario learners analyze against the
// factory model.
type SecurityThreat struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Type            string   `json:"type"` // unauthorized_access, data_theft, service_disruption, malware, insider_threat
	Severity        string   `json:"severity"`
	Likelihood      string   `json:"likelihood"`
	AffectedSystems []string `json:"affectedSystems"`
	Mitigations     []string `json:"mitigations"`
}

// Dataflows returns the reference catalog of factory data flows.
func Dataflows() []DataflowInfo {
	return []DataflowInfo{
		{ID: "df-recipe-data", Name: "Recipe Configuration Data", Description: "Cookie recipes with ingredient ratios, mixing times, and baking parameters", DataType: "configuration", Classification: "operational", Sensitivity: "confidential", Volume: "low"},
		{ID: "df-sensor-readings", Name: "Temperature Sensor Readings", Description: "Real-time temperature measurements from production equipment", DataType: "sensor_data", Classification: "operational", Sensitivity: "internal", Volume: "medium"},
		{ID: "df-quality-metrics", Name: "Quality Control Metrics", Description: "Product quality measurements and pass/fail indicators", DataType: "sensor_data", Classification: "safety_critical", Sensitivity: "internal", Volume: "high"},
		{ID: "df-inventory-levels", Name: "Inventory Level Data", Description: "Current stock levels of ingredients and packaging materials", DataType: "business_data", Classification: "business", Sensitivity: "internal", Volume: "low"},
		{ID: "df-production-commands", Name: "Production Control Commands", Description: "Start/stop commands and parameter adjustments to production equipment", DataType: "control_commands", Classification: "safety_critical", Sensitivity: "restricted", Volume: "low"},
	}
}

// Threats returns the reference catalog of security threat scenarios.
func Threats() []SecurityThreat {
	return []SecurityThreat{
		{
			ID: "threat-unauthorized-access", Name: "Unauthorized Network Access",
			Description:     "Attackers gaining unauthorized access to industrial control systems through network vulnerabilities",
			Type:            "unauthorized_access", Severity: "critical", Likelihood: "possible",
			AffectedSystems: []string{"mixing-station-controller", "baking-oven-controller", "industrial-network-switch"},
			Mitigations:     []string{"Network segmentation", "Access control lists", "VPN authentication"},
		},
		{
			ID: "threat-recipe-theft", Name: "Recipe Data Theft",
			Description:     "Theft of proprietary cookie recipes and production parameters",
			Type:            "data_theft", Severity: "high", Likelihood: "unlikely",
			AffectedSystems: []string{"recipe-management", "data-historian"},
			Mitigations:     []string{"Data encryption", "Access logging", "Data loss prevention"},
		},
		{
			ID: "threat-production-disruption", Name: "Production Line Disruption",
			Description:     "Malicious or accidental disruption of production processes causing downtime",
			Type:            "service_disruption", Severity: "high", Likelihood: "possible",
			AffectedSystems: []string{"mixing-station-controller", "baking-oven-controller", "packaging-line-automation"},
			Mitigations:     []string{"Backup systems", "Manual overrides", "Change management"},
		},
		{
			ID: "threat-malware-infection", Name: "Industrial Malware",
			Description:     "Malware specifically targeting industrial control systems and causing equipment damage",
			Type:            "malware", Severity: "critical", Likelihood: "unlikely",
			AffectedSystems: []string{"mixing-station-controller", "baking-oven-controller", "recipe-management"},
			Mitigations:     []string{"Air gapping", "Antivirus software", "System hardening"},
		},
		{
			ID: "threat-insider-threat", Name: "Malicious Insider",
			Description:     "Employees or contractors with legitimate access using it for malicious purposes",
			Type:            "insider_threat", Severity: "high", Likelihood: "unlikely",
			AffectedSystems: []string{"recipe-management", "erp-system", "employee-management"},
			Mitigations:     []string{"Least privilege access", "Activity monitoring", "Background checks"},
		},
	}
}
