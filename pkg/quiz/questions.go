package quiz

// InterconnectionQuestions returns the assessment question set for the
// interconnection lab.
func InterconnectionQuestions() []Question {
	return []Question{
		{
			ID:   "q1",
			Type: MultipleChoice,
			Question: "What type of connection would you expect between a temperature sensor and an oven controller?",
			Options: []string{
				"Physical connection",
				"Logical connection",
				"Wireless connection",
				"No connection needed",
			},
			CorrectAnswer: "Physical connection",
			Explanation:   "Temperature sensors typically use physical connections (wired) to oven controllers for reliable, real-time temperature monitoring in industrial environments.",
			Difficulty:    Beginner,
			Points:        10,
		},
		{
			ID:   "q2",
			Type: MultipleChoice,
			Question: "What is the primary security benefit of network segmentation between IT and OT networks?",
			Options: []string{
				"Improved network performance",
				"Reduced hardware costs",
				"Isolation of operational systems from cyber threats",
				"Easier system maintenance",
			},
			CorrectAnswer: "Isolation of operational systems from cyber threats",
			Explanation:   "Network segmentation creates security boundaries that limit the spread of cyber attacks and protect critical operational systems from threats originating in the corporate network.",
			Difficulty:    Intermediate,
			Points:        15,
		},
		{
			ID:            "q3",
			Type:          TrueFalse,
			Question:      "Production control systems should have direct internet connectivity for remote monitoring.",
			CorrectAnswer: "false",
			Explanation:   "Production control systems should never have direct internet connectivity. Remote access should be provided through secure VPN connections and properly configured firewalls.",
			Difficulty:    Beginner,
			Points:        5,
		},
		{
			ID:   "q4",
			Type: MultipleChoice,
			Question: "In the context of industrial cybersecurity, what does \"defense in depth\" mean?",
			Options: []string{
				"Using the strongest possible firewall",
				"Implementing multiple layers of security controls",
				"Hiring more security personnel",
				"Installing the latest antivirus software",
			},
			CorrectAnswer: "Implementing multiple layers of security controls",
			Explanation:   "Defense in depth uses multiple layers of security controls to protect systems. If one layer fails, other layers continue to provide protection.",
			Difficulty:    Advanced,
			Points:        20,
		},
		{
			ID:   "q5",
			Type: MultipleChoice,
			Question: "If data needs to flow from a mixing station controller to the recipe management system, what type of data flow would this be?",
			Options: []string{
				"Unidirectional from controller to recipe system",
				"Unidirectional from recipe system to controller",
				"Bidirectional",
				"No data flow needed",
			},
			CorrectAnswer: "Bidirectional",
			Explanation:   "The recipe system sends recipes and parameters to the controller, while the controller sends back status updates and production data.",
			Difficulty:    Beginner,
			Points:        10,
		},
		{
			ID:   "q6",
			Type: Scenario,
			Question: "A temperature sensor in the baking oven suddenly starts sending erratic readings. The readings are causing the oven controller to make incorrect temperature adjustments. What type of cybersecurity incident is this most likely to be?",
			Options: []string{
				"Equipment malfunction (non-cybersecurity)",
				"Data integrity attack",
				"Denial of service attack",
				"Insider threat",
			},
			CorrectAnswer: "Data integrity attack",
			Explanation:   "Erratic sensor readings that cause incorrect control actions suggest a data integrity attack, where data is manipulated to cause improper system behavior.",
			Difficulty:    Advanced,
			Points:        25,
		},
	}
}
