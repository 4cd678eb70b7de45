package knowledge

// defaultEntries is the minimal built-in knowledge set, persisted on first
// start when no knowledge file exists.
func defaultEntries() map[string]Entry {
	return map[string]Entry{
		"hemoglobin": {
			Description: "Hemoglobin is a protein in red blood cells that carries oxygen throughout the body.",
			LowCauses:   []string{"Anemia", "Blood loss", "Nutritional deficiency"},
			HighCauses:  []string{"Dehydration", "Lung disease", "Living at high altitude"},
			Recommendations: map[string][]string{
				"low":  {"Increase iron-rich foods", "Consider iron supplements", "Consult a doctor"},
				"high": {"Stay hydrated", "Avoid smoking", "Consult a doctor"},
			},
		},
		"wbc": {
			Description: "White blood cells help fight infections and are part of the immune system.",
			LowCauses:   []string{"Viral infections", "Autoimmune disorders", "Bone marrow problems"},
			HighCauses:  []string{"Infection", "Inflammation", "Leukemia"},
			Recommendations: map[string][]string{
				"low":  {"Avoid infections", "Maintain good hygiene", "Consult a doctor"},
				"high": {"Monitor for infection", "Consult a doctor immediately"},
			},
		},
		"glucose": {
			Description: "Blood glucose levels indicate how much sugar is in your blood.",
			LowCauses:   []string{"Excessive insulin", "Skipped meals", "Excessive exercise"},
			HighCauses:  []string{"Diabetes", "Insulin resistance", "Stress"},
			Recommendations: map[string][]string{
				"low":  {"Eat regular meals", "Monitor blood sugar", "Consult a doctor"},
				"high": {"Reduce sugar intake", "Exercise regularly", "Monitor glucose", "Consult a doctor"},
			},
		},
	}
}
