package models

// DiagnosisResult is the JSON object the generation model is asked to produce.
// The canned fallback uses the same shape so clients cannot tell them apart.
type DiagnosisResult struct {
	PatientMessage string   `json:"patient_message"`
	ReliefTips     []string `json:"relief_tips"`
	PossibleCauses []string `json:"possible_causes"`
	EmergencySigns []string `json:"emergency_signs"`
	ImportantNote  string   `json:"important_note"`
	References     []string `json:"references,omitempty"`
}
