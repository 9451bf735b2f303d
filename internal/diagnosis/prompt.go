package diagnosis

import "fmt"

const resultFormat = `{
  "patient_message": "...",
  "relief_tips": ["...", "..."],
  "possible_causes": ["...", "..."],
  "emergency_signs": ["...", "..."],
  "important_note": "...",
  "references": ["...", "..."]
}`

// BuildPrompt asks for advice in the patient's language as a JSON object
// with the full DiagnosisResult field set.
func BuildPrompt(symptom, languageCode string) string {
	return fmt.Sprintf(`You are a rural health assistant. A patient says: %q.
Advise them in simple terms in %s language.
Respond only with a JSON object in exactly this format, with every value written in %s:
%s
`, symptom, LanguageName(languageCode), LanguageName(languageCode), resultFormat)
}

// BuildQuickPrompt is the English-only variant used by the plain symptom checker.
func BuildQuickPrompt(symptom string) string {
	return fmt.Sprintf(`You are a rural health assistant. A patient says: %q. Give advice.

Respond with a JSON object exactly, like this:
%s
`, symptom, resultFormat)
}
