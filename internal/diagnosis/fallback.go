package diagnosis

import "rural-health-assistant/internal/models"

// Fallback is served whenever the model cannot produce a usable answer.
// Every field is populated; callers get a fresh copy they may modify.
func Fallback() models.DiagnosisResult {
	return models.DiagnosisResult{
		PatientMessage: "Hey there, I know you're not feeling your best right now. We could not analyse your symptoms in detail at the moment, but you're not alone and help is available.",
		ReliefTips: []string{
			"Get some good rest, your body needs time to heal.",
			"Drink clean water and warm fluids regularly to stay hydrated.",
			"Eat light, simple meals and avoid strenuous work until you feel better.",
		},
		PossibleCauses: []string{
			"It might be a common viral infection that usually passes on its own.",
			"Stress, poor sleep or weather changes can also cause symptoms like these.",
		},
		EmergencySigns: []string{
			"A high fever over 103°F (39.4°C) or a fever lasting more than three days.",
			"Trouble breathing, chest pain, fainting or confusion.",
			"Symptoms that suddenly get much worse.",
		},
		ImportantNote: "This is general guidance only. Please consult a doctor or your nearest health centre for proper advice, and seek urgent care if any emergency sign appears.",
		References: []string{
			"World Health Organization health topics: https://www.who.int/health-topics",
		},
	}
}
