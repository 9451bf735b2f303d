package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rural-health-assistant/internal/models"
)

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Hindi", LanguageName("hi"))
	assert.Equal(t, "Malayalam", LanguageName("ML"))
	assert.Equal(t, "fr", LanguageName("fr"))
}

func TestReadAloud(t *testing.T) {
	result := models.DiagnosisResult{
		PatientMessage: "Rest well.",
		ReliefTips:     []string{"Water", "Sleep"},
		EmergencySigns: []string{"Chest pain"},
		ImportantNote:  "See a doctor.",
	}

	en := ReadAloud(result, "en")
	assert.Equal(t, "Rest well.\n\nRelief tips: Water; Sleep\nEmergency signs: Chest pain\nImportant note: See a doctor.", en)

	hi := ReadAloud(result, "hi")
	assert.Contains(t, hi, "राहत के उपाय: Water; Sleep")

	assert.Equal(t, en, ReadAloud(result, "ta"), "unknown labels fall back to English")
}
