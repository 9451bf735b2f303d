package diagnosis

import (
	"fmt"
	"strings"

	"rural-health-assistant/internal/models"
)

// SupportedLanguages maps the language names offered to patients to the
// codes sent with each request.
var SupportedLanguages = map[string]string{
	"english":   "en",
	"hindi":     "hi",
	"kannada":   "kn",
	"marathi":   "mr",
	"tamil":     "ta",
	"telugu":    "te",
	"bengali":   "bn",
	"gujarati":  "gu",
	"malayalam": "ml",
}

// LanguageName returns the display name for code, or code itself when it is
// not one of the supported languages.
func LanguageName(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	for name, c := range SupportedLanguages {
		if c == code {
			return strings.ToUpper(name[:1]) + name[1:]
		}
	}
	return code
}

type sectionLabels struct {
	ReliefTips     string
	EmergencySigns string
	ImportantNote  string
}

var labels = map[string]sectionLabels{
	"en": {
		ReliefTips:     "Relief tips",
		EmergencySigns: "Emergency signs",
		ImportantNote:  "Important note",
	},
	"hi": {
		ReliefTips:     "राहत के उपाय",
		EmergencySigns: "आपातकालीन संकेत",
		ImportantNote:  "महत्वपूर्ण नोट",
	},
}

// ReadAloud flattens a result into the text a voice assistant speaks,
// with section labels in the patient's language (English when unknown).
func ReadAloud(result models.DiagnosisResult, languageCode string) string {
	l, ok := labels[strings.ToLower(languageCode)]
	if !ok {
		l = labels["en"]
	}

	return fmt.Sprintf("%s\n\n%s: %s\n%s: %s\n%s: %s",
		result.PatientMessage,
		l.ReliefTips, strings.Join(result.ReliefTips, "; "),
		l.EmergencySigns, strings.Join(result.EmergencySigns, "; "),
		l.ImportantNote, result.ImportantNote,
	)
}
