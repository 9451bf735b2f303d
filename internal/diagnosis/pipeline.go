package diagnosis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"rural-health-assistant/internal/models"
	"rural-health-assistant/internal/telemetry"
)

// ErrInvalidRequest is returned when the symptom or language is blank.
var ErrInvalidRequest = errors.New("invalid request")

// Generator turns a prompt into free text. genai.Client implements it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Pipeline turns a patient's symptom into a DiagnosisResult using a Generator.
type Pipeline struct {
	gen     Generator
	timeout time.Duration
	log     logrus.FieldLogger
	report  func(ctx context.Context, err error, tags map[string]string)
}

// NewPipeline bounds every model call by timeout.
func NewPipeline(gen Generator, timeout time.Duration, log logrus.FieldLogger) *Pipeline {
	return &Pipeline{
		gen:     gen,
		timeout: timeout,
		log:     log,
		report:  telemetry.CaptureError,
	}
}

// Diagnose asks the model for advice on symptom in the given language.
// The only error it returns is ErrInvalidRequest; any upstream or parse
// failure is logged and answered with Fallback().
func (p *Pipeline) Diagnose(ctx context.Context, symptom, languageCode string) (models.DiagnosisResult, error) {
	symptom = strings.TrimSpace(symptom)
	languageCode = strings.TrimSpace(languageCode)
	if symptom == "" || languageCode == "" {
		return models.DiagnosisResult{}, ErrInvalidRequest
	}

	result, err := p.run(ctx, BuildPrompt(symptom, languageCode))
	if err == nil && result.PatientMessage == "" {
		err = &MalformedOutputError{Err: errors.New("patient_message missing")}
	}
	if err != nil {
		p.log.WithError(err).
			WithField("language", languageCode).
			Warn("⚠️ diagnosis degraded to fallback")
		p.report(ctx, err, map[string]string{"component": "diagnosis", "language": languageCode})
		return Fallback(), nil
	}

	return result, nil
}

// QuickCheck is the English symptom checker. Unlike Diagnose it has no
// fallback: upstream and parse errors are returned to the caller.
func (p *Pipeline) QuickCheck(ctx context.Context, symptom string) (models.DiagnosisResult, error) {
	symptom = strings.TrimSpace(symptom)
	if symptom == "" {
		return models.DiagnosisResult{}, ErrInvalidRequest
	}
	return p.run(ctx, BuildQuickPrompt(symptom))
}

func (p *Pipeline) run(ctx context.Context, prompt string) (models.DiagnosisResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	text, err := p.gen.Generate(ctx, prompt)
	if err != nil {
		return models.DiagnosisResult{}, err
	}

	return decodeResult(text)
}

func decodeResult(text string) (models.DiagnosisResult, error) {
	obj, err := Extract(Sanitize(text))
	if err != nil {
		return models.DiagnosisResult{}, err
	}

	var result models.DiagnosisResult
	if err := json.Unmarshal(obj, &result); err != nil {
		return models.DiagnosisResult{}, &MalformedOutputError{Text: text, Err: err}
	}
	return normalize(result), nil
}

// normalize replaces missing lists with empty ones so clients always receive arrays.
func normalize(r models.DiagnosisResult) models.DiagnosisResult {
	for _, list := range []*[]string{&r.ReliefTips, &r.PossibleCauses, &r.EmergencySigns} {
		if *list == nil {
			*list = []string{}
		}
	}
	return r
}
