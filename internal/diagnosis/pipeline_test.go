package diagnosis

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
	prompts      []string
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return "", errors.New("GenerateFunc not implemented in mock")
}

func newTestPipeline(gen Generator) (*Pipeline, *[]error) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var reported []error
	p := NewPipeline(gen, time.Second, logger)
	p.report = func(_ context.Context, err error, _ map[string]string) { reported = append(reported, err) }
	return p, &reported
}

const modelAnswer = "```json\n" + `{
  "patient_message": "You likely have a mild cold.",
  "relief_tips": ["Rest", "Drink warm water"],
  "possible_causes": ["Viral infection"],
  "emergency_signs": ["Difficulty breathing"],
  "important_note": "See a doctor if it lasts more than 3 days.",
  "references": ["https://www.who.int"]
}` + "\n```"

func TestDiagnose(t *testing.T) {
	gen := &mockGenerator{GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
		return modelAnswer, nil
	}}
	p, reported := newTestPipeline(gen)

	result, err := p.Diagnose(context.Background(), "fever and cough", "hi")
	require.NoError(t, err)

	assert.Equal(t, "You likely have a mild cold.", result.PatientMessage)
	assert.Equal(t, []string{"Rest", "Drink warm water"}, result.ReliefTips)
	assert.Equal(t, []string{"https://www.who.int"}, result.References)
	assert.Empty(t, *reported)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], `"fever and cough"`)
	assert.Contains(t, gen.prompts[0], "Hindi")
	assert.Contains(t, gen.prompts[0], `"references"`)
}

func TestDiagnoseInvalidRequest(t *testing.T) {
	gen := &mockGenerator{}
	p, _ := newTestPipeline(gen)

	_, err := p.Diagnose(context.Background(), "", "en")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = p.Diagnose(context.Background(), "fever", "")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = p.Diagnose(context.Background(), "   ", "en")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	assert.Empty(t, gen.prompts, "model must not be called for invalid input")
}

func TestDiagnoseFallsBack(t *testing.T) {
	tests := []struct {
		name string
		gen  func(ctx context.Context, prompt string) (string, error)
	}{
		{"upstream error", func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("connection refused")
		}},
		{"not json", func(ctx context.Context, prompt string) (string, error) {
			return "I cannot help with that.", nil
		}},
		{"wrong field types", func(ctx context.Context, prompt string) (string, error) {
			return `{"patient_message": "ok", "relief_tips": "rest"}`, nil
		}},
		{"missing patient message", func(ctx context.Context, prompt string) (string, error) {
			return `{}`, nil
		}},
		{"timeout", func(ctx context.Context, prompt string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, reported := newTestPipeline(&mockGenerator{GenerateFunc: tt.gen})
			p.timeout = 20 * time.Millisecond

			result, err := p.Diagnose(context.Background(), "fever", "en")
			require.NoError(t, err)
			assert.Equal(t, Fallback(), result)
			assert.Len(t, *reported, 1)
		})
	}
}

func TestFallbackIsComplete(t *testing.T) {
	fb := Fallback()
	assert.NotEmpty(t, fb.PatientMessage)
	assert.NotEmpty(t, fb.ImportantNote)
	assert.Contains(t, strings.ToLower(fb.ImportantNote), "doctor")
	for _, list := range [][]string{fb.ReliefTips, fb.PossibleCauses, fb.EmergencySigns, fb.References} {
		require.NotEmpty(t, list)
		for _, item := range list {
			assert.NotEmpty(t, item)
		}
	}

	fb.ReliefTips[0] = "changed"
	assert.NotEqual(t, "changed", Fallback().ReliefTips[0])
}

func TestQuickCheck(t *testing.T) {
	gen := &mockGenerator{GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
		return "Advice follows " + modelAnswer, nil
	}}
	p, _ := newTestPipeline(gen)

	result, err := p.QuickCheck(context.Background(), "headache")
	require.NoError(t, err)
	assert.Equal(t, []string{"Viral infection"}, result.PossibleCauses)
	assert.Contains(t, gen.prompts[0], `"headache"`)
}

func TestQuickCheckPropagatesErrors(t *testing.T) {
	p, reported := newTestPipeline(&mockGenerator{GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
		return "no json here", nil
	}})

	_, err := p.QuickCheck(context.Background(), "headache")
	assert.ErrorIs(t, err, ErrMalformedModelOutput)
	assert.Empty(t, *reported)

	_, err = p.QuickCheck(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestDiagnoseMissingListsBecomeEmpty(t *testing.T) {
	p, reported := newTestPipeline(&mockGenerator{GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
		return `{"patient_message": "Rest and drink fluids.", "important_note": "See a doctor if it worsens."}`, nil
	}})

	result, err := p.Diagnose(context.Background(), "tired", "en")
	require.NoError(t, err)
	assert.Empty(t, *reported)

	assert.Equal(t, "Rest and drink fluids.", result.PatientMessage)
	for _, list := range [][]string{result.ReliefTips, result.PossibleCauses, result.EmergencySigns} {
		assert.NotNil(t, list)
		assert.Empty(t, list)
	}

	body, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"relief_tips":[]`)
	assert.NotContains(t, string(body), "null")
}
