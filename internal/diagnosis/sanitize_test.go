package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"upper tag", "```JSON {\"a\": 1} ```", `{"a": 1}`},
		{"no fence", `{"a": 1}`, `{"a": 1}`},
		{"surrounding whitespace", "  \n{\"a\": 1}\n\t", `{"a": 1}`},
		{"prose around fence", "Here you go:\n```json\n{}\n```\nStay well", "Here you go:\n\n{}\n\nStay well"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		`{"patient_message": "rest"}`,
		"plain advice without any fences",
		"```json\n{\"x\": [1, 2]}\n```",
		"   padded   ",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "input %q", in)
	}

	clean := `{"relief_tips": ["drink water"]}`
	assert.Equal(t, clean, Sanitize(clean))
}
