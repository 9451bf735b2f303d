// Package mentor builds the prompts for the study-mentor endpoints.
package mentor

import (
	"fmt"
	"strings"
)

const (
	// DefaultProfile is used by /suggest when the caller sends no profile.
	DefaultProfile = "The student is struggling with Operating Systems and hasn't studied DBMS yet."

	// NoAnswer and NoSuggestion replace an empty model answer.
	NoAnswer     = "No answer found."
	NoSuggestion = "No suggestion generated."
)

// AskPrompt asks the model to explain a concept.
func AskPrompt(query string) string {
	return fmt.Sprintf("You are a helpful AI mentor. Explain this concept clearly: %s", strings.TrimSpace(query))
}

// SuggestPrompt uses DefaultProfile when profile is blank.
func SuggestPrompt(profile string) string {
	profile = strings.TrimSpace(profile)
	if profile == "" {
		profile = DefaultProfile
	}
	return fmt.Sprintf("You are an AI mentor. Given this student profile: %s, suggest the next best topic to study and explain why.", profile)
}
