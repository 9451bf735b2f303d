package diagnosis

import (
	"regexp"
	"strings"
)

var fenceMarker = regexp.MustCompile("```(?i:json)?")

// Sanitize removes markdown code fences (with or without a json tag) that
// models like to wrap their answers in, then trims surrounding whitespace.
// Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(raw string) string {
	return strings.TrimSpace(fenceMarker.ReplaceAllString(raw, ""))
}
