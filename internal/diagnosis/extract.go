package diagnosis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedModelOutput is matched by every MalformedOutputError.
var ErrMalformedModelOutput = errors.New("malformed model output")

// MalformedOutputError keeps the text that failed to parse for diagnostics.
type MalformedOutputError struct {
	Text string
	Err  error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("%v: %v", ErrMalformedModelOutput, e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

func (e *MalformedOutputError) Is(target error) bool { return target == ErrMalformedModelOutput }

// Extract returns the JSON object contained in text. It first tries the whole
// string, then the span from the first '{' to the last '}'. The returned bytes
// always hold one complete, valid JSON object.
func Extract(text string) (json.RawMessage, error) {
	obj, err := parseObject(text)
	if err == nil {
		return obj, nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || start >= end {
		return nil, &MalformedOutputError{Text: text, Err: err}
	}

	obj, err = parseObject(text[start : end+1])
	if err != nil {
		return nil, &MalformedOutputError{Text: text, Err: err}
	}
	return obj, nil
}

func parseObject(s string) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("not a JSON object")
	}
	return json.RawMessage(strings.TrimSpace(s)), nil
}
