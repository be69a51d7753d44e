package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// jsonObjectRe matches the outermost {...} region in a model response, so
// prose or code fences around the JSON don't break parsing.
var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// firstJSONObject decodes the first JSON object found in a raw model
// response. Direct decode is tried first; otherwise the {...} region is
// located and decoded.
func firstJSONObject(raw string) (map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty model response")
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err == nil {
		return obj, nil
	}

	snippet := jsonObjectRe.FindString(raw)
	if snippet == "" {
		return nil, errors.New("model response did not contain a JSON object")
	}
	if err := json.Unmarshal([]byte(snippet), &obj); err != nil {
		return nil, fmt.Errorf("extracted JSON was not an object: %w", err)
	}
	return obj, nil
}

// stringField returns a trimmed non-empty string field, or nil.
func stringField(m map[string]any, key string) *string {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// floatField returns a numeric field, tolerating string-encoded numbers.
func floatField(m map[string]any, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		return &v
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return &f
		}
	}
	return nil
}

// boolField returns a boolean field, or nil when absent or non-boolean.
func boolField(m map[string]any, key string) *bool {
	if v, ok := m[key].(bool); ok {
		return &v
	}
	return nil
}
