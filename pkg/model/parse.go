package model

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseFields recovers the field mapping from a raw model reply. Models
// routinely wrap the JSON in code fences or prose; this strips the
// decoration, brackets the outermost object and validates it before use.
func ParseFields(raw string) (map[string]any, error) {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model reply")
	}

	candidate := s[start : end+1]
	if !gjson.Valid(candidate) {
		return nil, fmt.Errorf("model reply is not valid JSON")
	}

	doc := gjson.Parse(candidate)
	if fields := doc.Get("fields"); fields.IsObject() {
		doc = fields
	}
	if !doc.IsObject() {
		return nil, fmt.Errorf("model reply is not a JSON object")
	}

	mapping, ok := doc.Value().(map[string]any)
	if !ok {
		return nil, fmt.Errorf("model reply is not a JSON object")
	}
	return mapping, nil
}
