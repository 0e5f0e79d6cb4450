package params

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ListSeparator is the delimiter used by form fields that carry lists,
// e.g. technologies=Go, React ,  ,Postgres → ["Go", "React", "Postgres"].
const ListSeparator = ","

// SplitList splits s on sep, trims every element and drops empty ones.
// It never returns nil so the result encodes as [] rather than null.
func SplitList(s, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(s, sep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DecodeList accepts either a JSON array of strings or a JSON string holding
// a delimited list. Both forms go through the same trim/drop policy.
func DecodeList(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []string{}, nil
	}

	switch raw[0] {
	case '[':
		var items []string
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("list must contain only strings: %w", err)
		}
		out := []string{}
		for _, item := range items {
			if p := strings.TrimSpace(item); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return SplitList(s, ListSeparator), nil
	default:
		return nil, fmt.Errorf("list must be an array or a %q separated string", ListSeparator)
	}
}

// FormBool mirrors how HTML forms send checkboxes: only "true" (any case) is true.
func FormBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
