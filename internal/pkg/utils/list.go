package utils

import (
	"encoding/json"
	"strings"
)

// SplitList reads either a JSON array string or a comma-separated string.
func SplitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "[]" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err == nil {
		return CleanList(items)
	}
	return CleanList(strings.Split(s, ","))
}

// CleanList trims entries and drops empty ones.
func CleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			out = append(out, it)
		}
	}
	return out
}
