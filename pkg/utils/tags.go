package utils

import "strings"

// ParseTags splits a comma-separated tag string into trimmed names.
// Empty entries are dropped, input order is preserved, duplicates are kept
// (the storage upsert resolves them to the same row anyway).
func ParseTags(raw string) []string {
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}

	return tags
}
