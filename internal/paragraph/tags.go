package paragraph

import "strings"

// NormalizeTags lowercases and trims tags, dropping empties and duplicates.
// First-seen order is preserved.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return []string{}
	}

	seen := make(map[string]bool, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}

// ParseTags splits a comma-separated tag string and normalizes the parts.
func ParseTags(s string) []string {
	return NormalizeTags(strings.Split(s, ","))
}
