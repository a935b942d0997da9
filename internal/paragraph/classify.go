package paragraph

import (
	"strings"
	"unicode"
)

// FallbackCategory is returned when no keyword matches.
const FallbackCategory = "General"

// categoryRule pairs a label with its keyword list. Rules are evaluated in
// declaration order and the first matching rule wins; the order below is a
// documented contract, not an implementation accident. Keywords match whole
// words only, so "tech" never matches inside "biotechnology".
type categoryRule struct {
	Label    string
	Keywords []string
}

var categoryRules = []categoryRule{
	{"Technology", []string{
		"tech", "technology", "programming", "software", "computer",
		"code", "coding", "developer", "ai", "internet", "app", "digital",
	}},
	{"Business", []string{
		"business", "startup", "entrepreneur", "marketing", "finance",
		"money", "investment", "economy", "market", "company",
	}},
	{"Health", []string{
		"health", "fitness", "exercise", "diet", "wellness", "medical",
		"medicine", "nutrition", "workout", "meditation",
	}},
	{"Education", []string{
		"education", "learning", "school", "university", "study",
		"teacher", "student", "knowledge", "course",
	}},
	{"Travel", []string{
		"travel", "trip", "vacation", "journey", "destination",
		"adventure", "flight", "hotel", "tourism",
	}},
	{"Food", []string{
		"food", "cooking", "recipe", "restaurant", "meal", "cuisine",
		"baking", "dinner", "breakfast",
	}},
	{"Creative", []string{
		"art", "creative", "creativity", "writing", "design", "music",
		"painting", "poetry", "story",
	}},
	{"Science", []string{
		"science", "research", "experiment", "physics", "chemistry",
		"biology", "scientific", "discovery",
	}},
	{"Personal", []string{
		"personal", "life", "reflection", "diary", "journal",
		"thoughts", "feelings", "gratitude",
	}},
	{"Sports", []string{
		"sports", "football", "basketball", "soccer", "tennis",
		"running", "game", "team", "athlete",
	}},
	{"Entertainment", []string{
		"entertainment", "movie", "film", "television", "show",
		"celebrity", "gaming", "concert",
	}},
}

// Classify maps a paragraph's tags and content to exactly one category.
// Deterministic and total: same input always yields the same label, and
// FallbackCategory is returned when nothing matches.
func Classify(tags []string, content string) string {
	blob := strings.ToLower(strings.Join(tags, " ") + " " + content)
	words := tokenize(blob)

	for _, rule := range categoryRules {
		for _, kw := range rule.Keywords {
			if words[kw] {
				return rule.Label
			}
		}
	}
	return FallbackCategory
}

// Categories returns all category labels in declaration order, with the
// fallback last. Used for UI filter chips.
func Categories() []string {
	labels := make([]string, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		labels = append(labels, rule.Label)
	}
	return append(labels, FallbackCategory)
}

// tokenize splits text into a set of whole words. Letters and digits form
// words; everything else is a boundary.
func tokenize(s string) map[string]bool {
	words := make(map[string]bool)
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			continue
		}
		if sb.Len() > 0 {
			words[sb.String()] = true
			sb.Reset()
		}
	}
	if sb.Len() > 0 {
		words[sb.String()] = true
	}
	return words
}
