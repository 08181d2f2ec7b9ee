package normalize

import (
	"fmt"
	"strings"
	"unicode"
)

// GenerateKey generates a citation key for a record that arrived without
// one. Format: LastName + Year + suffix (e.g., "Zhang2018-vi"). The key is
// a pure function of the record's fields, so repeated runs produce the
// same key.
func GenerateKey(firstAuthorLast, year, title string) string {
	lastName := sanitizeForCiteKey(firstAuthorLast)
	if lastName == "" {
		lastName = "Unknown"
	}
	if year == "" {
		year = "9999"
	}
	return fmt.Sprintf("%s%s-%s", lastName, year, generateTitleSuffix(title))
}

// sanitizeForCiteKey removes non-alphanumeric characters.
func sanitizeForCiteKey(s string) string {
	var result strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// generateTitleSuffix creates a 2-letter suffix from the title.
func generateTitleSuffix(title string) string {
	// Get first letters of first few significant words
	words := strings.Fields(strings.ToLower(title))
	stopWords := map[string]bool{"a": true, "an": true, "the": true, "of": true, "and": true, "in": true, "on": true, "for": true, "to": true, "with": true}

	var suffix strings.Builder
	for _, word := range words {
		if !stopWords[word] && len(word) > 0 {
			suffix.WriteByte(word[0])
			if suffix.Len() >= 2 {
				break
			}
		}
	}

	// Pad if needed
	for suffix.Len() < 2 {
		suffix.WriteByte('x')
	}

	return suffix.String()
}
