// Package tagging scores free text against fixed hazard and sentiment word
// lists. Deterministic substring matching, no learned model.
package tagging

import "strings"

var hazardKeywords = []string{
	"tsunami", "flood", "flooding", "high waves", "rip current",
	"oil spill", "debris", "storm surge", "hurricane", "cyclone",
}

var positiveWords = []string{"calm", "safe", "clear", "ok", "fine"}

var negativeWords = []string{"danger", "warning", "rough", "strong", "huge", "massive", "deadly", "evacuate"}

// ExtractKeywords returns the hazard terms contained in text, case-insensitive.
func ExtractKeywords(text string) []string {
	t := strings.ToLower(text)
	matched := make([]string, 0)
	for _, k := range hazardKeywords {
		if strings.Contains(t, k) {
			matched = append(matched, k)
		}
	}
	return matched
}

// Sentiment labels text positive, negative, or neutral by net word count.
// A tie, including no matches at all, is neutral.
func Sentiment(text string) string {
	t := strings.ToLower(text)
	score := 0
	for _, w := range positiveWords {
		if strings.Contains(t, w) {
			score++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(t, w) {
			score--
		}
	}
	switch {
	case score > 0:
		return "positive"
	case score < 0:
		return "negative"
	default:
		return "neutral"
	}
}
