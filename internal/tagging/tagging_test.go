package tagging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"tsunami warning", "Tsunami warning issued", []string{"tsunami"}},
		// "flood" matches inside "flooding" too; substring containment is
		// the documented behavior.
		{"multiple matches", "Flooding and debris after the storm surge", []string{"flood", "flooding", "debris", "storm surge"}},
		{"case insensitive", "RIP CURRENT spotted", []string{"rip current"}},
		{"no matches", "Nice day at the beach", []string{}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, ExtractKeywords(tt.text))
		})
	}
}

func TestSentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"positive", "stay safe, all clear", "positive"},
		{"negative", "danger, evacuate now", "negative"},
		{"neutral no matches", "the sky is blue", "neutral"},
		{"tie is neutral", "calm but danger ahead", "neutral"},
		{"empty", "", "neutral"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sentiment(tt.text))
		})
	}
}
