// Package sentiment classifies review text by fixed keyword stems.
package sentiment

import (
	"strings"

	"reviews/models"
)

// Stems are matched as plain substrings of the lower-cased text.
var (
	PositiveWords = []string{"хорош", "люблю", "отлично", "нрави", "прекрасно"}
	NegativeWords = []string{"плохо", "ненавиж", "ужасно", "отстой", "не работает"}
)

// Classify returns positive when any positive stem occurs, otherwise negative
// when any negative stem occurs, otherwise neutral. Positive always wins a tie.
func Classify(text string) models.Sentiment {
	lower := strings.ToLower(text)

	if containsAny(lower, PositiveWords) {
		return models.SentimentPositive
	}
	if containsAny(lower, NegativeWords) {
		return models.SentimentNegative
	}
	return models.SentimentNeutral
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
