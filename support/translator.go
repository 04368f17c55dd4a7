package support

import (
	"context"
	"fmt"
	"strings"
)

const translatorSystemPrompt = "You are a professional translator for customer support. Translate accurately, naturally, and preserve intent, tone, and technical terms."

const translateMaxTokens = 300

// confidencePenaltyMarkers flag a translation that is actually a leaked
// service-error string rather than real output. Hand-curated, matched
// case-insensitively.
var confidencePenaltyMarkers = []string{"error", "failed", "http"}

// Translator turns detected-language text into English with a heuristic
// confidence score
type Translator struct {
	client CompletionClient
}

// NewTranslator creates a Translator backed by the given completion client
func NewTranslator(client CompletionClient) *Translator {
	return &Translator{client: client}
}

// Translate returns the English rendition of text and a confidence score in
// [60, 100]. English input is returned verbatim (trimmed) with confidence
// 100 and no remote call. A remote failure becomes the error text itself,
// which the confidence heuristic then penalizes.
func (t *Translator) Translate(ctx context.Context, text, langCode string) (string, float64) {
	if langCode == "en" {
		return strings.TrimSpace(text), 100.0
	}

	langName := LanguageName(langCode)
	messages := []Message{
		{
			Role:    RoleSystem,
			Content: translatorSystemPrompt,
		},
		{
			Role:    RoleUser,
			Content: fmt.Sprintf("Translate this %s customer message to clear, natural English. Output ONLY the translation.\n\nText: %s", langName, text),
		},
	}

	translation, err := t.client.Complete(ctx, messages, translateMaxTokens)
	if err != nil {
		translation = errorText(err)
	}

	return translation, scoreConfidence(translation)
}

// scoreConfidence is a deterministic word-count heuristic, not a calibrated
// probability: 80 base, 90 at three words, 95 at six, minus 15 (floored at
// 60) when the text looks like a leaked error string.
func scoreConfidence(translation string) float64 {
	confidence := 80.0
	words := len(strings.Fields(translation))
	if words >= 3 {
		confidence = 90.0
	}
	if words >= 6 {
		confidence = 95.0
	}

	lower := strings.ToLower(translation)
	for _, marker := range confidencePenaltyMarkers {
		if strings.Contains(lower, marker) {
			confidence -= 15
			if confidence < 60 {
				confidence = 60
			}
			break
		}
	}
	return confidence
}
