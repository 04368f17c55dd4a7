package support

import "context"

type MessageRole string

const (
	RoleSystem MessageRole = "system"
	RoleUser   MessageRole = "user"
)

// Message is one role-tagged turn of a completion prompt
type Message struct {
	Role    MessageRole
	Content string
}

// CompletionClient produces text from an ordered sequence of prompt turns
type CompletionClient interface {
	Complete(ctx context.Context, messages []Message, maxTokens int) (string, error)
}

// LanguageDetector classifies text into a language code
type LanguageDetector interface {
	Detect(text string) string
}
