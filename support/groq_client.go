package support

import (
	"context"

	"github.com/FrenchMajesty/polyglot-support/clients/groq"
)

// GroqCompletionClient implements CompletionClient using the Groq chat API
type GroqCompletionClient struct {
	client *groq.Client
}

// NewGroqCompletionClient wraps a Groq client as a CompletionClient
func NewGroqCompletionClient(client *groq.Client) *GroqCompletionClient {
	return &GroqCompletionClient{client: client}
}

func (g *GroqCompletionClient) Complete(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	msgs := make([]groq.ChatMessage, len(messages))
	for i, m := range messages {
		msgs[i] = groq.ChatMessage{
			Role:    groq.MessageRole(m.Role),
			Content: m.Content,
		}
	}
	return g.client.Complete(ctx, msgs, maxTokens)
}
