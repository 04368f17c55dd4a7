package support

import (
	"context"
	"fmt"
)

const responderSystemPrompt = "You are a helpful, empathetic customer support agent. Be clear, concise, and provide actionable steps."

const replyMaxTokens = 400

// Responder produces a support reply for an English customer query
type Responder struct {
	client CompletionClient
}

// NewResponder creates a Responder backed by the given completion client
func NewResponder(client CompletionClient) *Responder {
	return &Responder{client: client}
}

// Reply generates a concise, actionable support response. A remote failure
// is rendered as the error text rather than returned as an error.
func (r *Responder) Reply(ctx context.Context, englishQuery string) string {
	messages := []Message{
		{
			Role:    RoleSystem,
			Content: responderSystemPrompt,
		},
		{
			Role:    RoleUser,
			Content: fmt.Sprintf("Customer says: %s\n\nRespond professionally in 2-4 sentences with clear next steps.", englishQuery),
		},
	}

	reply, err := r.client.Complete(ctx, messages, replyMaxTokens)
	if err != nil {
		return errorText(err)
	}
	return reply
}
