package interfaces

import "context"

// TextGenerationProvider is the seam between the summarizer and whichever
// LLM backend is configured. Implementations issue a single generation call
// per invocation; the pipeline never retries.
type TextGenerationProvider interface {
	// Generate submits a prompt and returns the generated text.
	// maxTokens bounds the response length in provider tokens.
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// EmailProvider delivers a composed message through a transactional
// email service.
type EmailProvider interface {
	// Send delivers one email. A nil return means the provider accepted
	// the message; any error is terminal for the capture request.
	Send(ctx context.Context, recipient, subject, htmlBody string) error
}
