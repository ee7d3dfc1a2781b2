package service

import "context"

// CompletionService abstracts the external text-completion API used by the
// club recommendation quiz. The response is free text with no structural
// guarantee; callers own the parsing and treat the result as advisory only.
type CompletionService interface {
	// Complete submits a prompt with a max-output-token budget and returns the
	// raw completion text.
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
