package llm

import "context"

type Provider interface {
	// Complete wraps the question in the provider's prompt format and returns the completion text.
	Complete(ctx context.Context, question string) (string, error)
	Close() error
}
