package adapter

import "context"

// AIService defines the interface for generating financial insights.
type AIService interface {
	// GenerateInsight produces a short commentary from the given prompt.
	GenerateInsight(ctx context.Context, prompt string) (string, error)

	// IsAvailable reports whether the service is configured and usable.
	IsAvailable() bool
}
