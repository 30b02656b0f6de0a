package mock

import (
	"context"
	"sync"
)

// AIService is a scripted stand-in for the insight generation provider.
// Scenarios set the canned response; the suite records the prompts it
// received so steps can assert on them.
type AIService struct {
	mu        sync.Mutex
	available bool
	response  string
	err       error
	prompts   []string
}

// NewAIService returns an available AI service with a default response.
func NewAIService() *AIService {
	return &AIService{
		available: true,
		response:  "Spending held steady this month.",
	}
}

// GenerateInsight returns the scripted response or error.
func (s *AIService) GenerateInsight(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

// IsAvailable reports the scripted availability.
func (s *AIService) IsAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available
}

// SetResponse scripts the next responses.
func (s *AIService) SetResponse(response string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.response = response
	s.err = nil
}

// SetUnavailable makes the service report itself unconfigured.
func (s *AIService) SetUnavailable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available = false
}

// Reset restores defaults and clears recorded prompts. Called between
// scenarios.
func (s *AIService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available = true
	s.response = "Spending held steady this month."
	s.err = nil
	s.prompts = nil
}

// LastPrompt returns the most recent prompt, or empty when none.
func (s *AIService) LastPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.prompts) == 0 {
		return ""
	}
	return s.prompts[len(s.prompts)-1]
}
