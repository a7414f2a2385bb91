package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/pokedex-api/internal/domain"
	"github.com/phrazzld/pokedex-api/internal/identification"
)

// MockIdentifier implements identification.Identifier for testing
type MockIdentifier struct {
	// IdentifyFn allows test cases to mock the Identify behavior
	IdentifyFn func(ctx context.Context, text string) domain.IdentificationResult

	// Result is returned when IdentifyFn is nil
	Result domain.IdentificationResult

	// Call tracking for verification
	IdentifyCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Identify was called
		Count int

		// Texts contains all texts passed to Identify calls
		Texts []string

		// Contexts contains all contexts passed to Identify calls
		Contexts []context.Context
	}
}

var _ identification.Identifier = (*MockIdentifier)(nil)

// Identify implements the identification.Identifier interface
func (m *MockIdentifier) Identify(ctx context.Context, text string) domain.IdentificationResult {
	// Track call details for verification
	m.IdentifyCalls.mu.Lock()
	m.IdentifyCalls.Count++
	m.IdentifyCalls.Texts = append(m.IdentifyCalls.Texts, text)
	m.IdentifyCalls.Contexts = append(m.IdentifyCalls.Contexts, ctx)
	m.IdentifyCalls.mu.Unlock()

	// Use custom function if provided
	if m.IdentifyFn != nil {
		return m.IdentifyFn(ctx, text)
	}

	return m.Result.Clone()
}

// CallCount returns the number of Identify calls so far.
func (m *MockIdentifier) CallCount() int {
	m.IdentifyCalls.mu.Lock()
	defer m.IdentifyCalls.mu.Unlock()
	return m.IdentifyCalls.Count
}

// LastText returns the text of the most recent Identify call, or "".
func (m *MockIdentifier) LastText() string {
	m.IdentifyCalls.mu.Lock()
	defer m.IdentifyCalls.mu.Unlock()
	if len(m.IdentifyCalls.Texts) == 0 {
		return ""
	}
	return m.IdentifyCalls.Texts[len(m.IdentifyCalls.Texts)-1]
}

// Reset resets the call tracking state
func (m *MockIdentifier) Reset() {
	m.IdentifyCalls.mu.Lock()
	defer m.IdentifyCalls.mu.Unlock()

	m.IdentifyCalls.Count = 0
	m.IdentifyCalls.Texts = nil
	m.IdentifyCalls.Contexts = nil
}

// NewMockIdentifierWithResult creates a MockIdentifier that returns result
func NewMockIdentifierWithResult(result domain.IdentificationResult) *MockIdentifier {
	return &MockIdentifier{Result: result}
}

// MockIdentifierThatFails creates a MockIdentifier that simulates an adapter fault
func MockIdentifierThatFails() *MockIdentifier {
	return &MockIdentifier{Result: identification.Failure()}
}

// MockIdentifierNotFound creates a MockIdentifier that reports no Pokemon in the text
func MockIdentifierNotFound() *MockIdentifier {
	return &MockIdentifier{Result: domain.IdentificationResult{
		Identified: false,
		Message:    "I couldn't find a Pokemon by that name. Please try again.",
	}}
}

// PikachuResult returns a fully populated result for use in tests.
func PikachuResult() domain.IdentificationResult {
	return domain.IdentificationResult{
		Identified:  true,
		Name:        "Pikachu",
		ID:          25,
		PrimaryType: "Electric",
		Abilities:   []string{"Static", "Lightning Rod"},
		Evolution:   "Evolves from Pichu with high friendship, evolves into Raichu with a Thunder Stone.",
		Description: "When several of these Pokemon gather, their electricity could build and cause lightning storms.",
		Message:     "Pikachu detected! The Mouse Pokemon.",
	}
}
