package gemini

import (
	"context"
	"sync"

	"google.golang.org/genai"
)

// fakeGenerator is a ContentGenerator for tests. GenerateContentFn decides the
// response; every request is recorded.
type fakeGenerator struct {
	GenerateContentFn func(ctx context.Context, model string, prompt string) (*genai.GenerateContentResponse, error)

	mu      sync.Mutex
	calls   []fakeCall
	configs []*genai.GenerateContentConfig
}

type fakeCall struct {
	Model  string
	Prompt string
}

func (f *fakeGenerator) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	prompt := promptText(contents)

	f.mu.Lock()
	f.calls = append(f.calls, fakeCall{Model: model, Prompt: prompt})
	f.configs = append(f.configs, config)
	f.mu.Unlock()

	if f.GenerateContentFn == nil {
		return textResponse(`{"identified":false,"message":"Scan complete."}`), nil
	}
	return f.GenerateContentFn(ctx, model, prompt)
}

func (f *fakeGenerator) Calls() []fakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]fakeCall(nil), f.calls...)
}

func (f *fakeGenerator) LastConfig() *genai.GenerateContentConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.configs) == 0 {
		return nil
	}
	return f.configs[len(f.configs)-1]
}

func promptText(contents []*genai.Content) string {
	var out string
	for _, c := range contents {
		if c == nil {
			continue
		}
		for _, p := range c.Parts {
			if p != nil {
				out += p.Text
			}
		}
	}
	return out
}

// textResponse wraps payload in a single-candidate response.
func textResponse(payload string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Role:  string(genai.RoleModel),
					Parts: []*genai.Part{{Text: payload}},
				},
				FinishReason: genai.FinishReasonStop,
			},
		},
	}
}
