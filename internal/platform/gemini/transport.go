package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/phrazzld/pokedex-api/internal/identification"
)

// ContentGenerator is the single outbound operation the identifier needs.
// *genai.Models satisfies it; tests substitute a fake.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// errMissingAPIKey is reported by the transport used when no credential is configured.
var errMissingAPIKey = errors.New("gemini API key is not configured")

// failingGenerator rejects every request. It stands in for the real client
// when no API key is available so the fault surfaces per call.
type failingGenerator struct {
	err error
}

func (g failingGenerator) GenerateContent(
	context.Context,
	string,
	[]*genai.Content,
	*genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	return nil, g.err
}

// newGenaiGenerator builds the production transport.
func newGenaiGenerator(ctx context.Context, apiKey string, timeout time.Duration) (ContentGenerator, error) {
	if apiKey == "" {
		return failingGenerator{err: errMissingAPIKey}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			Timeout: genai.Ptr(timeout),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create genai client: %v", identification.ErrInvalidConfig, err)
	}

	return client.Models, nil
}

// classifyCallError maps an error from GenerateContent onto the diagnostic
// categories. An error status from the service is ErrRemote; anything that
// kept the request from completing is ErrTransport.
func classifyCallError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: status %d %s: %s", identification.ErrRemote, apiErr.Code, apiErr.Status, apiErr.Message)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return fmt.Errorf("%w: status %d %s: %s", identification.ErrRemote,
			apiErrPtr.Code, apiErrPtr.Status, apiErrPtr.Message)
	}
	return fmt.Errorf("%w: %v", identification.ErrTransport, err)
}

// blockedFinishReasons are finish reasons that mean the text was withheld.
var blockedFinishReasons = map[genai.FinishReason]bool{
	genai.FinishReasonSafety:            true,
	genai.FinishReasonRecitation:        true,
	genai.FinishReasonBlocklist:         true,
	genai.FinishReasonProhibitedContent: true,
	genai.FinishReasonSPII:              true,
}

// responseText extracts the JSON text from resp. A response with no text is
// ErrEmptyPayload, refined to ErrBlocked when the service says why.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", identification.ErrEmptyPayload
	}

	if text := resp.Text(); text != "" {
		return text, nil
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s): %w",
			identification.ErrBlocked, resp.PromptFeedback.BlockReason, identification.ErrEmptyPayload)
	}
	for _, c := range resp.Candidates {
		if c != nil && blockedFinishReasons[c.FinishReason] {
			return "", fmt.Errorf("%w: finish reason %s: %w",
				identification.ErrBlocked, c.FinishReason, identification.ErrEmptyPayload)
		}
	}

	return "", identification.ErrEmptyPayload
}
