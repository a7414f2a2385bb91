package gemini

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	"github.com/phrazzld/pokedex-api/internal/identification"
)

//go:embed prompts/identify.tmpl
var defaultPromptTemplate string

// promptData represents the data passed to the prompt template
type promptData struct {
	Input string
}

// loadPromptTemplate parses the template at path, or the embedded default
// when path is empty.
func loadPromptTemplate(path string) (*template.Template, error) {
	content := defaultPromptTemplate
	name := "identify"

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
				identification.ErrInvalidConfig, path, err)
		}
		content = string(raw)
		name = path
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			identification.ErrInvalidConfig, err)
	}

	return tmpl, nil
}

// renderPrompt executes tmpl with the user's text.
func renderPrompt(tmpl *template.Template, input string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, promptData{Input: input}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
