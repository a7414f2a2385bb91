package gemini

import (
	"google.golang.org/genai"

	"github.com/phrazzld/pokedex-api/internal/identification"
)

var genaiTypes = map[identification.FieldType]genai.Type{
	identification.TypeBoolean: genai.TypeBoolean,
	identification.TypeString:  genai.TypeString,
	identification.TypeInteger: genai.TypeInteger,
	identification.TypeArray:   genai.TypeArray,
}

// toGenaiSchema converts a data-level schema into the object schema sent with
// the request. Property ordering follows the declaration order so the model
// emits "identified" first.
func toGenaiSchema(s identification.Schema) *genai.Schema {
	out := &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       make(map[string]*genai.Schema, len(s.Fields)),
		Required:         s.Required(),
		PropertyOrdering: make([]string, 0, len(s.Fields)),
	}

	for _, f := range s.Fields {
		prop := &genai.Schema{
			Type:        genaiTypes[f.Type],
			Description: f.Description,
		}
		if f.Type == identification.TypeArray {
			prop.Items = &genai.Schema{Type: genaiTypes[f.Items]}
		}
		out.Properties[f.Name] = prop
		out.PropertyOrdering = append(out.PropertyOrdering, f.Name)
	}

	return out
}
