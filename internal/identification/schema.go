package identification

import (
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-json"

	"github.com/phrazzld/pokedex-api/internal/domain"
)

// FieldType is the JSON type of a schema field.
type FieldType string

// Supported field types.
const (
	TypeBoolean FieldType = "boolean"
	TypeString  FieldType = "string"
	TypeInteger FieldType = "integer"
	TypeArray   FieldType = "array"
)

// Field describes one property of the expected reply.
type Field struct {
	Name        string
	Type        FieldType
	Items       FieldType // element type when Type is TypeArray
	Required    bool
	Description string
}

// Schema is a data-level description of a JSON object reply. The same value
// is sent to the service to request structured output and is used to check
// the payload that comes back.
type Schema struct {
	Fields []Field
}

// Required returns the names of the required fields in declaration order.
func (s Schema) Required() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// ResultSchema is the reply shape for domain.IdentificationResult.
var ResultSchema = Schema{
	Fields: []Field{
		{
			Name:        "identified",
			Type:        TypeBoolean,
			Required:    true,
			Description: "Set to true if the user input contains a valid Pokemon name that you can identify. Set to false otherwise.",
		},
		{
			Name:        "name",
			Type:        TypeString,
			Description: "The official name of the Pokemon.",
		},
		{
			Name:        "id",
			Type:        TypeInteger,
			Description: "The National Pokedex ID number of the Pokemon.",
		},
		{
			Name:        "primaryType",
			Type:        TypeString,
			Description: "The primary elemental type of the Pokemon (e.g., Fire, Water, Grass).",
		},
		{
			Name:        "abilities",
			Type:        TypeArray,
			Items:       TypeString,
			Description: "List of natural abilities this Pokemon can have (e.g. 'Static', 'Lightning Rod').",
		},
		{
			Name:        "evolution",
			Type:        TypeString,
			Description: "A short description of its evolution chain (e.g., 'Evolves from Charmander at level 16').",
		},
		{
			Name:        "description",
			Type:        TypeString,
			Description: "A short, engaging Pokedex entry style description (max 2 sentences).",
		},
		{
			Name:        "message",
			Type:        TypeString,
			Required:    true,
			Description: "A conversational response to the user. If a pokemon is found, act like a Pokedex. If not, politely ask for a pokemon name.",
		},
	},
}

// Validate checks a decoded JSON object against the schema. Required fields
// must be present and non-null; present fields must have the declared type.
// Fields the schema does not mention are ignored.
func (s Schema) Validate(obj map[string]any) error {
	for _, f := range s.Fields {
		value, ok := obj[f.Name]
		if !ok || value == nil {
			if f.Required {
				return fmt.Errorf("missing required field %q", f.Name)
			}
			continue
		}
		if err := checkType(f.Type, f.Items, value); err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
	}
	return nil
}

func checkType(want FieldType, items FieldType, value any) error {
	switch want {
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected boolean, got %T", value)
		}
	case TypeString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
	case TypeInteger:
		n, ok := value.(float64)
		if !ok {
			return fmt.Errorf("expected integer, got %T", value)
		}
		if n != math.Trunc(n) || n < float64(math.MinInt) || n >= -float64(math.MinInt) {
			return fmt.Errorf("expected integer, got %v", n)
		}
	case TypeArray:
		list, ok := value.([]any)
		if !ok {
			return fmt.Errorf("expected array, got %T", value)
		}
		for i, item := range list {
			if err := checkType(items, "", item); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("unsupported schema type %q", want)
	}
	return nil
}

// DecodeResult parses a structured reply into a result. Parsing is
// all-or-nothing: any problem yields ErrMalformedPayload and no fields.
// A blank message is rejected so every returned result can be displayed.
func DecodeResult(payload string) (domain.IdentificationResult, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(payload), &obj); err != nil {
		return domain.IdentificationResult{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if obj == nil {
		return domain.IdentificationResult{}, fmt.Errorf("%w: payload is null", ErrMalformedPayload)
	}

	if err := ResultSchema.Validate(obj); err != nil {
		return domain.IdentificationResult{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	result := resultFromObject(obj)

	if strings.TrimSpace(result.Message) == "" {
		return domain.IdentificationResult{}, fmt.Errorf("%w: message is blank", ErrMalformedPayload)
	}

	return result, nil
}

// resultFromObject copies the fields of an object that already passed
// ResultSchema.Validate. Numbers such as 25.0 or 1e2 are accepted for id.
func resultFromObject(obj map[string]any) domain.IdentificationResult {
	str := func(name string) string {
		v, _ := obj[name].(string)
		return v
	}

	result := domain.IdentificationResult{
		Name:        str("name"),
		PrimaryType: str("primaryType"),
		Evolution:   str("evolution"),
		Description: str("description"),
		Message:     str("message"),
	}
	result.Identified, _ = obj["identified"].(bool)
	if n, ok := obj["id"].(float64); ok {
		result.ID = int(n)
	}
	if list, ok := obj["abilities"].([]any); ok {
		result.Abilities = make([]string, 0, len(list))
		for _, item := range list {
			s, _ := item.(string)
			result.Abilities = append(result.Abilities, s)
		}
	}
	return result
}
