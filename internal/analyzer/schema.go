package analyzer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildAnalysisJSONSchema returns the JSON-Schema (draft 2020-12 subset)
// that every analysis response must validate against before it is stored.
func BuildAnalysisJSONSchema() map[string]any {
	entity := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "minLength": 1},
			"type": map[string]any{
				"type": "string",
				"enum": []string{"company", "facility", "location", "regulatory_reference"},
			},
			"role": map[string]any{"type": []string{"string", "null"}},
		},
		"required": []string{"name", "type"},
	}

	relationship := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"subject":   map[string]any{"type": "string", "minLength": 1},
			"predicate": map[string]any{"type": "string", "minLength": 1},
			"object":    map[string]any{"type": "string", "minLength": 1},
			"context":   map[string]any{"type": []string{"string", "null"}},
		},
		"required": []string{"subject", "predicate", "object"},
	}

	classification := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"primary_type": map[string]any{
				"type": "string",
				"enum": []string{
					"Application", "Order", "Decision", "Compliance Filing",
					"Correspondence", "Notice", "Conditions Compliance",
					"Financial Submission", "Safety Report", "Environmental Assessment",
				},
			},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"confidence":    map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
			"justification": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []string{"primary_type", "confidence", "justification"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"summary":        map[string]any{"type": "string", "minLength": 1},
			"entities":       map[string]any{"type": "array", "items": entity},
			"relationships":  map[string]any{"type": "array", "items": relationship},
			"classification": classification,
			"key_facts": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []string{"summary", "entities", "relationships", "classification", "key_facts"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
