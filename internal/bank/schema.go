package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionSchema is the JSON Schema every bank record must satisfy before it
// is decoded. Records failing it are skipped, never fatal.
var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"sentence": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"options": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 2,
		},
		"correct": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"rule": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"explanation": map[string]any{
			"type": "string",
		},
		"image": map[string]any{
			"type": "string",
		},
		"isLegendary": map[string]any{
			"type": "boolean",
		},
		"isElite": map[string]any{
			"type": "boolean",
		},
		"sarcastic_comment": map[string]any{
			"type": "string",
		},
	},
	"required":             []any{"sentence", "options", "correct", "rule", "explanation"},
	"additionalProperties": false,
}

var (
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
	compileSchemaOnce sync.Once
)

// compiledQuestionSchema compiles questionSchema once and caches the result.
func compiledQuestionSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(questionSchema)
		if err != nil {
			compiledSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compiledSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://grammar-question.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compiledSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, compiledSchemaErr
}

// validateRecord checks one raw bank record against the question schema.
func validateRecord(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compiledQuestionSchema()
	if err != nil {
		return fmt.Errorf("compile question schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
