package quiz

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://quiz.json"

var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"answers": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"oneOf": []any{
					map[string]any{"type": "string", "pattern": "^[A-Za-z]$"},
					map[string]any{"type": "integer", "minimum": 0},
				},
			},
		},
		"options": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]any{"type": "string"},
		},
		"toggles": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"show_question_number": map[string]any{"type": "boolean"},
				"show_correct_answer":  map[string]any{"type": "boolean"},
				"show_feedback":        map[string]any{"type": "boolean"},
				"show_percentage":      map[string]any{"type": "boolean"},
			},
			"additionalProperties": false,
		},
		"messages": map[string]any{
			"type":                 "object",
			"properties":           messageProperties(),
			"additionalProperties": false,
		},
		"display": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"cols": map[string]any{"type": "integer", "minimum": 1, "maximum": 80},
				"rows": map[string]any{"type": "integer", "minimum": 1, "maximum": 4},
			},
			"additionalProperties": false,
		},
	},
	"required":             []any{"answers"},
	"additionalProperties": false,
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// Round-trip through JSON so the compiler sees plain JSON values.
		defBytes, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks a decoded YAML document against the quiz schema.
func validateDocument(doc any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile quiz schema: %w", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return &SchemaError{Err: err}
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &SchemaError{Err: err}
	}
	if err := schema.Validate(parsed); err != nil {
		return &SchemaError{Err: err}
	}
	return nil
}

// messageProperties lists every key of Messages as a string property.
func messageProperties() map[string]any {
	str := map[string]any{"type": "string"}
	return map[string]any{
		"title":           str,
		"loading":         str,
		"choose_option":   str,
		"instruction":     str,
		"question_format": str,
		"correct":         str,
		"incorrect":       str,
		"was_prefix":      str,
		"continue1":       str,
		"continue2":       str,
		"final1":          str,
		"final2":          str,
		"percent_format":  str,
		"tier_high":       str,
		"tier_medium":     str,
		"tier_low":        str,
		"press_to_end":    str,
	}
}
