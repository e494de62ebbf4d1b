package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func enrichmentSchema() *Schema {
	return &Schema{
		Name:        "test-enrichment",
		Description: "Synonyms and an example sentence for a word",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"synonyms": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"example": map[string]any{"type": "string"},
			},
			"required":             []any{"synonyms", "example"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"synonyms":["sofa"],"example":"The couch is red."}`)
	if err := validateResponse(enrichmentSchema(), raw); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateResponseRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "couch, sofa"},
		{"missing required", `{"synonyms":["sofa"]}`},
		{"wrong type", `{"synonyms":"sofa","example":"x"}`},
		{"extra field", `{"synonyms":[],"example":"x","price":3}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateResponse(enrichmentSchema(), json.RawMessage(tc.raw))
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Errorf("err = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage("anything")); err != nil {
		t.Fatalf("nil schema must pass: %v", err)
	}
}

func TestSchemaCompileCached(t *testing.T) {
	s := enrichmentSchema()
	first, err := getCompiledSchema(s)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, err := getCompiledSchema(s)
	if err != nil {
		t.Fatalf("compile cached: %v", err)
	}
	if first != second {
		t.Error("expected the cached compiled schema to be reused")
	}
}
