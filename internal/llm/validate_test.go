package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func answerSchema() *Schema {
	return &Schema{
		Name: "validate-test-answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answer": map[string]any{
					"type": "string",
					"enum": []any{"A", "B", "C", "D"},
				},
			},
			"required":             []any{"answer"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	if err := validateResponse(answerSchema(), json.RawMessage(`{"answer":"C"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	err := validateResponse(answerSchema(), json.RawMessage(`{"answer":`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_SchemaViolation(t *testing.T) {
	err := validateResponse(answerSchema(), json.RawMessage(`{"answer":"E"}`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
	if string(invResp.Content) != `{"answer":"E"}` {
		t.Fatalf("content not preserved: %s", invResp.Content)
	}
}

func TestValidateResponse_CompiledSchemaCached(t *testing.T) {
	schema := answerSchema()

	if err := validateResponse(schema, json.RawMessage(`{"answer":"A"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := schemaCache.Load(schema.Name); !ok {
		t.Fatal("schema not cached after first validation")
	}
	if err := validateResponse(schema, json.RawMessage(`{"answer":"B"}`)); err != nil {
		t.Fatalf("unexpected error on cached schema: %v", err)
	}
}
