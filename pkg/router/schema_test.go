package router

import (
	"testing"
)

func TestRulesCollectAllViolations(t *testing.T) {
	rules := Rules{
		"id":   "required,number",
		"name": "required",
		"kind": "oneof=a b",
	}

	issues := rules.Validate(map[string]any{
		"id":   "abc",
		"kind": "c",
	})

	// Violations are reported for every failing field, sorted by name.
	if len(issues) != 3 {
		t.Fatalf("len(issues) = %d, want 3: %+v", len(issues), issues)
	}
	wantFields := []string{"id", "kind", "name"}
	for i, is := range issues {
		if is.Field != wantFields[i] {
			t.Errorf("issues[%d].Field = %q, want %q", i, is.Field, wantFields[i])
		}
		if is.Message == "" {
			t.Errorf("issues[%d] has empty message", i)
		}
	}
}

func TestRulesCleanData(t *testing.T) {
	rules := Rules{"id": "required,number"}
	if issues := rules.Validate(map[string]any{"id": "42"}); issues != nil {
		t.Errorf("issues = %+v, want nil", issues)
	}
}

func TestRulesIgnoreUndeclaredFields(t *testing.T) {
	rules := Rules{"id": "number"}
	issues := rules.Validate(map[string]any{
		"id":    "42",
		"extra": "anything goes",
	})
	if issues != nil {
		t.Errorf("issues = %+v, want nil (undeclared fields pass through)", issues)
	}
}

func TestComposeAllAbsent(t *testing.T) {
	if c := Compose(nil, nil, nil); c != nil {
		t.Errorf("Compose(nil, nil, nil) = %+v, want nil", c)
	}
}

func TestCompositeMemberPrefixes(t *testing.T) {
	c := Compose(
		Rules{"id": "required,number"},
		nil,
		Rules{"name": "required"},
	)

	verr := c.Validate(&Request{
		Params: map[string]string{"id": "abc"},
		Query:  map[string]string{"whatever": "x"},
		Body:   map[string]any{},
	})
	if verr == nil {
		t.Fatal("Validate returned nil, want a ValidationError")
	}
	if len(verr.Issues) != 2 {
		t.Fatalf("len(Issues) = %d, want 2: %+v", len(verr.Issues), verr.Issues)
	}
	if verr.Issues[0].Field != "params.id" {
		t.Errorf("Issues[0].Field = %q, want params.id", verr.Issues[0].Field)
	}
	if verr.Issues[1].Field != "body.name" {
		t.Errorf("Issues[1].Field = %q, want body.name", verr.Issues[1].Field)
	}
}

func TestCompositeAbsentMembersUnconstrained(t *testing.T) {
	c := Compose(Rules{"id": "number"}, nil, nil)

	verr := c.Validate(&Request{
		Params: map[string]string{"id": "7"},
		Query:  map[string]string{"junk": "ignored"},
		Body:   map[string]any{"also": "ignored"},
	})
	if verr != nil {
		t.Errorf("Validate = %+v, want nil", verr)
	}
}

func TestCompositeMissingBodyStillValidated(t *testing.T) {
	c := Compose(nil, nil, Rules{"name": "required"})

	verr := c.Validate(&Request{Body: nil})
	if verr == nil {
		t.Fatal("Validate returned nil, want required violation for absent body")
	}
	if verr.Issues[0].Field != "body.name" {
		t.Errorf("Issues[0].Field = %q, want body.name", verr.Issues[0].Field)
	}
}

func TestCompositeNonObjectBody(t *testing.T) {
	c := Compose(nil, nil, Rules{"name": "required"})

	verr := c.Validate(&Request{Body: []any{"not", "an", "object"}})
	if verr == nil {
		t.Fatal("Validate returned nil, want a ValidationError")
	}
	if len(verr.Issues) != 1 || verr.Issues[0].Field != "body" {
		t.Errorf("Issues = %+v, want a single issue on body", verr.Issues)
	}
}

// staticSchema is a pre-built validator used verbatim in composition.
type staticSchema struct {
	issues []FieldIssue
}

func (s staticSchema) Validate(map[string]any) []FieldIssue {
	return s.issues
}

func TestCompositePreBuiltSchemaUsedVerbatim(t *testing.T) {
	c := Compose(nil, staticSchema{issues: []FieldIssue{{Field: "page", Message: "must be positive"}}}, nil)

	verr := c.Validate(&Request{Query: map[string]string{"page": "-1"}})
	if verr == nil {
		t.Fatal("Validate returned nil, want a ValidationError")
	}
	if verr.Issues[0].Field != "query.page" {
		t.Errorf("Issues[0].Field = %q, want query.page", verr.Issues[0].Field)
	}
	if verr.Issues[0].Message != "must be positive" {
		t.Errorf("Issues[0].Message = %q, want the schema's own message", verr.Issues[0].Message)
	}
}
