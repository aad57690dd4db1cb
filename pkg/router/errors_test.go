package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestTranslateValidationError(t *testing.T) {
	translate := NewErrorTranslator(zerolog.Nop())
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/x", nil)

	translate(rec, r, &ValidationError{
		Message: "Validation failed",
		Issues: []FieldIssue{
			{Field: "params.id", Message: "must be a number"},
			{Field: "body.name", Message: "is required"},
		},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body struct {
		Message string       `json:"message"`
		Errors  []FieldIssue `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.Message != "Validation failed" {
		t.Errorf("message = %q", body.Message)
	}
	if len(body.Errors) != 2 || body.Errors[0].Field != "params.id" || body.Errors[1].Field != "body.name" {
		t.Errorf("errors = %+v, want both issues in order", body.Errors)
	}
}

func TestTranslateDeclaredError(t *testing.T) {
	translate := NewErrorTranslator(zerolog.Nop())
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/x", nil)

	translate(rec, r, Error(http.StatusForbidden, "not yours"))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["message"] != "not yours" {
		t.Errorf("message = %v, want \"not yours\"", body["message"])
	}
	if len(body) != 1 {
		t.Errorf("body = %v, want only the message field", body)
	}
}

func TestTranslateUndeclaredErrorIsOpaque(t *testing.T) {
	translate := NewErrorTranslator(zerolog.Nop())
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/x", nil)

	translate(rec, r, errors.New("pq: connection refused to 10.0.0.8"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["message"] != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("message = %v, want the generic status text", body["message"])
	}
}

func TestTranslateStatusCoder(t *testing.T) {
	translate := NewErrorTranslator(zerolog.Nop())
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/x", nil)

	translate(rec, r, &teapotError{})

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
}

type teapotError struct{}

func (*teapotError) Error() string   { return "short and stout" }
func (*teapotError) StatusCode() int { return http.StatusTeapot }

func TestTranslateAfterResponseStarted(t *testing.T) {
	translate := NewErrorTranslator(zerolog.Nop())
	inner := httptest.NewRecorder()
	rec := &responseRecorder{ResponseWriter: inner}
	r := httptest.NewRequest(http.MethodGet, "/x", nil)

	rec.WriteHeader(http.StatusOK)
	translate(rec, r, errors.New("late failure"))

	if inner.Code != http.StatusOK {
		t.Errorf("status = %d, want the original 200 untouched", inner.Code)
	}
	if inner.Body.Len() != 0 {
		t.Errorf("body = %q, want nothing written after the fact", inner.Body.String())
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(http.StatusConflict, "order %d already shipped", 42)
	if err.Status != http.StatusConflict {
		t.Errorf("Status = %d, want 409", err.Status)
	}
	if err.Message != "order 42 already shipped" {
		t.Errorf("Message = %q", err.Message)
	}
}
