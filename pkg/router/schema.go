package router

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validation engine. Rules descriptors are tag
// strings in its syntax (e.g. "required,number").
var validate = validator.New(validator.WithRequiredStructEnabled())

// Schema validates one member of the composite request shape and returns
// every field violation it finds, not just the first. Implementations must
// be safe for concurrent use: one Schema instance serves all requests of a
// route.
type Schema interface {
	Validate(data map[string]any) []FieldIssue
}

// Rules is a plain field-to-rule mapping. It is the lightweight way to
// declare a schema member; anything implementing Schema directly is used
// verbatim instead.
type Rules map[string]string

// Validate runs every field rule against data and collects all violations
// in field-name order. Fields present in data but absent from the rules
// pass through unexamined.
func (r Rules) Validate(data map[string]any) []FieldIssue {
	if len(r) == 0 {
		return nil
	}

	rules := make(map[string]any, len(r))
	for field, tag := range r {
		rules[field] = tag
	}
	if data == nil {
		data = map[string]any{}
	}

	results := validate.ValidateMap(data, rules)
	if len(results) == 0 {
		return nil
	}

	fields := make([]string, 0, len(results))
	for field := range results {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var issues []FieldIssue
	for _, field := range fields {
		err, ok := results[field].(error)
		if !ok {
			continue
		}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				issues = append(issues, FieldIssue{Field: field, Message: ruleMessage(fe)})
			}
			continue
		}
		issues = append(issues, FieldIssue{Field: field, Message: err.Error()})
	}
	return issues
}

// ruleMessage renders a validator failure as a client-facing message.
func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "number", "numeric":
		return "must be a number"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "len":
		return fmt.Sprintf("must have length %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "url":
		return "must be a valid URL"
	case "boolean":
		return "must be a boolean"
	}
	if fe.Param() != "" {
		return fmt.Sprintf("failed rule %s=%s", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("failed rule %s", fe.Tag())
}

// CompositeSchema validates the combined {params, query, body} request
// shape. A nil member imposes no constraint on its part of the request,
// and undeclared sibling data always passes through unexamined.
type CompositeSchema struct {
	Params Schema
	Query  Schema
	Body   Schema
}

// Compose builds a composite from up to three optional schema members.
// It returns nil when all members are absent, which callers treat as
// "no validation".
func Compose(params, query, body Schema) *CompositeSchema {
	if params == nil && query == nil && body == nil {
		return nil
	}
	return &CompositeSchema{Params: params, Query: query, Body: body}
}

// Validate checks every declared member and returns a single
// ValidationError carrying all field violations, with field names
// prefixed by their member ("params.id", "body.name"). A nil return means
// the request is clean.
func (c *CompositeSchema) Validate(req *Request) *ValidationError {
	var issues []FieldIssue

	if c.Params != nil {
		issues = appendIssues(issues, "params", c.Params.Validate(stringMap(req.Params)))
	}
	if c.Query != nil {
		issues = appendIssues(issues, "query", c.Query.Validate(stringMap(req.Query)))
	}
	if c.Body != nil {
		data, issue := bodyData(req.Body)
		if issue != nil {
			issues = append(issues, *issue)
		} else {
			issues = appendIssues(issues, "body", c.Body.Validate(data))
		}
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Message: "Validation failed", Issues: issues}
}

// bodyData shapes the decoded body for member validation. A missing body
// validates as an empty object so required rules still fire; a body that
// decoded to a non-object cannot be field-validated at all.
func bodyData(body any) (map[string]any, *FieldIssue) {
	switch b := body.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return b, nil
	}
	return nil, &FieldIssue{Field: "body", Message: "must be a JSON object"}
}

func stringMap(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func appendIssues(issues []FieldIssue, member string, found []FieldIssue) []FieldIssue {
	for _, is := range found {
		issues = append(issues, FieldIssue{
			Field:   member + "." + is.Field,
			Message: is.Message,
		})
	}
	return issues
}
