package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// pipeline builds the http.HandlerFunc for one compiled route. The steps
// run strictly in order — pre-hook, extraction, validation, handler,
// encoding — and any failure is forwarded exactly once to the error
// translator. No step after a failure runs.
func pipeline(def RouteDefinition, host Host, translate ErrorTranslator) http.HandlerFunc {
	paramKeys := def.Pattern.ParamKeys()

	return func(w http.ResponseWriter, r *http.Request) {
		rec := &responseRecorder{ResponseWriter: w}
		ctx := r.Context()

		if def.Before != nil {
			if err := def.Before(ctx, r); err != nil {
				translate(rec, r, err)
				return
			}
		}

		req := &Request{
			Params: host.PathParams(r, paramKeys),
			Query:  firstQueryValues(r),
			Raw:    r,
		}

		if def.Verb.hasBody() {
			body, err := decodeBody(r)
			if err != nil {
				translate(rec, r, err)
				return
			}
			req.Body = body
		}

		if def.Schema != nil {
			if verr := def.Schema.Validate(req); verr != nil {
				translate(rec, r, verr)
				return
			}
		}

		result, err := def.Handler(ctx, req)
		if err != nil {
			translate(rec, r, err)
			return
		}

		if result == nil {
			// Empty success: creation verbs acknowledge with 201, the
			// rest with 204.
			if def.Verb == VerbPost {
				rec.WriteHeader(http.StatusCreated)
			} else {
				rec.WriteHeader(http.StatusNoContent)
			}
			return
		}

		writeJSON(rec, http.StatusOK, result)
	}
}

// firstQueryValues flattens the query string to its first values.
func firstQueryValues(r *http.Request) map[string]string {
	values := r.URL.Query()
	out := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			out[key] = vals[0]
		}
	}
	return out
}

// decodeBody reads the JSON request body. An absent body yields nil; a
// malformed one is a validation failure, not an internal error.
func decodeBody(r *http.Request) (any, error) {
	if r.Body == nil {
		return nil, nil
	}

	var body any
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &ValidationError{
			Message: "Validation failed",
			Issues:  []FieldIssue{{Field: "body", Message: "must be valid JSON"}},
		}
	}
	return body, nil
}
