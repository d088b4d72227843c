package service

import (
	"encoding/json"
	"sort"
	"strings"

	"homelandmeals/backend/internal/ai"
)

// ValidationError reports malformed or out-of-range request fields. The
// message names the offending fields; per-field detail is kept for the
// response body.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

func newValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// decodePayload maps a model response payload onto a typed struct. Missing
// keys leave zero values, matching the read-with-defaults contract.
func decodePayload(p ai.Payload, out any) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
