package ai

import (
	"encoding/json"
	"strings"

	"homelandmeals/backend/pkg/logger"
)

// Payload is a parsed model response. Callers read keys with defaults; the
// normalizer guarantees only that the object is well-shaped.
type Payload = map[string]any

// Normalizer turns raw model text into a Payload, substituting a fallback
// when the text cannot be parsed. It never fails: availability is traded
// for strictness at this boundary.
type Normalizer struct {
	log *logger.Logger
}

// NewNormalizer creates a Normalizer. A nil logger disables failure logging.
func NewNormalizer(log *logger.Logger) *Normalizer {
	if log == nil {
		log = logger.Nop()
	}
	return &Normalizer{log: log}
}

// Normalize strips markdown code fences, parses the remainder as JSON, and
// returns the parsed object. On any parse failure it logs and returns the
// caller-supplied fallback, which must conform to the task's key schema.
func (n *Normalizer) Normalize(raw string, fallback Payload) Payload {
	payload, err := parsePayload(raw)
	if err != nil {
		n.log.Warnw("failed to parse model response, using fallback", "error", err)
		return fallback
	}
	return payload
}

// NormalizeRequired behaves like Normalize but additionally falls back when
// the parsed object is missing any of the required keys. This keeps the
// success and fallback paths schema-identical.
func (n *Normalizer) NormalizeRequired(raw string, fallback Payload, required ...string) Payload {
	payload, err := parsePayload(raw)
	if err != nil {
		n.log.Warnw("failed to parse model response, using fallback", "error", err)
		return fallback
	}
	for _, key := range required {
		if _, ok := payload[key]; !ok {
			n.log.Warnw("model response missing required key, using fallback", "key", key)
			return fallback
		}
	}
	return payload
}

func parsePayload(raw string) (Payload, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	text = strings.TrimSpace(text)

	var payload Payload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, err
	}
	return payload, nil
}
