package scoring

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParseResponses decodes a response document ({"<question id>": "<option>"},
// JSON or YAML) into a Response Set.
func ParseResponses(data []byte) (Responses, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("scoring.ParseResponses: %w", err)
	}
	return ResponsesFromStrings(raw)
}

// ResponsesFromStrings converts string-keyed responses, as they arrive from
// JSON objects, into a Response Set. Keys must be written in canonical
// decimal form ("1", not "01" or " 1") so that each id has exactly one key.
func ResponsesFromStrings(raw map[string]string) (Responses, error) {
	resp := make(Responses, len(raw))
	for k, v := range raw {
		id, err := strconv.Atoi(k)
		if err != nil || strconv.Itoa(id) != k {
			return nil, fmt.Errorf("scoring.ResponsesFromStrings: invalid question id %q", k)
		}
		resp[id] = v
	}
	return resp, nil
}
