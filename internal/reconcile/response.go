package reconcile

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON indicates no parseable JSON could be recovered from a model response.
var ErrNoJSON = errors.New("no parseable JSON in model response")

// jsonObjectRe matches from the first '{' to the last '}' in the text.
// Not nesting-aware: braces inside quoted strings can cause a mis-extract.
var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// ParseModelResponse recovers a JSON payload from raw model output. It first
// strips code-fence markers and tries a direct parse, then falls back to
// extracting the first brace-delimited object from the original text.
// Returns ErrNoJSON when both attempts fail; it never panics on bad input.
func ParseModelResponse(raw string) (json.RawMessage, error) {
	cleaned := strings.ReplaceAll(raw, "```json\n", "")
	cleaned = strings.ReplaceAll(cleaned, "\n```", "")
	cleaned = strings.TrimSpace(cleaned)
	if json.Valid([]byte(cleaned)) {
		return json.RawMessage(cleaned), nil
	}

	if match := jsonObjectRe.FindString(raw); match != "" && json.Valid([]byte(match)) {
		return json.RawMessage(match), nil
	}

	return nil, ErrNoJSON
}
