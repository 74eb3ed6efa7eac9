package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// FirstJSONObject pulls the first {...} blob out of noisy generator output.
// A single surrounding markdown code fence (with or without a language tag)
// is stripped first, then the substring from the first '{' to the last '}'
// is returned. The second return value is false when no such span exists.
//
// The extracted text is not validated: callers should attempt to decode it
// and treat a decode failure the same as an extraction miss.
func FirstJSONObject(s string) (string, bool) {
	t := stripCodeFence(strings.TrimSpace(s))

	open := strings.Index(t, "{")
	last := strings.LastIndex(t, "}")
	if open == -1 || last == -1 || last <= open {
		return "", false
	}
	return t[open : last+1], true
}

// stripCodeFence removes one leading ``` or ```json marker and one trailing
// ``` marker, if present. Anything fancier is left for the brace scan.
func stripCodeFence(s string) string {
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "```json"):
		s = strings.TrimLeft(s[len("```json"):], " \t\r\n")
	case strings.HasPrefix(s, "```"):
		s = strings.TrimLeft(s[len("```"):], " \t\r\n")
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimRight(s[:len(s)-len("```")], " \t\r\n")
	}
	return s
}

// ParseAs decodes content into the target type T. If plain unmarshaling
// fails, the content is run through jsonrepair and decoding is retried, which
// recovers the common model mistakes: single quotes, unquoted keys, trailing
// commas, truncated objects.
func ParseAs[T any](content string) (T, error) {
	var result T

	err := json.Unmarshal([]byte(content), &result)
	if err == nil {
		return result, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
	}

	if err := json.Unmarshal([]byte(repaired), &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w", result, err)
	}
	return result, nil
}
