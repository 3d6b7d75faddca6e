package generate

import (
	"encoding/json"
	"strings"
)

const (
	fenceTagged = "```json"
	fencePlain  = "```"
)

// ExtractJSON pulls a JSON document out of raw provider text. Providers
// inconsistently wrap their output in markdown code fences, sometimes
// tagged with a language, sometimes not, sometimes not at all; a tagged
// fence is preferred over an untagged one, and bare text is used as-is.
// The result must parse as a JSON object or array, otherwise ok is false.
// This never fails loudly — callers treat false as "use the fallback".
func ExtractJSON(raw string) (json.RawMessage, bool) {
	s := strings.TrimSpace(raw)

	if body, ok := fencedBlock(s, fenceTagged); ok {
		s = body
	} else if body, ok := fencedBlock(s, fencePlain); ok {
		s = body
	}

	if s == "" || (s[0] != '{' && s[0] != '[') {
		return nil, false
	}
	if !json.Valid([]byte(s)) {
		return nil, false
	}
	return json.RawMessage(s), true
}

// fencedBlock returns the trimmed content between the first occurrence of
// open and the next closing fence. A missing closing fence is tolerated:
// the rest of the string is used.
func fencedBlock(s, open string) (string, bool) {
	i := strings.Index(s, open)
	if i < 0 {
		return "", false
	}
	rest := s[i+len(open):]
	if j := strings.Index(rest, fencePlain); j >= 0 {
		rest = rest[:j]
	}
	return strings.TrimSpace(rest), true
}
