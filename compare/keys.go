package compare

import (
	"regexp"
	"strings"
)

// Key extraction patterns, tried in order. The quoted JSON-style pattern must
// win over the bare YAML-style prefix so `"name": value` yields `name` rather
// than `"name"`.
var (
	quotedKeyPattern = regexp.MustCompile(`^\s*"([^"]+)"\s*:`)
	bareKeyPattern   = regexp.MustCompile(`^([^:]+):`)
)

// extractKey pulls a structural key hint out of a trimmed line, e.g. `name`
// from `"name": "Alice"` or `host: localhost`. This is a classification hint,
// not a parser: colons inside string values can produce a spurious key, which
// is an accepted approximation. Returns false for lines with no colon, list
// items, brackets, and blank lines.
func extractKey(line string) (string, bool) {
	if m := quotedKeyPattern.FindStringSubmatch(line); m != nil {
		if key := strings.TrimSpace(m[1]); key != "" {
			return key, true
		}
		return "", false
	}

	if m := bareKeyPattern.FindStringSubmatch(line); m != nil {
		if key := strings.TrimSpace(m[1]); key != "" {
			return key, true
		}
	}

	return "", false
}
