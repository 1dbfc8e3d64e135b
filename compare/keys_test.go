package compare

import (
	"testing"

	"sqlmaestro/assert"
)

func TestExtractKey(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantKey string
		wantOK  bool
	}{
		{"json quoted key", `"name": "Alice"`, "name", true},
		{"json numeric value", `"count": 42`, "count", true},
		{"json spaced colon", `"host" : "localhost"`, "host", true},
		{"yaml bare key", "host: localhost", "host", true},
		{"yaml nested value colon", `url: "http://example.com"`, "url", true},
		{"yaml spaced key trimmed", "  timeout  : 30", "timeout", true},
		{"no colon", "just a sentence", "", false},
		{"blank line", "", "", false},
		{"open bracket", "{", "", false},
		{"close bracket", "]", "", false},
		{"list item without colon", "- item", "", false},
		{"only colons", "::", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := extractKey(tt.line)
			assert.Equal(t, tt.wantOK, ok, "key presence")
			assert.Equal(t, tt.wantKey, key, "key value")
		})
	}
}

func TestExtractKeyQuotedWinsOverBare(t *testing.T) {
	// The quoted pattern must run first so the key comes back without quotes.
	key, ok := extractKey(`"name": value`)

	assert.True(t, ok, "key extracted")
	assert.Equal(t, "name", key, "quotes and colon stripped")
}

func TestExtractKeyAcceptedApproximations(t *testing.T) {
	// The extractor is a hint, not a parser: colons inside values and keyed
	// list items yield crude keys, by contract.
	key, ok := extractKey("description: contains: colons")
	assert.True(t, ok, "spurious key accepted")
	assert.Equal(t, "description", key, "prefix before first colon")

	key, ok = extractKey("- name: test")
	assert.True(t, ok, "keyed list item accepted")
	assert.Equal(t, "- name", key, "dash kept in crude key")
}
