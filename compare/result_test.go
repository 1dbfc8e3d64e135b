package compare

import (
	"testing"

	"sqlmaestro/assert"
)

func TestDiffPositionsAscending(t *testing.T) {
	original := "\"a\": 1\nsame\n\"b\": 2\nsame two\n\"c\": 3"
	ghost := "\"a\": 9\nsame\n\"b\": 8\nsame two\n\"c\": 7"

	result := Compare(original, ghost)

	assert.Equal(t, []int{0, 2, 4}, result.DiffPositions(), "positions of modified lines")
	assert.Equal(t, 3, result.DiffCount(), "diff count")
}

func TestDiffCountMatchesPositions(t *testing.T) {
	result := Compare("a\nb\nc", "a\nx\nc\nextra")

	assert.Equal(t, len(result.DiffPositions()), result.DiffCount(), "count derives from positions")
	for _, pos := range result.DiffPositions() {
		assert.NotEqual(t, LineMatch, result.Line(pos).Kind, "positions point at differences")
	}
}

func TestLineKindStrings(t *testing.T) {
	assert.Equal(t, "match", LineMatch.String(), "match")
	assert.Equal(t, "only_in_original", LineOnlyInOriginal.String(), "only in original")
	assert.Equal(t, "only_in_ghost", LineOnlyInGhost.String(), "only in ghost")
	assert.Equal(t, "modified", LineModified.String(), "modified")
	assert.Equal(t, "unknown", LineKind(99).String(), "out of range")
}

func TestResultToLuaFormat(t *testing.T) {
	result := Compare("\"a\": 1\n\"b\": 2", "\"a\": 1\n\"b\": 5")

	lua := result.ToLuaFormat()

	lines, ok := lua["lines"].([]map[string]any)
	assert.True(t, ok, "lines field")
	assert.Len(t, 2, lines, "line count")
	assert.Equal(t, "match", lines[0]["kind"], "first line kind")
	assert.Equal(t, "modified", lines[1]["kind"], "second line kind")
	assert.Equal(t, `"b": 2`, lines[1]["originalText"], "original text")
	assert.Equal(t, `"b": 5`, lines[1]["ghostText"], "ghost text")

	assert.Equal(t, 1, lua["diffCount"], "diff count")
	positions, ok := lua["diffPositions"].([]int)
	assert.True(t, ok, "positions field")
	assert.Equal(t, []int{2}, positions, "1-indexed positions for Lua")
}
