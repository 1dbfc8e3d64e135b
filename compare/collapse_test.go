package compare

import (
	"strings"
	"testing"

	"sqlmaestro/assert"
)

func TestRunOfTwoNeverCollapses(t *testing.T) {
	result := Compare("a\nb", "a\nb")

	assert.Equal(t, 2, result.Len(), "line count")
	assert.Len(t, 0, result.Sections(), "no sections below the threshold")
}

func TestRunOfThreeAlwaysCollapses(t *testing.T) {
	result := Compare("a\nb\nc", "a\nb\nc")

	sections := result.Sections()
	assert.Len(t, 1, sections, "exactly one section")
	assert.Equal(t, 0, sections[0].Start, "section start")
	assert.Equal(t, 2, sections[0].End, "section end")
	assert.Equal(t, 3, sections[0].LineCount, "section line count")
}

func TestSectionsSplitAroundDifferences(t *testing.T) {
	original := "a\nb\nc\n\"k\": 1\nd\ne\nf\ng"
	ghost := "a\nb\nc\n\"k\": 2\nd\ne\nf\ng"

	result := Compare(original, ghost)

	sections := result.Sections()
	assert.Len(t, 2, sections, "two sections")
	assert.Equal(t, 0, sections[0].Start, "first section start")
	assert.Equal(t, 2, sections[0].End, "first section end")
	assert.Equal(t, 4, sections[1].Start, "second section start")
	assert.Equal(t, 7, sections[1].End, "second section end")
	assert.Equal(t, 4, sections[1].LineCount, "second section line count")

	// Ranges are disjoint and ascending.
	assert.Less(t, sections[0].End, sections[1].Start, "sections do not overlap")
}

func TestPreviewJoinsFirstTwoLines(t *testing.T) {
	result := Compare("  first  \n\tsecond\nthird", "  first  \n\tsecond\nthird")

	sections := result.Sections()
	assert.Len(t, 1, sections, "one section")
	assert.Equal(t, "first second", sections[0].Preview, "trimmed, space-joined preview")
}

func TestPreviewTruncation(t *testing.T) {
	long := strings.Repeat("x", 80)
	text := long + "\nsecond\nthird"

	result := Compare(text, text)

	sections := result.Sections()
	assert.Len(t, 1, sections, "one section")
	assert.Equal(t, strings.Repeat("x", 60)+"…", sections[0].Preview, "truncated with ellipsis")
}

func TestSectionsComputedAfterFiltering(t *testing.T) {
	// The transposed pair cancels out, leaving a contiguous run of matches
	// long enough to collapse. Sections built before the filter would split
	// around the insert/delete pair.
	result := Compare("a\nb\nc\nd", "b\na\nc\nd")

	assert.Equal(t, 0, result.DiffCount(), "diff count")
	assert.Equal(t, 3, result.Len(), "cancelled pair dropped")

	sections := result.Sections()
	assert.Len(t, 1, sections, "filtered run collapses as one section")
	assert.Equal(t, 0, sections[0].Start, "section start")
	assert.Equal(t, 2, sections[0].End, "section end")
}

func TestToLuaFormatSection(t *testing.T) {
	sec := CollapsedSection{Start: 4, End: 8, LineCount: 5, Preview: "p"}

	lua := sec.ToLuaFormat()

	assert.Equal(t, 5, lua["start"], "1-indexed start")
	assert.Equal(t, 9, lua["endInc"], "1-indexed inclusive end")
	assert.Equal(t, 5, lua["lineCount"], "line count")
	assert.Equal(t, "p", lua["preview"], "preview")
}
