package compare

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Span hint values for Lua integration
const (
	SpanAppendChars  = "append_chars"
	SpanDeleteChars  = "delete_chars"
	SpanReplaceChars = "replace_chars"
)

// Span is a character-level rendering hint for a modified line: the single
// region of the line that changed. Columns are 0-based byte offsets into the
// ghost text (original text for SpanDeleteChars).
type Span struct {
	Hint     string
	ColStart int
	ColEnd   int
}

// classifySpan computes a single-region hint for a modified line pair.
// Returns nil when the change is too scattered for one span; the line then
// renders as a whole-line modification. Never affects line classification.
func classifySpan(oldLine, newLine string) *Span {
	if oldLine == newLine {
		return nil
	}

	// Cheap path: pure append at the end of the line.
	if oldLine != "" && strings.HasPrefix(newLine, oldLine) {
		return &Span{Hint: SpanAppendChars, ColStart: len(oldLine), ColEnd: len(newLine)}
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldLine, newLine, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var insertions, deletions int
	var hasEqual bool
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			insertions++
		case diffmatchpatch.DiffDelete:
			deletions++
		case diffmatchpatch.DiffEqual:
			hasEqual = true
		}
	}

	// Only single-region changes surrounded by equal text get a span.
	if !hasEqual {
		return nil
	}

	switch {
	case insertions == 1 && deletions == 0:
		pos, length := singleRegion(diffs, diffmatchpatch.DiffInsert)
		return &Span{Hint: SpanReplaceChars, ColStart: pos, ColEnd: pos + length}
	case insertions == 0 && deletions == 1:
		pos, length := singleRegion(diffs, diffmatchpatch.DiffDelete)
		return &Span{Hint: SpanDeleteChars, ColStart: pos, ColEnd: pos + length}
	case insertions == 1 && deletions == 1:
		pos, length := singleRegion(diffs, diffmatchpatch.DiffInsert)
		return &Span{Hint: SpanReplaceChars, ColStart: pos, ColEnd: pos + length}
	default:
		return nil
	}
}

// singleRegion returns the position and length of the first diff of the given
// type, with position counted over the equal text preceding it.
func singleRegion(diffs []diffmatchpatch.Diff, want diffmatchpatch.Operation) (int, int) {
	pos := 0
	for _, d := range diffs {
		if d.Type == want {
			return pos, len(d.Text)
		}
		if d.Type == diffmatchpatch.DiffEqual {
			pos += len(d.Text)
		}
	}
	return 0, 0
}
