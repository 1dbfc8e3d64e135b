package compare

// LineKind classifies one line of a comparison's output sequence.
type LineKind int

const (
	LineMatch LineKind = iota
	LineOnlyInOriginal
	LineOnlyInGhost
	LineModified
)

// String returns the string representation of LineKind for Lua integration
func (k LineKind) String() string {
	switch k {
	case LineMatch:
		return "match"
	case LineOnlyInOriginal:
		return "only_in_original"
	case LineOnlyInGhost:
		return "only_in_ghost"
	case LineModified:
		return "modified"
	default:
		return "unknown"
	}
}

// DiffLine is one unit of the output sequence. Indices are zero-based into
// their source document and -1 when that side is absent: Match and Modified
// carry both sides, OnlyInOriginal/OnlyInGhost carry exactly one. A DiffLine
// is never mutated after the result is assembled.
type DiffLine struct {
	Kind          LineKind
	OriginalIndex int    // index into the original document, -1 if absent
	GhostIndex    int    // index into the ghost document, -1 if absent
	OriginalText  string // raw line text, "" when the side is absent
	GhostText     string // raw line text, "" when the side is absent
	Span          *Span  // optional character-level hint, modified lines only
}

// ToLuaFormat converts a DiffLine to a Lua-friendly map format
func (ln DiffLine) ToLuaFormat() map[string]any {
	luaFormat := map[string]any{
		"kind":          ln.Kind.String(),
		"originalIndex": ln.OriginalIndex,
		"ghostIndex":    ln.GhostIndex,
		"originalText":  ln.OriginalText,
		"ghostText":     ln.GhostText,
	}

	if ln.Span != nil {
		luaFormat["spanHint"] = ln.Span.Hint
		luaFormat["colStart"] = ln.Span.ColStart
		luaFormat["colEnd"] = ln.Span.ColEnd
	}

	return luaFormat
}

// Result owns the full ordered line sequence of one comparison plus its
// collapsed sections. It is built once per comparison and read-only after
// that; a new comparison builds a new Result.
type Result struct {
	lines    []DiffLine
	sections []CollapsedSection

	// Ascending output positions of non-match lines, computed once at
	// assembly so navigation never re-scans the sequence.
	diffPositions []int
}

func newResult(lines []DiffLine, sections []CollapsedSection) *Result {
	var positions []int
	for i, ln := range lines {
		if ln.Kind != LineMatch {
			positions = append(positions, i)
		}
	}

	return &Result{
		lines:         lines,
		sections:      sections,
		diffPositions: positions,
	}
}

// Len returns the number of lines in the output sequence.
func (r *Result) Len() int {
	return len(r.lines)
}

// Line returns the output line at the given sequence position.
func (r *Result) Line(pos int) DiffLine {
	return r.lines[pos]
}

// Lines returns the full output sequence. Callers must not modify it.
func (r *Result) Lines() []DiffLine {
	return r.lines
}

// Sections returns the collapsed sections in ascending start order.
func (r *Result) Sections() []CollapsedSection {
	return r.sections
}

// DiffCount returns the number of non-match lines in the output sequence.
func (r *Result) DiffCount() int {
	return len(r.diffPositions)
}

// DiffPositions returns the ascending sequence positions of non-match lines,
// used to drive next/previous difference navigation. Callers must not modify
// the returned slice.
func (r *Result) DiffPositions() []int {
	return r.diffPositions
}

// ToLuaFormat converts a Result to a Lua-friendly map format
func (r *Result) ToLuaFormat() map[string]any {
	luaLines := make([]map[string]any, len(r.lines))
	for i, ln := range r.lines {
		luaLines[i] = ln.ToLuaFormat()
	}

	luaSections := make([]map[string]any, len(r.sections))
	for i, sec := range r.sections {
		luaSections[i] = sec.ToLuaFormat()
	}

	// Lua positions are 1-indexed
	luaPositions := make([]int, len(r.diffPositions))
	for i, pos := range r.diffPositions {
		luaPositions[i] = pos + 1
	}

	return map[string]any{
		"lines":         luaLines,
		"sections":      luaSections,
		"diffCount":     r.DiffCount(),
		"diffPositions": luaPositions,
	}
}
