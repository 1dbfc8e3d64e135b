package compare

import "strings"

// CollapsedSection is a contiguous run of matching output lines folded into
// one summary entry for display. Start and End are inclusive positions into
// the output sequence, not into either source document. Whether a section is
// currently expanded belongs to the presentation layer, which should key its
// own state by Start.
type CollapsedSection struct {
	Start     int
	End       int
	LineCount int
	Preview   string
}

// ToLuaFormat converts a CollapsedSection to a Lua-friendly map format
func (s CollapsedSection) ToLuaFormat() map[string]any {
	return map[string]any{
		"start":     s.Start + 1, // 1-indexed for Lua
		"endInc":    s.End + 1,
		"lineCount": s.LineCount,
		"preview":   s.Preview,
	}
}

// collapseMatches scans the filtered output sequence and folds every run of
// at least CollapseRunThreshold consecutive match lines into a section.
// Sections never overlap and are emitted in ascending start order.
func collapseMatches(lines []DiffLine) []CollapsedSection {
	var sections []CollapsedSection
	runStart := -1

	for i := 0; i <= len(lines); i++ {
		if i < len(lines) && lines[i].Kind == LineMatch {
			if runStart < 0 {
				runStart = i
			}
			continue
		}

		if runStart >= 0 && i-runStart >= CollapseRunThreshold {
			sections = append(sections, CollapsedSection{
				Start:     runStart,
				End:       i - 1,
				LineCount: i - runStart,
				Preview:   buildPreview(lines[runStart:i]),
			})
		}
		runStart = -1
	}

	return sections
}

// buildPreview joins the trimmed original content of the run's first two
// lines, truncating to PreviewMaxChars runes with an ellipsis when over.
func buildPreview(run []DiffLine) string {
	parts := make([]string, 0, 2)
	for _, ln := range run[:min(2, len(run))] {
		parts = append(parts, strings.TrimSpace(ln.OriginalText))
	}

	preview := strings.Join(parts, " ")
	if runes := []rune(preview); len(runes) > PreviewMaxChars {
		preview = string(runes[:PreviewMaxChars]) + "…"
	}
	return preview
}
