package compare

import "strings"

// SplitLines splits text into lines using a single universal rule: `\n` is
// the separator and a trailing `\r` is stripped from each line. A trailing
// empty line is kept, so empty input is one empty line, not "no document".
// Both documents of a comparison must be split with this same rule.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// findNearbyMatch reports the zero-based offset of the first candidate whose
// trimmed content equals target, scanning at most window candidates. The
// target must already be trimmed.
func findNearbyMatch(target string, candidates []string, window int) (int, bool) {
	n := min(window, len(candidates))
	for i := 0; i < n; i++ {
		if strings.TrimSpace(candidates[i]) == target {
			return i, true
		}
	}
	return 0, false
}

// Compare aligns the original document against the ghost (candidate) document
// and classifies every line. It is pure and total: any two texts, including
// empty ones, produce a result and there is no error condition.
func Compare(original, ghost string) *Result {
	originalLines := SplitLines(original)
	ghostLines := SplitLines(ghost)

	lines := alignLines(originalLines, ghostLines)
	lines = dropReorderedPairs(lines)

	// Character-level hints for modified lines, after filtering so skipped
	// pairs never pay for them.
	for i := range lines {
		if lines[i].Kind == LineModified {
			lines[i].Span = classifySpan(lines[i].OriginalText, lines[i].GhostText)
		}
	}

	return newResult(lines, collapseMatches(lines))
}

// alignLines walks both documents with independent cursors and emits exactly
// one classified line per iteration. Every branch advances at least one
// cursor, so the walk terminates.
func alignLines(original, ghost []string) []DiffLine {
	var out []DiffLine
	oi, gi := 0, 0

	for oi < len(original) || gi < len(ghost) {
		// One side exhausted: drain the other.
		if gi >= len(ghost) {
			out = append(out, onlyInOriginal(oi, original[oi]))
			oi++
			continue
		}
		if oi >= len(original) {
			out = append(out, onlyInGhost(gi, ghost[gi]))
			gi++
			continue
		}

		originalTrim := strings.TrimSpace(original[oi])
		ghostTrim := strings.TrimSpace(ghost[gi])

		if originalTrim == ghostTrim {
			out = append(out, DiffLine{
				Kind:          LineMatch,
				OriginalIndex: oi,
				GhostIndex:    gi,
				OriginalText:  original[oi],
				GhostText:     ghost[gi],
			})
			oi++
			gi++
			continue
		}

		// Same structural key on both sides means the same slot changed
		// value: a modification, not an insert/delete pair.
		originalKey, originalOK := extractKey(originalTrim)
		ghostKey, ghostOK := extractKey(ghostTrim)
		if originalOK && ghostOK && originalKey == ghostKey {
			out = append(out, modified(oi, gi, original[oi], ghost[gi]))
			oi++
			gi++
			continue
		}

		// Ambiguous: look ahead in both directions for a displaced match.
		// ghostOffset is where the current original line reappears on the
		// ghost side; originalOffset is where the current ghost line
		// reappears on the original side.
		ghostOffset, foundInGhost := findNearbyMatch(originalTrim, ghost[gi:], LookaheadWindow)
		originalOffset, foundInOriginal := findNearbyMatch(ghostTrim, original[oi:], LookaheadWindow)

		switch {
		case foundInGhost && (!foundInOriginal || ghostOffset <= originalOffset):
			// The original line reappears soon in the ghost, so the ghost
			// inserted content before it. The tie-break is an explicit
			// priority rule: ghost insertion wins.
			out = append(out, onlyInGhost(gi, ghost[gi]))
			gi++
		case foundInOriginal:
			// The ghost line reappears soon in the original, so the
			// original carries deleted content.
			out = append(out, onlyInOriginal(oi, original[oi]))
			oi++
		default:
			// No reordering signal within the window.
			out = append(out, modified(oi, gi, original[oi], ghost[gi]))
			oi++
			gi++
		}
	}

	return out
}

// dropReorderedPairs reconciles insert/delete pairs whose trimmed content is
// identical. The bounded lookahead in alignLines cannot see a reorder beyond
// its window, so a moved line can surface as an independent OnlyInOriginal
// and OnlyInGhost; this unbounded pass pairs them up and drops both, degrading
// a pure content move to "no difference". The first ghost entry with equal
// non-empty content wins, even when a later one is the true counterpart.
func dropReorderedPairs(lines []DiffLine) []DiffLine {
	var originalPositions, ghostPositions []int
	for i, ln := range lines {
		switch ln.Kind {
		case LineOnlyInOriginal:
			originalPositions = append(originalPositions, i)
		case LineOnlyInGhost:
			ghostPositions = append(ghostPositions, i)
		}
	}

	skip := make(map[int]bool)
	for _, op := range originalPositions {
		target := strings.TrimSpace(lines[op].OriginalText)
		if target == "" {
			continue
		}
		for _, gp := range ghostPositions {
			if skip[gp] {
				continue
			}
			if strings.TrimSpace(lines[gp].GhostText) == target {
				skip[op] = true
				skip[gp] = true
				break
			}
		}
	}

	if len(skip) == 0 {
		return lines
	}

	out := make([]DiffLine, 0, len(lines)-len(skip))
	for i, ln := range lines {
		if !skip[i] {
			out = append(out, ln)
		}
	}
	return out
}

func onlyInOriginal(index int, text string) DiffLine {
	return DiffLine{
		Kind:          LineOnlyInOriginal,
		OriginalIndex: index,
		GhostIndex:    -1,
		OriginalText:  text,
	}
}

func onlyInGhost(index int, text string) DiffLine {
	return DiffLine{
		Kind:          LineOnlyInGhost,
		OriginalIndex: -1,
		GhostIndex:    index,
		GhostText:     text,
	}
}

func modified(originalIndex, ghostIndex int, originalText, ghostText string) DiffLine {
	return DiffLine{
		Kind:          LineModified,
		OriginalIndex: originalIndex,
		GhostIndex:    ghostIndex,
		OriginalText:  originalText,
		GhostText:     ghostText,
	}
}
