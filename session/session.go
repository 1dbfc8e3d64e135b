// Package session holds the per-connection compare state: the current
// result, a generation stamp that gates stale results, the difference cursor
// for next/previous navigation, and the expanded-section set. The compare
// core emits pure immutable data; everything mutable lives here.
package session

import (
	"sync"

	"sqlmaestro/compare"
)

// JumpTarget is the editor coordinate for one output line: the 1-indexed
// line to jump to. InGhost reports which document the line belongs to; lines
// present in both documents target the ghost side, the version being
// reviewed.
type JumpTarget struct {
	Line    int // 1-indexed
	InGhost bool
}

type Session struct {
	mu         sync.Mutex
	result     *compare.Result
	generation uint64

	// cursor indexes into result.DiffPositions(); -1 until the first
	// navigation after a result is installed.
	cursor int

	// expanded is presentation state keyed by section start position. The
	// core only emits initial section boundaries and never tracks this.
	expanded map[int]bool
}

func New() *Session {
	return &Session{
		cursor:   -1,
		expanded: make(map[int]bool),
	}
}

// Begin reserves the next generation stamp. Callers stamp a comparison
// before computing it and pass the stamp to Install, so a slow comparison
// superseded by a newer one is discarded instead of clobbering it.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// Install publishes a result if its stamp is still current. Returns false
// for stale results, which are dropped. Installing resets the difference
// cursor and the expanded-section set.
func (s *Session) Install(generation uint64, result *compare.Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return false
	}

	s.result = result
	s.cursor = -1
	s.expanded = make(map[int]bool)
	return true
}

// Result returns the current result, or nil when none is installed.
func (s *Session) Result() *compare.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// NextDifference advances the cursor to the next difference position,
// wrapping past the last one. Returns false when there is no result or no
// differences.
func (s *Session) NextDifference() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	positions := s.positions()
	if len(positions) == 0 {
		return 0, false
	}

	s.cursor++
	if s.cursor >= len(positions) {
		s.cursor = 0
	}
	return positions[s.cursor], true
}

// PrevDifference moves the cursor to the previous difference position,
// wrapping before the first one.
func (s *Session) PrevDifference() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	positions := s.positions()
	if len(positions) == 0 {
		return 0, false
	}

	if s.cursor < 0 {
		s.cursor = len(positions) - 1
	} else {
		s.cursor--
		if s.cursor < 0 {
			s.cursor = len(positions) - 1
		}
	}
	return positions[s.cursor], true
}

// JumpTarget converts an output sequence position into an editor coordinate.
// Ghost-side lines and both-side lines jump in the ghost document; lines only
// in the original jump there instead.
func (s *Session) JumpTarget(pos int) (JumpTarget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result == nil || pos < 0 || pos >= s.result.Len() {
		return JumpTarget{}, false
	}

	line := s.result.Line(pos)
	if line.GhostIndex >= 0 {
		return JumpTarget{Line: line.GhostIndex + 1, InGhost: true}, true
	}
	return JumpTarget{Line: line.OriginalIndex + 1, InGhost: false}, true
}

// ToggleSection flips the expanded state for the section starting at the
// given output position and returns the new state.
func (s *Session) ToggleSection(start int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expanded[start] = !s.expanded[start]
	return s.expanded[start]
}

// IsExpanded reports whether the section starting at the given output
// position is expanded. Sections start collapsed.
func (s *Session) IsExpanded(start int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expanded[start]
}

// positions returns the current difference positions. Caller must hold mu.
func (s *Session) positions() []int {
	if s.result == nil {
		return nil
	}
	return s.result.DiffPositions()
}
