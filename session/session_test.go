package session

import (
	"testing"

	"sqlmaestro/assert"
	"sqlmaestro/compare"
)

func installResult(t *testing.T, s *Session, original, ghost string) *compare.Result {
	t.Helper()
	gen := s.Begin()
	result := compare.Compare(original, ghost)
	assert.True(t, s.Install(gen, result), "install current generation")
	return result
}

func TestStaleResultRejected(t *testing.T) {
	s := New()

	stale := s.Begin()
	current := s.Begin()

	assert.False(t, s.Install(stale, compare.Compare("a", "b")), "stale stamp rejected")
	assert.Nil(t, s.Result(), "no result installed")

	assert.True(t, s.Install(current, compare.Compare("a", "b")), "current stamp accepted")
	assert.NotNil(t, s.Result(), "result installed")
}

func TestNavigationWraps(t *testing.T) {
	s := New()
	installResult(t, s, "\"a\": 1\nsame\n\"b\": 2", "\"a\": 9\nsame\n\"b\": 8")

	pos, ok := s.NextDifference()
	assert.True(t, ok, "first next")
	assert.Equal(t, 0, pos, "first difference")

	pos, ok = s.NextDifference()
	assert.True(t, ok, "second next")
	assert.Equal(t, 2, pos, "second difference")

	pos, ok = s.NextDifference()
	assert.True(t, ok, "wrapped next")
	assert.Equal(t, 0, pos, "wraps to first difference")
}

func TestPrevStartsAtLastDifference(t *testing.T) {
	s := New()
	installResult(t, s, "\"a\": 1\nsame\n\"b\": 2", "\"a\": 9\nsame\n\"b\": 8")

	pos, ok := s.PrevDifference()
	assert.True(t, ok, "first prev")
	assert.Equal(t, 2, pos, "starts from the last difference")

	pos, ok = s.PrevDifference()
	assert.True(t, ok, "second prev")
	assert.Equal(t, 0, pos, "moves backwards")

	pos, ok = s.PrevDifference()
	assert.True(t, ok, "wrapped prev")
	assert.Equal(t, 2, pos, "wraps to last difference")
}

func TestNavigationWithoutDifferences(t *testing.T) {
	s := New()

	_, ok := s.NextDifference()
	assert.False(t, ok, "no result installed")

	installResult(t, s, "same\ntext", "same\ntext")
	_, ok = s.NextDifference()
	assert.False(t, ok, "identical documents have no differences")
	_, ok = s.PrevDifference()
	assert.False(t, ok, "prev likewise")
}

func TestJumpTargets(t *testing.T) {
	s := New()
	// Line 0 matches, line 1 removed from ghost, trailing line added there.
	installResult(t, s, "keep\nremoved\n1\n2\n3\n4\n5", "keep\n1\n2\n3\n4\n5\nadded")

	result := s.Result()
	assert.Equal(t, 2, result.DiffCount(), "two differences")

	removedPos := result.DiffPositions()[0]
	target, ok := s.JumpTarget(removedPos)
	assert.True(t, ok, "target for removed line")
	assert.False(t, target.InGhost, "removed line lives in the original")
	assert.Equal(t, 2, target.Line, "1-indexed original line")

	addedPos := result.DiffPositions()[1]
	target, ok = s.JumpTarget(addedPos)
	assert.True(t, ok, "target for added line")
	assert.True(t, target.InGhost, "added line lives in the ghost")
	assert.Equal(t, 7, target.Line, "1-indexed ghost line")

	_, ok = s.JumpTarget(result.Len())
	assert.False(t, ok, "out of range position")
}

func TestInstallResetsNavigationAndSections(t *testing.T) {
	s := New()
	installResult(t, s, "\"a\": 1", "\"a\": 2")

	s.NextDifference()
	assert.True(t, s.ToggleSection(0), "section expanded")

	installResult(t, s, "\"a\": 1\nsame", "\"a\": 3\nsame")

	assert.False(t, s.IsExpanded(0), "expanded set reset")
	pos, ok := s.NextDifference()
	assert.True(t, ok, "navigation restarts")
	assert.Equal(t, 0, pos, "cursor reset to first difference")
}

func TestToggleSection(t *testing.T) {
	s := New()

	assert.False(t, s.IsExpanded(4), "sections start collapsed")
	assert.True(t, s.ToggleSection(4), "toggle expands")
	assert.True(t, s.IsExpanded(4), "state sticks")
	assert.False(t, s.ToggleSection(4), "toggle collapses again")
}
