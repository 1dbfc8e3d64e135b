package main

import (
	"fmt"
	"time"

	"sqlmaestro/compare"
	"sqlmaestro/logger"
	"sqlmaestro/session"
	"sqlmaestro/store"

	"github.com/neovim/go-client/nvim"
)

// registerHandlers wires the compare RPC surface for one connection. The Lua
// side drives everything through these handlers; all line and position values
// cross the boundary 1-indexed.
func registerHandlers(n *nvim.Nvim, sess *session.Session, st *store.Store) error {
	handlers := map[string]any{
		// Compare two saved working files by name.
		"maestro_compare": func(originalName, ghostName string) (map[string]any, error) {
			original, err := st.LoadWorkingFile(originalName)
			if err != nil {
				return nil, err
			}
			ghost, err := st.LoadWorkingFile(ghostName)
			if err != nil {
				return nil, err
			}
			return runCompare(sess, original, ghost), nil
		},

		// Compare a working file's stored snapshot (baseline) against its
		// current content.
		"maestro_compare_snapshot": func(name string) (map[string]any, error) {
			original, err := st.LoadSnapshot(name)
			if err != nil {
				return nil, err
			}
			ghost, err := st.LoadWorkingFile(name)
			if err != nil {
				return nil, err
			}
			return runCompare(sess, original, ghost), nil
		},

		// Compare two raw text blobs, e.g. buffer contents the host already
		// holds. The engine accepts any text; nothing is validated.
		"maestro_compare_text": func(original, ghost string) (map[string]any, error) {
			return runCompare(sess, original, ghost), nil
		},

		"maestro_save": func(name, content string) error {
			if err := st.SaveWorkingFile(name, content); err != nil {
				return err
			}
			return st.SaveMetadata(name, store.Metadata{
				Label:   name,
				SavedAt: time.Now(),
			})
		},

		// Snapshot the current content as the future comparison baseline.
		"maestro_snapshot": func(name string) error {
			content, err := st.LoadWorkingFile(name)
			if err != nil {
				return err
			}
			return st.SaveSnapshot(name, content)
		},

		"maestro_list": func() ([]string, error) {
			return st.ListWorkingFiles()
		},

		"maestro_next_diff": func() (map[string]any, error) {
			pos, ok := sess.NextDifference()
			if !ok {
				return map[string]any{"found": false}, nil
			}
			return jumpTo(n, sess, pos)
		},

		"maestro_prev_diff": func() (map[string]any, error) {
			pos, ok := sess.PrevDifference()
			if !ok {
				return map[string]any{"found": false}, nil
			}
			return jumpTo(n, sess, pos)
		},

		// start is the section's 1-indexed start position as exported in the
		// result's Lua format.
		"maestro_toggle_section": func(start int) (bool, error) {
			return sess.ToggleSection(start - 1), nil
		},
	}

	for name, fn := range handlers {
		if err := n.RegisterHandler(name, fn); err != nil {
			return fmt.Errorf("registering %s: %w", name, err)
		}
	}
	return nil
}

func runCompare(sess *session.Session, original, ghost string) map[string]any {
	defer logger.Trace("compare")()

	generation := sess.Begin()
	result := compare.Compare(original, ghost)
	if !sess.Install(generation, result) {
		// A later comparison started while this one ran; its result wins.
		logger.Debug("discarding superseded comparison (generation %d)", generation)
		return map[string]any{"superseded": true}
	}

	logger.Info("compared %d lines, %d differences, %d sections",
		result.Len(), result.DiffCount(), len(result.Sections()))
	return result.ToLuaFormat()
}

// jumpTo moves the editor cursor to the output position's jump target and
// reports where it landed.
func jumpTo(n *nvim.Nvim, sess *session.Session, pos int) (map[string]any, error) {
	target, ok := sess.JumpTarget(pos)
	if !ok {
		return map[string]any{"found": false}, nil
	}

	batch := n.NewBatch()
	batch.SetWindowCursor(0, [2]int{target.Line, 0})
	if err := batch.Execute(); err != nil {
		logger.Error("error moving cursor to line %d: %v", target.Line, err)
		return nil, err
	}

	return map[string]any{
		"found":    true,
		"position": pos + 1, // 1-indexed for Lua
		"line":     target.Line,
		"inGhost":  target.InGhost,
	}, nil
}
