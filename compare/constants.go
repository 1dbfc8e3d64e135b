package compare

const (
	// LookaheadWindow is the maximum number of upcoming lines searched when
	// deciding whether a mismatched line is an insertion or a deletion rather
	// than a modification. Keeping this bounded keeps alignment linear; the
	// reorder filter catches identical content that lands outside the window.
	LookaheadWindow = 5

	// CollapseRunThreshold is the minimum run length of consecutive matching
	// output lines that gets folded into a collapsed section. Shorter runs
	// stay individually visible.
	CollapseRunThreshold = 3

	// PreviewMaxChars is the maximum rune length of a collapsed section's
	// preview snippet before it is truncated with an ellipsis.
	PreviewMaxChars = 60
)
