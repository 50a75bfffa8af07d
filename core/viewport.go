package core

// Terminal is the minimal drawing capability the Viewport requires, per
// spec.md §6 ("assume a capability that can clear regions, move cursor, set
// colors, write strings, and report terminal size"). The concrete
// implementation lives outside this package (bubbletea/lipgloss own the real
// terminal); core only depends on this interface so it stays dependency-free.
type Terminal interface {
	Size() (width, height int)
	Clear()
	MoveCursor(x, y int)
	WriteString(s string)
}

// NoOfBars is the number of one-line bars reserved at the bottom of the
// screen (info bar + notification bar), subtracted from the visible range per
// spec.md §4.3 step 2.
const NoOfBars = 2

// GutterSeparator is the fixed-width separator printed between the line-number
// gutter and line content.
const GutterSeparator = " "

// HighlightKind classifies how a visible line should be drawn with respect to
// the current selection.
type HighlightKind int

const (
	HighlightNone HighlightKind = iota
	HighlightFull                // entire line highlighted
	HighlightPartial              // only [from, to) on this line highlighted
)

// LineHighlight describes one visible line's selection highlighting.
type LineHighlight struct {
	Kind HighlightKind
	From int // rune column, meaningful only for HighlightPartial
	To   int // rune column, meaningful only for HighlightPartial (-1 = end of line)
}

// GutterEntry is one visible line's rendered line-number: the current line
// shows its absolute 1-based number, every other line shows its distance from
// the current line.
type GutterEntry struct {
	Number     int
	IsCurrent  bool
}

// Viewport tracks the visible window into the document: its terminal
// dimensions, the top/bottom document line indices bounding the visible
// slice, and the mode mirrored here to decide selection-highlight style.
type Viewport struct {
	Width, Height int
	TopBorder     int
	BottomBorder  int
	Mode          Modal
}

func NewViewport(width, height int) *Viewport {
	v := &Viewport{Width: width, Height: height}
	v.BottomBorder = height
	return v
}

// VisibleRows is the number of document lines actually drawable once the
// bottom bars are reserved.
func (v *Viewport) VisibleRows() int {
	return max(v.Height-NoOfBars, 0)
}

// Resize refreshes width/height from the terminal, per spec.md §4.3 step 1.
func (v *Viewport) Resize(width, height int) {
	v.Width = width
	v.Height = height
	if v.BottomBorder-v.TopBorder != v.VisibleRows() {
		v.BottomBorder = v.TopBorder + v.VisibleRows()
	}
}

// MoveUp shifts both borders up by min(n, TopBorder); MoveDown shifts both by
// n unconditionally. Neither clamps to the buffer end here; per the resolved
// Open Question (b), that clamp is applied by ClampToBuffer, which
// EnsureCursorVisible calls after every scroll, using line_count and VisibleRows.
func (v *Viewport) MoveUp(n int) {
	shift := min(n, v.TopBorder)
	v.TopBorder -= shift
	v.BottomBorder -= shift
}

func (v *Viewport) MoveDown(n int) {
	v.TopBorder += n
	v.BottomBorder += n
}

// ClampToBuffer enforces Open Question (b): top_border is clamped to
// max(0, lineCount-visibleRows) so the view never scrolls past the document end.
func (v *Viewport) ClampToBuffer(lineCount int) {
	maxTop := max(lineCount-v.VisibleRows(), 0)
	if v.TopBorder > maxTop {
		v.TopBorder = maxTop
	}
	if v.TopBorder < 0 {
		v.TopBorder = 0
	}
	v.BottomBorder = v.TopBorder + v.VisibleRows()
}

// EnsureCursorVisible scrolls the minimum amount so cursorLine falls within
// [TopBorder, TopBorder+VisibleRows).
func (v *Viewport) EnsureCursorVisible(cursorLine, lineCount int) {
	if cursorLine < v.TopBorder {
		v.MoveUp(v.TopBorder - cursorLine)
	} else if rows := v.VisibleRows(); rows > 0 && cursorLine >= v.TopBorder+rows {
		v.MoveDown(cursorLine - (v.TopBorder + rows) + 1)
	}
	v.ClampToBuffer(lineCount)
}

// VisibleLines returns the document lines in [TopBorder, TopBorder+VisibleRows),
// padded with empty strings if the document is shorter, per spec.md §4.3 step 2.
func (v *Viewport) VisibleLines(lines []string) []string {
	rows := v.VisibleRows()
	out := make([]string, rows)
	for i := 0; i < rows; i++ {
		docLine := v.TopBorder + i
		if docLine >= 0 && docLine < len(lines) {
			out[i] = lines[docLine]
		}
	}
	return out
}

// GutterWidth is the fixed width reserved for the line-number column, wide
// enough for the largest line number the document can show (absolute or
// relative).
func (v *Viewport) GutterWidth(lineCount int) int {
	return digitCount(max(lineCount, 1)) + len(GutterSeparator)
}

func digitCount(n int) int {
	if n < 0 {
		n = -n
	}
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}

// Gutter computes, for each visible row, the line number to display: the
// absolute 1-based number on the current line, the relative distance from it
// on every other visible line. Rows past the document end report IsCurrent
// false and Number 0 (callers render them blank).
func (v *Viewport) Gutter(lineCount, currentLine int) []GutterEntry {
	rows := v.VisibleRows()
	entries := make([]GutterEntry, rows)
	for i := 0; i < rows; i++ {
		docLine := v.TopBorder + i
		if docLine < 0 || docLine >= lineCount {
			continue
		}
		if docLine == currentLine {
			entries[i] = GutterEntry{Number: docLine + 1, IsCurrent: true}
			continue
		}
		dist := docLine - currentLine
		if dist < 0 {
			dist = -dist
		}
		entries[i] = GutterEntry{Number: dist}
	}
	return entries
}

// Highlights computes, per visible row, the selection highlight to draw: in
// VisualLine every line within [start.Line, end.Line] is fully highlighted; in
// Visual, the start/end lines are partially highlighted and strictly interior
// lines fully; otherwise no line is highlighted. Per spec.md §4.3 step 4, the
// selection is derived from Selection.from(cursor).Normalized().
func (v *Viewport) Highlights(sel Selection) []LineHighlight {
	rows := v.VisibleRows()
	out := make([]LineHighlight, rows)
	if v.Mode.Kind != ModeVisual && v.Mode.Kind != ModeVisualLine {
		return out
	}
	n := sel.Normalized()
	for i := 0; i < rows; i++ {
		docLine := v.TopBorder + i
		if docLine < n.Start.Line || docLine > n.End.Line {
			continue
		}
		if v.Mode.Kind == ModeVisualLine {
			out[i] = LineHighlight{Kind: HighlightFull}
			continue
		}
		switch docLine {
		case n.Start.Line:
			to := -1
			if n.Start.Line == n.End.Line {
				to = n.End.Col
			}
			out[i] = LineHighlight{Kind: HighlightPartial, From: n.Start.Col, To: to}
		case n.End.Line:
			out[i] = LineHighlight{Kind: HighlightPartial, From: 0, To: n.End.Col}
		default:
			out[i] = LineHighlight{Kind: HighlightFull}
		}
	}
	return out
}

// HardwareCursor computes where the terminal's real cursor should sit, per
// spec.md §4.3 step 6: in Command/Find modes, the bottom bar offset by the
// text-x padding; otherwise (cursor.Line-TopBorder, cursor.Col+gutterWidth).
func (v *Viewport) HardwareCursor(cursor LineCol, gutterWidth, commandTextXPadding int) (x, y int) {
	if v.Mode.Kind == ModeCommand || v.Mode.Kind == ModeFind {
		return commandTextXPadding, v.Height - 1
	}
	return cursor.Col + gutterWidth, cursor.Line - v.TopBorder
}
