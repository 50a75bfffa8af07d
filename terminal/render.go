package terminal

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/cursor"
	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"

	editor "github.com/0x1david/neotext/core"
)

// clipToWidth clips line to at most width terminal cells, breaking only on
// grapheme cluster boundaries so a combining mark or wide rune is never split
// mid-cluster. core/viewport.go never wraps long lines (spec.md has no
// wrapping operation); clipping horizontally is the adapter's substitute for
// the teacher's word-wrap, needed because gutterWidth + rune count can
// overrun the terminal the way a naive rune slice wouldn't catch for
// double-width runes.
func clipToWidth(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(line) <= width {
		return line
	}
	var b strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		cluster := gr.Str()
		w := uniseg.StringWidth(cluster)
		if used+w > width {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String()
}

// renderContent builds the gutter + text body for the visible slice, styling
// each visible line's selection highlight and the hardware cursor cell,
// mirroring the structure (not the word-wrap) of adapter-bubbletea's
// updateViewport. blink renders the cursor cell in Insert mode (its blink
// phase is whatever Model.Update last drove it to); every other mode gets a
// solid block cursor, vim's usual convention.
func renderContent(ed *editor.Editor, theme Theme, width int, showLineNumbers bool, blink cursor.Model) string {
	buf := ed.Buffer()
	vp := ed.Viewport()
	mode := ed.Mode()
	cur := ed.CursorPos()

	lineCount := buf.LineCount()
	gutterWidth := 0
	if showLineNumbers {
		gutterWidth = vp.GutterWidth(lineCount)
	}
	textWidth := width - gutterWidth
	visible := vp.VisibleLines(buf.Lines())
	gutter := vp.Gutter(lineCount, cur.Line)

	var highlights []editor.LineHighlight
	if mode.Kind == editor.ModeVisual || mode.Kind == editor.ModeVisualLine {
		highlights = vp.Highlights(ed.Selection())
	} else {
		highlights = make([]editor.LineHighlight, len(visible))
	}

	selectionStyle := theme.SelectionStyle
	cursorStyle := theme.modeStyle(mode.Kind)
	blink.Style = cursorStyle
	blink.TextStyle = lipgloss.NewStyle()

	renderCursorCell := func(ch string, hl editor.LineHighlight, col int) string {
		if mode.Kind == editor.ModeInsert {
			blink.SetChar(ch)
			return blink.View()
		}
		style := lipgloss.NewStyle()
		if inHighlight(hl, col) {
			style = selectionStyle
		}
		return style.Inherit(cursorStyle).Render(ch)
	}

	var b strings.Builder
	for i, line := range visible {
		docLine := vp.TopBorder + i
		if showLineNumbers {
			b.WriteString(renderGutterCell(gutter[i], gutterWidth, theme))
		}

		hl := highlights[i]
		runes := []rune(clipToWidth(line, textWidth))
		for col, ch := range runes {
			if docLine == cur.Line && col == cur.Col {
				b.WriteString(renderCursorCell(string(ch), hl, col))
				continue
			}
			style := lipgloss.NewStyle()
			if inHighlight(hl, col) {
				style = selectionStyle
			}
			b.WriteString(style.Render(string(ch)))
		}
		if docLine == cur.Line && cur.Col >= len(runes) {
			b.WriteString(renderCursorCell(" ", hl, len(runes)))
		}
		if i < len(visible)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func inHighlight(hl editor.LineHighlight, col int) bool {
	switch hl.Kind {
	case editor.HighlightFull:
		return true
	case editor.HighlightPartial:
		if hl.To < 0 {
			return col >= hl.From
		}
		return col >= hl.From && col < hl.To
	default:
		return false
	}
}

func renderGutterCell(entry editor.GutterEntry, width int, theme Theme) string {
	style := theme.LineNumberStyle
	text := ""
	if entry.Number > 0 {
		text = strconv.Itoa(entry.Number)
		if entry.IsCurrent {
			style = theme.CurrentLineNumberStyle
		}
	}
	return style.Width(width - 1).Align(lipgloss.Right).Render(text) + editor.GutterSeparator
}

// renderStatusLine is the mode-colored status strip, grounded on
// adapter-bubbletea/adapter.go's getStatusLine.
func renderStatusLine(ed *editor.Editor, theme Theme, width int) string {
	mode := ed.Mode()
	label := " " + mode.String() + " "
	statusLine := theme.modeStyle(mode.Kind).Render(label)

	cursor := ed.CursorPos()
	cursorInfo := strconv.Itoa(cursor.Line+1) + ":" + strconv.Itoa(cursor.Col+1) + " "

	pad := width - lipgloss.Width(statusLine) - lipgloss.Width(cursorInfo)
	if pad < 0 {
		pad = 0
	}
	return statusLine + theme.StatusLineStyle.Render(strings.Repeat(" ", pad)+cursorInfo)
}

// renderCommandLine is the bottom bar: a transient message if there is one,
// else a surfaced error, else the live command-plane text while in
// Command/Find mode, matching adapter-bubbletea/adapter.go's View().
func renderCommandLine(ed *editor.Editor, theme Theme, message string, errText string) string {
	mode := ed.Mode()
	line := ""
	if mode.Kind == editor.ModeCommand || mode.Kind == editor.ModeFind {
		line = ed.Buffer().GetCommandText()
	}
	if message != "" {
		return theme.MessageStyle.Render(message)
	}
	if errText != "" {
		return theme.ErrorStyle.Render(errText)
	}
	return theme.CommandLineStyle.Render(line)
}
