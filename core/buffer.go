package core

import (
	"strings"
)

// Plane selects one of the buffer's three independent line arrays.
type Plane int

const (
	PlaneNormal Plane = iota
	PlaneCommand
	PlaneTerminal
)

const maxHistoryEntries = 1000

// capsule is an undo/redo snapshot: the full Normal-plane content at the time of
// the save, plus the cursor position the caller should return to.
type capsule struct {
	lines  []string
	cursor LineCol
}

// Buffer is the line-addressed text store behind the editor: three parallel
// planes (Normal document, Command entry line, Terminal scratch area), undo/redo
// history on the Normal plane only, and range-oriented edit operations.
type Buffer struct {
	normal   []string
	command  []string
	terminal []string
	active   Plane

	undoStack []capsule
	redoStack []capsule

	registers map[rune]string

	modified bool
}

// NewBuffer returns a Buffer with every plane holding a single empty line.
func NewBuffer() *Buffer {
	return &Buffer{
		normal:    []string{""},
		command:   []string{""},
		terminal:  []string{""},
		active:    PlaneNormal,
		registers: make(map[rune]string),
	}
}

// NewBufferFromLines seeds the Normal plane from pre-split lines (e.g. a loaded file).
func NewBufferFromLines(lines []string) *Buffer {
	b := NewBuffer()
	if len(lines) == 0 {
		lines = []string{""}
	}
	b.normal = append([]string{}, lines...)
	return b
}

func (b *Buffer) plane() []string {
	switch b.active {
	case PlaneCommand:
		return b.command
	case PlaneTerminal:
		return b.terminal
	default:
		return b.normal
	}
}

func (b *Buffer) setPlaneLines(lines []string) {
	switch b.active {
	case PlaneCommand:
		b.command = lines
	case PlaneTerminal:
		b.terminal = lines
	default:
		b.normal = lines
	}
}

// SetPlane maps the current Modal onto the plane the buffer should address:
// Command and Find modes use the Command plane, every text mode uses Normal.
func (b *Buffer) SetPlane(m Modal) {
	if m.Kind == ModeCommand || m.Kind == ModeFind {
		b.active = PlaneCommand
	} else {
		b.active = PlaneNormal
	}
}

func (b *Buffer) ActivePlane() Plane { return b.active }

// --- Command-plane utilities ---

func (b *Buffer) IsCommandEmpty() bool {
	return len(b.command) == 1 && b.command[0] == ""
}

func (b *Buffer) ClearCommand() {
	b.command = []string{""}
}

func (b *Buffer) ReplaceCommandText(text string) {
	b.command = []string{text}
}

func (b *Buffer) GetCommandText() string {
	if len(b.command) == 0 {
		return ""
	}
	return b.command[0]
}

// --- Dimension queries (active plane) ---

func (b *Buffer) LineCount() int { return len(b.plane()) }
func (b *Buffer) MaxLine() int   { return max(b.LineCount()-1, 0) }

func (b *Buffer) MaxCol(line int) int {
	lines := b.plane()
	if line < 0 || line >= len(lines) {
		return 0
	}
	return len([]rune(lines[line]))
}

func (b *Buffer) MaxLineCol() LineCol {
	line := b.MaxLine()
	return LineCol{Line: line, Col: b.MaxCol(line)}
}

func (b *Buffer) Lines() []string { return append([]string{}, b.plane()...) }

func (b *Buffer) Line(n int) string {
	lines := b.plane()
	if n < 0 || n >= len(lines) {
		return ""
	}
	return lines[n]
}

func (b *Buffer) inBounds(at LineCol) bool {
	lines := b.plane()
	if at.Line < 0 || at.Line >= len(lines) {
		return false
	}
	return at.Col >= 0 && at.Col <= len([]rune(lines[at.Line]))
}

// --- Mutation ---

// Insert inserts ch at `at`. Fails InvalidPosition if at.Line or at.Col is out of range.
func (b *Buffer) Insert(at LineCol, ch rune) error {
	if !b.inBounds(at) {
		return newError(ErrIDInvalidPosition, ErrInvalidPosition)
	}
	lines := b.plane()
	runes := []rune(lines[at.Line])
	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:at.Col]...)
	out = append(out, ch)
	out = append(out, runes[at.Col:]...)
	lines[at.Line] = string(out)
	return nil
}

// InsertNewline inserts a new empty line immediately after at.Line.
func (b *Buffer) InsertNewline(at LineCol) error {
	lines := b.plane()
	if at.Line < 0 || at.Line >= len(lines) {
		return newError(ErrIDInvalidPosition, ErrInvalidPosition)
	}
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at.Line+1]...)
	out = append(out, "")
	out = append(out, lines[at.Line+1:]...)
	b.setPlaneLines(out)
	return nil
}

// InsertText splices text into the buffer. If asNewLines, the text's lines are
// inserted starting at at.Line+1 regardless of at.Col, and the resulting cursor is
// (at.Line+1, 0). Otherwise the text is spliced at (at.Line, at.Col): a single-line
// insert keeps the current line; a multi-line insert splits it, appending the first
// inserted line to the head and prepending the remaining tail to the last inserted
// line, with any middle lines inserted verbatim.
func (b *Buffer) InsertText(at LineCol, text string, asNewLines bool) (LineCol, error) {
	if text == "" {
		return LineCol{}, newError(ErrIDInvalidInput, ErrInvalidInput)
	}
	if !b.inBounds(at) {
		return LineCol{}, newError(ErrIDInvalidPosition, ErrInvalidPosition)
	}
	parts := strings.Split(text, "\n")
	lines := b.plane()

	if asNewLines {
		out := make([]string, 0, len(lines)+len(parts))
		out = append(out, lines[:at.Line+1]...)
		out = append(out, parts...)
		out = append(out, lines[at.Line+1:]...)
		b.setPlaneLines(out)
		return LineCol{Line: at.Line + 1, Col: 0}, nil
	}

	current := []rune(lines[at.Line])
	head := string(current[:at.Col])
	tail := string(current[at.Col:])

	if len(parts) == 1 {
		lines[at.Line] = head + parts[0] + tail
		return LineCol{Line: at.Line, Col: at.Col + len([]rune(parts[0]))}, nil
	}

	out := make([]string, 0, len(lines)+len(parts)-1)
	out = append(out, lines[:at.Line]...)
	out = append(out, head+parts[0])
	out = append(out, parts[1:len(parts)-1]...)
	out = append(out, parts[len(parts)-1]+tail)
	out = append(out, lines[at.Line+1:]...)
	b.setPlaneLines(out)

	lastInserted := parts[len(parts)-1]
	return LineCol{Line: at.Line + len(parts) - 1, Col: len([]rune(lastInserted))}, nil
}

// Delete deletes the character immediately before at.Col on at.Line. If
// at.Col == 0 and at.Line > 0, it joins the current line onto the previous one.
// Deleting before (0,0) fails ImATeacup (nothing precedes the buffer start).
func (b *Buffer) Delete(at LineCol) (LineCol, error) {
	lines := b.plane()
	if at.Col == 0 {
		if at.Line == 0 {
			return LineCol{}, newError(ErrIDImATeacup, ErrImATeacup)
		}
		prevLen := len([]rune(lines[at.Line-1]))
		out := make([]string, 0, len(lines)-1)
		out = append(out, lines[:at.Line-1]...)
		out = append(out, lines[at.Line-1]+lines[at.Line])
		out = append(out, lines[at.Line+1:]...)
		b.setPlaneLines(out)
		return LineCol{Line: at.Line - 1, Col: prevLen}, nil
	}
	runes := []rune(lines[at.Line])
	if at.Col-1 < 0 || at.Col-1 >= len(runes) {
		return LineCol{}, newError(ErrIDInvalidPosition, ErrInvalidPosition)
	}
	out := make([]rune, 0, len(runes)-1)
	out = append(out, runes[:at.Col-1]...)
	out = append(out, runes[at.Col:]...)
	lines[at.Line] = string(out)
	return LineCol{Line: at.Line, Col: at.Col - 1}, nil
}

// DeleteSelection removes the half-open range [from, to). Whole lines are removed
// when from.Col == 0 and to.Col reaches end-of-line at to.Line.
func (b *Buffer) DeleteSelection(from, to LineCol) error {
	if to.Less(from) || from == to {
		return &ErrInvalidRange{From: from, To: to}
	}
	if !b.inBounds(from) || !b.inBounds(to) {
		return newError(ErrIDInvalidPosition, ErrInvalidPosition)
	}
	lines := b.plane()

	if from.Line == to.Line {
		runes := []rune(lines[from.Line])
		out := make([]rune, 0, len(runes)-(to.Col-from.Col))
		out = append(out, runes[:from.Col]...)
		out = append(out, runes[to.Col:]...)
		lines[from.Line] = string(out)
		return nil
	}

	wholeLines := from.Col == 0 && to.Col == len([]rune(lines[to.Line]))

	if wholeLines {
		out := make([]string, 0, len(lines)-(to.Line-from.Line+1))
		out = append(out, lines[:from.Line]...)
		out = append(out, lines[to.Line+1:]...)
		if len(out) == 0 {
			out = []string{""}
		}
		b.setPlaneLines(out)
		return nil
	}

	fromRunes := []rune(lines[from.Line])
	toRunes := []rune(lines[to.Line])
	merged := string(fromRunes[:from.Col]) + string(toRunes[to.Col:])

	out := make([]string, 0, len(lines)-(to.Line-from.Line))
	out = append(out, lines[:from.Line]...)
	out = append(out, merged)
	out = append(out, lines[to.Line+1:]...)
	b.setPlaneLines(out)
	return nil
}

// Replace deletes [from, to) and inserts text at from, as a single logical
// edit. Unlike DeleteSelection, from == to is not an error here: per spec.md
// §4.1, Replace avoids InvalidRange on equal endpoints, instead degrading to
// a pure insert at from with nothing to delete.
func (b *Buffer) Replace(from, to LineCol, text string) (LineCol, error) {
	if text == "" {
		return LineCol{}, newError(ErrIDInvalidInput, ErrInvalidInput)
	}
	if to.Less(from) {
		return LineCol{}, &ErrInvalidRange{From: from, To: to}
	}
	if from != to {
		if err := b.DeleteSelection(from, to); err != nil {
			return LineCol{}, err
		}
	}
	return b.InsertText(from, text, false)
}

// GetText returns the inclusive-start, exclusive-end text of [from, to), joining
// across lines with "\n".
func (b *Buffer) GetText(from, to LineCol) (string, error) {
	if to.Less(from) || !b.inBounds(from) || !b.inBounds(to) {
		return "", &ErrInvalidRange{From: from, To: to}
	}
	lines := b.plane()
	if from.Line == to.Line {
		runes := []rune(lines[from.Line])
		return string(runes[from.Col:to.Col]), nil
	}
	var sb strings.Builder
	sb.WriteString(string([]rune(lines[from.Line])[from.Col:]))
	for line := from.Line + 1; line < to.Line; line++ {
		sb.WriteByte('\n')
		sb.WriteString(lines[line])
	}
	sb.WriteByte('\n')
	sb.WriteString(string([]rune(lines[to.Line])[:to.Col]))
	return sb.String(), nil
}

// GetBufferWindow returns the lines in [from..=to], with the first and last lines
// trimmed to the requested columns. If to.Col == 0, the final (now-empty) line is
// dropped. Nil from/to default to the buffer start/end respectively.
func (b *Buffer) GetBufferWindow(from, to *LineCol) []string {
	lines := b.plane()
	start := LineCol{Line: 0, Col: 0}
	if from != nil {
		start = *from
	}
	end := LineCol{Line: b.MaxLine(), Col: b.MaxCol(b.MaxLine())}
	if to != nil {
		end = *to
	}
	if start.Line < 0 {
		start.Line = 0
	}
	if end.Line >= len(lines) {
		end.Line = len(lines) - 1
	}
	if end.Line < start.Line {
		return nil
	}

	window := append([]string{}, lines[start.Line:end.Line+1]...)
	if len(window) == 0 {
		return window
	}
	window[0] = trimRunesFrom(window[0], start.Col)
	lastIdx := len(window) - 1
	window[lastIdx] = trimRunesTo(window[lastIdx], end.Col)
	if end.Col == 0 {
		window = window[:lastIdx]
	}
	return window
}

// GetFullLinesBufferWindow is GetBufferWindow without column trimming.
func (b *Buffer) GetFullLinesBufferWindow(from, to *LineCol) []string {
	lines := b.plane()
	startLine := 0
	if from != nil {
		startLine = from.Line
	}
	endLine := b.MaxLine()
	if to != nil {
		endLine = to.Line
	}
	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(lines) {
		endLine = len(lines) - 1
	}
	if endLine < startLine {
		return nil
	}
	return append([]string{}, lines[startLine:endLine+1]...)
}

func trimRunesFrom(s string, col int) string {
	runes := []rune(s)
	if col < 0 || col > len(runes) {
		return s
	}
	return string(runes[col:])
}

func trimRunesTo(s string, col int) string {
	runes := []rune(s)
	if col < 0 || col > len(runes) {
		return s
	}
	return string(runes[:col])
}

// --- Undo/redo ---

func cloneLines(lines []string) []string { return append([]string{}, lines...) }

// SaveUndo pushes the current Normal-plane content and the given cursor position
// as a new undo capsule, and clears the redo stack (the edit about to happen
// invalidates any previously-undone future). Capped at maxHistoryEntries, evicting
// the oldest entry. A no-op while another plane is active, since edits there do
// not touch the Normal plane.
func (b *Buffer) SaveUndo(cursor LineCol) {
	if b.active != PlaneNormal {
		return
	}
	b.undoStack = append(b.undoStack, capsule{lines: cloneLines(b.normal), cursor: cursor})
	if len(b.undoStack) > maxHistoryEntries {
		b.undoStack = b.undoStack[len(b.undoStack)-maxHistoryEntries:]
	}
	b.redoStack = nil
	b.modified = true
}

// IsModified reports whether the Normal plane has unsaved edits.
func (b *Buffer) IsModified() bool { return b.modified }

// MarkSaved clears the modified flag; callers invoke this after a successful
// write to disk (BaseSave's SaveHook).
func (b *Buffer) MarkSaved() { b.modified = false }

// Undo restores the most recent undo capsule, pushing the current state onto the
// redo stack first. Returns the cursor position to restore. Fails NowhereToGo when
// the undo stack is empty.
func (b *Buffer) Undo(currentCursor LineCol) (LineCol, error) {
	if len(b.undoStack) == 0 {
		return LineCol{}, newError(ErrIDNowhereToGo, ErrNowhereToGo)
	}
	b.redoStack = append(b.redoStack, capsule{lines: cloneLines(b.normal), cursor: currentCursor})
	if len(b.redoStack) > maxHistoryEntries {
		b.redoStack = b.redoStack[len(b.redoStack)-maxHistoryEntries:]
	}
	last := b.undoStack[len(b.undoStack)-1]
	b.undoStack = b.undoStack[:len(b.undoStack)-1]
	b.normal = last.lines
	return last.cursor, nil
}

// Redo is the mirror of Undo.
func (b *Buffer) Redo(currentCursor LineCol) (LineCol, error) {
	if len(b.redoStack) == 0 {
		return LineCol{}, newError(ErrIDNowhereToGo, ErrNowhereToGo)
	}
	b.undoStack = append(b.undoStack, capsule{lines: cloneLines(b.normal), cursor: currentCursor})
	if len(b.undoStack) > maxHistoryEntries {
		b.undoStack = b.undoStack[len(b.undoStack)-maxHistoryEntries:]
	}
	last := b.redoStack[len(b.redoStack)-1]
	b.redoStack = b.redoStack[:len(b.redoStack)-1]
	b.normal = last.lines
	return last.cursor, nil
}

// --- Registers ---

const defaultRegister = '"'

func (b *Buffer) SetRegister(name rune, content string) {
	if name == 0 {
		name = defaultRegister
	}
	b.registers[name] = content
}

func (b *Buffer) GetRegister(name rune) (string, error) {
	if name == 0 {
		name = defaultRegister
	}
	content, ok := b.registers[name]
	if !ok {
		return "", newError(ErrIDUnexpectedRegisterData, ErrUnexpectedRegisterData)
	}
	return content, nil
}
