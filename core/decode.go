package core

// decode turns one KeyEvent into an Action under the current mode, per
// spec.md §4.5 step 3. Multi-keystroke sequences (f/F/t/T/r/p/P) are tracked
// via a single pending "awaiting char" latch consumed on the very next
// keystroke, and a numeric prefix accumulates into pendingDigits until a
// non-digit keystroke reads and resets it.
func (e *Editor) decode(ev KeyEvent) Action {
	if e.awaitingChar {
		kind := e.awaitingKind
		e.awaitingChar = false
		e.pendingRepeat = e.takeRepeat()
		if kind == ActionPaste || kind == ActionPasteAbove {
			return Action{Kind: kind, Register: ev.Rune}
		}
		return Action{Kind: kind, Char: ev.Rune}
	}

	switch e.modal.Kind {
	case ModeNormal:
		return e.decodeNormal(ev)
	case ModeInsert:
		return e.decodeInsert(ev)
	case ModeVisual, ModeVisualLine:
		return e.decodeVisual(ev)
	case ModeCommand, ModeFind:
		return e.decodeCommandLike(ev)
	default:
		return Action{Kind: ActionNothing}
	}
}

func (e *Editor) takeRepeat() int {
	n := e.pendingDigits
	e.pendingDigits = 0
	if n <= 0 {
		return 1
	}
	return n
}

func (e *Editor) latch(kind ActionKind) Action {
	e.awaitingChar = true
	e.awaitingKind = kind
	return Action{Kind: ActionNothing}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// decodeNormal implements the Normal-mode key table from spec.md §6.
func (e *Editor) decodeNormal(ev KeyEvent) Action {
	if ev.Rune != 0 && isDigit(ev.Rune) && !(ev.Rune == '0' && e.pendingDigits == 0) {
		e.pendingDigits = e.pendingDigits*10 + int(ev.Rune-'0')
		return Action{Kind: ActionNothing}
	}

	e.pendingRepeat = e.takeRepeat()

	if ev.Modifiers&ModCtrl != 0 {
		switch ev.Rune {
		case 'u':
			return Action{Kind: ActionJumpUp}
		case 'd':
			return Action{Kind: ActionJumpDown}
		case 'r':
			return Action{Kind: ActionRedo}
		}
	}

	switch ev.Key {
	case KeyLeft:
		return Action{Kind: ActionBumpLeft}
	case KeyRight:
		return Action{Kind: ActionBumpRight}
	case KeyUp:
		return Action{Kind: ActionBumpUp}
	case KeyDown:
		return Action{Kind: ActionBumpDown}
	case KeyHome:
		return Action{Kind: ActionSOL}
	case KeyEnd:
		return Action{Kind: ActionEOL}
	}

	switch ev.Rune {
	case 'h':
		return Action{Kind: ActionBumpLeft}
	case 'l':
		return Action{Kind: ActionBumpRight}
	case 'k':
		return Action{Kind: ActionBumpUp}
	case 'j':
		return Action{Kind: ActionBumpDown}
	case 'w':
		return Action{Kind: ActionSymbolForward}
	case 'b':
		return Action{Kind: ActionSymbolBackward}
	case 'W':
		return Action{Kind: ActionWordForward}
	case 'B':
		return Action{Kind: ActionWordBackward}
	case '_':
		return Action{Kind: ActionSOL}
	case '$':
		return Action{Kind: ActionEOL}
	case 'g':
		return Action{Kind: ActionSOF}
	case 'G':
		return Action{Kind: ActionEOF}
	case 'i':
		return Action{Kind: ActionChangeMode, Mode: NewModal(ModeInsert)}
	case 'A':
		return Action{Kind: ActionInsertModeEOL}
	case 'o':
		return Action{Kind: ActionInsertModeBelow}
	case 'O':
		return Action{Kind: ActionInsertModeAbove}
	case 'v':
		return Action{Kind: ActionChangeMode, Mode: NewModal(ModeVisual)}
	case 'V':
		return Action{Kind: ActionChangeMode, Mode: NewModal(ModeVisualLine)}
	case ':':
		return Action{Kind: ActionChangeMode, Mode: NewModal(ModeCommand)}
	case '/':
		return Action{Kind: ActionChangeMode, Mode: NewFindModal(Forwards)}
	case '?':
		return Action{Kind: ActionChangeMode, Mode: NewFindModal(Backwards)}
	case 'f':
		return e.latch(ActionFindChar)
	case 'F':
		return e.latch(ActionReverseFindChar)
	case 't':
		return e.latch(ActionToChar)
	case 'T':
		return e.latch(ActionReverseToChar)
	case 'r':
		return e.latch(ActionReplaceChar)
	case 'p':
		return e.latch(ActionPaste)
	case 'P':
		return e.latch(ActionPasteAbove)
	case 'x':
		return Action{Kind: ActionDeleteAtCursor}
	case 'X':
		return Action{Kind: ActionDeleteBeforeCursor}
	case 'u':
		return Action{Kind: ActionUndo}
	}
	return Action{Kind: ActionNothing}
}

// decodeInsert implements spec.md §6's Insert-mode behavior: printable chars
// insert, Enter inserts a newline, Backspace deletes before, arrows bump, and
// Escape returns to Normal.
func (e *Editor) decodeInsert(ev KeyEvent) Action {
	switch ev.Key {
	case KeyEscape:
		return Action{Kind: ActionChangeMode, Mode: NewModal(ModeNormal)}
	case KeyEnter:
		return Action{Kind: ActionInsertNewLine}
	case KeyBackspace:
		return Action{Kind: ActionDeleteBeforeCursor}
	case KeyLeft:
		return Action{Kind: ActionBumpLeft}
	case KeyRight:
		return Action{Kind: ActionBumpRight}
	case KeyUp:
		return Action{Kind: ActionBumpUp}
	case KeyDown:
		return Action{Kind: ActionBumpDown}
	}
	if ev.Rune != 0 {
		return Action{Kind: ActionInsertChar, Char: ev.Rune}
	}
	return Action{Kind: ActionNothing}
}

// decodeVisual handles Visual/VisualLine: the same movement keys as Normal,
// plus mode toggles. No selection-mutating operator is defined in scope
// (§1's core scope stops at highlighting the selection); Visual/VisualLine
// exist to drive the viewport's highlight computation while the user
// navigates.
func (e *Editor) decodeVisual(ev KeyEvent) Action {
	switch ev.Key {
	case KeyEscape:
		return Action{Kind: ActionChangeMode, Mode: NewModal(ModeNormal)}
	}
	switch ev.Rune {
	case 'v':
		if e.modal.Kind == ModeVisual {
			return Action{Kind: ActionChangeMode, Mode: NewModal(ModeNormal)}
		}
		return Action{Kind: ActionChangeMode, Mode: NewModal(ModeVisual)}
	case 'V':
		if e.modal.Kind == ModeVisualLine {
			return Action{Kind: ActionChangeMode, Mode: NewModal(ModeNormal)}
		}
		return Action{Kind: ActionChangeMode, Mode: NewModal(ModeVisualLine)}
	case ':':
		return Action{Kind: ActionChangeMode, Mode: NewModal(ModeCommand)}
	}
	return e.decodeNormal(ev)
}

// decodeCommandLike implements Command/Find mode per spec.md §6: printable
// chars accumulate in the command plane, Enter parses and executes, arrows
// and Backspace edit the line, Escape returns to Normal, Up fetches the most
// recent command-line text from history (recorded on every exit from
// Command/Find, including Escape).
func (e *Editor) decodeCommandLike(ev KeyEvent) Action {
	switch ev.Key {
	case KeyEscape:
		return Action{Kind: ActionChangeMode, Mode: NewModal(ModeNormal)}
	case KeyEnter:
		return Action{Kind: ActionExecuteCommand}
	case KeyBackspace:
		return Action{Kind: ActionDeleteBeforeCursor}
	case KeyLeft:
		return Action{Kind: ActionBumpLeft}
	case KeyRight:
		return Action{Kind: ActionBumpRight}
	case KeyUp:
		return Action{Kind: ActionFetchFromHistory}
	}
	if ev.Rune != 0 {
		return Action{Kind: ActionInsertChar, Char: ev.Rune}
	}
	return Action{Kind: ActionNothing}
}
