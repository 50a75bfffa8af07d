package core

import "errors"

// Extension is a registered delegate notified of every primitive after the
// buffer, cursor and shadow cursor have all seen it, per spec.md
// §4.5's fixed delegation order ("extensions must tolerate a post-commit view
// of buffer and cursor"). No extensions ship in this package; the type exists
// so a host (the terminal adapter) can hook side effects — e.g. mirroring
// edits to an external index — without the editor core knowing about it.
type Extension interface {
	Execute(action BaseAction, editor *Editor) error
}

// Editor is the single-threaded core: it owns the buffer, the real and
// shadow cursors, the viewport, the current mode, and the primitive queue,
// and drives the decode→resolve→enqueue→drain tick described in spec.md §4.5.
type Editor struct {
	buffer   *Buffer
	cursor   *Cursor
	shadow   *ShadowCursor
	viewport *Viewport
	modal    Modal

	visualAnchor LineCol

	queue   []BaseAction
	history []Action

	pendingRepeat int
	pendingDigits int
	awaitingChar  bool
	awaitingKind  ActionKind

	cmdHistory []string

	extensions []Extension

	// SaveHook persists the Normal plane; file I/O is an external collaborator
	// per spec.md §1, so the core only calls out to it on BaseSave.
	SaveHook func(lines []string) error
}

// NewEditor wires a fresh Editor around buffer, in Normal mode with a
// width x height viewport.
func NewEditor(buffer *Buffer, width, height int) *Editor {
	return &Editor{
		buffer:        buffer,
		cursor:        NewCursor(),
		shadow:        &ShadowCursor{},
		viewport:      NewViewport(width, height),
		modal:         NewModal(ModeNormal),
		pendingRepeat: 1,
	}
}

func (e *Editor) RegisterExtension(ext Extension) { e.extensions = append(e.extensions, ext) }

func (e *Editor) Mode() Modal        { return e.modal }
func (e *Editor) CursorPos() LineCol { return e.cursor.Pos }
func (e *Editor) Buffer() *Buffer    { return e.buffer }
func (e *Editor) Viewport() *Viewport { return e.viewport }

// Selection reports the current Visual/VisualLine selection, anchored where
// the mode was entered and running to the live cursor. Meaningless outside
// those two modes; callers should gate on Mode().Kind first.
func (e *Editor) Selection() Selection { return SelectionFrom(e.visualAnchor, e.cursor.Pos) }

// Resize refreshes the viewport from the terminal and keeps the cursor in view.
func (e *Editor) Resize(width, height int) {
	e.viewport.Resize(width, height)
	e.viewport.EnsureCursorVisible(e.cursor.Pos.Line, e.buffer.LineCount())
}

func (e *Editor) resolveCtx() ResolveContext {
	return ResolveContext{
		Lines:           e.buffer.Lines(),
		CursorPos:       e.cursor.Pos,
		LastTextModePos: e.cursor.LastTextModePos,
		CommandText:     e.buffer.GetCommandText(),
	}
}

// Tick runs one full iteration of the event loop per spec.md §4.5: force any
// pending command text into the notification bar, decode the key event into
// an Action under the current mode, resolve it to primitives, drain the
// queue, and re-anchor the shadow cursor. The terminal read that produces ev
// is the loop's single blocking suspension point and happens in the caller.
func (e *Editor) Tick(ev KeyEvent) error {
	if inCommandLike(e.modal) && !e.buffer.IsCommandEmpty() {
		Notify(e.buffer.GetCommandText())
	}

	action := e.decode(ev)
	e.history = append(e.history, action)

	ctx := e.resolveCtx()
	if action.Kind == ActionExecuteCommand {
		// Find/Rfind search the document, not the command line being executed.
		ctx.Lines = cloneLines(e.buffer.normal)
	}
	prims, resolveErr := Resolve(action, ctx)
	if len(prims) == 1 && e.pendingRepeat != 1 {
		prims[0] = prims[0].Repeat(e.pendingRepeat)
	}
	e.pendingRepeat = 1

	e.queue = append(e.queue, prims...)
	for len(e.queue) > 0 {
		next := e.queue[0]
		e.queue = e.queue[1:]
		if err := e.performAction(next); err != nil {
			if handled, quit := e.handleError(err); quit {
				return handled
			}
		}
	}

	e.shadow.ResetTo(e.cursor.Pos)
	e.viewport.EnsureCursorVisible(e.cursor.Pos.Line, e.buffer.LineCount())

	if resolveErr != nil {
		if handled, quit := e.handleError(resolveErr); quit {
			return handled
		}
	}
	return nil
}

func inCommandLike(m Modal) bool { return m.Kind == ModeCommand || m.Kind == ModeFind }

// handleError applies the propagation policy from spec.md §7. It returns
// (err, true) when the event loop must stop (ExitCall, or an unrecovered
// ProgrammingBug); otherwise the error has been locally recovered or merely
// surfaced to the notification bar, and the loop continues.
func (e *Editor) handleError(err error) (error, bool) {
	switch {
	case errors.Is(err, ErrExitCall):
		return err, true
	case errors.Is(err, ErrPatternNotFound):
		e.modal = NewModal(ModeNormal)
		e.viewport.Mode = e.modal
		Notify(err.Error())
		return nil, false
	case errors.Is(err, ErrNowhereToGo):
		Notify(err.Error())
		return nil, false
	default:
		var bug *ProgrammingBug
		if errors.As(err, &bug) {
			Notify(bug.Error())
			return err, true
		}
		Notify(err.Error())
		return nil, false
	}
}

// performAction classifies a primitive per spec.md §4.5: Move* goes through
// bound-checked delegation, ChangeMode updates the editor's modal field then
// delegates, everything else delegates directly.
func (e *Editor) performAction(action BaseAction) error {
	switch action.Kind {
	case BaseMoveUp, BaseMoveDown, BaseMoveLeft, BaseMoveRight:
		return e.boundCheckedDelegate(action)
	case BaseChangeMode:
		return e.changeMode(action)
	default:
		return e.plainDelegate(action)
	}
}

func (e *Editor) changeMode(action BaseAction) error {
	from := e.modal
	to := action.Mode
	e.modal = to
	e.viewport.Mode = to
	e.buffer.SetPlane(to)

	if inCommandLike(to) && !inCommandLike(from) {
		e.buffer.ClearCommand()
		if to.Kind == ModeFind {
			prefix := "/"
			if to.Direction == Backwards {
				prefix = "?"
			}
			e.buffer.ReplaceCommandText(prefix)
		}
	}
	if inCommandLike(from) && !inCommandLike(to) {
		text := e.buffer.GetCommandText()
		if text != "/" && text != "?" && text != "" {
			e.cmdHistory = append(e.cmdHistory, text)
		}
	}

	e.cursor.ChangeMode(from, to)
	if to.Kind == ModeFind && !inCommandLike(from) {
		// Typing continues after the "/" or "?" prefix placed above.
		e.cursor.SetCursor(LineCol{Line: 0, Col: e.buffer.MaxCol(0)})
	}

	enteringVisual := (to.Kind == ModeVisual || to.Kind == ModeVisualLine)
	wasVisual := (from.Kind == ModeVisual || from.Kind == ModeVisualLine)
	if enteringVisual && !wasVisual {
		e.visualAnchor = e.cursor.Pos
	}

	e.shadow.Apply(action)
	for _, ext := range e.extensions {
		if err := ext.Execute(action, e); err != nil {
			return err
		}
	}
	return nil
}

// boundCheckedDelegate implements spec.md §4.5's bound-checked delegation:
// the shadow cursor speculatively absorbs the move first; lines that would
// run off either end of the buffer are rewritten to JumpEOF/JumpSOF, columns
// that would run off either end of the target line to JumpEOL/JumpSOL.
func (e *Editor) boundCheckedDelegate(action BaseAction) error {
	e.shadow.Apply(action)
	altered := false

	switch {
	case e.shadow.Line > e.buffer.MaxLine():
		e.shadow.Line = e.cursor.Pos.Line
		if err := e.delegateResolved(ActionEOF); err != nil {
			return err
		}
		altered = true
	case e.shadow.Line < 0:
		e.shadow.Line = e.cursor.Pos.Line
		if err := e.delegateResolved(ActionSOF); err != nil {
			return err
		}
		altered = true
	}

	isVertical := action.Kind == BaseMoveUp || action.Kind == BaseMoveDown
	if isVertical && !altered {
		if err := e.plainDelegate(action); err != nil {
			return err
		}
	}

	maxCol := e.buffer.MaxCol(e.cursor.Pos.Line)
	switch {
	case e.shadow.Col > maxCol:
		if err := e.delegateResolved(ActionEOL); err != nil {
			return err
		}
		altered = true
	case e.shadow.Col < 0:
		if err := e.delegateResolved(ActionSOL); err != nil {
			return err
		}
		altered = true
	}

	if !altered && !isVertical {
		if err := e.plainDelegate(action); err != nil {
			return err
		}
	}

	e.shadow.ResetTo(e.cursor.Pos)
	return nil
}

// delegateResolved resolves a correction kind (JumpEOF/JumpSOF/JumpEOL/JumpSOL,
// modeled here as the matching SOL/EOL/SOF/EOF Action) against the real
// cursor's current position and plainly delegates each resulting primitive.
func (e *Editor) delegateResolved(kind ActionKind) error {
	prims, err := Resolve(Action{Kind: kind}, e.resolveCtx())
	if err != nil {
		return err
	}
	for _, p := range prims {
		if err := e.plainDelegate(p); err != nil {
			return err
		}
	}
	return nil
}

// plainDelegate implements spec.md §4.5's plain delegation: resolve any
// pending lazy position against the current real cursor, then call
// execute_action on buffer, cursor, shadow cursor and every extension in that
// fixed order.
func (e *Editor) plainDelegate(action BaseAction) error {
	action = e.resolveLazy(action)
	if err := e.applyToBuffer(action); err != nil {
		return err
	}
	e.cursor.Apply(action)
	e.shadow.Apply(action)
	for _, ext := range e.extensions {
		if err := ext.Execute(action, e); err != nil {
			return err
		}
	}
	return nil
}

func (e *Editor) resolveLazy(action BaseAction) BaseAction {
	switch action.Kind {
	case BaseInsertAt, BaseDeleteAt, BaseInsertLineAt, BasePaste:
		if action.Pos.IsPending() {
			action.Pos = action.Pos.Resolved(e.cursor.Pos)
		}
	}
	return action
}

// applyToBuffer is the buffer-facing half of plain delegation: it performs
// the actual text mutation (or register/history lookup) for primitive kinds
// the buffer, not the cursor, owns.
func (e *Editor) applyToBuffer(action BaseAction) error {
	switch action.Kind {
	case BaseSave:
		if e.SaveHook != nil {
			if err := e.SaveHook(e.buffer.Lines()); err != nil {
				return err
			}
		}
		e.buffer.MarkSaved()
		return nil

	case BaseInsertAt:
		pos, ok := action.Pos.Get()
		if !ok {
			return &ProgrammingBug{Descr: "InsertAt delegated with an unresolved lazy position"}
		}
		e.buffer.SaveUndo(e.cursor.Pos)
		if err := e.buffer.Insert(pos, action.Char); err != nil {
			return err
		}
		e.cursor.SetCursor(LineCol{Line: pos.Line, Col: pos.Col})
		return nil

	case BaseInsertLineAt:
		pos, ok := action.Pos.Get()
		if !ok {
			return &ProgrammingBug{Descr: "InsertLineAt delegated with an unresolved lazy position"}
		}
		e.buffer.SaveUndo(e.cursor.Pos)
		if err := e.buffer.InsertNewline(pos); err != nil {
			return err
		}
		return nil

	case BaseDeleteAt:
		pos, ok := action.Pos.Get()
		if !ok {
			return &ProgrammingBug{Descr: "DeleteAt delegated with an unresolved lazy position"}
		}
		// Yank-to-register on delete: the original's editor.rs folds every
		// delete into the default register before the text is gone.
		if pos.Col > 0 {
			line := []rune(e.buffer.Line(pos.Line))
			if pos.Col-1 < len(line) {
				e.buffer.SetRegister(0, string(line[pos.Col-1]))
			}
		}
		e.buffer.SaveUndo(e.cursor.Pos)
		newPos, err := e.buffer.Delete(pos)
		if err != nil {
			return err
		}
		e.cursor.SetCursor(newPos)
		return nil

	case BasePaste:
		// The only register writer in this package (BaseDeleteAt's yank) stores
		// a single character, so paste is char-wise, not line-wise: p splices the
		// register content immediately after the cursor, P immediately before.
		content, err := e.buffer.GetRegister(action.Register)
		if err != nil {
			return err
		}
		pos, ok := action.Pos.Get()
		if !ok {
			return &ProgrammingBug{Descr: "Paste delegated with an unresolved lazy position"}
		}
		if !action.Above {
			pos.Col = min(pos.Col+1, e.buffer.MaxCol(pos.Line))
		}
		e.buffer.SaveUndo(e.cursor.Pos)
		newPos, err := e.buffer.InsertText(pos, content, false)
		if err != nil {
			return err
		}
		e.cursor.SetCursor(newPos)
		return nil

	case BaseUndo:
		for i := 0; i < max(action.N, 1); i++ {
			pos, err := e.buffer.Undo(e.cursor.Pos)
			if err != nil {
				return err
			}
			e.cursor.SetCursor(pos)
		}
		return nil

	case BaseRedo:
		for i := 0; i < max(action.N, 1); i++ {
			pos, err := e.buffer.Redo(e.cursor.Pos)
			if err != nil {
				return err
			}
			e.cursor.SetCursor(pos)
		}
		return nil

	case BaseFetchFromHistory:
		if len(e.cmdHistory) > 0 {
			e.buffer.ReplaceCommandText(e.cmdHistory[len(e.cmdHistory)-1])
		}
		return nil

	default:
		return nil
	}
}
