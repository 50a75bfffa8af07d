package core

// ResolveContext is the read-only buffer/cursor state the resolver consults to
// compute positions (word/symbol boundaries, EOL/EOF, find/to-char searches,
// and the pending command text and last text-mode position for
// ExecuteCommand). It never carries anything mutable; Resolve itself never
// mutates the editor.
type ResolveContext struct {
	Lines           []string
	CursorPos       LineCol
	LastTextModePos LineCol // cursor.last_text_mode_pos, used as the search origin for ExecuteCommand's Find/Rfind
	CommandText     string
}

func (c ResolveContext) MaxCol(line int) int {
	if line < 0 || line >= len(c.Lines) {
		return 0
	}
	return len([]rune(c.Lines[line]))
}

func (c ResolveContext) MaxLine() int { return max(len(c.Lines)-1, 0) }

// Resolve turns a high-level Action into the ordered queue of BaseAction
// primitives that implement it, per spec.md §4.4. The returned slice may be
// nil on success: ActionNothing and a failed word/symbol boundary search
// resolve to no primitives at all.
func Resolve(a Action, ctx ResolveContext) ([]BaseAction, error) {
	switch a.Kind {
	// Bumps and jumps always resolve to a count of 1 (or JumpDist); a pending
	// numeric prefix is applied afterwards by Editor.Tick via BaseAction.Repeat,
	// since each of these resolves to exactly one primitive.
	case ActionBumpLeft:
		return []BaseAction{move(BaseMoveLeft, 1)}, nil
	case ActionBumpRight:
		return []BaseAction{move(BaseMoveRight, 1)}, nil
	case ActionBumpUp:
		return []BaseAction{move(BaseMoveUp, 1)}, nil
	case ActionBumpDown:
		return []BaseAction{move(BaseMoveDown, 1)}, nil

	case ActionJumpUp:
		return []BaseAction{move(BaseMoveUp, JumpDist)}, nil
	case ActionJumpDown:
		return []BaseAction{move(BaseMoveDown, JumpDist)}, nil

	case ActionSOL:
		return []BaseAction{move(BaseMoveLeft, ctx.CursorPos.Col)}, nil
	case ActionEOL:
		return []BaseAction{
			move(BaseMoveLeft, ctx.CursorPos.Col),
			move(BaseMoveRight, ctx.MaxCol(ctx.CursorPos.Line)),
		}, nil
	case ActionSOF:
		return []BaseAction{move(BaseMoveUp, ctx.CursorPos.Line)}, nil
	case ActionEOF:
		return []BaseAction{
			move(BaseMoveUp, ctx.CursorPos.Line),
			move(BaseMoveDown, ctx.MaxLine()),
		}, nil

	case ActionWordForward:
		return resolveBoundaryJump(ctx, isWhitespace, func(r rune) bool { return !isWhitespace(r) }, true)
	case ActionWordBackward:
		return resolveBoundaryJump(ctx, isWhitespace, func(r rune) bool { return !isWhitespace(r) }, false)
	case ActionSymbolForward:
		return resolveBoundaryJump(ctx, isAlphanumericOrUnderscore, func(r rune) bool {
			return !isAlphanumericOrUnderscore(r) && !isWhitespace(r)
		}, true)
	case ActionSymbolBackward:
		return resolveBoundaryJump(ctx, isAlphanumericOrUnderscore, func(r rune) bool {
			return !isAlphanumericOrUnderscore(r) && !isWhitespace(r)
		}, false)

	case ActionFindChar:
		if pos, ok := CharPattern(a.Char).Find(ctx.Lines, nextCol(ctx.CursorPos)); ok {
			return []BaseAction{setCursor(pos)}, nil
		}
		return nil, newError(ErrIDPatternNotFound, ErrPatternNotFound)
	case ActionReverseFindChar:
		if pos, ok := CharPattern(a.Char).Rfind(ctx.Lines, prevCol(ctx.CursorPos)); ok {
			return []BaseAction{setCursor(pos)}, nil
		}
		return nil, newError(ErrIDPatternNotFound, ErrPatternNotFound)
	case ActionToChar:
		if pos, ok := CharPattern(a.Char).Find(ctx.Lines, nextCol(ctx.CursorPos)); ok {
			return []BaseAction{setCursor(pos), move(BaseMoveLeft, 1)}, nil
		}
		return nil, newError(ErrIDPatternNotFound, ErrPatternNotFound)
	case ActionReverseToChar:
		if pos, ok := CharPattern(a.Char).Rfind(ctx.Lines, prevCol(ctx.CursorPos)); ok {
			return []BaseAction{setCursor(pos), move(BaseMoveRight, 1)}, nil
		}
		return nil, newError(ErrIDPatternNotFound, ErrPatternNotFound)

	case ActionExecuteCommand:
		return resolveExecuteCommand(ctx)

	case ActionChangeMode:
		return []BaseAction{changeMode(a.Mode)}, nil

	case ActionPaste:
		return []BaseAction{{Kind: BasePaste, N: 1, Register: a.Register, Pos: PendingLazy[LineCol]()}}, nil
	case ActionPasteAbove:
		return []BaseAction{{Kind: BasePaste, N: 1, Register: a.Register, Above: true, Pos: PendingLazy[LineCol]()}}, nil

	case ActionInsertModeEOL:
		return []BaseAction{
			move(BaseMoveRight, ctx.MaxCol(ctx.CursorPos.Line)-ctx.CursorPos.Col),
			changeMode(NewModal(ModeInsert)),
		}, nil
	case ActionInsertModeAbove:
		return []BaseAction{move(BaseMoveUp, 1), changeMode(NewModal(ModeInsert))}, nil
	case ActionInsertModeBelow:
		return []BaseAction{move(BaseMoveDown, 1), changeMode(NewModal(ModeInsert))}, nil

	case ActionReplaceChar:
		return []BaseAction{
			{Kind: BaseDeleteAt, N: 1, Pos: PendingLazy[LineCol]()},
			{Kind: BaseInsertAt, Char: a.Char, Pos: PendingLazy[LineCol]()},
		}, nil
	case ActionInsertChar:
		return []BaseAction{
			{Kind: BaseInsertAt, Char: a.Char, Pos: PendingLazy[LineCol]()},
			move(BaseMoveRight, 1),
		}, nil

	case ActionDeleteAtCursor:
		return []BaseAction{move(BaseMoveRight, 1), {Kind: BaseDeleteAt, N: 1, Pos: PendingLazy[LineCol]()}}, nil
	case ActionDeleteBeforeCursor:
		return []BaseAction{move(BaseMoveLeft, 1), {Kind: BaseDeleteAt, N: 1, Pos: PendingLazy[LineCol]()}}, nil
	case ActionInsertNewLine:
		return []BaseAction{
			{Kind: BaseInsertLineAt, N: 1, Pos: PendingLazy[LineCol]()},
			move(BaseMoveDown, 1),
		}, nil

	case ActionUndo:
		return []BaseAction{{Kind: BaseUndo, N: 1}}, nil
	case ActionRedo:
		return []BaseAction{{Kind: BaseRedo, N: 1}}, nil

	case ActionFetchFromHistory:
		return []BaseAction{{Kind: BaseFetchFromHistory}}, nil

	case ActionNothing:
		return nil, nil
	default:
		return nil, &ProgrammingBug{Descr: "Resolve: unhandled ActionKind"}
	}
}

func nextCol(lc LineCol) LineCol { return LineCol{Line: lc.Line, Col: lc.Col + 1} }
func prevCol(lc LineCol) LineCol { return LineCol{Line: lc.Line, Col: lc.Col - 1} }

// resolveBoundaryJump implements the two-boundary word/symbol jump rule from
// spec.md §4.4: starting just past the cursor (to avoid staying put), find the
// first position satisfying predA, then from there the first satisfying predB,
// and emit SetCursor(destination). If either boundary is not found, the whole
// action resolves to Nothing (repeat counts are not modeled for these
// multi-primitive-in-spirit jumps; see spec.md §9's Design Notes).
func resolveBoundaryJump(ctx ResolveContext, predA, predB func(rune) bool, forward bool) ([]BaseAction, error) {
	pos := ctx.CursorPos
	var a, b LineCol
	var ok bool
	if forward {
		a, ok = PredicatePattern(predA).Find(ctx.Lines, nextCol(pos))
		if !ok {
			return nil, nil
		}
		b, ok = PredicatePattern(predB).Find(ctx.Lines, a)
	} else {
		a, ok = PredicatePattern(predA).Rfind(ctx.Lines, prevCol(pos))
		if !ok {
			return nil, nil
		}
		b, ok = PredicatePattern(predB).Rfind(ctx.Lines, a)
	}
	if !ok {
		return nil, nil
	}
	return []BaseAction{setCursor(b)}, nil
}

// resolveExecuteCommand is the ExecuteCommand sub-resolver: Exit is fatal,
// None just returns to Normal, and Find/Rfind search from
// cursor.last_text_mode_pos and land on the match via a minimal Move sequence
// (rather than a direct SetCursor) once the mode has switched back to Normal.
func resolveExecuteCommand(ctx ResolveContext) ([]BaseAction, error) {
	cmd := ParseCommand(ctx.CommandText)
	switch cmd.Kind {
	case CommandExit:
		return nil, ErrExitCall
	case CommandFind:
		pos, ok := StringPattern(cmd.Query).Find(ctx.Lines, ctx.LastTextModePos)
		if !ok {
			return []BaseAction{changeMode(NewModal(ModeNormal))}, nil
		}
		return landOnMatch(ctx.LastTextModePos, pos), nil
	case CommandRfind:
		pos, ok := StringPattern(cmd.Query).Rfind(ctx.Lines, ctx.LastTextModePos)
		if !ok {
			return []BaseAction{changeMode(NewModal(ModeNormal))}, nil
		}
		return landOnMatch(ctx.LastTextModePos, pos), nil
	default:
		return []BaseAction{changeMode(NewModal(ModeNormal))}, nil
	}
}

func landOnMatch(from, target LineCol) []BaseAction {
	actions := []BaseAction{changeMode(NewModal(ModeNormal)), move(BaseMoveLeft, from.Col)}
	if delta := target.Line - from.Line; delta > 0 {
		actions = append(actions, move(BaseMoveDown, delta))
	} else if delta < 0 {
		actions = append(actions, move(BaseMoveUp, -delta))
	}
	return append(actions, move(BaseMoveRight, target.Col))
}
