package core

// CursorPlane tracks which of the buffer's planes the cursor currently lives in,
// mirroring Buffer's Plane but kept as its own small type since Cursor must reason
// about "CommandBar vs Terminal vs Text" independently of which buffer plane
// happens to be active at a given instant.
type CursorPlane int

const (
	PlaneCursorText CursorPlane = iota
	PlaneCursorCommandBar
	PlaneCursorTerminal
)

// Cursor is the real, buffer-bound cursor. It tracks the current position, the
// position immediately before the last movement, the last position held while in
// a text mode (so Command/Find can restore it on exit), and which plane it
// addresses.
type Cursor struct {
	Pos              LineCol
	PreviousPos      LineCol
	LastTextModePos  LineCol
	Plane            CursorPlane
}

func NewCursor() *Cursor {
	return &Cursor{}
}

func (c *Cursor) snapshotPrevious() { c.PreviousPos = c.Pos }

func (c *Cursor) MoveUp(n int) {
	c.snapshotPrevious()
	c.Pos.Line -= n
}

func (c *Cursor) MoveDown(n int) {
	c.snapshotPrevious()
	c.Pos.Line += n
}

func (c *Cursor) MoveLeft(n int) {
	c.snapshotPrevious()
	c.Pos.Col -= n
}

func (c *Cursor) MoveRight(n int) {
	c.snapshotPrevious()
	c.Pos.Col += n
}

func (c *Cursor) SetCursor(lc LineCol) {
	c.snapshotPrevious()
	c.Pos = lc
}

// ChangeMode performs the cursor teleportation described in spec.md §3: entering a
// command-like mode (Command or Find) snapshots the current text-plane position
// into LastTextModePos (forced to column 0 for VisualLine) and resets Pos to
// (0,0) in the Command plane; leaving back to a text mode restores Pos from
// LastTextModePos.
func (c *Cursor) ChangeMode(from, to Modal) {
	enteringCommandLike := to.Kind == ModeCommand || to.Kind == ModeFind
	leavingCommandLike := from.Kind == ModeCommand || from.Kind == ModeFind

	if enteringCommandLike && !leavingCommandLike {
		if from.Kind == ModeVisualLine {
			c.LastTextModePos = LineCol{Line: c.Pos.Line, Col: 0}
		} else {
			c.LastTextModePos = c.Pos
		}
		c.Plane = PlaneCursorCommandBar
		c.snapshotPrevious()
		c.Pos = LineCol{}
		return
	}

	if leavingCommandLike && !enteringCommandLike {
		c.Plane = PlaneCursorText
		c.snapshotPrevious()
		c.Pos = c.LastTextModePos
	}
}

// Apply mutates the cursor according to a BaseAction. Move* primitives are
// applied without bound checks (the editor has already clamped them via
// bound-checked delegation); SetCursor teleports unconditionally.
func (c *Cursor) Apply(action BaseAction) {
	switch action.Kind {
	case BaseMoveUp:
		c.MoveUp(action.N)
	case BaseMoveDown:
		c.MoveDown(action.N)
	case BaseMoveLeft:
		c.MoveLeft(action.N)
	case BaseMoveRight:
		c.MoveRight(action.N)
	case BaseSetCursor:
		if pos, ok := action.Pos.Get(); ok {
			c.SetCursor(pos)
		}
	case BaseChangeMode:
		// ChangeMode transitions are driven by the editor (which knows the
		// previous mode); see Editor.performAction.
	}
}

// ShadowCursor is a signed, speculative mirror of the real cursor used to detect
// out-of-bounds movement before it reaches the real cursor. It may transiently go
// negative or exceed buffer dimensions; using signed coordinates (rather than the
// real cursor's non-negative ones) is what lets bound checking detect
// underflow instead of having it wrap.
type ShadowCursor struct {
	Line int
	Col  int
}

func (s *ShadowCursor) ResetTo(pos LineCol) {
	s.Line = pos.Line
	s.Col = pos.Col
}

func (s *ShadowCursor) Pos() LineCol {
	return LineCol{Line: max(s.Line, 0), Col: max(s.Col, 0)}
}

// Apply mirrors only Move* and SetCursor primitives, per spec.md §4.2.
func (s *ShadowCursor) Apply(action BaseAction) {
	switch action.Kind {
	case BaseMoveUp:
		s.Line -= action.N
	case BaseMoveDown:
		s.Line += action.N
	case BaseMoveLeft:
		s.Col -= action.N
	case BaseMoveRight:
		s.Col += action.N
	case BaseSetCursor:
		if pos, ok := action.Pos.Get(); ok {
			s.Line = pos.Line
			s.Col = pos.Col
		}
	}
}
