package core

// ActionKind enumerates the high-level, user-visible intents the key decoder
// produces. Action is a closed tagged union: Go has no native sum type, so
// (like the rest of this package) it is modeled as a kind tag plus the union of
// payload fields each variant needs, rather than one interface type per variant —
// with ~30 variants all funneled through a single resolver, a kind switch reads
// far closer to the decoder/resolver pairing than a type-switch over 30 structs
// would.
type ActionKind int

const (
	ActionBumpLeft ActionKind = iota
	ActionBumpRight
	ActionBumpUp
	ActionBumpDown
	ActionJumpUp
	ActionJumpDown
	ActionWordForward
	ActionWordBackward
	ActionSymbolForward
	ActionSymbolBackward
	ActionSOL
	ActionEOL
	ActionSOF
	ActionEOF
	ActionFindChar        // f<c>
	ActionReverseFindChar // F<c>
	ActionToChar          // t<c>
	ActionReverseToChar   // T<c>
	ActionChangeMode
	ActionPaste
	ActionPasteAbove
	ActionInsertModeEOL
	ActionInsertModeAbove
	ActionInsertModeBelow
	ActionReplaceChar
	ActionInsertChar
	ActionDeleteAtCursor
	ActionDeleteBeforeCursor
	ActionInsertNewLine
	ActionUndo
	ActionRedo
	ActionExecuteCommand
	ActionFetchFromHistory
	ActionNothing
)

// JumpDist is the line count a "jump" (Ctrl-u/Ctrl-d) moves by, per spec.md §4.4.
const JumpDist = 25

// Action is the high-level intent produced by decoding a keystroke in the
// current mode. Only the fields relevant to Kind are populated; the resolver
// switches on Kind exclusively, so unused fields are simply left zero. The
// pending numeric-prefix repeat count is Editor-level state (it multiplies a
// resolved single primitive's own count, per spec.md §4.4), not a field here.
type Action struct {
	Kind     ActionKind
	Char     rune  // payload for FindChar/ToChar/ReplaceChar/InsertChar variants
	Register rune  // named register for Paste (0 = default register)
	Mode     Modal // target mode for ActionChangeMode
}
