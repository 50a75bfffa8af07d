package core

import "testing"

func TestDecodeFindCharLatchesThenConsumesNextKeystroke(t *testing.T) {
	e := newTestEditor([]string{"a"})
	if got := e.decode(runeKey('f')); got.Kind != ActionNothing {
		t.Fatalf("decode('f') = %+v, want ActionNothing while latched", got)
	}
	if !e.awaitingChar || e.awaitingKind != ActionFindChar {
		t.Fatalf("awaitingChar/Kind = %v/%v, want true/ActionFindChar", e.awaitingChar, e.awaitingKind)
	}
	got := e.decode(runeKey('z'))
	if got.Kind != ActionFindChar || got.Char != 'z' {
		t.Fatalf("decode('z') = %+v, want FindChar('z')", got)
	}
	if e.awaitingChar {
		t.Fatal("awaitingChar still true after latch consumed")
	}
}

func TestDecodePasteLatchPopulatesRegisterNotChar(t *testing.T) {
	e := newTestEditor([]string{"a"})
	e.decode(runeKey('p'))
	got := e.decode(runeKey('a'))
	if got.Kind != ActionPaste || got.Register != 'a' || got.Char != 0 {
		t.Fatalf("decode after 'p','a' = %+v, want Paste{Register:'a'}", got)
	}
}

func TestDecodeLeadingZeroIsNotTreatedAsADigitPrefix(t *testing.T) {
	e := newTestEditor([]string{"a"})
	got := e.decode(runeKey('0'))
	if got.Kind != ActionNothing {
		t.Fatalf("decode('0') with no prior digits = %+v, want ActionNothing (unbound key, not a count)", got)
	}
	if e.pendingDigits != 0 {
		t.Fatalf("pendingDigits = %d, want 0 (a leading zero never starts a repeat count)", e.pendingDigits)
	}
}

func TestDecodeDigitPrefixAccumulates(t *testing.T) {
	e := newTestEditor([]string{"a"})
	e.decode(runeKey('1'))
	e.decode(runeKey('0'))
	if e.pendingDigits != 10 {
		t.Fatalf("pendingDigits = %d, want 10", e.pendingDigits)
	}
}

func TestDecodeInsertModeEscapeReturnsToNormal(t *testing.T) {
	e := newTestEditor([]string{"a"})
	e.modal = NewModal(ModeInsert)
	got := e.decode(specialKey(KeyEscape))
	if got.Kind != ActionChangeMode || got.Mode.Kind != ModeNormal {
		t.Fatalf("decode(Escape) in Insert = %+v, want ChangeMode(Normal)", got)
	}
}

func TestDecodeVisualDelegatesSharedMovementToNormal(t *testing.T) {
	e := newTestEditor([]string{"a"})
	e.modal = NewModal(ModeVisual)
	got := e.decode(runeKey('l'))
	if got.Kind != ActionBumpRight {
		t.Fatalf("decode('l') in Visual = %+v, want ActionBumpRight", got)
	}
}

func TestDecodeCommandLikeUpFetchesHistory(t *testing.T) {
	e := newTestEditor([]string{"a"})
	e.modal = NewModal(ModeCommand)
	got := e.decode(specialKey(KeyUp))
	if got.Kind != ActionFetchFromHistory {
		t.Fatalf("decode(Up) in Command = %+v, want ActionFetchFromHistory", got)
	}
}
