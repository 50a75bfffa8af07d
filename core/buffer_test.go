package core

import (
	"errors"
	"reflect"
	"testing"
)

func TestBufferInsertAndDelete(t *testing.T) {
	b := NewBufferFromLines([]string{"hllo"})
	if err := b.Insert(LineCol{Line: 0, Col: 1}, 'e'); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := b.Line(0); got != "hello" {
		t.Fatalf("Line(0) = %q, want %q", got, "hello")
	}

	pos, err := b.Delete(LineCol{Line: 0, Col: 1})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if want := (LineCol{Line: 0, Col: 0}); pos != want {
		t.Errorf("Delete cursor = %+v, want %+v", pos, want)
	}
	if got := b.Line(0); got != "ello" {
		t.Fatalf("Line(0) = %q, want %q", got, "ello")
	}
}

func TestBufferDeleteJoinsLines(t *testing.T) {
	b := NewBufferFromLines([]string{"foo", "bar"})
	pos, err := b.Delete(LineCol{Line: 1, Col: 0})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if want := (LineCol{Line: 0, Col: 3}); pos != want {
		t.Errorf("Delete cursor = %+v, want %+v", pos, want)
	}
	if got := b.Lines(); !reflect.DeepEqual(got, []string{"foobar"}) {
		t.Errorf("Lines() = %v", got)
	}
}

func TestBufferDeleteAtBufferStartFails(t *testing.T) {
	b := NewBufferFromLines([]string{"x"})
	_, err := b.Delete(LineCol{Line: 0, Col: 0})
	if !errors.Is(err, ErrImATeacup) {
		t.Fatalf("Delete at (0,0) error = %v, want ErrImATeacup", err)
	}
}

func TestBufferInsertOutOfBounds(t *testing.T) {
	b := NewBufferFromLines([]string{"ab"})
	err := b.Insert(LineCol{Line: 0, Col: 10}, 'z')
	if !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("Insert out of bounds error = %v, want ErrInvalidPosition", err)
	}
}

func TestBufferInsertTextMultilineSplice(t *testing.T) {
	b := NewBufferFromLines([]string{"abcdef"})
	pos, err := b.InsertText(LineCol{Line: 0, Col: 3}, "X\nY", false)
	if err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	want := []string{"abcX", "Ydef"}
	if got := b.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %v, want %v", got, want)
	}
	if wantPos := (LineCol{Line: 1, Col: 1}); pos != wantPos {
		t.Errorf("InsertText cursor = %+v, want %+v", pos, wantPos)
	}
}

func TestBufferInsertTextAsNewLines(t *testing.T) {
	b := NewBufferFromLines([]string{"first", "last"})
	pos, err := b.InsertText(LineCol{Line: 0, Col: 2}, "a\nb", true)
	if err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	want := []string{"first", "a", "b", "last"}
	if got := b.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %v, want %v", got, want)
	}
	if wantPos := (LineCol{Line: 1, Col: 0}); pos != wantPos {
		t.Errorf("InsertText cursor = %+v, want %+v", pos, wantPos)
	}
}

func TestBufferDeleteSelectionWholeLines(t *testing.T) {
	b := NewBufferFromLines([]string{"a", "b", "c"})
	if err := b.DeleteSelection(LineCol{Line: 0, Col: 0}, LineCol{Line: 1, Col: 1}); err != nil {
		t.Fatalf("DeleteSelection: %v", err)
	}
	if got := b.Lines(); !reflect.DeepEqual(got, []string{"c"}) {
		t.Fatalf("Lines() = %v", got)
	}
}

func TestBufferDeleteSelectionSameLine(t *testing.T) {
	b := NewBufferFromLines([]string{"hello world"})
	if err := b.DeleteSelection(LineCol{Line: 0, Col: 5}, LineCol{Line: 0, Col: 11}); err != nil {
		t.Fatalf("DeleteSelection: %v", err)
	}
	if got := b.Line(0); got != "hello" {
		t.Fatalf("Line(0) = %q", got)
	}
}

func TestBufferUndoRedoRoundTrip(t *testing.T) {
	b := NewBufferFromLines([]string{"abc"})
	cursor := LineCol{Line: 0, Col: 3}

	b.SaveUndo(cursor)
	if err := b.Insert(LineCol{Line: 0, Col: 3}, 'd'); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := b.Line(0); got != "abcd" {
		t.Fatalf("Line(0) = %q", got)
	}

	undonePos, err := b.Undo(LineCol{Line: 0, Col: 4})
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if undonePos != cursor {
		t.Errorf("Undo cursor = %+v, want %+v", undonePos, cursor)
	}
	if got := b.Line(0); got != "abc" {
		t.Fatalf("Line(0) after undo = %q, want %q", got, "abc")
	}

	redonePos, err := b.Redo(cursor)
	if err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if want := (LineCol{Line: 0, Col: 4}); redonePos != want {
		t.Errorf("Redo cursor = %+v, want %+v", redonePos, want)
	}
	if got := b.Line(0); got != "abcd" {
		t.Fatalf("Line(0) after redo = %q, want %q", got, "abcd")
	}
}

func TestBufferReplaceDeletesThenInserts(t *testing.T) {
	b := NewBufferFromLines([]string{"hello world"})
	pos, err := b.Replace(LineCol{Line: 0, Col: 6}, LineCol{Line: 0, Col: 11}, "there")
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if got := b.Line(0); got != "hello there" {
		t.Fatalf("Line(0) = %q, want %q", got, "hello there")
	}
	if want := (LineCol{Line: 0, Col: 11}); pos != want {
		t.Errorf("Replace cursor = %+v, want %+v", pos, want)
	}
}

func TestBufferReplaceOnEqualEndpointsInsertsWithoutDeleting(t *testing.T) {
	b := NewBufferFromLines([]string{"abc"})
	pos, err := b.Replace(LineCol{Line: 0, Col: 1}, LineCol{Line: 0, Col: 1}, "x")
	if err != nil {
		t.Fatalf("Replace(from==to): %v", err)
	}
	if got := b.Line(0); got != "axbc" {
		t.Fatalf("Line(0) = %q, want %q", got, "axbc")
	}
	if want := (LineCol{Line: 0, Col: 2}); pos != want {
		t.Errorf("Replace cursor = %+v, want %+v", pos, want)
	}
}

func TestBufferUndoEmptyStackFails(t *testing.T) {
	b := NewBuffer()
	_, err := b.Undo(LineCol{})
	if !errors.Is(err, ErrNowhereToGo) {
		t.Fatalf("Undo on empty stack error = %v, want ErrNowhereToGo", err)
	}
}

func TestBufferSaveUndoClearsRedoStack(t *testing.T) {
	b := NewBufferFromLines([]string{"a"})
	b.SaveUndo(LineCol{})
	_ = b.Insert(LineCol{Line: 0, Col: 1}, 'b')
	if _, err := b.Undo(LineCol{}); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	b.SaveUndo(LineCol{})
	if _, err := b.Redo(LineCol{}); !errors.Is(err, ErrNowhereToGo) {
		t.Fatalf("Redo after new SaveUndo error = %v, want ErrNowhereToGo", err)
	}
}

func TestBufferRegisters(t *testing.T) {
	b := NewBuffer()
	if _, err := b.GetRegister('"'); !errors.Is(err, ErrUnexpectedRegisterData) {
		t.Fatalf("GetRegister on empty default register error = %v, want ErrUnexpectedRegisterData", err)
	}
	b.SetRegister(0, "x")
	got, err := b.GetRegister(0)
	if err != nil {
		t.Fatalf("GetRegister: %v", err)
	}
	if got != "x" {
		t.Errorf("GetRegister = %q, want %q", got, "x")
	}
	b.SetRegister('a', "named")
	got, err = b.GetRegister('a')
	if err != nil {
		t.Fatalf("GetRegister('a'): %v", err)
	}
	if got != "named" {
		t.Errorf("GetRegister('a') = %q, want %q", got, "named")
	}
}

func TestBufferCommandPlane(t *testing.T) {
	b := NewBuffer()
	if !b.IsCommandEmpty() {
		t.Fatal("IsCommandEmpty() = false on fresh buffer")
	}
	b.SetPlane(NewModal(ModeCommand))
	if err := b.Insert(LineCol{Line: 0, Col: 0}, ':'); err != nil {
		t.Fatalf("Insert into command plane: %v", err)
	}
	if got := b.GetCommandText(); got != ":" {
		t.Fatalf("GetCommandText() = %q, want %q", got, ":")
	}
	b.ClearCommand()
	if !b.IsCommandEmpty() {
		t.Fatal("IsCommandEmpty() = false after ClearCommand")
	}
	b.SetPlane(NewModal(ModeNormal))
	if got := b.ActivePlane(); got != PlaneNormal {
		t.Fatalf("ActivePlane() = %v, want PlaneNormal", got)
	}
}

func TestBufferGetText(t *testing.T) {
	b := NewBufferFromLines([]string{"hello", "world"})
	got, err := b.GetText(LineCol{Line: 0, Col: 1}, LineCol{Line: 1, Col: 3})
	if err != nil {
		t.Fatalf("GetText: %v", err)
	}
	if want := "ello\nwor"; got != want {
		t.Fatalf("GetText() = %q, want %q", got, want)
	}
}
