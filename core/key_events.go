package core

import (
	"fmt"
	"strings"
)

// KeyCode represents a non-character key.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeySpace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyDelete
	KeyInsert
)

// KeyModifiers are the modifier keys held during a keystroke.
type KeyModifiers uint8

const (
	ModNone  KeyModifiers = 0
	ModCtrl  KeyModifiers = 1 << 0
	ModAlt   KeyModifiers = 1 << 1
	ModShift KeyModifiers = 1 << 2
)

// KeyEvent is one decoded keyboard input: either a printable Rune, or a
// non-character Key, plus any held Modifiers.
type KeyEvent struct {
	Rune      rune
	Key       KeyCode
	Modifiers KeyModifiers
}

func (k KeyEvent) String() string {
	var parts []string
	if k.Modifiers&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if k.Modifiers&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if k.Modifiers&ModShift != 0 {
		parts = append(parts, "Shift")
	}

	if k.Rune != 0 {
		parts = append(parts, string(k.Rune))
	} else {
		switch k.Key {
		case KeyEnter:
			parts = append(parts, "Enter")
		case KeyTab:
			parts = append(parts, "Tab")
		case KeyBackspace:
			parts = append(parts, "Backspace")
		case KeyEscape:
			parts = append(parts, "Escape")
		case KeySpace:
			parts = append(parts, "Space")
		case KeyUp:
			parts = append(parts, "Up")
		case KeyDown:
			parts = append(parts, "Down")
		case KeyLeft:
			parts = append(parts, "Left")
		case KeyRight:
			parts = append(parts, "Right")
		case KeyHome:
			parts = append(parts, "Home")
		case KeyEnd:
			parts = append(parts, "End")
		case KeyPageUp:
			parts = append(parts, "PageUp")
		case KeyPageDown:
			parts = append(parts, "PageDown")
		case KeyDelete:
			parts = append(parts, "Delete")
		case KeyInsert:
			parts = append(parts, "Insert")
		default:
			parts = append(parts, fmt.Sprintf("SpecialKey(%d)", k.Key))
		}
	}
	return strings.Join(parts, "+")
}
