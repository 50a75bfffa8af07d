package terminal

import (
	tea "charm.land/bubbletea/v2"

	editor "github.com/0x1david/neotext/core"
)

// convertKey maps a bubbletea v2 key press onto the dependency-free
// editor.KeyEvent, the way adapter-bubbletea/adapter.go's convertBubbleKey
// mapped bubbletea v1's tea.KeyMsg onto the teacher's editor.KeyEvent.
func convertKey(msg tea.KeyPressMsg) editor.KeyEvent {
	k := msg.Key()
	ev := editor.KeyEvent{}

	if k.Text != "" {
		ev.Rune = []rune(k.Text)[0]
	}

	if k.Mod&tea.ModCtrl != 0 {
		ev.Modifiers |= editor.ModCtrl
	}
	if k.Mod&tea.ModAlt != 0 {
		ev.Modifiers |= editor.ModAlt
	}
	if k.Mod&tea.ModShift != 0 {
		ev.Modifiers |= editor.ModShift
	}

	if ev.Rune != 0 {
		return ev
	}

	switch k.Code {
	case tea.KeyEnter:
		ev.Key = editor.KeyEnter
	case tea.KeySpace:
		ev.Key = editor.KeySpace
		ev.Rune = ' '
	case tea.KeyEscape:
		ev.Key = editor.KeyEscape
	case tea.KeyBackspace:
		ev.Key = editor.KeyBackspace
	case tea.KeyTab:
		ev.Key = editor.KeyTab
		ev.Rune = '\t'
	case tea.KeyUp:
		ev.Key = editor.KeyUp
	case tea.KeyDown:
		ev.Key = editor.KeyDown
	case tea.KeyLeft:
		ev.Key = editor.KeyLeft
	case tea.KeyRight:
		ev.Key = editor.KeyRight
	case tea.KeyHome:
		ev.Key = editor.KeyHome
	case tea.KeyEnd:
		ev.Key = editor.KeyEnd
	case tea.KeyDelete:
		ev.Key = editor.KeyDelete
	case tea.KeyInsert:
		ev.Key = editor.KeyInsert
	case tea.KeyPgUp:
		ev.Key = editor.KeyPageUp
	case tea.KeyPgDown:
		ev.Key = editor.KeyPageDown
	}

	return ev
}
