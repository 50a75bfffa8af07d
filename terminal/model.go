// Package terminal drives a core.Editor from a real terminal, the way
// adapter-bubbletea drives ionut-t-goeditor/core in the teacher repo: it owns
// the tea.Model lifecycle, key decoding, clipboard-backed register sync and
// lipgloss rendering, while every modal/buffer/viewport decision stays in
// core.
package terminal

import (
	"errors"
	"strings"
	"time"

	"charm.land/bubbles/v2/cursor"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	editor "github.com/0x1david/neotext/core"
)

type messageMsg string

type errMsg struct{ err error }

type clearMsg struct{}

// Model is the tea.Model wrapping one core.Editor.
type Model struct {
	editor *editor.Editor
	width  int
	height int

	theme           Theme
	showLineNumbers bool
	showStatusLine  bool

	blink   cursor.Model
	focused bool

	message string
	err     string
}

// New wires a fresh Model around a width x height terminal and the given
// initial file content, split into lines by the caller (cmd/neotext owns
// reading the file).
func New(width, height int, lines []string) Model {
	buf := editor.NewBufferFromLines(lines)
	ed := editor.NewEditor(buf, width, max(height-2, 1))
	ed.RegisterExtension(SystemRegister{})

	blink := cursor.New()
	blink.SetMode(cursor.CursorBlink)

	m := Model{
		editor:          ed,
		theme:           DefaultTheme,
		showLineNumbers: true,
		showStatusLine:  true,
		blink:           blink,
		focused:         true,
	}
	m.SetSize(width, height)
	return m
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// SetSaveHook wires the file-write callback the core calls out to on a
// BaseSave primitive; no key or command currently produces one.
func (m *Model) SetSaveHook(hook func(lines []string) error) {
	m.editor.SaveHook = hook
}

// Editor exposes the underlying core.Editor, e.g. for cmd/neotext to inspect
// final buffer content on exit.
func (m *Model) Editor() *editor.Editor { return m.editor }

// Focus lets the editor accept key presses again after Blur.
func (m *Model) Focus() { m.focused = true }

// Blur stops the editor from consuming key presses, e.g. while a sibling
// dialog in a larger program owns input.
func (m *Model) Blur() { m.focused = false }

// IsFocused reports whether the editor currently consumes key presses.
func (m *Model) IsFocused() bool { return m.focused }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.editor.Resize(width, max(height-2, 1))
}

func (m Model) Init() tea.Cmd {
	return m.blink.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyPressMsg:
		if !m.focused {
			break
		}
		syncSystemRegister(m.editor)

		if err := m.editor.Tick(convertKey(msg)); err != nil {
			if errors.Is(err, editor.ErrExitCall) {
				return m, tea.Quit
			}
			cmds = append(cmds, func() tea.Msg { return errMsg{err} })
		}

		if note := editor.NotificationBar(); note != "" {
			cmds = append(cmds, func() tea.Msg { return messageMsg(note) })
		}

	case messageMsg:
		m.message = string(msg)
		m.err = ""
		cmds = append(cmds, dispatchClear())

	case errMsg:
		m.message = ""
		m.err = msg.err.Error()
		cmds = append(cmds, dispatchClear())

	case clearMsg:
		m.message = ""
		m.err = ""
	}

	var blinkCmd tea.Cmd
	m.blink, blinkCmd = m.blink.Update(msg)
	cmds = append(cmds, blinkCmd)

	return m, tea.Batch(cmds...)
}

func dispatchClear() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearMsg{} })
}

func (m Model) View() string {
	content := renderContent(m.editor, m.theme, m.width, m.showLineNumbers, m.blink)

	var statusLine string
	if m.showStatusLine {
		statusLine = renderStatusLine(m.editor, m.theme, m.width)
	}
	commandLine := renderCommandLine(m.editor, m.theme, m.message, m.err)

	if pad := m.width - lipgloss.Width(commandLine); pad > 0 {
		commandLine += m.theme.CommandLineStyle.Render(strings.Repeat(" ", pad))
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, statusLine, commandLine)
}
