package terminal

import (
	"github.com/atotto/clipboard"

	editor "github.com/0x1david/neotext/core"
)

// systemRegisterName is the register slot a paste can address (via the `"`
// prefix, e.g. `"+p`) to read the OS clipboard instead of the default
// register. core/base_action.go's BaseDeleteAt never carries a register of
// its own — every delete writes the default register (core/buffer.go's
// defaultRegister, '"') — so the only register core ever actually names is
// the default one; systemRegisterName exists purely as a read-side alias a
// user opts into with `"+p`. Chosen to match vim's "+ register convention.
const systemRegisterName = '+'

// SystemRegister is an editor.Extension: every delete's default-register
// content (core/editor.go writes it with SetRegister(0, ...), which
// core/buffer.go aliases to '"') is mirrored out to the OS clipboard, so
// anything deleted in the editor is available to paste elsewhere. Reads are
// handled by syncSystemRegister, called before every Tick, since core
// resolves a Paste's register content before any extension runs
// (core/editor.go applies the buffer mutation, then the extensions, in that
// fixed order).
type SystemRegister struct{}

func (SystemRegister) Execute(action editor.BaseAction, ed *editor.Editor) error {
	if action.Kind != editor.BaseDeleteAt {
		return nil
	}
	content, err := ed.Buffer().GetRegister(0)
	if err != nil {
		return nil
	}
	return clipboard.WriteAll(content)
}

// syncSystemRegister refreshes the systemRegisterName slot from the OS
// clipboard so a pending `"+p` sees the latest clipboard content. Cheap
// enough to call unconditionally on every tick; clipboard.ReadAll errors
// (e.g. no clipboard utility present) are swallowed since the worst case is a
// stale register, not a crash.
func syncSystemRegister(ed *editor.Editor) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return
	}
	ed.Buffer().SetRegister(systemRegisterName, text)
}
