package core

import (
	"fmt"
	"sync"
)

// InfoBar renders the one-line mode+position strip from spec.md §4.6: mode
// text at a left padding, `line:col` (1-based line) flush right, the space
// between computed from the terminal width.
func InfoBar(mode Modal, cursor LineCol, width int) string {
	left := " " + mode.String()
	right := fmt.Sprintf("%d:%d ", cursor.Line+1, cursor.Col)
	pad := width - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	return left + repeatSpace(pad) + right
}

func repeatSpace(n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = ' '
	}
	return string(buf)
}

// notificationCapacity bounds the process-wide debug FIFO; the oldest message
// is evicted on overflow, per spec.md §4.6.
const notificationCapacity = 10

// notificationFIFO is the process-wide, mutex-guarded bounded debug queue a
// logging macro and the notification bar both reach into, per spec.md §5
// ("the debug-notification FIFO is process-wide and must be guarded by a
// mutex for reentrant access from the logging macro").
type notificationFIFO struct {
	mu       sync.Mutex
	messages []string
}

var notifications = &notificationFIFO{}

func (f *notificationFIFO) push(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
	if len(f.messages) > notificationCapacity {
		f.messages = f.messages[len(f.messages)-notificationCapacity:]
	}
}

// pop removes and returns the oldest pending message, if any.
func (f *notificationFIFO) pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		return "", false
	}
	msg := f.messages[0]
	f.messages = f.messages[1:]
	return msg, true
}

// Notify appends a message to the process-wide notification FIFO.
func Notify(msg string) { notifications.push(msg) }

// NotificationBar returns the oldest pending notification, consuming it.
// Returns "" if the queue is empty.
func NotificationBar() string {
	msg, _ := notifications.pop()
	return msg
}

// Dbg is the logging macro-equivalent from spec.md §4.6: it captures
// (file, line, expr, value) and appends a formatted debug message to the
// notification FIFO, then returns the value unchanged so call sites can wrap
// an expression inline without disturbing its result.
func Dbg[T any](file string, line int, expr string, value T) T {
	Notify(fmt.Sprintf("%s:%d: %s = %#v", file, line, expr, value))
	return value
}

// DbgDiscard is Dbg's side-effect-only variant: it logs but returns nothing,
// for call sites that only want the notification.
func DbgDiscard[T any](file string, line int, expr string, value T) {
	Notify(fmt.Sprintf("%s:%d: %s = %#v", file, line, expr, value))
}
