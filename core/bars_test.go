package core

import (
	"strings"
	"testing"
)

func TestInfoBarLayout(t *testing.T) {
	bar := InfoBar(NewModal(ModeNormal), LineCol{Line: 4, Col: 2}, 30)
	if !strings.HasPrefix(bar, " NORMAL") {
		t.Fatalf("InfoBar = %q, want prefix %q", bar, " NORMAL")
	}
	if !strings.HasSuffix(bar, "5:2 ") {
		t.Fatalf("InfoBar = %q, want suffix %q (1-based line)", bar, "5:2 ")
	}
}

func TestNotificationBarFIFOOrderAndCapacity(t *testing.T) {
	for NotificationBar() != "" {
	}
	for i := 0; i < notificationCapacity+3; i++ {
		Notify(string(rune('a' + i)))
	}
	first := NotificationBar()
	if first != "d" {
		t.Fatalf("first pending notification = %q, want %q (oldest 3 evicted)", first, "d")
	}
	for NotificationBar() != "" {
	}
}

func TestDbgReturnsValueUnchangedAndNotifies(t *testing.T) {
	for NotificationBar() != "" {
	}
	got := Dbg("file.go", 10, "x", 42)
	if got != 42 {
		t.Fatalf("Dbg() = %d, want 42", got)
	}
	msg := NotificationBar()
	if !strings.Contains(msg, "file.go:10: x = 42") {
		t.Fatalf("NotificationBar() = %q, want it to contain formatted debug message", msg)
	}
}
