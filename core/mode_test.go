package core

import "testing"

func TestParseCommand(t *testing.T) {
	cases := []struct {
		text string
		want Command
	}{
		{"/needle", Command{Kind: CommandFind, Query: "needle"}},
		{"?needle", Command{Kind: CommandRfind, Query: "needle"}},
		{"q", Command{Kind: CommandExit}},
		{"w", Command{Kind: CommandNone}},
		{"wq", Command{Kind: CommandNone}},
		{"", Command{Kind: CommandNone}},
		{"garbage", Command{Kind: CommandNone}},
	}
	for _, c := range cases {
		if got := ParseCommand(c.text); got != c.want {
			t.Errorf("ParseCommand(%q) = %+v, want %+v", c.text, got, c.want)
		}
	}
}

func TestModalStringDisplayText(t *testing.T) {
	cases := []struct {
		modal Modal
		want  string
	}{
		{NewModal(ModeNormal), "NORMAL"},
		{NewModal(ModeInsert), "INSERT"},
		{NewModal(ModeVisual), "VISUAL"},
		{NewModal(ModeVisualLine), "VISUAL_LINE"},
		{NewModal(ModeCommand), "COMMAND"},
		{NewFindModal(Forwards), "FORWARD FIND"},
		{NewFindModal(Backwards), "BACKWARD FIND"},
	}
	for _, c := range cases {
		if got := c.modal.String(); got != c.want {
			t.Errorf("Modal{%+v}.String() = %q, want %q", c.modal, got, c.want)
		}
	}
}
