package ircmsg

import "testing"

func TestMessage_NewMessage(t *testing.T) {
	m := NewMessage("nick!u@h", "PRIVMSG", "#chan", "hello")
	if m.Prefix != "nick!u@h" {
		t.Errorf("Prefix = %q, want nick!u@h", m.Prefix)
	}
	if m.Command != "PRIVMSG" {
		t.Errorf("Command = %q, want PRIVMSG", m.Command)
	}
	if got := m.Args(); len(got) != 2 || got[0] != "#chan" || got[1] != "hello" {
		t.Errorf("Args() = %v, want [#chan hello]", got)
	}
	if m.ArgC() != 2 {
		t.Errorf("ArgC() = %d, want 2", m.ArgC())
	}
}

func TestMessage_ArgCapacity(t *testing.T) {
	args := make([]string, 20)
	for i := range args {
		args[i] = string(rune('a' + i))
	}
	m := NewMessage("", "CMD", args...)
	if m.ArgC() != MaxArgs {
		t.Errorf("ArgC() = %d, want %d", m.ArgC(), MaxArgs)
	}
	if m.Arg(0) != "a" {
		t.Errorf("Arg(0) = %q, want a", m.Arg(0))
	}
	if m.Arg(MaxArgs-1) != string(rune('a'+MaxArgs-1)) {
		t.Errorf("last arg corrupted: %q", m.Arg(MaxArgs-1))
	}
}

func TestMessage_Valid(t *testing.T) {
	var m Message
	if m.Valid() {
		t.Error("empty command should be invalid")
	}
	m.Command = "PING"
	if !m.Valid() {
		t.Error("non-empty command should be valid")
	}
}

func TestMessage_ArgOutOfRange(t *testing.T) {
	m := NewMessage("", "CMD", "one")
	if m.Arg(1) != "" {
		t.Errorf("Arg(1) = %q, want empty", m.Arg(1))
	}
	if m.Arg(-1) != "" {
		t.Errorf("Arg(-1) = %q, want empty", m.Arg(-1))
	}
}
