package ircmsg

import (
	"strings"
	"testing"
)

func TestSplitBody_TwoMessages(t *testing.T) {
	body := strings.Repeat("a", 600)
	lines := SplitBody("PRIVMSG", "#c", body)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	header := "PRIVMSG #c :"
	bodyCap := WireLineLimit - len(header) - 2 - relayOverhead
	if bodyCap != 424 {
		t.Fatalf("sanity: bodyCap = %d, want 424", bodyCap)
	}

	for _, line := range lines {
		if len(line)+2 > WireLineLimit {
			t.Errorf("line too long: %d bytes", len(line)+2)
		}
	}

	if lines[0] != header+strings.Repeat("a", bodyCap) {
		t.Errorf("first line wrong length/content")
	}
	if lines[1] != header+strings.Repeat("a", 600-bodyCap) {
		t.Errorf("second line wrong length/content")
	}
}

func TestSplitBody_EmbeddedNewline(t *testing.T) {
	lines := SplitBody("PRIVMSG", "#c", "hello\nworld")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(lines), lines)
	}
	if lines[0] != "PRIVMSG #c :hello" {
		t.Errorf("lines[0] = %q", lines[0])
	}
	if lines[1] != "PRIVMSG #c :world" {
		t.Errorf("lines[1] = %q", lines[1])
	}
}

func TestSplitBody_LeadingNewlinesElided(t *testing.T) {
	lines := SplitBody("PRIVMSG", "#c", "\n\r\nhello")
	if len(lines) != 1 || lines[0] != "PRIVMSG #c :hello" {
		t.Errorf("lines = %v", lines)
	}
}

func TestCommandOverhead(t *testing.T) {
	if commandOverhead("JOIN") != 0 {
		t.Errorf("JOIN should carry no relay overhead")
	}
	if commandOverhead("PRIVMSG") != relayOverhead {
		t.Errorf("PRIVMSG should carry the relay overhead")
	}
	if commandOverhead("NOTICE") != relayOverhead {
		t.Errorf("NOTICE should carry the relay overhead")
	}
}

func TestFormatShort_Clips(t *testing.T) {
	long := strings.Repeat("x", 600)
	got := FormatShort("MODE #c +b %s", long)
	if len(got) > WireLineLimit-2 {
		t.Errorf("FormatShort did not clip: %d bytes", len(got))
	}
}

func TestBodyWriter(t *testing.T) {
	var lines []string
	w := NewBodyWriter("PRIVMSG", "#c", func(l string) { lines = append(lines, l) })
	w.WriteString("hello\nworld")
	w.Close()

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(lines), lines)
	}
	if lines[0] != "PRIVMSG #c :hello" || lines[1] != "PRIVMSG #c :world" {
		t.Errorf("lines = %v", lines)
	}
}

func TestBodyWriter_FlushesAtCapacity(t *testing.T) {
	var lines []string
	w := NewBodyWriter("PRIVMSG", "#c", func(l string) { lines = append(lines, l) })
	w.WriteString(strings.Repeat("a", 500))
	w.Close()

	if len(lines) < 2 {
		t.Fatalf("expected wrap into multiple lines, got %d", len(lines))
	}
	for _, l := range lines {
		if len(l)+2 > WireLineLimit {
			t.Errorf("line too long: %d", len(l)+2)
		}
	}
}
