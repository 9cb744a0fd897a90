package ircmsg

import (
	"fmt"
	"strings"
)

// WireLineLimit is the maximum size of a complete outgoing line,
// including the trailing \r\n, per RFC 1459/2812.
const WireLineLimit = 512

// relayOverhead approximates the "nick!user@host" the server prepends
// when relaying PRIVMSG/NOTICE to other clients, so that the
// server's own outgoing relay of our message also fits in 512 bytes.
// Non-PRIVMSG/NOTICE commands the server doesn't relay verbatim carry
// no such penalty.
const relayOverhead = 74

// commandOverhead returns the additional reservation §4.4 requires
// for a given outgoing command.
func commandOverhead(command string) int {
	switch command {
	case "PRIVMSG", "NOTICE":
		return relayOverhead
	default:
		return 0
	}
}

// SplitBody fragments body into one or more wire-ready lines (without
// the trailing \r\n) for the given command and target, honoring the
// 512-byte wire limit, the per-command relay overhead, and embedded
// newlines. Each returned string is "<COMMAND> <target> :<chunk>".
func SplitBody(command, target, body string) []string {
	header := fmt.Sprintf("%s %s :", command, target)
	bodyCap := WireLineLimit - len(header) - 2 /* \r\n */ - commandOverhead(command)
	if bodyCap < 1 {
		bodyCap = 1
	}

	body = strings.TrimLeft(body, "\r\n")

	var lines []string
	for len(body) > 0 {
		nl := strings.IndexAny(body, "\r\n")
		if nl >= 0 && nl <= bodyCap {
			lines = append(lines, header+body[:nl])
			body = strings.TrimLeft(body[nl:], "\r\n")
			continue
		}

		if len(body) <= bodyCap {
			lines = append(lines, header+body)
			break
		}

		lines = append(lines, header+body[:bodyCap])
		body = strings.TrimLeft(body[bodyCap:], "\r\n")
	}

	if len(lines) == 0 {
		lines = append(lines, header)
	}

	return lines
}

// FormatShort clips a caller-supplied formatted line to 510 bytes of
// body plus the wire terminator. It is the caller's responsibility to
// pre-validate the semantics of format (e.g. that it doesn't split a
// UTF-8 rune, or produce an unparsable line) — this is the (a) shape
// from §4.4, used for one-off commands like JOIN/PART/MODE rather than
// PRIVMSG/NOTICE bodies.
func FormatShort(format string, args ...interface{}) string {
	line := fmt.Sprintf(format, args...)
	if len(line) > WireLineLimit-2 {
		line = line[:WireLineLimit-2]
	}
	return line
}

// BodyWriter is the streaming ("sendf") variant of SplitBody: it
// accumulates formatted writes into a bounded buffer and flushes a
// complete line each time body capacity is reached or a newline is
// produced, calling emit with each finished line.
type BodyWriter struct {
	header  string
	bodyCap int
	buf     strings.Builder
	emit    func(line string)
}

// NewBodyWriter constructs a BodyWriter for the given command/target,
// invoking emit once per completed line.
func NewBodyWriter(command, target string, emit func(line string)) *BodyWriter {
	header := fmt.Sprintf("%s %s :", command, target)
	bodyCap := WireLineLimit - len(header) - 2 - commandOverhead(command)
	if bodyCap < 1 {
		bodyCap = 1
	}
	return &BodyWriter{header: header, bodyCap: bodyCap, emit: emit}
}

// WriteString feeds more body text into the writer, flushing complete
// lines as capacity or embedded newlines dictate.
func (w *BodyWriter) WriteString(s string) {
	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			w.flush()
			continue
		}
		w.buf.WriteRune(r)
		if w.buf.Len() >= w.bodyCap {
			w.flush()
		}
	}
}

// Writef formats into the writer the way fmt.Fprintf would.
func (w *BodyWriter) Writef(format string, args ...interface{}) {
	w.WriteString(fmt.Sprintf(format, args...))
}

// flush emits whatever is buffered, unless it is empty, then resets.
func (w *BodyWriter) flush() {
	if w.buf.Len() == 0 {
		return
	}
	w.emit(w.header + w.buf.String())
	w.buf.Reset()
}

// Close flushes any remaining buffered content.
func (w *BodyWriter) Close() {
	w.flush()
}
