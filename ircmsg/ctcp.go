package ircmsg

import "strings"

// CTCPDelim frames a CTCP payload inside a PRIVMSG/NOTICE body.
const CTCPDelim = '\x01'

// IsCTCP reports whether body looks like a CTCP-framed message: it
// starts with the delimiter. Per spec, formatting/escaping beyond
// extracting the first payload is out of scope — this module does not
// implement the low/high level quoting some CTCP implementations use.
func IsCTCP(body string) bool {
	return len(body) > 0 && body[0] == CTCPDelim
}

// ExtractCTCP pulls the first \x01-delimited payload out of body and
// splits it into a tag (the first whitespace-separated token) and the
// remaining data. ok is false if body does not begin with the
// delimiter or contains no closing delimiter.
func ExtractCTCP(body string) (tag, data string, ok bool) {
	if !IsCTCP(body) {
		return "", "", false
	}
	end := strings.IndexByte(body[1:], CTCPDelim)
	if end < 0 {
		return "", "", false
	}
	payload := body[1 : 1+end]

	if sp := strings.IndexByte(payload, ' '); sp >= 0 {
		return payload[:sp], payload[sp+1:], true
	}
	return payload, "", true
}

// PackCTCP frames tag and data (data may be empty) as a CTCP payload
// ready to be sent as a PRIVMSG/NOTICE body.
func PackCTCP(tag, data string) string {
	var b strings.Builder
	b.WriteByte(CTCPDelim)
	b.WriteString(tag)
	if data != "" {
		b.WriteByte(' ')
		b.WriteString(data)
	}
	b.WriteByte(CTCPDelim)
	return b.String()
}
