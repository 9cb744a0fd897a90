package ircmsg

import "strings"

// IrcUser is the parsed form of a nick!user@host prefix. Only
// NickName is guaranteed to be populated; UserName and HostName are
// empty when the prefix did not carry them (e.g. a bare server name
// or a bare nick).
type IrcUser struct {
	NickName string
	UserName string
	HostName string
}

// ParseUser splits a raw prefix into its nick, user and host
// components. Unlike a hostmask validator, this never fails: any
// input produces a best-effort split per spec — everything before the
// first '!' is the nick, everything between '!' and the first '@' is
// the user, and everything after '@' is the host. Missing separators
// leave the later fields empty.
func ParseUser(prefix string) IrcUser {
	var u IrcUser

	bang := strings.IndexByte(prefix, '!')
	if bang < 0 {
		u.NickName = prefix
		return u
	}

	u.NickName = prefix[:bang]
	rest := prefix[bang+1:]

	at := strings.IndexByte(rest, '@')
	if at < 0 {
		u.UserName = rest
		return u
	}

	u.UserName = rest[:at]
	u.HostName = rest[at+1:]
	return u
}

// Fullhost reconstructs a nick!user@host prefix string. When both
// user and host are empty it returns the bare nick; otherwise it
// writes both separators even if one of the two segments is empty.
func (u IrcUser) Fullhost() string {
	if u.UserName == "" && u.HostName == "" {
		return u.NickName
	}
	var b strings.Builder
	b.WriteString(u.NickName)
	b.WriteByte('!')
	b.WriteString(u.UserName)
	b.WriteByte('@')
	b.WriteString(u.HostName)
	return b.String()
}
