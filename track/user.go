package track

import "github.com/kestrelirc/ircore/ircmsg"

// TrackedUser is the tracker's view of one nick: identity fields
// filled in progressively as JOIN and WHO replies arrive, the
// set of channels it shares with the client, and its channel-mode
// prefixes per channel.
type TrackedUser struct {
	NickName string
	UserName string
	HostName string
	RealName string

	// Channels lists every channel this user shares with the client,
	// in first-observed order, unique.
	Channels []string

	// ChannelPrefixes holds, per channel, the ordered set of
	// (prefix, mode) pairs the user currently holds there. A channel
	// key exists only while the list is non-empty.
	ChannelPrefixes map[string][]ircmsg.PrefixMode

	// Payload is application-chosen extra data; the tracker never
	// reads or writes it.
	Payload interface{}
}

func newTrackedUser(nick string) *TrackedUser {
	return &TrackedUser{
		NickName:        nick,
		ChannelPrefixes: map[string][]ircmsg.PrefixMode{},
	}
}

// AddPrefixWithMode inserts or updates the user's prefix on channel.
// If the prefix is already held, its mode is updated in place rather
// than duplicated (a server can re-announce the same prefix under a
// new mode letter after a CHANMODES/PREFIX renegotiation).
func (u *TrackedUser) AddPrefixWithMode(channel string, prefix, mode rune) {
	list := u.ChannelPrefixes[channel]
	for i, pm := range list {
		if pm.Prefix == prefix {
			list[i].Mode = mode
			return
		}
	}
	u.ChannelPrefixes[channel] = append(list, ircmsg.PrefixMode{Prefix: prefix, Mode: mode})
}

// RemovePrefix drops the user's prefix on channel, if held. The
// channel's entry is removed from the map entirely once its prefix
// list is empty, rather than left behind as an empty slice.
func (u *TrackedUser) RemovePrefix(channel string, prefix rune) {
	list := u.ChannelPrefixes[channel]
	for i, pm := range list {
		if pm.Prefix == prefix {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(u.ChannelPrefixes, channel)
	} else {
		u.ChannelPrefixes[channel] = list
	}
}

// HighestPrefix returns the user's highest-ranked prefix on channel
// per the fixed priority ~ > & > @ > % > +; unranked prefixes are
// lowest. Ties (unranked prefixes, or a server PREFIX table with
// duplicate ranks) resolve to the first-acquired entry.
func (u *TrackedUser) HighestPrefix(channel string) (rune, bool) {
	list := u.ChannelPrefixes[channel]
	if len(list) == 0 {
		return 0, false
	}
	best := list[0]
	bestRank := ircmsg.PrefixRank(best.Prefix)
	for _, pm := range list[1:] {
		if r := ircmsg.PrefixRank(pm.Prefix); r > bestRank {
			best, bestRank = pm, r
		}
	}
	return best.Prefix, true
}

func containsStr(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func removeStr(list []string, s string) []string {
	for i, v := range list {
		if v == s {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
