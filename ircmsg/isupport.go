package ircmsg

import (
	"strconv"
	"strings"
)

// PrefixMode is one entry in the server's PREFIX table: a display
// prefix character (e.g. '@') mapped to the channel mode letter it
// represents (e.g. 'o').
type PrefixMode struct {
	Prefix rune
	Mode   rune
}

// prefixPriority ranks well-known prefixes highest-to-lowest for
// track.TrackedUser.HighestPrefix. Anything not
// listed ranks 0 (lowest, below '+').
var prefixPriority = map[rune]int{
	'~': 5,
	'&': 4,
	'@': 3,
	'%': 2,
	'+': 1,
}

// PrefixRank returns the fixed priority of a prefix character, used
// to resolve "highest prefix" queries with a total order. Unknown
// prefixes rank 0.
func PrefixRank(p rune) int {
	return prefixPriority[p]
}

// Capabilities holds the mutable server capability block negotiated
// via numeric 005 (RPL_ISUPPORT). It starts out at sane RFC 2812
// defaults and is refined as 005 lines arrive; it persists for the
// life of the connection.
type Capabilities struct {
	// Prefix is the ordered prefix<->mode table, in the order the
	// server declared it. Order matters for prefix-priority ties.
	Prefix []PrefixMode

	// ChannelListModes ("b" by default) are modes that add/remove
	// entries from a list (bans, etc) and never toggle a single flag.
	ChannelListModes string
	// ChannelParameterizedModes always take a parameter.
	ChannelParameterizedModes string
	// ChannelNullaryRemovableModes take a parameter when set, none
	// when removed.
	ChannelNullaryRemovableModes string
	// ChannelSettingModes never take a parameter.
	ChannelSettingModes string

	// MaxNickLength is the server's NICKLEN, defaulting to 9.
	MaxNickLength int
	// EnforceMaxNickLength is true once a NICKLEN token has been
	// seen; SetNick then validates against MaxNickLength.
	EnforceMaxNickLength bool

	// MessageModeLimit caps how many mode changes add_channel_modes /
	// remove_channel_modes pack into a single MODE line. Defaults to
	// 3 until a MODES= token overrides it.
	MessageModeLimit int

	// NetworkName is the value of a NETWORK= token, if any.
	NetworkName string
}

// NewCapabilities returns Capabilities at its RFC 2812 defaults:
// PREFIX=(ov)@+, list modes "b", NICKLEN 9 (unenforced), MODES 3.
func NewCapabilities() *Capabilities {
	return &Capabilities{
		Prefix:            []PrefixMode{{'@', 'o'}, {'+', 'v'}},
		ChannelListModes:  "b",
		MaxNickLength:     9,
		MessageModeLimit:  3,
	}
}

// resetPrefixDefaults restores the negation ("-PREFIX") target.
func (c *Capabilities) resetPrefixDefaults() {
	c.Prefix = []PrefixMode{{'@', 'o'}, {'+', 'v'}}
}

// ParseISupport folds the tokens of a single 005 line's arguments
// (everything but the leading nick and the trailing human-readable
// text) into the capability block. Unknown tokens are ignored.
func (c *Capabilities) ParseISupport(tokens []string) {
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if tok[0] == '-' {
			c.negate(tok[1:])
			continue
		}

		name, value, hasValue := tok, "", false
		if eq := strings.IndexByte(tok, '='); eq >= 0 {
			name, value, hasValue = tok[:eq], tok[eq+1:], true
		}

		switch name {
		case "PREFIX":
			if hasValue {
				c.parsePrefix(value)
			}
		case "CHANMODES":
			if hasValue {
				c.parseChanmodes(value)
			}
		case "NICKLEN":
			if hasValue {
				if n, err := strconv.Atoi(value); err == nil {
					c.MaxNickLength = n
					c.EnforceMaxNickLength = true
				}
			}
		case "NETWORK":
			if hasValue {
				c.NetworkName = value
			}
		case "MODES":
			if hasValue {
				if n, err := strconv.Atoi(value); err == nil && n > 0 {
					c.MessageModeLimit = n
				}
			}
		}
	}
}

// negate implements the "-NAME" ISUPPORT reset tokens this module
// recognizes.
func (c *Capabilities) negate(name string) {
	switch name {
	case "NICKLEN":
		c.MaxNickLength = 9
		c.EnforceMaxNickLength = false
	case "PREFIX":
		c.resetPrefixDefaults()
	case "MODES":
		c.MessageModeLimit = 3
	}
}

// parsePrefix parses a "(modes)prefixes" PREFIX value, asserting the
// two runs are the same length (a malformed server advertisement is
// simply ignored, leaving the previous table intact).
func (c *Capabilities) parsePrefix(value string) {
	if len(value) == 0 || value[0] != '(' {
		return
	}
	close := strings.IndexByte(value, ')')
	if close < 0 {
		return
	}
	modes := []rune(value[1:close])
	prefixes := []rune(value[close+1:])
	if len(modes) != len(prefixes) {
		return
	}

	table := make([]PrefixMode, len(modes))
	for i := range modes {
		table[i] = PrefixMode{Prefix: prefixes[i], Mode: modes[i]}
	}
	c.Prefix = table
}

// parseChanmodes splits the four comma-separated CHANMODES classes.
// Fewer than four classes leaves the missing ones at their previous
// values, since a partial CHANMODES token is still informative for
// the classes it does list.
func (c *Capabilities) parseChanmodes(value string) {
	parts := strings.SplitN(value, ",", 4)
	if len(parts) > 0 {
		c.ChannelListModes = parts[0]
	}
	if len(parts) > 1 {
		c.ChannelParameterizedModes = parts[1]
	}
	if len(parts) > 2 {
		c.ChannelNullaryRemovableModes = parts[2]
	}
	if len(parts) > 3 {
		c.ChannelSettingModes = parts[3]
	}
}

// PrefixForMode returns the display prefix for a channel mode letter
// (the reverse of the PREFIX table), and whether it was found.
func (c *Capabilities) PrefixForMode(mode rune) (rune, bool) {
	for _, pm := range c.Prefix {
		if pm.Mode == mode {
			return pm.Prefix, true
		}
	}
	return 0, false
}

// ModeForPrefix returns the channel mode letter for a display prefix
// character, and whether it was found.
func (c *Capabilities) ModeForPrefix(prefix rune) (rune, bool) {
	for _, pm := range c.Prefix {
		if pm.Prefix == prefix {
			return pm.Mode, true
		}
	}
	return 0, false
}

// IsListMode reports whether mode is one of the server's list modes
// (e.g. ban), the only kind add_to_channel_list/
// remove_from_channel_list may operate on.
func (c *Capabilities) IsListMode(mode byte) bool {
	return strings.IndexByte(c.ChannelListModes, mode) >= 0
}
