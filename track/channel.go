package track

import "time"

// BanEntry is one row of a channel's accumulated ban list, taken from
// a 367 (RPL_BANLIST) reply. MODE changes made through
// AddToChannelList/RemoveFromChannelList do not add or remove entries.
type BanEntry struct {
	Mask  string
	SetBy string
	SetAt time.Time
}

// TrackedChannel is the tracker's view of one joined channel: its
// membership, topic, and any ban entries observed so far.
type TrackedChannel struct {
	Name string

	// Users maps nickName to the shared *TrackedUser for every member
	// of this channel the tracker currently knows about.
	Users map[string]*TrackedUser

	Topic      string
	TopicSetBy string
	TopicSetAt time.Time

	// Bans accumulates every 367 seen for this channel since the
	// tracker started or last cleared it; there is no single-shot
	// "list ban" operation in this module, so callers issuing repeat
	// MODE +b queries will see repeat entries.
	Bans []BanEntry
}

func newTrackedChannel(name string) *TrackedChannel {
	return &TrackedChannel{
		Name:  name,
		Users: map[string]*TrackedUser{},
	}
}
