/*
Package track reconstructs the channel/user membership graph the
protocol dispatcher's events describe, without the dispatcher itself
keeping any state of its own. A Tracker is an opt-in observer: it
subscribes itself to a client.Client's event surface on Start and
unsubscribes on Stop, so a caller that never wants this bookkeeping
never pays for it.
*/
package track

import (
	"strings"
	"time"

	"github.com/kestrelirc/ircore/client"
	"github.com/kestrelirc/ircore/ircmsg"
)

// State is one of the tracker's three lifecycle states.
type State int

const (
	Disabled State = iota
	Starting
	Enabled
)

func (s State) String() string {
	switch s {
	case Disabled:
		return "disabled"
	case Starting:
		return "starting"
	case Enabled:
		return "enabled"
	default:
		return "unknown"
	}
}

// Tracker observes a client.Client's dispatch events and maintains a
// self-consistent channel/user graph. The zero value is not usable;
// build one with New.
type Tracker struct {
	client *client.Client
	state  State

	self     *TrackedUser
	channels map[string]*TrackedChannel
	users    map[string]*TrackedUser

	unsubs []func()
}

// New returns a Tracker bound to c, in the Disabled state. Call Start
// to begin observing.
func New(c *client.Client) *Tracker {
	return &Tracker{
		client:   c,
		channels: map[string]*TrackedChannel{},
		users:    map[string]*TrackedUser{},
	}
}

// State reports the tracker's current lifecycle state.
func (t *Tracker) State() State { return t.state }

// Start begins tracking. If the client is not yet connected, the
// tracker seeds itself and goes straight to Enabled (there is nothing
// to reconcile). If the client is already connected, the tracker asks
// the server what it already knows via a self-WHOIS before enabling,
// so a Start call issued mid-session recovers channels the client
// joined before the tracker existed.
func (t *Tracker) Start() {
	if t.state != Disabled {
		return
	}
	if !t.client.Connected() {
		t.state = Enabled
		t.seedSelf()
		t.subscribeAll()
		return
	}

	t.state = Starting
	var chanID, endID client.HandlerID
	finish := func(channels []string) {
		t.client.OffWhoisChannelsReply(chanID)
		t.client.OffWhoisEnd(endID)
		t.unsubs = nil
		t.state = Enabled
		t.seedSelf()
		t.subscribeAll()
		for _, ch := range channels {
			t.handleSuccessfulJoin(ch)
			t.client.QueryNames(ch)
		}
	}
	chanID = t.client.OnWhoisChannelsReply(func(nick string, channels []string) {
		if nick != t.client.Self() || t.state != Starting {
			return
		}
		finish(channels)
	})
	endID = t.client.OnWhoisEnd(func(nick string) {
		if nick != t.client.Self() || t.state != Starting {
			return
		}
		finish(nil)
	})
	t.unsubs = append(t.unsubs,
		func() { t.client.OffWhoisChannelsReply(chanID) },
		func() { t.client.OffWhoisEnd(endID) },
	)
	t.client.QueryWhois(t.client.Self())
}

// Stop ends tracking. From Enabled it unsubscribes every tracker
// handler and discards all state (channels, users, self). From
// Starting it unsubscribes the startup WHOIS handlers only. From
// Disabled it does nothing.
func (t *Tracker) Stop() {
	for _, unsub := range t.unsubs {
		unsub()
	}
	t.unsubs = nil
	if t.state == Enabled {
		t.channels = map[string]*TrackedChannel{}
		t.users = map[string]*TrackedUser{}
		t.self = nil
	}
	t.state = Disabled
}

func (t *Tracker) seedSelf() {
	id := t.client.Identity()
	nick := t.client.Self()
	if nick == "" {
		nick = id.Nick
	}
	u := newTrackedUser(nick)
	u.UserName = id.Username
	u.RealName = id.Realname
	t.self = u
	t.users[nick] = u
}

func (t *Tracker) subscribeAll() {
	c := t.client
	t.unsubs = append(t.unsubs,
		idUnsub(c.OnConnect(t.handleConnect), c.OffConnect),
		idUnsub(c.OnSuccessfulJoin(t.handleSuccessfulJoin), c.OffSuccessfulJoin),
		idUnsub(c.OnNameList(t.handleNameList), c.OffNameList),
		idUnsub(c.OnJoin(t.handleJoin), c.OffJoin),
		idUnsub(c.OnPart(t.handlePart), c.OffPart),
		idUnsub(c.OnKick(t.handleKick), c.OffKick),
		idUnsub(c.OnQuit(t.handleQuit), c.OffQuit),
		idUnsub(c.OnNickChange(t.handleNickChange), c.OffNickChange),
		idUnsub(c.OnModeChange(t.handleModeChange), c.OffModeChange),
		idUnsub(c.OnTopic(t.handleTopic), c.OffTopic),
		idUnsub(c.OnTopicInfo(t.handleTopicInfo), c.OffTopicInfo),
		idUnsub(c.OnBanList(t.handleBanList), c.OffBanList),
		idUnsub(c.OnWhoReply(t.handleWhoReply), c.OffWhoReply),
	)
}

// idUnsub captures a subscription id and its matching Off method into
// a single closure, so subscribeAll can build a flat, uniformly
// callable teardown list despite every event having a distinct
// handler type.
func idUnsub(id client.HandlerID, off func(client.HandlerID) bool) func() {
	return func() { off(id) }
}

func (t *Tracker) handleConnect() {
	id := t.client.Identity()
	nick := t.client.Self()
	if t.self == nil {
		t.seedSelf()
		return
	}
	if t.self.NickName != nick {
		delete(t.users, t.self.NickName)
		t.self.NickName = nick
		t.users[nick] = t.self
	}
	t.self.UserName = id.Username
	t.self.RealName = id.Realname
}

func (t *Tracker) handleSuccessfulJoin(channel string) {
	ch := newTrackedChannel(channel)
	ch.Users[t.self.NickName] = t.self
	t.channels[channel] = ch
	if !containsStr(t.self.Channels, channel) {
		t.self.Channels = append(t.self.Channels, channel)
	}
}

func (t *Tracker) handleNameList(channel string, names []string) {
	caps := t.client.Capabilities()
	ch, ok := t.channels[channel]
	if !ok {
		ch = newTrackedChannel(channel)
		t.channels[channel] = ch
	}
	for _, raw := range names {
		nick, prefixes := peelPrefixes(raw, caps.Prefix)
		if nick == "" {
			continue
		}
		u, ok := t.users[nick]
		if !ok {
			u = newTrackedUser(nick)
			u.Channels = []string{channel}
			t.users[nick] = u
		} else if !containsStr(u.Channels, channel) {
			u.Channels = append(u.Channels, channel)
		}
		ch.Users[nick] = u
		for _, pm := range prefixes {
			u.AddPrefixWithMode(channel, pm.Prefix, pm.Mode)
		}
	}
}

func (t *Tracker) handleJoin(channel, nick, username, hostname string) {
	ch, ok := t.channels[channel]
	if !ok {
		ch = newTrackedChannel(channel)
		t.channels[channel] = ch
	}
	u, ok := t.users[nick]
	if !ok {
		u = newTrackedUser(nick)
		u.UserName = username
		u.HostName = hostname
		u.Channels = []string{channel}
		t.users[nick] = u
	} else {
		if u.UserName == "" {
			u.UserName = username
		}
		if u.HostName == "" {
			u.HostName = hostname
		}
		if !containsStr(u.Channels, channel) {
			u.Channels = append(u.Channels, channel)
		}
	}
	ch.Users[nick] = u
}

func (t *Tracker) handlePart(channel, nick, reason string) {
	if t.self != nil && nick == t.self.NickName {
		t.selfLeave(channel)
		return
	}
	t.removeMember(channel, nick)
}

func (t *Tracker) handleKick(channel, kicked, kicker, reason string) {
	if t.self != nil && kicked == t.self.NickName {
		t.selfLeave(channel)
		return
	}
	t.removeMember(channel, kicked)
}

func (t *Tracker) removeMember(channel, nick string) {
	if ch, ok := t.channels[channel]; ok {
		delete(ch.Users, nick)
	}
	u, ok := t.users[nick]
	if !ok {
		return
	}
	u.Channels = removeStr(u.Channels, channel)
	delete(u.ChannelPrefixes, channel)
	if len(u.Channels) == 0 && u != t.self {
		delete(t.users, nick)
	}
}

func (t *Tracker) selfLeave(channel string) {
	ch, ok := t.channels[channel]
	if !ok {
		return
	}
	for nick, u := range ch.Users {
		if t.self != nil && nick == t.self.NickName {
			continue
		}
		u.Channels = removeStr(u.Channels, channel)
		delete(u.ChannelPrefixes, channel)
		if len(u.Channels) == 0 {
			delete(t.users, nick)
		}
	}
	if t.self != nil {
		t.self.Channels = removeStr(t.self.Channels, channel)
		delete(t.self.ChannelPrefixes, channel)
	}
	delete(t.channels, channel)
}

func (t *Tracker) handleQuit(nick, reason string) {
	u, ok := t.users[nick]
	if !ok {
		return
	}
	for _, c := range u.Channels {
		if ch, ok := t.channels[c]; ok {
			delete(ch.Users, nick)
		}
	}
	if u != t.self {
		delete(t.users, nick)
	}
}

// handleNickChange re-keys the global user index only. Per-channel
// membership maps keep the old nick as their key; this is a
// documented limitation, not a bug (spec's design notes flag it as
// preserved source behavior rather than fixed).
func (t *Tracker) handleNickChange(oldNick, newNick string) {
	u, ok := t.users[oldNick]
	if !ok {
		return
	}
	delete(t.users, oldNick)
	u.NickName = newNick
	t.users[newNick] = u
}

func (t *Tracker) handleModeChange(channel, setter, modestring string, params []string) {
	if !strings.HasPrefix(channel, "#") {
		return
	}
	caps := t.client.Capabilities()
	adding := true
	pi := 0
	for _, r := range modestring {
		switch r {
		case '+':
			adding = true
			continue
		case '-':
			adding = false
			continue
		}

		prefix, isPrefixMode := caps.PrefixForMode(r)
		if !isPrefixMode {
			pi++
			continue
		}

		var target string
		if pi < len(params) {
			target = params[pi]
			pi++
		} else if len(params) > 0 {
			target = params[len(params)-1]
		}
		if target == "" {
			continue
		}
		u, ok := t.users[target]
		if !ok {
			continue
		}
		if adding {
			u.AddPrefixWithMode(channel, prefix, r)
		} else {
			u.RemovePrefix(channel, prefix)
		}
	}
}

func (t *Tracker) handleTopic(channel, topic string) {
	if ch, ok := t.channels[channel]; ok {
		ch.Topic = topic
	}
}

func (t *Tracker) handleTopicInfo(channel, setBy string, setAt time.Time) {
	if ch, ok := t.channels[channel]; ok {
		ch.TopicSetBy = setBy
		ch.TopicSetAt = setAt
	}
}

func (t *Tracker) handleBanList(channel, mask, setBy string, setAt time.Time) {
	if ch, ok := t.channels[channel]; ok {
		ch.Bans = append(ch.Bans, BanEntry{Mask: mask, SetBy: setBy, SetAt: setAt})
	}
}

func (t *Tracker) handleWhoReply(channel, username, host, server, nick, flags, realname string) {
	u, ok := t.users[nick]
	if !ok {
		return
	}
	if u.UserName == "" {
		u.UserName = username
	}
	if u.HostName == "" {
		u.HostName = host
	}
	if u.RealName == "" {
		u.RealName = realname
	}
}

// peelPrefixes strips leading characters of raw that appear in the
// server's PREFIX table (multi-prefix servers can stack more than
// one), returning the bare nick and the prefixes peeled off, in the
// order they appeared.
func peelPrefixes(raw string, table []ircmsg.PrefixMode) (string, []ircmsg.PrefixMode) {
	runes := []rune(raw)
	var peeled []ircmsg.PrefixMode
	i := 0
	for i < len(runes) {
		pm, ok := findPrefix(table, runes[i])
		if !ok {
			break
		}
		peeled = append(peeled, pm)
		i++
	}
	return string(runes[i:]), peeled
}

func findPrefix(table []ircmsg.PrefixMode, p rune) (ircmsg.PrefixMode, bool) {
	for _, pm := range table {
		if pm.Prefix == p {
			return pm, true
		}
	}
	return ircmsg.PrefixMode{}, false
}

// Channels returns every currently tracked channel. Fails while the
// tracker is Disabled or Starting.
func (t *Tracker) Channels() ([]*TrackedChannel, error) {
	if t.state != Enabled {
		return nil, client.NotTrackingError{}
	}
	out := make([]*TrackedChannel, 0, len(t.channels))
	for _, ch := range t.channels {
		out = append(out, ch)
	}
	return out, nil
}

// Users returns every currently tracked user, including self.
func (t *Tracker) Users() ([]*TrackedUser, error) {
	if t.state != Enabled {
		return nil, client.NotTrackingError{}
	}
	out := make([]*TrackedUser, 0, len(t.users))
	for _, u := range t.users {
		out = append(out, u)
	}
	return out, nil
}

// FindChannel looks up a tracked channel by name.
func (t *Tracker) FindChannel(name string) (*TrackedChannel, error) {
	if t.state != Enabled {
		return nil, client.NotTrackingError{}
	}
	return t.channels[name], nil
}

// FindUser looks up a tracked user by current nick.
func (t *Tracker) FindUser(nick string) (*TrackedUser, error) {
	if t.state != Enabled {
		return nil, client.NotTrackingError{}
	}
	return t.users[nick], nil
}

// FindMember looks up a channel's member by nick, as recorded in that
// channel's own membership map (which, per handleNickChange's
// documented behavior, may lag the global index after a NICK).
func (t *Tracker) FindMember(channel, nick string) (*TrackedUser, error) {
	if t.state != Enabled {
		return nil, client.NotTrackingError{}
	}
	ch, ok := t.channels[channel]
	if !ok {
		return nil, nil
	}
	return ch.Users[nick], nil
}
