package client

import (
	"testing"
)

func newTestClient() (*Client, *fakeTransport) {
	ft := &fakeTransport{}
	c := New(ft, Identity{Nick: "tester", Username: "t", Realname: "Test User"})
	return c, ft
}

func TestConnect_SendsHandshake(t *testing.T) {
	c, ft := newTestClient()
	if err := c.Connect("irc.example.org:6667"); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	want := []string{"NICK tester", "USER t 0 * :Test User"}
	if len(ft.sent) != len(want) {
		t.Fatalf("sent = %v, want %v", ft.sent, want)
	}
	for i := range want {
		if ft.sent[i] != want[i] {
			t.Errorf("sent[%d] = %q, want %q", i, ft.sent[i], want[i])
		}
	}
}

func TestConnect_WithPassword(t *testing.T) {
	ft := &fakeTransport{}
	c := New(ft, Identity{Nick: "tester", Username: "t", Realname: "Test User", Password: "hunter2"})
	if err := c.Connect("irc.example.org:6667"); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if ft.sent[0] != "PASS hunter2" {
		t.Errorf("sent[0] = %q, want PASS hunter2", ft.sent[0])
	}
}

func TestConnect_AlreadyConnected(t *testing.T) {
	c, _ := newTestClient()
	c.Connect("irc.example.org:6667")
	if err := c.Connect("irc.example.org:6667"); err == nil {
		t.Error("expected AlreadyConnectedError")
	} else if _, ok := err.(AlreadyConnectedError); !ok {
		t.Errorf("got %T, want AlreadyConnectedError", err)
	}
}

func TestOperations_RequireConnected(t *testing.T) {
	c, _ := newTestClient()
	if err := c.Join("#chan", ""); err == nil {
		t.Error("expected NotConnectedError from Join")
	}
	if err := c.Send("#chan", "hi"); err == nil {
		t.Error("expected NotConnectedError from Send")
	}
}

func TestSetNick_DisconnectedUpdatesIdentityImmediately(t *testing.T) {
	c, ft := newTestClient()
	if err := c.SetNick("newnick"); err != nil {
		t.Fatalf("SetNick: %v", err)
	}
	if c.Identity().Nick != "newnick" {
		t.Errorf("Identity().Nick = %q, want newnick", c.Identity().Nick)
	}
	if err := c.Connect("irc.example.org:6667"); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if len(ft.sent) < 1 || ft.sent[0] != "NICK newnick" {
		t.Errorf("sent = %v, want NICK newnick first", ft.sent)
	}
}

func TestReadStep_PingPong(t *testing.T) {
	c, ft := newTestClient()
	c.Connect("irc.example.org:6667")
	ft.sent = nil
	ft.queue("PING :abc\r\n")

	if err := c.ReadStep(); err != nil {
		t.Fatalf("ReadStep: %v", err)
	}
	if len(ft.sent) != 1 || ft.sent[0] != "PONG :abc" {
		t.Errorf("sent = %v, want [PONG :abc]", ft.sent)
	}
}

func TestReadStep_001FiresOnConnect(t *testing.T) {
	c, ft := newTestClient()
	c.Connect("irc.example.org:6667")

	var fired bool
	c.OnConnect(func() { fired = true })

	ft.queue(":irc.example.org 001 tester :Welcome\r\n")
	if err := c.ReadStep(); err != nil {
		t.Fatalf("ReadStep: %v", err)
	}
	if !fired {
		t.Error("onConnect did not fire")
	}
	if c.Self() != "tester" {
		t.Errorf("Self() = %q, want tester", c.Self())
	}
}

func TestReadStep_PrivmsgFiresOnMessage(t *testing.T) {
	c, ft := newTestClient()
	c.Connect("irc.example.org:6667")

	var sender, target, text string
	c.OnMessage(func(s, tg, tx string) { sender, target, text = s, tg, tx })

	ft.queue(":alice!a@host PRIVMSG #chan :hello there\r\n")
	if err := c.ReadStep(); err != nil {
		t.Fatalf("ReadStep: %v", err)
	}
	if sender != "alice!a@host" || target != "#chan" || text != "hello there" {
		t.Errorf("got (%q,%q,%q)", sender, target, text)
	}
}

func TestReadStep_CTCPPreemptsMessage(t *testing.T) {
	c, ft := newTestClient()
	c.Connect("irc.example.org:6667")

	var gotTag, gotData string
	var messageFired bool
	c.OnCtcpQuery(func(sender, target, tag, data string) { gotTag, gotData = tag, data })
	c.OnMessage(func(string, string, string) { messageFired = true })

	ft.queue(":alice!a@host PRIVMSG #chan :\x01VERSION\x01\r\n")
	if err := c.ReadStep(); err != nil {
		t.Fatalf("ReadStep: %v", err)
	}
	if gotTag != "VERSION" || gotData != "" {
		t.Errorf("got tag=%q data=%q", gotTag, gotData)
	}
	if messageFired {
		t.Error("onMessage should not fire when a CTCP handler consumed the line")
	}
}

func TestReadStep_NickChangeUpdatesSelf(t *testing.T) {
	c, ft := newTestClient()
	c.Connect("irc.example.org:6667")
	ft.queue(":tester!t@host 001 tester :Welcome\r\n")
	c.ReadStep()

	var oldSeen, newSeen string
	c.OnNickChange(func(o, n string) { oldSeen, newSeen = o, n })

	ft.queue(":tester!t@host NICK newtester\r\n")
	if err := c.ReadStep(); err != nil {
		t.Fatalf("ReadStep: %v", err)
	}
	if oldSeen != "tester" || newSeen != "newtester" {
		t.Errorf("got (%q,%q)", oldSeen, newSeen)
	}
	if c.Self() != "newtester" {
		t.Errorf("Self() = %q, want newtester", c.Self())
	}
}

func TestReadStep_JoinSelfVsOther(t *testing.T) {
	c, ft := newTestClient()
	c.Connect("irc.example.org:6667")
	ft.queue(":tester!t@host 001 tester :Welcome\r\n")
	c.ReadStep()

	var selfJoined string
	var otherJoined, otherNick string
	c.OnSuccessfulJoin(func(ch string) { selfJoined = ch })
	c.OnJoin(func(ch, nick, user, host string) { otherJoined, otherNick = ch, nick })

	ft.queue(":tester!t@host JOIN #chan\r\n:bob!b@host JOIN #chan\r\n")
	if err := c.ReadStep(); err != nil {
		t.Fatalf("ReadStep: %v", err)
	}
	if selfJoined != "#chan" {
		t.Errorf("selfJoined = %q", selfJoined)
	}
	if otherJoined != "#chan" || otherNick != "bob" {
		t.Errorf("got (%q,%q)", otherJoined, otherNick)
	}
}

func TestReadStep_NickInUse_HandledByCallback(t *testing.T) {
	c, ft := newTestClient()
	c.Connect("irc.example.org:6667")
	ft.sent = nil

	c.OnNickInUse(func(tried string) (string, bool) { return tried + "_", true })

	ft.queue(":irc.example.org 433 * tester :Nickname is already in use\r\n")
	if err := c.ReadStep(); err != nil {
		t.Fatalf("ReadStep: %v", err)
	}
	if len(ft.sent) != 1 || ft.sent[0] != "NICK tester_" {
		t.Errorf("sent = %v", ft.sent)
	}
}

func TestReadStep_NickInUse_Unhandled(t *testing.T) {
	c, ft := newTestClient()
	c.Connect("irc.example.org:6667")

	ft.queue(":irc.example.org 433 * tester :Nickname is already in use\r\n")
	err := c.ReadStep()
	if _, ok := err.(IrcError); !ok {
		t.Fatalf("err = %v, want IrcError", err)
	}
	if c.Connected() {
		t.Error("client should be disconnected after unhandled 433")
	}
}

func TestReadStep_ISupportUpdatesCapabilities(t *testing.T) {
	c, ft := newTestClient()
	c.Connect("irc.example.org:6667")

	ft.queue(":irc.example.org 005 tester PREFIX=(ohv)@%+ NICKLEN=16 NETWORK=Libera :are supported by this server\r\n")
	if err := c.ReadStep(); err != nil {
		t.Fatalf("ReadStep: %v", err)
	}
	caps := c.Capabilities()
	if caps.MaxNickLength != 16 || !caps.EnforceMaxNickLength {
		t.Errorf("NICKLEN not applied: %+v", caps)
	}
	if caps.NetworkName != "Libera" {
		t.Errorf("NetworkName = %q", caps.NetworkName)
	}
	if len(caps.Prefix) != 3 || caps.Prefix[1].Prefix != '%' || caps.Prefix[1].Mode != 'h' {
		t.Errorf("Prefix = %+v", caps.Prefix)
	}
}

func TestReadStep_ErrorCommandDisconnects(t *testing.T) {
	c, ft := newTestClient()
	c.Connect("irc.example.org:6667")

	ft.queue("ERROR :Closing link\r\n")
	err := c.ReadStep()
	if _, ok := err.(IrcError); !ok {
		t.Fatalf("err = %v, want IrcError", err)
	}
	if c.Connected() {
		t.Error("expected disconnected after ERROR")
	}
}

func TestQuit_SendsAndDisconnects(t *testing.T) {
	c, ft := newTestClient()
	c.Connect("irc.example.org:6667")
	ft.sent = nil

	if err := c.Quit("bye"); err != nil {
		t.Fatalf("Quit: %v", err)
	}
	if len(ft.sent) != 1 || ft.sent[0] != "QUIT :bye" {
		t.Errorf("sent = %v", ft.sent)
	}
	if c.Connected() {
		t.Error("expected disconnected after Quit")
	}
}

func TestAddToChannelList_RequiresListMode(t *testing.T) {
	c, ft := newTestClient()
	c.Connect("irc.example.org:6667")
	ft.sent = nil

	if err := c.AddToChannelList("#chan", 'b', "nick!*@*"); err != nil {
		t.Fatalf("AddToChannelList: %v", err)
	}
	if len(ft.sent) != 1 || ft.sent[0] != "MODE #chan +b nick!*@*" {
		t.Errorf("sent = %v", ft.sent)
	}

	if err := c.AddToChannelList("#chan", 'x', "nick!*@*"); err == nil {
		t.Error("expected BadModeError for non-list mode")
	}
}

func TestAddToChannelList_ChunksAtMessageModeLimit(t *testing.T) {
	c, ft := newTestClient()
	c.Connect("irc.example.org:6667")
	ft.sent = nil

	addrs := []string{"a!*@*", "b!*@*", "c!*@*", "d!*@*"}
	if err := c.AddToChannelList("#chan", 'b', addrs...); err != nil {
		t.Fatalf("AddToChannelList: %v", err)
	}
	want := []string{
		"MODE #chan +bbb a!*@* b!*@* c!*@*",
		"MODE #chan +b d!*@*",
	}
	if len(ft.sent) != len(want) {
		t.Fatalf("sent = %v, want %v", ft.sent, want)
	}
	for i := range want {
		if ft.sent[i] != want[i] {
			t.Errorf("sent[%d] = %q, want %q", i, ft.sent[i], want[i])
		}
	}
}

func TestAddChannelModes_MixesNullaryAndParameterizedPairs(t *testing.T) {
	c, ft := newTestClient()
	c.Connect("irc.example.org:6667")
	ft.sent = nil

	err := c.AddChannelModes("#chan",
		ModeArg{Mode: 'n'},
		ModeArg{Mode: 't'},
		ModeArg{Mode: 'l', Arg: "50"},
	)
	if err != nil {
		t.Fatalf("AddChannelModes: %v", err)
	}
	want := []string{
		"MODE #chan +ntl 50",
	}
	if len(ft.sent) != len(want) || ft.sent[0] != want[0] {
		t.Errorf("sent = %v, want %v", ft.sent, want)
	}
}

func TestRemoveChannelModes_UsesMinusSign(t *testing.T) {
	c, ft := newTestClient()
	c.Connect("irc.example.org:6667")
	ft.sent = nil

	if err := c.RemoveChannelModes("#chan", ModeArg{Mode: 'm'}); err != nil {
		t.Fatalf("RemoveChannelModes: %v", err)
	}
	if len(ft.sent) != 1 || ft.sent[0] != "MODE #chan -m" {
		t.Errorf("sent = %v", ft.sent)
	}
}

func TestSend_SplitsLongBody(t *testing.T) {
	c, ft := newTestClient()
	c.Connect("irc.example.org:6667")
	ft.sent = nil

	body := ""
	for i := 0; i < 600; i++ {
		body += "a"
	}
	if err := c.Send("#chan", body); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if len(ft.sent) != 2 {
		t.Fatalf("got %d lines, want 2", len(ft.sent))
	}
}
