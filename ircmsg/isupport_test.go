package ircmsg

import "testing"

func TestCapabilities_Defaults(t *testing.T) {
	c := NewCapabilities()
	if len(c.Prefix) != 2 || c.Prefix[0] != (PrefixMode{'@', 'o'}) || c.Prefix[1] != (PrefixMode{'+', 'v'}) {
		t.Errorf("default Prefix = %v", c.Prefix)
	}
	if c.ChannelListModes != "b" {
		t.Errorf("default ChannelListModes = %q, want b", c.ChannelListModes)
	}
	if c.MaxNickLength != 9 || c.EnforceMaxNickLength {
		t.Errorf("default nick length = %d enforce=%v", c.MaxNickLength, c.EnforceMaxNickLength)
	}
	if c.MessageModeLimit != 3 {
		t.Errorf("default MessageModeLimit = %d, want 3", c.MessageModeLimit)
	}
}

func TestCapabilities_ParseISupport(t *testing.T) {
	c := NewCapabilities()
	c.ParseISupport([]string{"PREFIX=(ohv)@%+", "NICKLEN=16", "NETWORK=Libera"})

	want := []PrefixMode{{'@', 'o'}, {'%', 'h'}, {'+', 'v'}}
	if len(c.Prefix) != len(want) {
		t.Fatalf("Prefix = %v, want %v", c.Prefix, want)
	}
	for i := range want {
		if c.Prefix[i] != want[i] {
			t.Errorf("Prefix[%d] = %v, want %v", i, c.Prefix[i], want[i])
		}
	}
	if c.MaxNickLength != 16 || !c.EnforceMaxNickLength {
		t.Errorf("nicklen = %d enforce=%v, want 16/true", c.MaxNickLength, c.EnforceMaxNickLength)
	}
	if c.NetworkName != "Libera" {
		t.Errorf("NetworkName = %q, want Libera", c.NetworkName)
	}

	c.ParseISupport([]string{"-NICKLEN"})
	if c.MaxNickLength != 9 || c.EnforceMaxNickLength {
		t.Errorf("after -NICKLEN: %d enforce=%v, want 9/false", c.MaxNickLength, c.EnforceMaxNickLength)
	}
}

func TestCapabilities_Chanmodes(t *testing.T) {
	c := NewCapabilities()
	c.ParseISupport([]string{"CHANMODES=eIb,k,l,imnpst"})
	if c.ChannelListModes != "eIb" {
		t.Errorf("ChannelListModes = %q", c.ChannelListModes)
	}
	if c.ChannelParameterizedModes != "k" {
		t.Errorf("ChannelParameterizedModes = %q", c.ChannelParameterizedModes)
	}
	if c.ChannelNullaryRemovableModes != "l" {
		t.Errorf("ChannelNullaryRemovableModes = %q", c.ChannelNullaryRemovableModes)
	}
	if c.ChannelSettingModes != "imnpst" {
		t.Errorf("ChannelSettingModes = %q", c.ChannelSettingModes)
	}
}

func TestCapabilities_PrefixModeLookups(t *testing.T) {
	c := NewCapabilities()
	if mode, ok := c.ModeForPrefix('@'); !ok || mode != 'o' {
		t.Errorf("ModeForPrefix('@') = %c,%v", mode, ok)
	}
	if prefix, ok := c.PrefixForMode('v'); !ok || prefix != '+' {
		t.Errorf("PrefixForMode('v') = %c,%v", prefix, ok)
	}
	if _, ok := c.ModeForPrefix('~'); ok {
		t.Error("expected ~ to be absent from default table")
	}
}

func TestCapabilities_IsListMode(t *testing.T) {
	c := NewCapabilities()
	if !c.IsListMode('b') {
		t.Error("b should be a default list mode")
	}
	if c.IsListMode('o') {
		t.Error("o should not be a list mode")
	}
}

func TestPrefixRank(t *testing.T) {
	if PrefixRank('~') <= PrefixRank('&') {
		t.Error("~ should outrank &")
	}
	if PrefixRank('&') <= PrefixRank('@') {
		t.Error("& should outrank @")
	}
	if PrefixRank('@') <= PrefixRank('%') {
		t.Error("@ should outrank %")
	}
	if PrefixRank('%') <= PrefixRank('+') {
		t.Error("%% should outrank +")
	}
	if PrefixRank('x') != 0 {
		t.Error("unknown prefix should rank 0")
	}
}
