package config

import (
	"testing"

	"github.com/kestrelirc/ircore/transport"
)

func TestConfig_NewAppliesDefaults(t *testing.T) {
	t.Parallel()

	c := New()
	if c.FloodLenPenalty != defaultFloodLenPenalty {
		t.Errorf("FloodLenPenalty = %v, want %v", c.FloodLenPenalty, defaultFloodLenPenalty)
	}
	if c.KeepAlive != defaultKeepAlive {
		t.Errorf("KeepAlive = %v, want %v", c.KeepAlive, defaultKeepAlive)
	}
}

func TestConfig_LoadStringOverridesDefaults(t *testing.T) {
	t.Parallel()

	c, err := LoadString(`
address = "irc.example.org:6697"
nick = "mybot"
username = "mybot"
realname = "An ircore client"
floodstep = 5.0
`)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if c.Address != "irc.example.org:6697" {
		t.Errorf("Address = %q", c.Address)
	}
	if c.FloodStep != 5.0 {
		t.Errorf("FloodStep = %v, want 5.0", c.FloodStep)
	}
	if c.KeepAlive != defaultKeepAlive {
		t.Errorf("KeepAlive = %v, want default %v", c.KeepAlive, defaultKeepAlive)
	}
}

func TestConfig_LoadStringInvalidToml(t *testing.T) {
	t.Parallel()

	if _, err := LoadString("not = [valid"); err == nil {
		t.Error("expected a decode error")
	}
}

func TestConfig_ValidateRequiresIdentity(t *testing.T) {
	t.Parallel()

	c := New()
	if c.Validate() {
		t.Fatal("expected Validate to fail on an empty config")
	}
	errs := c.Errors()
	if len(errs) < 4 {
		t.Errorf("got %d errors, want at least 4 missing-field errors: %v", len(errs), errs)
	}
}

func TestConfig_ValidateAcceptsCompleteConfig(t *testing.T) {
	t.Parallel()

	c, err := LoadString(`
address = "irc.example.org:6697"
nick = "mybot"
username = "mybot"
realname = "An ircore client"
`)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if !c.Validate() {
		t.Errorf("expected Validate to pass, errors: %v", c.Errors())
	}
}

func TestConfig_Identity(t *testing.T) {
	t.Parallel()

	c, err := LoadString(`
nick = "mybot"
altnick = "mybot_"
username = "mybot"
realname = "An ircore client"
password = "hunter2"
`)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	id := c.Identity()
	if id.Nick != "mybot" || id.AltNick != "mybot_" || id.Password != "hunter2" {
		t.Errorf("Identity() = %+v", id)
	}
}

func TestConfig_NewTransportPlain(t *testing.T) {
	t.Parallel()

	c := New()
	tr, err := c.NewTransport()
	if err != nil {
		t.Fatalf("NewTransport: %v", err)
	}
	if tr == nil {
		t.Fatal("expected a non-nil transport")
	}
}

func TestConfig_NewTransportDisablesPacingWhenFloodStepZero(t *testing.T) {
	t.Parallel()

	c := New()
	c.FloodStep = 0
	tr, err := c.NewTransport()
	if err != nil {
		t.Fatalf("NewTransport: %v", err)
	}
	if _, ok := tr.(*transport.PacedTransport); ok {
		t.Fatal("expected the unwrapped transport.Conn, not a PacedTransport")
	}
}
