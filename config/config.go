/*
Package config loads the single-network connection settings an
ircore client needs to dial and register: address, optional TLS/proxy,
identity, and the flood/keepalive tuning transport.PacedTransport and
client.Client.IdlePing accept.

An example configuration looks like this:

	address  = "irc.example.org:6697"
	tls      = true
	insecureskipverify = false

	nick     = "mybot"
	altnick  = "mybot_"
	username = "mybot"
	realname = "An ircore client"
	password = ""

	proxyaddress = ""

	floodlenpenalty = 120
	floodtimeout    = 10.0
	floodstep       = 2.0
	keepalive       = 60.0
*/
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Defaults mirror the teacher's per-network fallbacks, narrowed to
// the fields a single-network client core needs.
const (
	defaultFloodLenPenalty = 120
	defaultFloodTimeout    = 10.0
	defaultFloodStep       = 2.0
	defaultKeepAlive       = 60.0
)

// The following format strings match the config error messages'
// register-name-then-detail shape.
const (
	fmtErrMissing = "config: requires %s, but nothing was given"
	fmtErrInvalid = "config: invalid %s, given: %v"
)

// Config holds one network's connection settings.
type Config struct {
	Address            string `toml:"address"`
	TLS                bool   `toml:"tls"`
	InsecureSkipVerify bool   `toml:"insecureskipverify"`

	Nick     string `toml:"nick"`
	AltNick  string `toml:"altnick"`
	Username string `toml:"username"`
	Realname string `toml:"realname"`
	Password string `toml:"password"`

	// ProxyAddress, if set, routes the connection through a SOCKS5
	// proxy via transport.NewSOCKS5Dialer.
	ProxyAddress  string `toml:"proxyaddress"`
	ProxyUsername string `toml:"proxyusername"`
	ProxyPassword string `toml:"proxypassword"`

	FloodLenPenalty uint    `toml:"floodlenpenalty"`
	FloodTimeout    float64 `toml:"floodtimeout"`
	FloodStep       float64 `toml:"floodstep"`
	KeepAlive       float64 `toml:"keepalive"`

	errors errList `toml:"-"`
}

// New returns a Config with the teacher's flood/keepalive defaults
// applied; Load overwrites whichever fields the file sets.
func New() *Config {
	return &Config{
		FloodLenPenalty: defaultFloodLenPenalty,
		FloodTimeout:    defaultFloodTimeout,
		FloodStep:       defaultFloodStep,
		KeepAlive:       defaultKeepAlive,
	}
}

// Load reads and decodes a TOML file into a fresh Config, defaults
// applied first so the file only need set what it wants to override.
func Load(filename string) (*Config, error) {
	c := New()
	if _, err := toml.DecodeFile(filename, c); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadString decodes a TOML document held in memory, for tests and
// embedded configuration.
func LoadString(doc string) (*Config, error) {
	c := New()
	if _, err := toml.Decode(doc, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Errors returns the validation errors accumulated by the last call
// to Validate.
func (c *Config) Errors() []error {
	ers := make([]error, len(c.errors))
	copy(ers, c.errors)
	return ers
}

// Validate checks the required fields are present and the numeric
// tuning values are sane. Errors() returns the accumulated problems;
// Validate itself reports only whether the config is usable.
func (c *Config) Validate() bool {
	ers := make(errList, 0)

	if len(c.Address) == 0 {
		ers.addError(fmtErrMissing, "address")
	}
	if len(c.Nick) == 0 {
		ers.addError(fmtErrMissing, "nick")
	}
	if len(c.Username) == 0 {
		ers.addError(fmtErrMissing, "username")
	}
	if len(c.Realname) == 0 {
		ers.addError(fmtErrMissing, "realname")
	}
	if c.FloodTimeout < 0 {
		ers.addError(fmtErrInvalid, "floodtimeout", c.FloodTimeout)
	}
	if c.FloodStep < 0 {
		ers.addError(fmtErrInvalid, "floodstep", c.FloodStep)
	}
	if c.KeepAlive < 0 {
		ers.addError(fmtErrInvalid, "keepalive", c.KeepAlive)
	}

	c.errors = ers
	return len(ers) == 0
}

// errList collects validation failures the way the teacher's
// config.errList does, so Validate can report every problem in one
// pass instead of stopping at the first.
type errList []error

func (l *errList) addError(format string, args ...interface{}) {
	*l = append(*l, fmt.Errorf(format, args...))
}
