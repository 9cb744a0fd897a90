package config

import (
	"crypto/tls"
	"time"

	"golang.org/x/net/proxy"

	"github.com/kestrelirc/ircore/client"
	"github.com/kestrelirc/ircore/transport"
)

// Identity converts the loaded settings into the client.Identity
// Connect expects.
func (c *Config) Identity() client.Identity {
	return client.Identity{
		Nick:     c.Nick,
		AltNick:  c.AltNick,
		Username: c.Username,
		Realname: c.Realname,
		Password: c.Password,
	}
}

// NewTransport builds the transport.Transport this config describes:
// a plain or TLS dial, optionally routed through a SOCKS5 proxy, and
// wrapped in flood-protection pacing whenever FloodStep is positive.
func (c *Config) NewTransport() (transport.Transport, error) {
	var dialer transport.Dialer = transport.NewNetDialer(10 * time.Second)

	if len(c.ProxyAddress) > 0 {
		var auth *proxy.Auth
		if len(c.ProxyUsername) > 0 {
			auth = &proxy.Auth{User: c.ProxyUsername, Password: c.ProxyPassword}
		}
		socksDialer, err := transport.NewSOCKS5Dialer(c.ProxyAddress, auth, 10*time.Second)
		if err != nil {
			return nil, err
		}
		dialer = socksDialer
	}

	if c.TLS {
		dialer = transport.NewTLSDialer(dialer, &tls.Config{InsecureSkipVerify: c.InsecureSkipVerify}, 10*time.Second)
	}

	conn := transport.NewConn(dialer)
	if c.FloodStep <= 0 {
		return conn, nil
	}

	timeout := time.Duration(c.FloodTimeout * float64(time.Second))
	basestep := time.Duration(c.FloodStep * float64(time.Second))
	var lenPenaltyFactor float64
	if c.FloodLenPenalty > 0 {
		lenPenaltyFactor = 1.0 / float64(c.FloodLenPenalty)
	}
	return transport.NewPacedTransport(conn, timeout, basestep, lenPenaltyFactor), nil
}
