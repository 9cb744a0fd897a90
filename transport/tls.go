package transport

import (
	"crypto/tls"
	"net"
	"time"
)

// tlsDialer wraps an inner Dialer's plain TCP connection in a TLS
// handshake. It composes with socksDialer (dial through the proxy,
// then handshake) rather than duplicating either concern.
type tlsDialer struct {
	inner  Dialer
	config *tls.Config
}

// NewTLSDialer wraps dialer (nil means a plain NewNetDialer(timeout))
// so every Dial call negotiates TLS over the underlying connection
// before handing it back. cfg may be nil to accept Go's TLS defaults;
// callers that need InsecureSkipVerify set it on cfg themselves.
func NewTLSDialer(dialer Dialer, cfg *tls.Config, timeout time.Duration) Dialer {
	if dialer == nil {
		dialer = NewNetDialer(timeout)
	}
	return tlsDialer{inner: dialer, config: cfg}
}

func (d tlsDialer) Dial(network, address string) (net.Conn, error) {
	conn, err := d.inner.Dial(network, address)
	if err != nil {
		return nil, err
	}
	host := address
	if h, _, splitErr := net.SplitHostPort(address); splitErr == nil {
		host = h
	}
	cfg := d.config
	if cfg == nil {
		cfg = &tls.Config{}
	}
	if cfg.ServerName == "" {
		cfg = cfg.Clone()
		cfg.ServerName = host
	}
	tlsConn := tls.Client(conn, cfg)
	if err := tlsConn.Handshake(); err != nil {
		conn.Close()
		return nil, err
	}
	return tlsConn, nil
}
