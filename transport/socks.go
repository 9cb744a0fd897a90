package transport

import (
	"net"
	"time"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/net/proxy"
)

// socksDialer routes connections through a SOCKS5 proxy. Grounded on
// the connection-establishment side of inet.CreateIrcClient: the
// source dials a net.Conn and hands it to the client unchanged, so a
// proxy-aware Dialer is a drop-in replacement with no other code
// needing to know a proxy is involved.
type socksDialer struct {
	forward proxy.Dialer
}

// NewSOCKS5Dialer returns a Dialer that connects through the SOCKS5
// proxy at proxyAddress. auth may be nil for an unauthenticated
// proxy.
func NewSOCKS5Dialer(proxyAddress string, auth *proxy.Auth, timeout time.Duration) (Dialer, error) {
	base := &net.Dialer{Timeout: timeout}
	d, err := proxy.SOCKS5("tcp", proxyAddress, auth, base)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "transport: build socks5 dialer")
	}
	return socksDialer{forward: d}, nil
}

func (d socksDialer) Dial(network, address string) (net.Conn, error) {
	conn, err := d.forward.Dial(network, address)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "transport: socks5 dial")
	}
	return conn, nil
}
