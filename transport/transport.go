/*
Package transport provides the byte-stream socket abstraction the
client core reads and writes through. The core itself never touches
net.Conn directly: it only ever sees the narrow Transport interface,
so tests can substitute an in-memory fake and TLS is just another
implementation of the same interface (spec §6).
*/
package transport

import (
	"errors"
	"io"
	"net"
	"time"

	pkgerrors "github.com/pkg/errors"
)

// ErrWouldBlock is returned by Recv when no data is currently
// available and the caller should try again later. It is not a
// failure; read_step treats it as "nothing to do this pass".
var ErrWouldBlock = errors.New("transport: would block")

// ErrClosed names the use-after-Close condition. Conn does not return
// it: Recv and Send on a closed Conn return the underlying net.Conn's
// error, wrapped.
var ErrClosed = errors.New("transport: closed")

// Transport is a byte-stream socket. Connect dials out; Recv is
// non-blocking (it returns ErrWouldBlock rather than waiting for
// data); Send is blocking and either writes the whole buffer or
// fails. Close is idempotent. ErrorText exposes the last transport
// level failure for logging, mirroring the source's errorText
// accessor rather than requiring every caller to type-assert errors.
type Transport interface {
	Connect(address string) error
	Recv(buf []byte) (int, error)
	Send(data []byte) error
	Close() error
	ErrorText() string
}

// Dialer opens the underlying net.Conn for a Conn. The default is
// net.Dial; a SOCKS5-aware dialer (golang.org/x/net/proxy) or a TLS
// dialer can be substituted without touching Conn itself.
type Dialer interface {
	Dial(network, address string) (net.Conn, error)
}

type netDialer struct {
	timeout time.Duration
}

func (d netDialer) Dial(network, address string) (net.Conn, error) {
	return net.DialTimeout(network, address, d.timeout)
}

// NewNetDialer returns the default Dialer, a plain TCP dial with the
// given connect timeout (0 means no timeout).
func NewNetDialer(timeout time.Duration) Dialer {
	return netDialer{timeout: timeout}
}

// Conn is the net.Conn-backed Transport. It sets a read deadline one
// millisecond ahead immediately before each Recv call, so a call that
// has no data waiting returns ErrWouldBlock after that short wait
// instead of parking the calling goroutine, which is what keeps the
// single-threaded core's read_step non-blocking (spec §5).
type Conn struct {
	dialer  Dialer
	conn    net.Conn
	lastErr string
	closed  bool
}

// NewConn builds a Conn using the given Dialer. Pass nil to use
// NewNetDialer(0).
func NewConn(dialer Dialer) *Conn {
	if dialer == nil {
		dialer = NewNetDialer(0)
	}
	return &Conn{dialer: dialer}
}

// Connect dials address ("host:port"). It is an error to call
// Connect on a Conn that is already connected.
func (c *Conn) Connect(address string) error {
	if c.conn != nil && !c.closed {
		return pkgerrors.New("transport: already connected")
	}
	conn, err := c.dialer.Dial("tcp", address)
	if err != nil {
		c.lastErr = err.Error()
		return pkgerrors.Wrap(err, "transport: connect")
	}
	c.conn = conn
	c.closed = false
	return nil
}

// Recv reads whatever is available into buf. If nothing arrives
// within one millisecond it returns (0, ErrWouldBlock); on EOF or any hard
// socket error it returns (0, err) with err suitable for wrapping
// into TransportError by the caller.
func (c *Conn) Recv(buf []byte) (int, error) {
	if c.conn == nil {
		return 0, pkgerrors.New("transport: not connected")
	}

	if err := c.conn.SetReadDeadline(time.Now().Add(time.Millisecond)); err != nil {
		return 0, pkgerrors.Wrap(err, "transport: set deadline")
	}

	n, err := c.conn.Read(buf)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return 0, ErrWouldBlock
		}
		c.lastErr = err.Error()
		if err == io.EOF {
			return n, io.EOF
		}
		return n, pkgerrors.Wrap(err, "transport: recv")
	}
	return n, nil
}

// Send writes data in its entirety, blocking until it is all queued
// to the kernel or an error occurs.
func (c *Conn) Send(data []byte) error {
	if c.conn == nil {
		return pkgerrors.New("transport: not connected")
	}
	if err := c.conn.SetWriteDeadline(time.Time{}); err != nil {
		return pkgerrors.Wrap(err, "transport: set deadline")
	}
	_, err := c.conn.Write(data)
	if err != nil {
		c.lastErr = err.Error()
		return pkgerrors.Wrap(err, "transport: send")
	}
	return nil
}

// Close closes the underlying socket. Safe to call more than once.
func (c *Conn) Close() error {
	if c.conn == nil || c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}

// ErrorText returns the text of the last transport-level error seen,
// or "" if there has been none.
func (c *Conn) ErrorText() string {
	return c.lastErr
}
