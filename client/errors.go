package client

import "fmt"

// NotConnectedError is returned by any operation issued before
// Connect or after the connection has been torn down.
type NotConnectedError struct{}

func (NotConnectedError) Error() string { return "client: not connected" }

// AlreadyConnectedError is returned by Connect when called on a
// client that is already connected.
type AlreadyConnectedError struct{}

func (AlreadyConnectedError) Error() string { return "client: already connected" }

// InvalidArgumentError is returned when a caller-supplied argument
// fails validation: an empty nick, a userhost query outside 1..5
// names, or (under ISUPPORT enforcement) a nick exceeding NICKLEN. A
// mode-list operation against a non-list mode is BadModeError instead.
type InvalidArgumentError struct {
	Reason string
}

func (e InvalidArgumentError) Error() string { return "client: invalid argument: " + e.Reason }

// TransportError wraps a socket-level failure surfaced by the
// underlying transport.Transport.
type TransportError struct {
	Err error
}

func (e TransportError) Error() string { return "client: transport error: " + e.Err.Error() }
func (e TransportError) Unwrap() error { return e.Err }

// ProtocolParseError is surfaced when a line off the wire does not
// match the message grammar. It does not stop the connection; it is
// logged and, if OnProtocolError has a subscriber, delivered there
// too (spec §7's "skip the malformed line with a log" policy).
type ProtocolParseError struct {
	Line string
	Err  error
}

func (e ProtocolParseError) Error() string {
	return fmt.Sprintf("client: protocol parse error on %q: %v", e.Line, e.Err)
}
func (e ProtocolParseError) Unwrap() error { return e.Err }

// IrcError is raised for a server-originated ERROR command or an
// unhandled 433 (nick-in-use with no subscriber able to supply a
// replacement). Either forces the client to the disconnected state.
type IrcError struct {
	Message string
}

func (e IrcError) Error() string { return "client: irc error: " + e.Message }

// NotTrackingError is returned by tracker queries issued while the
// tracker is Disabled or Starting.
type NotTrackingError struct{}

func (NotTrackingError) Error() string { return "track: not tracking" }

// BufferOverflowError is returned by ReadStep when the framer reports
// wire.ErrBufferOverflow; it carries no wrapped error.
type BufferOverflowError struct{}

func (BufferOverflowError) Error() string { return "client: read buffer overflow" }

// BadModeError is returned when a channel-mode helper is asked to
// apply a mode letter ISUPPORT does not recognize as a list mode.
type BadModeError struct {
	Mode byte
}

func (e BadModeError) Error() string {
	return fmt.Sprintf("client: %q is not a list mode", e.Mode)
}
