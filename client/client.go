/*
Package client implements the single-threaded IRC protocol core:
connection handshake, the read_step dispatch loop, outgoing
operations, and the typed event surface applications subscribe to.
Exactly one goroutine may call read_step and the outgoing operations
on a given Client (spec §5); the package takes no locks of its own.
*/
package client

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	log15 "gopkg.in/inconshreveable/log15.v2"

	"github.com/kestrelirc/ircore/ircmsg"
	"github.com/kestrelirc/ircore/transport"
	"github.com/kestrelirc/ircore/wire"
)

// Identity is the local user's registration details, sent as
// PASS/NICK/USER during the connect handshake.
type Identity struct {
	Nick     string
	AltNick  string
	Username string
	Realname string
	Password string
}

// Client owns one connection's transport, framing, capability table
// and event subscriptions. The zero value is not usable; build one
// with New.
type Client struct {
	transport transport.Transport
	framer    *wire.Framer
	caps      *ircmsg.Capabilities
	events    events

	identity  Identity
	self      string // current nick, updated on successful NICK/001
	connected bool
	welcomed  bool // true once 001 has been seen

	pendingNickTry string // last nick sent by Connect or SetNick

	Log log15.Logger
}

// New builds a Client around the given transport and identity, with a
// framer of wire.DefaultBufferSize. Log defaults to
// log15.Root(); assign Client.Log before Connect to redirect it.
func New(t transport.Transport, identity Identity) *Client {
	return &Client{
		transport: t,
		framer:    wire.NewFramer(wire.DefaultBufferSize),
		caps:      ircmsg.NewCapabilities(),
		identity:  identity,
		Log:       log15.Root(),
	}
}

// Capabilities returns the client's live ISUPPORT table. Callers
// (notably the tracker) must treat it as read-only.
func (c *Client) Capabilities() *ircmsg.Capabilities { return c.caps }

// Self returns the client's current nick, or "" if not yet
// registered.
func (c *Client) Self() string { return c.self }

// Identity returns the registration details Connect used, for
// consumers (the tracker) that need username/realname to seed
// themselves from onConnect.
func (c *Client) Identity() Identity { return c.identity }

// Connected reports whether Connect has succeeded and Quit/a fatal
// error has not since torn the connection down.
func (c *Client) Connected() bool { return c.connected }

// Connect dials address, then sends the registration handshake
// (PASS if set, NICK, USER). onConnect handlers do not fire yet; per
// spec §4.5 that waits for the 001 welcome numeric, observed from a
// later ReadStep.
func (c *Client) Connect(address string) error {
	if c.connected {
		return AlreadyConnectedError{}
	}
	if err := c.transport.Connect(address); err != nil {
		return TransportError{Err: errors.Wrap(err, "connect")}
	}
	c.connected = true
	c.welcomed = false
	c.caps = ircmsg.NewCapabilities()

	if c.identity.Password != "" {
		if err := c.writeCommand("PASS", c.identity.Password); err != nil {
			return err
		}
	}
	c.pendingNickTry = c.identity.Nick
	if err := c.writeCommand("NICK", c.identity.Nick); err != nil {
		return err
	}
	if err := c.writeCommand("USER", c.identity.Username, "0", "*", c.identity.Realname); err != nil {
		return err
	}
	return nil
}

// ReadStep performs one non-blocking receive, feeds whatever bytes
// arrived to the framer, and synchronously dispatches every complete
// message before returning. If the transport would block it returns
// nil having read nothing; on a peer close (zero-byte read that is
// not WouldBlock) it closes the socket and returns IrcError.
func (c *Client) ReadStep() error {
	if !c.connected {
		return NotConnectedError{}
	}

	buf := make([]byte, 4096)
	n, err := c.transport.Recv(buf)
	if err == transport.ErrWouldBlock {
		return nil
	}
	if err != nil {
		c.teardown()
		return TransportError{Err: errors.Wrap(err, "recv")}
	}
	if n == 0 {
		c.teardown()
		return IrcError{Message: "peer closed"}
	}

	var dispatchErr error
	feedErr := c.framer.Feed(buf[:n], func(line []byte) error {
		c.Log.Debug("recv", "line", string(line))
		msg, perr := wire.Parse(line)
		if perr != nil {
			pe := ProtocolParseError{Line: string(line), Err: perr}
			c.Log.Warn("skipping malformed line", "line", string(line), "err", perr)
			c.events.onProtocolError.each(func(fn ProtocolErrorHandler) { fn(pe) })
			return nil
		}
		if derr := c.dispatch(msg); derr != nil {
			dispatchErr = derr
			return derr
		}
		return nil
	})

	if feedErr == wire.ErrBufferOverflow {
		c.teardown()
		return BufferOverflowError{}
	}
	if dispatchErr != nil {
		return dispatchErr
	}
	return nil
}

func (c *Client) teardown() {
	if !c.connected {
		return
	}
	c.connected = false
	c.welcomed = false
	_ = c.transport.Close()
}

// WriteRaw sends a fully-formed line (without CRLF) to the server,
// clipped to 510 bytes, appending the wire terminator itself.
func (c *Client) WriteRaw(line string) error {
	if !c.connected {
		return NotConnectedError{}
	}
	if len(line)+2 > ircmsg.WireLineLimit {
		line = line[:ircmsg.WireLineLimit-2]
	}
	c.Log.Debug("send", "line", line)
	if err := c.transport.Send([]byte(line + "\r\n")); err != nil {
		return TransportError{Err: err}
	}
	return nil
}

func (c *Client) writeCommand(command string, args ...string) error {
	return c.WriteRaw(ircmsg.FormatShort(formatCommand(command, args...)))
}

// alwaysQuoteTrailing holds commands whose final argument is always a
// free-text field conventionally sent with a leading colon even when
// it happens to contain no spaces (mirrors irc/writer.go's
// fmtQuit/fmtPart/fmtJoin constant strings).
var alwaysQuoteTrailing = map[string]bool{
	cmdQuit: true,
	cmdPart: true,
	cmdKick: true,
}

func formatCommand(command string, args ...string) string {
	line := command
	for i, a := range args {
		last := i == len(args)-1
		if last && (len(a) == 0 || containsSpaceOrColon(a) || alwaysQuoteTrailing[command]) {
			line += " :" + a
		} else {
			line += " " + a
		}
	}
	return line
}

func containsSpaceOrColon(s string) bool {
	for _, r := range s {
		if r == ' ' {
			return true
		}
	}
	return len(s) > 0 && s[0] == ':'
}

// Send delivers a PRIVMSG to target, splitting body across as many
// lines as needed (spec §4.4).
func (c *Client) Send(target, body string) error {
	for _, line := range ircmsg.SplitBody(cmdPrivmsg, target, body) {
		if err := c.WriteRaw(line); err != nil {
			return err
		}
	}
	return nil
}

// Notice delivers a NOTICE to target, split the same way as Send.
func (c *Client) Notice(target, body string) error {
	for _, line := range ircmsg.SplitBody(cmdNotice, target, body) {
		if err := c.WriteRaw(line); err != nil {
			return err
		}
	}
	return nil
}

// CTCPQuery sends a CTCP request to target via PRIVMSG.
func (c *Client) CTCPQuery(target, tag, data string) error {
	return c.Send(target, ircmsg.PackCTCP(tag, data))
}

// CTCPReply sends a CTCP response to target via NOTICE, as RFC
// convention requires (replies must never be PRIVMSG, to avoid loops
// between two CTCP-replying clients).
func (c *Client) CTCPReply(target, tag, data string) error {
	return c.Notice(target, ircmsg.PackCTCP(tag, data))
}

// CTCPError is CTCPReply with an "ERRMSG" tag, the conventional CTCP
// error reply.
func (c *Client) CTCPError(target, message string) error {
	return c.CTCPReply(target, "ERRMSG", message)
}

// SetNick requests a nick change. An empty nick is InvalidArgument;
// under ISUPPORT enforcement a nick longer than NICKLEN is too. While
// disconnected it is immediate: it just updates the nick that Connect
// will register with, since there is no server to ask yet (spec
// §4.5).
func (c *Client) SetNick(nick string) error {
	if nick == "" {
		return InvalidArgumentError{Reason: "empty nick"}
	}
	if c.caps.EnforceMaxNickLength && len(nick) > c.caps.MaxNickLength {
		return InvalidArgumentError{Reason: "nick exceeds NICKLEN"}
	}
	if !c.connected {
		c.identity.Nick = nick
		return nil
	}
	c.pendingNickTry = nick
	return c.writeCommand(cmdNick, nick)
}

// Join joins one or more channels, optionally with matching keys.
func (c *Client) Join(channel string, key string) error {
	if !c.connected {
		return NotConnectedError{}
	}
	if key == "" {
		return c.WriteRaw(ircmsg.FormatShort("%s :%s", cmdJoin, channel))
	}
	return c.writeCommand(cmdJoin, channel, key)
}

// Part leaves channel with an optional reason.
func (c *Client) Part(channel, reason string) error {
	if !c.connected {
		return NotConnectedError{}
	}
	if reason == "" {
		return c.writeCommand(cmdPart, channel)
	}
	return c.writeCommand(cmdPart, channel, reason)
}

// Kick removes one or more nicks from channel with an optional shared
// reason, comma-joining multiple targets into one line (spec §4.5's
// kick(channel, user(s), optional comment)).
func (c *Client) Kick(channel string, nicks []string, reason string) error {
	if !c.connected {
		return NotConnectedError{}
	}
	if len(nicks) == 0 {
		return InvalidArgumentError{Reason: "kick requires at least one nick"}
	}
	targets := strings.Join(nicks, ",")
	if reason == "" {
		return c.writeCommand(cmdKick, channel, targets)
	}
	return c.writeCommand(cmdKick, channel, targets, reason)
}

// QueryUserhost issues a USERHOST query for 1..5 nicks.
func (c *Client) QueryUserhost(nicks ...string) error {
	if len(nicks) < 1 || len(nicks) > 5 {
		return InvalidArgumentError{Reason: "userhost accepts 1..5 nicks"}
	}
	return c.writeCommand("USERHOST", nicks...)
}

// QueryWhois issues a WHOIS query for nick.
func (c *Client) QueryWhois(nick string) error {
	if nick == "" {
		return InvalidArgumentError{Reason: "empty nick"}
	}
	return c.writeCommand("WHOIS", nick)
}

// QueryWho issues a WHO query for a channel or mask, used to backfill
// realname/host information (SPEC_FULL §12).
func (c *Client) QueryWho(mask string) error {
	if mask == "" {
		return InvalidArgumentError{Reason: "empty mask"}
	}
	return c.writeCommand("WHO", mask)
}

// QueryNames issues a NAMES query for one or more channels, comma-
// joined into a single line.
func (c *Client) QueryNames(channels ...string) error {
	if len(channels) == 0 {
		return InvalidArgumentError{Reason: "empty channel"}
	}
	return c.writeCommand("NAMES", strings.Join(channels, ","))
}

func (c *Client) modeIsList(mode byte) bool {
	return c.caps.IsListMode(mode)
}

// ModeArg is one (mode letter, argument) pair for AddChannelModes and
// RemoveChannelModes. Arg is empty for modes that take none when set
// this way (e.g. 'n', 't').
type ModeArg struct {
	Mode byte
	Arg  string
}

// AddChannelModes sets one or more channel modes, packing as many
// (mode, argument) pairs as the server's MessageModeLimit allows into
// each MODE line and issuing as many lines as it takes to cover the
// rest (spec §4.6).
func (c *Client) AddChannelModes(channel string, modes ...ModeArg) error {
	return c.sendChannelModes(channel, '+', modes)
}

// RemoveChannelModes is AddChannelModes with every mode's sign forced
// to '-'.
func (c *Client) RemoveChannelModes(channel string, modes ...ModeArg) error {
	return c.sendChannelModes(channel, '-', modes)
}

func (c *Client) sendChannelModes(channel string, sign byte, modes []ModeArg) error {
	if !c.connected {
		return NotConnectedError{}
	}
	if len(modes) == 0 {
		return nil
	}
	limit := c.caps.MessageModeLimit
	if limit <= 0 {
		limit = 1
	}
	for i := 0; i < len(modes); i += limit {
		end := i + limit
		if end > len(modes) {
			end = len(modes)
		}
		chunk := modes[i:end]

		modestring := string(sign)
		var args []string
		for _, m := range chunk {
			modestring += string(m.Mode)
			if m.Arg != "" {
				args = append(args, m.Arg)
			}
		}
		if err := c.writeCommand(cmdMode, append([]string{channel, modestring}, args...)...); err != nil {
			return err
		}
	}
	return nil
}

// AddToChannelList adds one or more addresses to a list mode (ban,
// exception, invite-exception), repeating the list-mode character
// once per address and chunking at MessageModeLimit the same way
// AddChannelModes does: "MODE #c +bb nick!*@* other!*@*". mode must be
// one of ISUPPORT's CHANMODES list-mode letters (spec §4.6).
func (c *Client) AddToChannelList(channel string, mode byte, addresses ...string) error {
	if !c.modeIsList(mode) {
		return BadModeError{Mode: mode}
	}
	return c.AddChannelModes(channel, listModeArgs(mode, addresses)...)
}

// RemoveFromChannelList is AddToChannelList's inverse.
func (c *Client) RemoveFromChannelList(channel string, mode byte, addresses ...string) error {
	if !c.modeIsList(mode) {
		return BadModeError{Mode: mode}
	}
	return c.RemoveChannelModes(channel, listModeArgs(mode, addresses)...)
}

func listModeArgs(mode byte, addresses []string) []ModeArg {
	pairs := make([]ModeArg, len(addresses))
	for i, a := range addresses {
		pairs[i] = ModeArg{Mode: mode, Arg: a}
	}
	return pairs
}

// AddUserModes sets nick's usermodes, e.g. "+i".
func (c *Client) AddUserModes(nick, modestring string) error {
	if !c.connected {
		return NotConnectedError{}
	}
	return c.writeCommand(cmdMode, nick, modestring)
}

// RemoveUserModes is AddUserModes with the sign forced to '-'.
func (c *Client) RemoveUserModes(nick, modestring string) error {
	return c.AddUserModes(nick, negate(modestring))
}

func negate(modestring string) string {
	if len(modestring) == 0 {
		return modestring
	}
	return "-" + modestring[1:]
}

// Quit sends QUIT and closes the socket immediately. Any ERROR the
// server sends back is not waited for (spec §5's cancellation model).
func (c *Client) Quit(message string) error {
	if !c.connected {
		return NotConnectedError{}
	}
	err := c.writeCommand(cmdQuit, message)
	c.teardown()
	return err
}

// IdlePing sends a PING carrying the client's current nick as its
// token if at least interval has elapsed since lastActivity, the
// caller's own record of the last traffic. It does not spawn a goroutine or timer: the owning thread
// is expected to call it periodically from its own event loop
// alongside ReadStep, preserving the single-threaded model (SPEC_FULL
// §12; adapted from inet.IrcClient's keepalive pinger, which ran on
// the pump goroutine instead).
func (c *Client) IdlePing(lastActivity time.Time, interval time.Duration) error {
	if !c.connected {
		return NotConnectedError{}
	}
	if time.Since(lastActivity) < interval {
		return nil
	}
	return c.writeCommand(cmdPing, c.self)
}
