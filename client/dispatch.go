package client

import (
	"strconv"
	"strings"
	"time"

	"github.com/kestrelirc/ircore/ircmsg"
)

// dispatch implements the table in spec §4.5. It is called once per
// complete line from ReadStep, synchronously, on the caller's
// goroutine.
func (c *Client) dispatch(msg ircmsg.Message) error {
	args := msg.Args()
	user := ircmsg.ParseUser(msg.Prefix)

	switch msg.Command {
	case cmdPing:
		return c.WriteRaw(ircmsg.FormatShort("PONG :%s", arg(args, 0)))

	case rplWelcome:
		c.self = arg(args, 0)
		c.welcomed = true
		c.events.onConnect.each(func(fn ConnectHandler) { fn() })
		return nil

	case rplYourHost, rplCreated, rplMyInfo,
		rplLuserConns, rplLuserClient, rplLuserOp, rplLuserUnknown, rplLuserChannels, rplLuserMe,
		rplLocalUsers, rplGlobalUsers:
		// 004 (rplMyInfo) carries five space-separated fields with no
		// trailing colon (server, version, usermodes, chanmodes,
		// chanmodes-with-param); joining them is exactly the
		// "composite text" spec §4.5 asks for. Every other numeric in
		// this group already carries one human-readable trailing arg,
		// so the same join degenerates to just that text.
		text := strings.Join(dropFirst(args), " ")
		c.events.onServerInfo.each(func(fn ServerInfoHandler) { fn(msg.Command, text) })
		return nil

	case rplISupport:
		c.caps.ParseISupport(dropTrailingText(args))
		return nil

	case rplUserhost:
		var users []string
		if len(args) > 0 {
			users = strings.Fields(args[len(args)-1])
		}
		var replies []string
		for i, tok := range users {
			if i >= 5 {
				break
			}
			replies = append(replies, tok)
		}
		c.events.onUserhostReply.each(func(fn UserhostReplyHandler) { fn(replies) })
		return nil

	// The remaining numerics all carry the client's own nick as
	// args[0] (the RFC's mandatory numeric target) before the actual
	// payload, so p skips it uniformly.
	case rplWhoisUser:
		p := dropFirst(args)
		nick, uname, host, real := arg(p, 0), arg(p, 1), arg(p, 2), arg(p, len(p)-1)
		c.events.onWhoisReply.each(func(fn WhoisReplyHandler) { fn(nick, uname, host, real) })
		return nil

	case rplWhoisServer:
		p := dropFirst(args)
		nick, server, info := arg(p, 0), arg(p, 1), arg(p, len(p)-1)
		c.events.onWhoisServerReply.each(func(fn WhoisServerReplyHandler) { fn(nick, server, info) })
		return nil

	case rplWhoisOperator:
		nick := arg(dropFirst(args), 0)
		c.events.onWhoisOperatorReply.each(func(fn WhoisOperatorReplyHandler) { fn(nick) })
		return nil

	case rplWhoisIdle:
		p := dropFirst(args)
		nick := arg(p, 0)
		idleSeconds, _ := strconv.Atoi(arg(p, 1))
		var signon time.Time
		if len(p) >= 3 {
			if secs, err := strconv.ParseInt(arg(p, 2), 10, 64); err == nil {
				signon = time.Unix(secs, 0).UTC()
			}
		}
		c.events.onWhoisIdleReply.each(func(fn WhoisIdleReplyHandler) { fn(nick, idleSeconds, signon) })
		return nil

	case rplEndOfWhois:
		nick := arg(dropFirst(args), 0)
		c.events.onWhoisEnd.each(func(fn WhoisEndHandler) { fn(nick) })
		return nil

	case rplWhoisChannels:
		p := dropFirst(args)
		nick := arg(p, 0)
		channels := strings.Fields(arg(p, len(p)-1))
		c.events.onWhoisChannelsReply.each(func(fn WhoisChannelsReplyHandler) { fn(nick, channels) })
		return nil

	case rplWhoisAccount, "307":
		p := dropFirst(args)
		nick, text := arg(p, 0), arg(p, len(p)-1)
		account := text
		if msg.Command == rplWhoisAccount && len(p) >= 2 {
			account = arg(p, 1)
		}
		c.events.onWhoisAccountReply.each(func(fn WhoisAccountReplyHandler) { fn(nick, account) })
		return nil

	case rplAway:
		p := dropFirst(args)
		nick, message := arg(p, 0), arg(p, len(p)-1)
		c.events.onWhoisAwayReply.each(func(fn WhoisAwayReplyHandler) { fn(nick, message) })
		return nil

	case rplWhoisHelpOp:
		nick := arg(dropFirst(args), 0)
		c.events.onWhoisHelpOpReply.each(func(fn WhoisHelpOpReplyHandler) { fn(nick) })
		return nil

	case rplWhoisSpecial:
		p := dropFirst(args)
		nick, message := arg(p, 0), arg(p, len(p)-1)
		c.events.onWhoisSpecialReply.each(func(fn WhoisSpecialReplyHandler) { fn(nick, message) })
		return nil

	case rplWhoisActually:
		p := dropFirst(args)
		nick, info := arg(p, 0), arg(p, len(p)-1)
		c.events.onWhoisActuallyReply.each(func(fn WhoisActuallyReplyHandler) { fn(nick, info) })
		return nil

	case rplWhoisHost:
		p := dropFirst(args)
		nick, info := arg(p, 0), arg(p, len(p)-1)
		c.events.onWhoisHostReply.each(func(fn WhoisHostReplyHandler) { fn(nick, info) })
		return nil

	case rplWhoisModes:
		p := dropFirst(args)
		nick, modes := arg(p, 0), arg(p, len(p)-1)
		c.events.onWhoisModesReply.each(func(fn WhoisModesReplyHandler) { fn(nick, modes) })
		return nil

	case rplWhoisSecure:
		nick := arg(dropFirst(args), 0)
		c.events.onWhoisSecureReply.each(func(fn WhoisSecureReplyHandler) { fn(nick) })
		return nil

	case rplTopic:
		p := dropFirst(args)
		channel, topic := arg(p, 0), arg(p, len(p)-1)
		c.events.onTopic.each(func(fn TopicHandler) { fn(channel, topic) })
		return nil

	case rplTopicWhoTime:
		p := dropFirst(args)
		channel, setBy := arg(p, 0), arg(p, 1)
		var setAt time.Time
		if secs, err := strconv.ParseInt(arg(p, 2), 10, 64); err == nil {
			setAt = time.Unix(secs, 0).UTC()
		}
		c.events.onTopicInfo.each(func(fn TopicInfoHandler) { fn(channel, setBy, setAt) })
		return nil

	case rplNameReply:
		channel := arg(args, len(args)-2)
		names := strings.Fields(arg(args, len(args)-1))
		c.events.onNameList.each(func(fn NameListHandler) { fn(channel, names) })
		return nil

	case rplEndOfNames:
		channel := arg(dropFirst(args), 0)
		c.events.onNameListEnd.each(func(fn NameListEndHandler) { fn(channel) })
		return nil

	case rplMotd:
		c.events.onMotd.each(func(fn MotdHandler) { fn(arg(args, len(args)-1)) })
		return nil
	case rplMotdStart:
		c.events.onMotdStart.each(func(fn MotdStartHandler) { fn(arg(args, len(args)-1)) })
		return nil
	case rplEndOfMotd:
		c.events.onMotdEnd.each(func(fn MotdEndHandler) { fn() })
		return nil
	case errNoMotd:
		c.events.onNoMotd.each(func(fn NoMotdHandler) { fn() })
		return nil

	case errNicknameInUse:
		return c.handleNickInUse(arg(dropFirst(args), 0))

	case rplWhoReply:
		// "<self> <chan> <user> <host> <server> <nick> <flags> :<hops> <real>"
		p := dropFirst(args)
		channel, uname, host, server, nick, flags := arg(p, 0), arg(p, 1), arg(p, 2), arg(p, 3), arg(p, 4), arg(p, 5)
		trailing := arg(p, 6)
		real := trailing
		if i := strings.IndexByte(trailing, ' '); i >= 0 {
			real = trailing[i+1:]
		}
		c.events.onWhoReply.each(func(fn WhoReplyHandler) { fn(channel, uname, host, server, nick, flags, real) })
		return nil

	case rplEndOfWho:
		mask := arg(dropFirst(args), 0)
		c.events.onWhoEnd.each(func(fn WhoEndHandler) { fn(mask) })
		return nil

	case rplBanList:
		p := dropFirst(args)
		channel, mask, setBy := arg(p, 0), arg(p, 1), arg(p, 2)
		var setAt time.Time
		if secs, err := strconv.ParseInt(arg(p, 3), 10, 64); err == nil {
			setAt = time.Unix(secs, 0).UTC()
		}
		c.events.onBanList.each(func(fn BanListHandler) { fn(channel, mask, setBy, setAt) })
		return nil

	case rplEndOfBanList:
		channel := arg(dropFirst(args), 0)
		c.events.onEndOfBanList.each(func(fn EndOfBanListHandler) { fn(channel) })
		return nil

	case cmdPrivmsg:
		return c.dispatchMessageOrCTCP(user, args, true)
	case cmdNotice:
		return c.dispatchMessageOrCTCP(user, args, false)

	case cmdNick:
		newNick := arg(args, 0)
		c.events.onNickChange.each(func(fn NickChangeHandler) { fn(user.NickName, newNick) })
		if user.NickName == c.self {
			c.self = newNick
		}
		return nil

	case cmdJoin:
		channel := arg(args, 0)
		if user.NickName == c.self {
			c.events.onSuccessfulJoin.each(func(fn SuccessfulJoinHandler) { fn(channel) })
		} else {
			c.events.onJoin.each(func(fn JoinHandler) { fn(channel, user.NickName, user.UserName, user.HostName) })
		}
		return nil

	case cmdPart:
		channel := arg(args, 0)
		c.events.onPart.each(func(fn PartHandler) { fn(channel, user.NickName, arg(args, 1)) })
		return nil

	case cmdKick:
		channel, kicked := arg(args, 0), arg(args, 1)
		c.events.onKick.each(func(fn KickHandler) { fn(channel, kicked, user.NickName, arg(args, 2)) })
		return nil

	case cmdQuit:
		c.events.onQuit.each(func(fn QuitHandler) { fn(user.NickName, arg(args, 0)) })
		return nil

	case cmdMode:
		target := arg(args, 0)
		modestring := arg(args, 1)
		rest := args[minInt(2, len(args)):]
		if strings.HasPrefix(target, "#") {
			c.events.onModeChange.each(func(fn ModeChangeHandler) {
				fn(target, user.NickName, modestring, rest)
			})
		} else {
			c.events.onUserModeChange.each(func(fn UserModeChangeHandler) {
				fn(user.NickName, modestring)
			})
		}
		return nil

	case cmdInvite:
		c.events.onInvite.each(func(fn InviteHandler) { fn(user.NickName, arg(args, 1)) })
		return nil

	case cmdError:
		c.teardown()
		return IrcError{Message: arg(args, 0)}

	default:
		return nil
	}
}

// dispatchMessageOrCTCP implements the shared PRIVMSG/NOTICE branch:
// CTCP framing takes priority over the plain message event when a
// CTCP query/reply handler is actually subscribed.
func (c *Client) dispatchMessageOrCTCP(user ircmsg.IrcUser, args []string, isQuery bool) error {
	target := arg(args, 0)
	body := arg(args, 1)

	if ircmsg.IsCTCP(body) {
		tag, data, ok := ircmsg.ExtractCTCP(body)
		if ok {
			if isQuery && len(c.events.onCtcpQuery.entries) > 0 {
				c.events.onCtcpQuery.each(func(fn CTCPQueryHandler) { fn(user.Fullhost(), target, tag, data) })
				return nil
			}
			if !isQuery && len(c.events.onCtcpReply.entries) > 0 {
				c.events.onCtcpReply.each(func(fn CTCPReplyHandler) { fn(user.Fullhost(), target, tag, data) })
				return nil
			}
		}
	}

	if isQuery {
		c.events.onMessage.each(func(fn MessageHandler) { fn(user.Fullhost(), target, body) })
	} else {
		c.events.onNotice.each(func(fn NoticeHandler) { fn(user.Fullhost(), target, body) })
	}
	return nil
}

// handleNickInUse implements the 433 fold: subscribers run in order
// until one supplies a replacement nick; if none does, the connection
// is torn down and an IrcError is raised (spec scenario F).
func (c *Client) handleNickInUse(triedNick string) error {
	for _, e := range c.events.onNickInUse.entries {
		if replacement, ok := e.fn(triedNick); ok && replacement != "" {
			return c.SetNick(replacement)
		}
	}
	c.teardown()
	return IrcError{Message: "433 Nick already in use was unhandled"}
}

func arg(args []string, i int) string {
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

func dropFirst(args []string) []string {
	if len(args) == 0 {
		return args
	}
	return args[1:]
}

// dropTrailingText drops the leading nick and, when the last arg
// contains a space, that trailing text too. ISUPPORT's trailing
// ":are supported by this server" arg is harmless to feed to
// ParseISupport since it never matches NAME[=VALUE]/-NAME shape, but
// stripping it keeps ParseISupport's token loop from doing pointless
// work on every 005 line.
func dropTrailingText(args []string) []string {
	if len(args) == 0 {
		return args
	}
	last := args[len(args)-1]
	if strings.Contains(last, " ") {
		return args[1 : len(args)-1]
	}
	return args[1:]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
