package client

import "time"

// HandlerID identifies a subscription returned by one of the On*
// methods, to be passed back to the matching Off* method. Ids are
// assigned in increasing order per event and never reused, which
// keeps Unsubscribe unambiguous even after other handlers have come
// and gone. The source (irc.Dispatcher.Register) hands out
// rand.Int()-based ids into an unordered map; that was sufficient for
// its single untyped event table, but spec §5 requires handlers on a
// single event to run in subscription order, so ordering is the
// deciding factor here rather than uniqueness alone.
type HandlerID int

type handlerEntry[T any] struct {
	id HandlerID
	fn T
}

// handlerList holds one event's subscribers in registration order.
// It is the generic runtime form of the source's "compile-time
// handler tuples" (spec §9): a fixed slot per event, iterated in
// order, promoted here to a type parameter per callback signature so
// each event stays type-safe instead of routing through
// interface{}.
type handlerList[T any] struct {
	entries []handlerEntry[T]
	nextID  HandlerID
}

func (h *handlerList[T]) subscribe(fn T) HandlerID {
	id := h.nextID
	h.nextID++
	h.entries = append(h.entries, handlerEntry[T]{id: id, fn: fn})
	return id
}

func (h *handlerList[T]) unsubscribe(id HandlerID) bool {
	for i, e := range h.entries {
		if e.id == id {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (h *handlerList[T]) each(f func(T)) {
	for _, e := range h.entries {
		f(e.fn)
	}
}

// Callback signatures for the events listed in spec §6. Naming
// mirrors the event name so the dispatch table and the On*/Off*
// methods in handlers.go read as a pair.
type (
	ConnectHandler            func()
	MessageHandler            func(sender, target, text string)
	NoticeHandler             func(sender, target, text string)
	NickChangeHandler         func(oldNick, newNick string)
	SuccessfulJoinHandler     func(channel string)
	JoinHandler               func(channel, nick, username, hostname string)
	PartHandler               func(channel, nick, reason string)
	QuitHandler               func(nick, reason string)
	KickHandler               func(channel, kicked, kicker, reason string)
	NameListHandler           func(channel string, names []string)
	NameListEndHandler        func(channel string)
	CTCPQueryHandler          func(sender, target, tag, data string)
	CTCPReplyHandler          func(sender, target, tag, data string)
	ModeChangeHandler         func(channel, setter, modestring string, args []string)
	UserModeChangeHandler     func(nick, modestring string)
	NickInUseHandler          func(triedNick string) (replacement string, ok bool)
	TopicHandler              func(channel, topic string)
	TopicInfoHandler          func(channel, setBy string, setAt time.Time)
	UserhostReplyHandler      func(replies []string)
	InviteHandler             func(inviter, channel string)
	WhoisReplyHandler         func(nick, user, host, realname string)
	WhoisServerReplyHandler   func(nick, server, info string)
	WhoisOperatorReplyHandler func(nick string)
	WhoisIdleReplyHandler     func(nick string, idleSeconds int, signon time.Time)
	WhoisChannelsReplyHandler func(nick string, channels []string)
	WhoisAccountReplyHandler  func(nick, account string)
	WhoisEndHandler           func(nick string)
	WhoisAwayReplyHandler     func(nick, message string)
	WhoisHelpOpReplyHandler   func(nick string)
	WhoisSpecialReplyHandler  func(nick, message string)
	WhoisActuallyReplyHandler func(nick, hostinfo string)
	WhoisHostReplyHandler     func(nick, hostinfo string)
	WhoisModesReplyHandler    func(nick, modes string)
	WhoisSecureReplyHandler   func(nick string)
	MotdHandler               func(line string)
	MotdStartHandler          func(line string)
	MotdEndHandler            func()
	NoMotdHandler             func()
	ServerInfoHandler         func(code, text string)
	ProtocolErrorHandler      func(err error)
	WhoReplyHandler           func(channel, username, host, server, nick, flags, realname string)
	WhoEndHandler             func(mask string)
	BanListHandler            func(channel, mask, setBy string, setAt time.Time)
	EndOfBanListHandler       func(channel string)
)

// events groups every handlerList the Client owns. New leaves it at
// its zero value, so every list starts out empty.
type events struct {
	onConnect            handlerList[ConnectHandler]
	onMessage            handlerList[MessageHandler]
	onNotice             handlerList[NoticeHandler]
	onNickChange         handlerList[NickChangeHandler]
	onSuccessfulJoin     handlerList[SuccessfulJoinHandler]
	onJoin               handlerList[JoinHandler]
	onPart               handlerList[PartHandler]
	onQuit               handlerList[QuitHandler]
	onKick               handlerList[KickHandler]
	onNameList           handlerList[NameListHandler]
	onNameListEnd        handlerList[NameListEndHandler]
	onCtcpQuery          handlerList[CTCPQueryHandler]
	onCtcpReply          handlerList[CTCPReplyHandler]
	onModeChange         handlerList[ModeChangeHandler]
	onUserModeChange     handlerList[UserModeChangeHandler]
	onNickInUse          handlerList[NickInUseHandler]
	onTopic              handlerList[TopicHandler]
	onTopicInfo          handlerList[TopicInfoHandler]
	onUserhostReply      handlerList[UserhostReplyHandler]
	onInvite             handlerList[InviteHandler]
	onWhoisReply         handlerList[WhoisReplyHandler]
	onWhoisServerReply   handlerList[WhoisServerReplyHandler]
	onWhoisOperatorReply handlerList[WhoisOperatorReplyHandler]
	onWhoisIdleReply     handlerList[WhoisIdleReplyHandler]
	onWhoisChannelsReply handlerList[WhoisChannelsReplyHandler]
	onWhoisAccountReply  handlerList[WhoisAccountReplyHandler]
	onWhoisEnd           handlerList[WhoisEndHandler]
	onWhoisAwayReply     handlerList[WhoisAwayReplyHandler]
	onWhoisHelpOpReply   handlerList[WhoisHelpOpReplyHandler]
	onWhoisSpecialReply  handlerList[WhoisSpecialReplyHandler]
	onWhoisActuallyReply handlerList[WhoisActuallyReplyHandler]
	onWhoisHostReply     handlerList[WhoisHostReplyHandler]
	onWhoisModesReply    handlerList[WhoisModesReplyHandler]
	onWhoisSecureReply   handlerList[WhoisSecureReplyHandler]
	onMotd               handlerList[MotdHandler]
	onMotdStart          handlerList[MotdStartHandler]
	onMotdEnd            handlerList[MotdEndHandler]
	onNoMotd             handlerList[NoMotdHandler]
	onServerInfo         handlerList[ServerInfoHandler]
	onProtocolError      handlerList[ProtocolErrorHandler]
	onWhoReply           handlerList[WhoReplyHandler]
	onWhoEnd             handlerList[WhoEndHandler]
	onBanList            handlerList[BanListHandler]
	onEndOfBanList       handlerList[EndOfBanListHandler]
}
