package client

// On*/Off* pairs are the runtime enumeration of the subscription
// sites spec §9 describes: one fixed slot per event, subscribe
// returns a HandlerID, Off takes it back. The tracker is expected to
// subscribe first (spec §5's documented recipe) so its state mutation
// lands before application handlers observe the same event.

func (c *Client) OnConnect(fn ConnectHandler) HandlerID   { return c.events.onConnect.subscribe(fn) }
func (c *Client) OffConnect(id HandlerID) bool             { return c.events.onConnect.unsubscribe(id) }

func (c *Client) OnMessage(fn MessageHandler) HandlerID { return c.events.onMessage.subscribe(fn) }
func (c *Client) OffMessage(id HandlerID) bool          { return c.events.onMessage.unsubscribe(id) }

func (c *Client) OnNotice(fn NoticeHandler) HandlerID { return c.events.onNotice.subscribe(fn) }
func (c *Client) OffNotice(id HandlerID) bool         { return c.events.onNotice.unsubscribe(id) }

func (c *Client) OnNickChange(fn NickChangeHandler) HandlerID {
	return c.events.onNickChange.subscribe(fn)
}
func (c *Client) OffNickChange(id HandlerID) bool { return c.events.onNickChange.unsubscribe(id) }

func (c *Client) OnSuccessfulJoin(fn SuccessfulJoinHandler) HandlerID {
	return c.events.onSuccessfulJoin.subscribe(fn)
}
func (c *Client) OffSuccessfulJoin(id HandlerID) bool {
	return c.events.onSuccessfulJoin.unsubscribe(id)
}

func (c *Client) OnJoin(fn JoinHandler) HandlerID { return c.events.onJoin.subscribe(fn) }
func (c *Client) OffJoin(id HandlerID) bool       { return c.events.onJoin.unsubscribe(id) }

func (c *Client) OnPart(fn PartHandler) HandlerID { return c.events.onPart.subscribe(fn) }
func (c *Client) OffPart(id HandlerID) bool       { return c.events.onPart.unsubscribe(id) }

func (c *Client) OnQuit(fn QuitHandler) HandlerID { return c.events.onQuit.subscribe(fn) }
func (c *Client) OffQuit(id HandlerID) bool       { return c.events.onQuit.unsubscribe(id) }

func (c *Client) OnKick(fn KickHandler) HandlerID { return c.events.onKick.subscribe(fn) }
func (c *Client) OffKick(id HandlerID) bool       { return c.events.onKick.unsubscribe(id) }

func (c *Client) OnNameList(fn NameListHandler) HandlerID {
	return c.events.onNameList.subscribe(fn)
}
func (c *Client) OffNameList(id HandlerID) bool { return c.events.onNameList.unsubscribe(id) }

func (c *Client) OnNameListEnd(fn NameListEndHandler) HandlerID {
	return c.events.onNameListEnd.subscribe(fn)
}
func (c *Client) OffNameListEnd(id HandlerID) bool { return c.events.onNameListEnd.unsubscribe(id) }

func (c *Client) OnCtcpQuery(fn CTCPQueryHandler) HandlerID {
	return c.events.onCtcpQuery.subscribe(fn)
}
func (c *Client) OffCtcpQuery(id HandlerID) bool { return c.events.onCtcpQuery.unsubscribe(id) }

func (c *Client) OnCtcpReply(fn CTCPReplyHandler) HandlerID {
	return c.events.onCtcpReply.subscribe(fn)
}
func (c *Client) OffCtcpReply(id HandlerID) bool { return c.events.onCtcpReply.unsubscribe(id) }

func (c *Client) OnModeChange(fn ModeChangeHandler) HandlerID {
	return c.events.onModeChange.subscribe(fn)
}
func (c *Client) OffModeChange(id HandlerID) bool { return c.events.onModeChange.unsubscribe(id) }

func (c *Client) OnUserModeChange(fn UserModeChangeHandler) HandlerID {
	return c.events.onUserModeChange.subscribe(fn)
}
func (c *Client) OffUserModeChange(id HandlerID) bool {
	return c.events.onUserModeChange.unsubscribe(id)
}

// OnNickInUse subscribes a fold-style handler for 433. Handlers run
// in subscription order until one returns ok=true; its replacement
// nick is retried. If none does, an IrcError is raised and the socket
// closes (spec scenario F).
func (c *Client) OnNickInUse(fn NickInUseHandler) HandlerID {
	return c.events.onNickInUse.subscribe(fn)
}
func (c *Client) OffNickInUse(id HandlerID) bool { return c.events.onNickInUse.unsubscribe(id) }

func (c *Client) OnTopic(fn TopicHandler) HandlerID { return c.events.onTopic.subscribe(fn) }
func (c *Client) OffTopic(id HandlerID) bool        { return c.events.onTopic.unsubscribe(id) }

func (c *Client) OnTopicInfo(fn TopicInfoHandler) HandlerID {
	return c.events.onTopicInfo.subscribe(fn)
}
func (c *Client) OffTopicInfo(id HandlerID) bool { return c.events.onTopicInfo.unsubscribe(id) }

func (c *Client) OnUserhostReply(fn UserhostReplyHandler) HandlerID {
	return c.events.onUserhostReply.subscribe(fn)
}
func (c *Client) OffUserhostReply(id HandlerID) bool {
	return c.events.onUserhostReply.unsubscribe(id)
}

func (c *Client) OnInvite(fn InviteHandler) HandlerID { return c.events.onInvite.subscribe(fn) }
func (c *Client) OffInvite(id HandlerID) bool         { return c.events.onInvite.unsubscribe(id) }

func (c *Client) OnWhoisReply(fn WhoisReplyHandler) HandlerID {
	return c.events.onWhoisReply.subscribe(fn)
}
func (c *Client) OffWhoisReply(id HandlerID) bool { return c.events.onWhoisReply.unsubscribe(id) }

func (c *Client) OnWhoisServerReply(fn WhoisServerReplyHandler) HandlerID {
	return c.events.onWhoisServerReply.subscribe(fn)
}
func (c *Client) OffWhoisServerReply(id HandlerID) bool {
	return c.events.onWhoisServerReply.unsubscribe(id)
}

func (c *Client) OnWhoisOperatorReply(fn WhoisOperatorReplyHandler) HandlerID {
	return c.events.onWhoisOperatorReply.subscribe(fn)
}
func (c *Client) OffWhoisOperatorReply(id HandlerID) bool {
	return c.events.onWhoisOperatorReply.unsubscribe(id)
}

func (c *Client) OnWhoisIdleReply(fn WhoisIdleReplyHandler) HandlerID {
	return c.events.onWhoisIdleReply.subscribe(fn)
}
func (c *Client) OffWhoisIdleReply(id HandlerID) bool {
	return c.events.onWhoisIdleReply.unsubscribe(id)
}

func (c *Client) OnWhoisChannelsReply(fn WhoisChannelsReplyHandler) HandlerID {
	return c.events.onWhoisChannelsReply.subscribe(fn)
}
func (c *Client) OffWhoisChannelsReply(id HandlerID) bool {
	return c.events.onWhoisChannelsReply.unsubscribe(id)
}

func (c *Client) OnWhoisAccountReply(fn WhoisAccountReplyHandler) HandlerID {
	return c.events.onWhoisAccountReply.subscribe(fn)
}
func (c *Client) OffWhoisAccountReply(id HandlerID) bool {
	return c.events.onWhoisAccountReply.unsubscribe(id)
}

func (c *Client) OnWhoisEnd(fn WhoisEndHandler) HandlerID {
	return c.events.onWhoisEnd.subscribe(fn)
}
func (c *Client) OffWhoisEnd(id HandlerID) bool { return c.events.onWhoisEnd.unsubscribe(id) }

func (c *Client) OnWhoisAwayReply(fn WhoisAwayReplyHandler) HandlerID {
	return c.events.onWhoisAwayReply.subscribe(fn)
}
func (c *Client) OffWhoisAwayReply(id HandlerID) bool {
	return c.events.onWhoisAwayReply.unsubscribe(id)
}

func (c *Client) OnWhoisHelpOpReply(fn WhoisHelpOpReplyHandler) HandlerID {
	return c.events.onWhoisHelpOpReply.subscribe(fn)
}
func (c *Client) OffWhoisHelpOpReply(id HandlerID) bool {
	return c.events.onWhoisHelpOpReply.unsubscribe(id)
}

func (c *Client) OnWhoisSpecialReply(fn WhoisSpecialReplyHandler) HandlerID {
	return c.events.onWhoisSpecialReply.subscribe(fn)
}
func (c *Client) OffWhoisSpecialReply(id HandlerID) bool {
	return c.events.onWhoisSpecialReply.unsubscribe(id)
}

func (c *Client) OnWhoisActuallyReply(fn WhoisActuallyReplyHandler) HandlerID {
	return c.events.onWhoisActuallyReply.subscribe(fn)
}
func (c *Client) OffWhoisActuallyReply(id HandlerID) bool {
	return c.events.onWhoisActuallyReply.unsubscribe(id)
}

func (c *Client) OnWhoisHostReply(fn WhoisHostReplyHandler) HandlerID {
	return c.events.onWhoisHostReply.subscribe(fn)
}
func (c *Client) OffWhoisHostReply(id HandlerID) bool {
	return c.events.onWhoisHostReply.unsubscribe(id)
}

func (c *Client) OnWhoisModesReply(fn WhoisModesReplyHandler) HandlerID {
	return c.events.onWhoisModesReply.subscribe(fn)
}
func (c *Client) OffWhoisModesReply(id HandlerID) bool {
	return c.events.onWhoisModesReply.unsubscribe(id)
}

func (c *Client) OnWhoisSecureReply(fn WhoisSecureReplyHandler) HandlerID {
	return c.events.onWhoisSecureReply.subscribe(fn)
}
func (c *Client) OffWhoisSecureReply(id HandlerID) bool {
	return c.events.onWhoisSecureReply.unsubscribe(id)
}

func (c *Client) OnMotd(fn MotdHandler) HandlerID { return c.events.onMotd.subscribe(fn) }
func (c *Client) OffMotd(id HandlerID) bool       { return c.events.onMotd.unsubscribe(id) }

func (c *Client) OnMotdStart(fn MotdStartHandler) HandlerID {
	return c.events.onMotdStart.subscribe(fn)
}
func (c *Client) OffMotdStart(id HandlerID) bool { return c.events.onMotdStart.unsubscribe(id) }

func (c *Client) OnMotdEnd(fn MotdEndHandler) HandlerID { return c.events.onMotdEnd.subscribe(fn) }
func (c *Client) OffMotdEnd(id HandlerID) bool          { return c.events.onMotdEnd.unsubscribe(id) }

func (c *Client) OnNoMotd(fn NoMotdHandler) HandlerID { return c.events.onNoMotd.subscribe(fn) }
func (c *Client) OffNoMotd(id HandlerID) bool         { return c.events.onNoMotd.unsubscribe(id) }

func (c *Client) OnServerInfo(fn ServerInfoHandler) HandlerID {
	return c.events.onServerInfo.subscribe(fn)
}
func (c *Client) OffServerInfo(id HandlerID) bool { return c.events.onServerInfo.unsubscribe(id) }

// OnProtocolError subscribes to malformed lines the framer/parser
// skipped (spec §7's non-fatal parse-failure policy). Not part of the
// spec's named callback surface; added so a caller that wants the
// stricter "fail the step" behavior can escalate itself.
func (c *Client) OnProtocolError(fn ProtocolErrorHandler) HandlerID {
	return c.events.onProtocolError.subscribe(fn)
}
func (c *Client) OffProtocolError(id HandlerID) bool {
	return c.events.onProtocolError.unsubscribe(id)
}

// OnWhoReply/OnWhoEnd/OnBanList/OnEndOfBanList back the SUPPLEMENTED
// FEATURES WHO-backfill and ban-list snapshotting the tracker
// implements; not part of spec's original callback list.
func (c *Client) OnWhoReply(fn WhoReplyHandler) HandlerID { return c.events.onWhoReply.subscribe(fn) }
func (c *Client) OffWhoReply(id HandlerID) bool           { return c.events.onWhoReply.unsubscribe(id) }

func (c *Client) OnWhoEnd(fn WhoEndHandler) HandlerID { return c.events.onWhoEnd.subscribe(fn) }
func (c *Client) OffWhoEnd(id HandlerID) bool         { return c.events.onWhoEnd.unsubscribe(id) }

func (c *Client) OnBanList(fn BanListHandler) HandlerID { return c.events.onBanList.subscribe(fn) }
func (c *Client) OffBanList(id HandlerID) bool          { return c.events.onBanList.unsubscribe(id) }

func (c *Client) OnEndOfBanList(fn EndOfBanListHandler) HandlerID {
	return c.events.onEndOfBanList.subscribe(fn)
}
func (c *Client) OffEndOfBanList(id HandlerID) bool {
	return c.events.onEndOfBanList.unsubscribe(id)
}
