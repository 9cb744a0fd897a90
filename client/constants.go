package client

// Wire commands the dispatcher acts on or the client sends. onConnect
// is not tied to any of these; it fires on the 001 welcome numeric
// (spec §4.5's "no onConnect before 001" rule).
const (
	cmdPing    = "PING"
	cmdPrivmsg = "PRIVMSG"
	cmdNotice  = "NOTICE"
	cmdNick    = "NICK"
	cmdJoin    = "JOIN"
	cmdPart    = "PART"
	cmdKick    = "KICK"
	cmdQuit    = "QUIT"
	cmdMode    = "MODE"
	cmdInvite  = "INVITE"
	cmdError   = "ERROR"
	cmdTopic   = "TOPIC"
)

// Numeric replies the dispatcher acts on (RFC 1459/2812 §5, plus the
// ISUPPORT numeric 005 that predates the RFC).
const (
	rplWelcome          = "001"
	rplYourHost         = "002"
	rplCreated          = "003"
	rplMyInfo           = "004"
	rplISupport         = "005"
	rplBounce           = "010"
	rplUserhost         = "302"
	rplAway             = "301"
	rplUnaway           = "305"
	rplNowAway          = "306"
	rplWhoisUser        = "311"
	rplWhoisServer      = "312"
	rplWhoisOperator    = "313"
	rplWhoisIdle        = "317"
	rplEndOfWhois       = "318"
	rplWhoisChannels    = "319"
	rplWhoReply         = "352"
	rplEndOfWho         = "315"
	rplWhoisAccount     = "330"
	rplWhoisSecure      = "671"
	rplWhoisHelpOp      = "310"
	rplWhoisSpecial     = "320"
	rplWhoisActually    = "338"
	rplWhoisHost        = "378"
	rplWhoisModes       = "379"
	rplNameReply        = "353"
	rplEndOfNames       = "366"
	rplTopic            = "332"
	rplTopicWhoTime     = "333"
	rplMotdStart        = "375"
	rplMotd             = "372"
	rplEndOfMotd        = "376"
	errNoMotd           = "422"
	errNicknameInUse    = "433"
	rplLuserConns       = "250"
	rplLuserClient      = "251"
	rplLuserOp          = "252"
	rplLuserUnknown     = "253"
	rplLuserChannels    = "254"
	rplLuserMe          = "255"
	rplLocalUsers       = "265"
	rplGlobalUsers      = "266"
	rplBanList          = "367"
	rplEndOfBanList     = "368"
)
