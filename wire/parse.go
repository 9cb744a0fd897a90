package wire

import (
	"github.com/kestrelirc/ircore/ircmsg"
)

// ParseError is returned when a line does not match the irc message
// grammar. It carries the offending line for logging.
type ParseError struct {
	Msg  string
	Line string
}

// Error satisfies the error interface.
func (p ParseError) Error() string {
	return p.Msg
}

// Parse turns a raw line (no terminator, as delivered by Framer.Feed)
// into an ircmsg.Message. Grammar (spec §4.2):
//
//	[':' prefix SP+] command SP* {SP+ arg}* [SP+ ':' trailing]
//
// Consecutive spaces between tokens are collapsed. The first argument
// beginning with ':' consumes the remainder of the line verbatim
// (including embedded spaces) and is the final argument.
func Parse(line []byte) (ircmsg.Message, error) {
	var prefix, command string
	var empty ircmsg.Message

	i, n := 0, len(line)

	if n > 0 && line[0] == ':' {
		i = 1
		start := i
		for i < n && line[i] != ' ' {
			i++
		}
		if i == start {
			return empty, ParseError{Msg: "wire: empty prefix", Line: string(line)}
		}
		prefix = string(line[start:i])

		if i == n {
			return empty, ParseError{Msg: "wire: no command after prefix", Line: string(line)}
		}
	}

	i = skipSpaces(line, i)

	cmdStart := i
	for i < n && line[i] != ' ' {
		i++
	}
	if i == cmdStart {
		return empty, ParseError{Msg: "wire: empty command", Line: string(line)}
	}
	command = string(line[cmdStart:i])

	args := make([]string, 0, 4)
	for {
		i = skipSpaces(line, i)
		if i >= n {
			break
		}

		if line[i] == ':' {
			args = append(args, string(line[i+1:]))
			break
		}

		start := i
		for i < n && line[i] != ' ' {
			i++
		}
		args = append(args, string(line[start:i]))
	}

	return ircmsg.NewMessage(prefix, command, args...), nil
}

func skipSpaces(line []byte, i int) int {
	for i < len(line) && line[i] == ' ' {
		i++
	}
	return i
}
