/*
Package wire reassembles bytes off the transport into complete irc
protocol lines and parses each line into an ircmsg.Message.
*/
package wire

import "github.com/pkg/errors"

// DefaultBufferSize is the recommended framer buffer size. The wire
// maximum for a single message is 512 bytes including \r\n, but a
// larger buffer absorbs TCP fragmentation that delivers several lines
// (or a partial line) in one read.
const DefaultBufferSize = 2048

// ErrBufferOverflow is returned by Feed when no line terminator was
// found before the buffer filled up.
var ErrBufferOverflow = errors.New("wire: buffer overflow, no line terminator found")

// Framer reassembles a byte stream into complete lines using a fixed
// capacity buffer. It does not itself validate line length beyond the
// buffer's own capacity; an oversize line is a protocol violation the
// caller learns about as ErrBufferOverflow.
type Framer struct {
	buf []byte
	pos int
}

// NewFramer allocates a Framer with the given buffer capacity. Pass 0
// to use DefaultBufferSize.
func NewFramer(capacity int) *Framer {
	if capacity <= 0 {
		capacity = DefaultBufferSize
	}
	return &Framer{buf: make([]byte, capacity)}
}

// Feed appends chunk to the framer's buffer and invokes onLine once
// per complete, non-empty line found (\r\n, \n, or a lone \r all
// terminate a line; consecutive terminators are collapsed, so empty
// lines are never surfaced). onLine's slice is only valid until the
// next call to Feed — copy it if it must outlive that.
//
// Feed returns ErrBufferOverflow if the buffer fills up with no
// terminator anywhere in it, meaning no line can ever be completed.
func (f *Framer) Feed(chunk []byte, onLine func([]byte) error) error {
	for len(chunk) > 0 {
		room := len(f.buf) - f.pos
		if room == 0 {
			return ErrBufferOverflow
		}

		n := room
		if n > len(chunk) {
			n = len(chunk)
		}
		copy(f.buf[f.pos:f.pos+n], chunk[:n])
		f.pos += n
		chunk = chunk[n:]

		if err := f.drain(onLine); err != nil {
			return err
		}
	}
	return nil
}

// drain extracts every complete line currently buffered, invoking
// onLine for each non-empty one, then compacts any residual bytes to
// the front of the buffer.
func (f *Framer) drain(onLine func([]byte) error) error {
	start := 0
	for i := 0; i < f.pos; i++ {
		b := f.buf[i]
		if b != '\r' && b != '\n' {
			continue
		}

		if i > start {
			if err := onLine(f.buf[start:i]); err != nil {
				return err
			}
		}

		// Collapse a \r\n pair or any run of terminators.
		start = i + 1
	}

	remaining := f.pos - start
	if remaining > 0 && start > 0 {
		copy(f.buf[0:remaining], f.buf[start:f.pos])
	}
	f.pos = remaining
	return nil
}
