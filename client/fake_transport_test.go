package client

import (
	"strings"

	"github.com/kestrelirc/ircore/transport"
)

// fakeTransport is an in-memory transport.Transport double: Send
// records lines, and test code queues bytes for Recv to hand back.
type fakeTransport struct {
	connected bool
	sent      []string
	inbox     []byte
}

func (f *fakeTransport) Connect(address string) error {
	f.connected = true
	return nil
}

func (f *fakeTransport) queue(lines string) {
	f.inbox = append(f.inbox, []byte(lines)...)
}

func (f *fakeTransport) Recv(buf []byte) (int, error) {
	if len(f.inbox) == 0 {
		return 0, transport.ErrWouldBlock
	}
	n := copy(buf, f.inbox)
	f.inbox = f.inbox[n:]
	return n, nil
}

func (f *fakeTransport) Send(data []byte) error {
	f.sent = append(f.sent, strings.TrimRight(string(data), "\r\n"))
	return nil
}

func (f *fakeTransport) Close() error {
	f.connected = false
	return nil
}

func (f *fakeTransport) ErrorText() string { return "" }
