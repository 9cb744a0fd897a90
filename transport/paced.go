package transport

import "time"

// PacedTransport wraps a Transport and sleeps before Send when
// writing too quickly would risk a server-side flood disconnect.
// This is the supplemented flood-protection feature (SPEC_FULL §12);
// the sleep-time algorithm is adapted from
// inet.IrcClient.calcSleepTime, but there the sleep was implemented
// as a goroutine/queue pump because the source ran sends on their own
// worker. The core here is single-threaded and Send is already
// documented as blocking, so the same arithmetic is applied as a
// synchronous time.Sleep immediately before the wrapped Send instead
// of via a separate pump goroutine and queue.
type PacedTransport struct {
	Transport

	// Timeout is the maximum single penalty accrued before a client
	// is considered flooding by a typical ircd (usually 10s).
	Timeout time.Duration
	// BaseStep is the fixed penalty charged per message regardless
	// of length (usually 2s).
	BaseStep time.Duration
	// LenPenaltyFactor scales additional penalty by message length;
	// pass 0 to disable length-based penalty entirely.
	LenPenaltyFactor float64

	lastWrite time.Time
	penalty   time.Time
}

// NewPacedTransport wraps t with the given flood-control parameters.
// Passing zero values for all three disables pacing (Send behaves
// exactly like the wrapped Transport).
func NewPacedTransport(t Transport, timeout, basestep time.Duration, lenPenaltyFactor float64) *PacedTransport {
	return &PacedTransport{
		Transport:        t,
		Timeout:          timeout,
		BaseStep:         basestep,
		LenPenaltyFactor: lenPenaltyFactor,
	}
}

// calcSleepTime is the source's penalty-bucket algorithm: the
// penalty clock never lags "now", each write bumps it into the future
// by basestep plus a length-scaled amount, and once it outruns timeout
// past "now" the caller is made to sleep off the overage (capped at
// timeout).
func (p *PacedTransport) calcSleepTime(now time.Time, msgLen int) time.Duration {
	if p.Timeout == 0 && p.BaseStep == 0 && p.LenPenaltyFactor == 0 {
		return 0
	}

	if now.After(p.penalty) {
		p.penalty = now
	}

	lengthCost := time.Duration(float64(msgLen) * p.LenPenaltyFactor * float64(time.Second))
	p.penalty = p.penalty.Add(p.BaseStep + lengthCost)

	sleep := p.penalty.Sub(now) - p.Timeout
	if sleep <= 0 {
		return 0
	}
	if sleep > p.Timeout {
		sleep = p.Timeout
	}
	return sleep
}

// Send sleeps off any accrued flood penalty, then writes data through
// the wrapped Transport.
func (p *PacedTransport) Send(data []byte) error {
	now := time.Now()
	if sleep := p.calcSleepTime(now, len(data)); sleep > 0 {
		time.Sleep(sleep)
	}
	p.lastWrite = time.Now()
	return p.Transport.Send(data)
}
