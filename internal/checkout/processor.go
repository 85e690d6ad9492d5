package checkout

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrProcessingInProgress signals a duplicate submission while a
// previous one is still running.
var ErrProcessingInProgress = errors.New("checkout already in progress")

// DefaultProcessingDelay matches the mocked payment step of the demo
// store.
const DefaultProcessingDelay = 2 * time.Second

// Processor simulates order processing: a submission completes after a
// fixed delay and cannot be cancelled once started. Only one submission
// may be in flight; the host disables its submit control for the
// duration (InFlight).
type Processor struct {
	delay time.Duration
	busy  atomic.Bool
}

// NewProcessor builds a processor with the given delay, falling back to
// DefaultProcessingDelay when delay is not positive.
func NewProcessor(delay time.Duration) *Processor {
	if delay <= 0 {
		delay = DefaultProcessingDelay
	}
	return &Processor{delay: delay}
}

// Submit starts the simulated processing step and returns immediately.
// onComplete runs once the delay elapses. A second Submit while one is
// in flight returns ErrProcessingInProgress and schedules nothing.
func (p *Processor) Submit(onComplete func()) error {
	if !p.busy.CompareAndSwap(false, true) {
		return ErrProcessingInProgress
	}

	logrus.WithField("delay", p.delay).Debug("checkout: processing started")
	time.AfterFunc(p.delay, func() {
		defer p.busy.Store(false)
		if onComplete != nil {
			onComplete()
		}
	})
	return nil
}

// InFlight reports whether a submission is currently processing.
func (p *Processor) InFlight() bool {
	return p.busy.Load()
}
