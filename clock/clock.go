// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package clock drives a step function at a fixed rate.
//
// Steps are always called from the goroutine running Run, one at a time,
// so a step never overlaps the previous one.
package clock

import (
	"context"
	"sync"
	"time"
)

const (
	DEFAULT_PERIOD = time.Millisecond // 1 kHz
)

// Step performs one clock cycle. Returning done or an error stops the clock.
type Step func() (done bool, err error)

// Ticker is a source of clock edges.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	*time.Ticker
}

func (tt timeTicker) C() <-chan time.Time {
	return tt.Ticker.C
}

// NewTimeTicker returns a Ticker backed by time.Ticker.
func NewTimeTicker(period time.Duration) Ticker {
	return timeTicker{time.NewTicker(period)}
}

// Clock calls a step function periodically until stopped.
type Clock struct {
	Period    time.Duration              // Time between steps. Zero free-runs.
	NewTicker func(time.Duration) Ticker // Ticker factory. Defaults to NewTimeTicker.

	mutex   sync.Mutex
	stop    chan struct{}
	stopped bool
}

// NewClock creates a clock running at hz steps per second.
func NewClock(hz int) (clk *Clock) {
	clk = &Clock{}
	clk.SetRate(hz)
	return
}

// SetRate sets the clock period from a rate in Hz. Zero or less free-runs.
func (clk *Clock) SetRate(hz int) {
	if hz <= 0 {
		clk.Period = 0
		return
	}
	clk.Period = time.Second / time.Duration(hz)
}

func (clk *Clock) stopChannel() chan struct{} {
	clk.mutex.Lock()
	defer clk.mutex.Unlock()

	if clk.stop == nil {
		clk.stop = make(chan struct{})
	}
	return clk.stop
}

// Stop halts the clock. It is safe to call from any goroutine, more than
// once, and before Run.
func (clk *Clock) Stop() {
	stop := clk.stopChannel()

	clk.mutex.Lock()
	defer clk.mutex.Unlock()

	if !clk.stopped {
		clk.stopped = true
		close(stop)
	}
}

// Reset re-arms a stopped clock.
func (clk *Clock) Reset() {
	clk.mutex.Lock()
	defer clk.mutex.Unlock()

	clk.stop = nil
	clk.stopped = false
}

// Run calls step on every clock edge until step reports done, step fails,
// Stop is called, or ctx is cancelled. Only the context's error or the
// step's error is returned.
func (clk *Clock) Run(ctx context.Context, step Step) (err error) {
	stop := clk.stopChannel()

	var edges <-chan time.Time
	if clk.Period > 0 {
		factory := clk.NewTicker
		if factory == nil {
			factory = NewTimeTicker
		}
		ticker := factory(clk.Period)
		defer ticker.Stop()
		edges = ticker.C()
	}

	for {
		if edges != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-stop:
				return
			case <-edges:
			}
		} else {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-stop:
				return
			default:
			}
		}

		var done bool
		done, err = step()
		if err != nil || done {
			return
		}
	}
}
