package clock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type manualTicker struct {
	edges   chan time.Time
	stopped bool
}

func (mt *manualTicker) C() <-chan time.Time {
	return mt.edges
}

func (mt *manualTicker) Stop() {
	mt.stopped = true
}

func TestClock_Rate(t *testing.T) {
	assert := assert.New(t)

	clk := NewClock(1000)
	assert.Equal(DEFAULT_PERIOD, clk.Period)

	clk.SetRate(50)
	assert.Equal(20*time.Millisecond, clk.Period)

	clk.SetRate(0)
	assert.Equal(time.Duration(0), clk.Period)
}

func TestClock_FreeRun(t *testing.T) {
	assert := assert.New(t)

	clk := NewClock(0)

	count := 0
	err := clk.Run(context.Background(), func() (done bool, err error) {
		count++
		done = count == 100
		return
	})

	assert.NoError(err)
	assert.Equal(100, count)
}

func TestClock_Ticker(t *testing.T) {
	assert := assert.New(t)

	ticker := &manualTicker{edges: make(chan time.Time)}

	var period time.Duration
	clk := &Clock{
		Period: 5 * time.Millisecond,
		NewTicker: func(d time.Duration) Ticker {
			period = d
			return ticker
		},
	}

	steps := make(chan int, 8)
	result := make(chan error, 1)

	count := 0
	go func() {
		result <- clk.Run(context.Background(), func() (done bool, err error) {
			count++
			steps <- count
			done = count == 3
			return
		})
	}()

	for n := 1; n <= 3; n++ {
		ticker.edges <- time.Now()
		assert.Equal(n, <-steps)
	}

	assert.NoError(<-result)
	assert.Equal(5*time.Millisecond, period)
	assert.True(ticker.stopped)
}

func TestClock_StepError(t *testing.T) {
	assert := assert.New(t)

	failure := errors.New("bad step")

	clk := NewClock(0)
	count := 0
	err := clk.Run(context.Background(), func() (done bool, err error) {
		count++
		if count == 2 {
			err = failure
		}
		return
	})

	assert.Equal(failure, err)
	assert.Equal(2, count)
}

func TestClock_Stop(t *testing.T) {
	assert := assert.New(t)

	clk := NewClock(0)

	count := 0
	err := clk.Run(context.Background(), func() (done bool, err error) {
		count++
		if count == 10 {
			clk.Stop()
			clk.Stop()
		}
		return
	})

	assert.NoError(err)
	assert.Equal(10, count)

	// A stopped clock does not step until reset.
	err = clk.Run(context.Background(), func() (done bool, err error) {
		t.Fatal("step on stopped clock")
		return
	})
	assert.NoError(err)

	clk.Reset()
	err = clk.Run(context.Background(), func() (done bool, err error) {
		done = true
		return
	})
	assert.NoError(err)
}

func TestClock_StopFromGoroutine(t *testing.T) {
	assert := assert.New(t)

	clk := NewClock(10000)

	started := make(chan struct{})
	var once bool
	go func() {
		<-started
		clk.Stop()
	}()

	err := clk.Run(context.Background(), func() (done bool, err error) {
		if !once {
			once = true
			close(started)
		}
		return
	})

	assert.NoError(err)
}

func TestClock_Context(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())

	clk := NewClock(0)
	count := 0
	err := clk.Run(ctx, func() (done bool, err error) {
		count++
		if count == 5 {
			cancel()
		}
		return
	})

	assert.ErrorIs(err, context.Canceled)
	assert.Equal(5, count)
}
