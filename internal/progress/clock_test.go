package progress

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClock_AfterFunc(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	fired := 0
	clock.AfterFunc(10*time.Millisecond, func() { fired++ })

	clock.Advance(9 * time.Millisecond)
	assert.Equal(t, 0, fired)

	clock.Advance(time.Millisecond)
	assert.Equal(t, 1, fired)

	clock.Advance(time.Second)
	assert.Equal(t, 1, fired, "one-shot timers fire once")
	assert.Equal(t, 0, clock.Pending())
}

func TestManualClock_TickFunc(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	fired := 0
	timer := clock.TickFunc(100*time.Millisecond, func() { fired++ })

	clock.Advance(350 * time.Millisecond)
	assert.Equal(t, 3, fired)
	assert.Equal(t, time.Unix(0, 0).Add(350*time.Millisecond), clock.Now())

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	clock.Advance(time.Second)
	assert.Equal(t, 3, fired)
}

func TestManualClock_StopFromCallback(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	fired := 0
	var timer Timer
	timer = clock.TickFunc(time.Millisecond, func() {
		fired++
		if fired == 2 {
			timer.Stop()
		}
	})

	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, 2, fired)
}

func TestManualClock_FiresInDeadlineOrder(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	var order []string
	clock.AfterFunc(30*time.Millisecond, func() { order = append(order, "late") })
	clock.AfterFunc(10*time.Millisecond, func() { order = append(order, "early") })

	clock.Advance(time.Second)
	assert.Equal(t, []string{"early", "late"}, order)
}

func TestSystemClock_TickFuncStops(t *testing.T) {
	var fired atomic.Int32
	timer := SystemClock().TickFunc(time.Millisecond, func() { fired.Add(1) })

	assert.Eventually(t, func() bool { return fired.Load() >= 2 }, time.Second, time.Millisecond)
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
}

func TestSystemClock_AfterFunc(t *testing.T) {
	var fired atomic.Bool
	SystemClock().AfterFunc(time.Millisecond, func() { fired.Store(true) })

	assert.Eventually(t, fired.Load, time.Second, time.Millisecond)
}
