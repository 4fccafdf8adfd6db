package timefmt

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock supplies the current time to sinks.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now on every call.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// CoarseInterval is the refresh period of the coarse clock.
const CoarseInterval = 500 * time.Microsecond

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every CoarseInterval. It is safe to call multiple times; the
// goroutine is started exactly once and runs for the lifetime of the
// process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(CoarseInterval)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time. It starts the coarse
// clock on first use.
func CoarseNow() time.Time {
	if p := coarseNow.Load(); p != nil {
		return *p
	}
	StartCoarseClock()
	return *coarseNow.Load()
}

// CoarseClock is a Clock backed by CoarseNow. Its resolution is
// CoarseInterval, so it suits formatters with precision of 3 or less.
type CoarseClock struct{}

// Now returns CoarseNow().
func (CoarseClock) Now() time.Time {
	return CoarseNow()
}
