package main

import (
	"time"

	"mini-mc/internal/config"
)

// FPSLimiter paces the main loop to config's FPS cap: sleep most of the
// remaining frame budget, then busy-wait the last sliver for accuracy.
type FPSLimiter struct {
	next time.Time
}

// NewFPSLimiter creates a limiter with no scheduled deadline yet.
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame's deadline, using a relaxed 120fps cap
// while paused regardless of the configured limit.
func (f *FPSLimiter) Wait(paused bool) {
	limit := config.GetFPSLimit()
	if paused {
		limit = 120
	}
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)
	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		if time.Until(f.next) <= 0 {
			break
		}
	}

	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
