// Package clock drives simulations at a fixed tick rate outside of the
// terminal loop, and publishes what they produce for concurrent readers.
package clock

import (
	"context"
	"sync"
	"time"
)

// DefaultRate is the tick rate used when none is given.
const DefaultRate = 60

// StepFunc advances a simulation by one tick. tick counts from 0.
// Returning false stops the clock.
type StepFunc func(tick uint64) bool

// Clock ticks at a fixed rate.
type Clock struct {
	rate int
}

// New creates a clock ticking rate times per second.
// A non-positive rate falls back to DefaultRate.
func New(rate int) *Clock {
	if rate <= 0 {
		rate = DefaultRate
	}
	return &Clock{rate: rate}
}

// Rate returns the ticks per second.
func (c *Clock) Rate() int {
	return c.rate
}

// Interval returns the time between two ticks.
func (c *Clock) Interval() time.Duration {
	return time.Second / time.Duration(c.rate)
}

// Run calls step once per tick until step returns false or ctx is done.
// It returns the number of ticks run, and ctx.Err() if it was cancelled.
// No tick is delivered after Run returns.
func (c *Clock) Run(ctx context.Context, step StepFunc) (uint64, error) {
	ticker := time.NewTicker(c.Interval())
	defer ticker.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return tick, ctx.Err()
		case <-ticker.C:
			// A cancel racing the ticker wins.
			if ctx.Err() != nil {
				return tick, ctx.Err()
			}
			more := step(tick)
			tick++
			if !more {
				return tick, nil
			}
		}
	}
}

// Drive calls step up to n times back to back, without waiting between
// ticks. It returns the number of ticks run.
func Drive(n uint64, step StepFunc) uint64 {
	var tick uint64
	for tick < n {
		more := step(tick)
		tick++
		if !more {
			break
		}
	}
	return tick
}

// Board holds the latest value published by a running simulation.
// It is safe for one writer and any number of readers.
type Board[T any] struct {
	mu     sync.RWMutex
	latest T
	count  uint64
}

// Publish replaces the current value.
func (b *Board[T]) Publish(v T) {
	b.mu.Lock()
	b.latest = v
	b.count++
	b.mu.Unlock()
}

// Load returns the latest value and how many values have been published.
func (b *Board[T]) Load() (T, uint64) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.latest, b.count
}
