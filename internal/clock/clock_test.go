package clock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestNewDefaultsRate(t *testing.T) {
	tests := []struct {
		rate         int
		wantRate     int
		wantInterval time.Duration
	}{
		{60, 60, time.Second / 60},
		{10, 10, 100 * time.Millisecond},
		{0, DefaultRate, time.Second / DefaultRate},
		{-5, DefaultRate, time.Second / DefaultRate},
	}
	for _, tc := range tests {
		c := New(tc.rate)
		if c.Rate() != tc.wantRate || c.Interval() != tc.wantInterval {
			t.Errorf("New(%d): rate %d interval %v, expected %d %v",
				tc.rate, c.Rate(), c.Interval(), tc.wantRate, tc.wantInterval)
		}
	}
}

func TestRunStopsWhenStepDeclines(t *testing.T) {
	c := New(1000)
	var seen []uint64
	n, err := c.Run(context.Background(), func(tick uint64) bool {
		seen = append(seen, tick)
		return tick < 4
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if n != 5 || len(seen) != 5 {
		t.Fatalf("ran %d ticks (%v), expected 5", n, seen)
	}
	for i, tick := range seen {
		if tick != uint64(i) {
			t.Errorf("tick %d reported as %d", i, tick)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	c := New(1000)
	ctx, cancel := context.WithCancel(context.Background())

	var mu sync.Mutex
	var calls uint64
	done := make(chan struct{})
	var n uint64
	var err error
	go func() {
		n, err = c.Run(ctx, func(tick uint64) bool {
			mu.Lock()
			calls++
			mu.Unlock()
			if tick == 2 {
				cancel()
			}
			return true
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if calls != 3 || n != 3 {
		t.Errorf("calls=%d n=%d, expected 3 ticks before the cancel took effect", calls, n)
	}
}

func TestRunCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := New(60).Run(ctx, func(uint64) bool {
		t.Error("step should not be called")
		return true
	})
	if n != 0 || !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %d, %v", n, err)
	}
}

func TestRunKeepsRate(t *testing.T) {
	c := New(100)
	start := time.Now()
	c.Run(context.Background(), func(tick uint64) bool { return tick < 9 })
	elapsed := time.Since(start)

	// Ten ticks at 100 Hz take at least 100ms.
	if elapsed < 90*time.Millisecond {
		t.Errorf("10 ticks took %v, expected about 100ms", elapsed)
	}
}

func TestDrive(t *testing.T) {
	var total uint64
	n := Drive(50, func(tick uint64) bool {
		total += tick
		return true
	})
	if n != 50 {
		t.Errorf("Drive ran %d ticks, expected 50", n)
	}
	if total != 49*50/2 {
		t.Errorf("tick sum = %d", total)
	}

	if n := Drive(50, func(tick uint64) bool { return tick < 9 }); n != 10 {
		t.Errorf("Drive ran %d ticks, expected to stop at 10", n)
	}
	if n := Drive(0, func(uint64) bool { return true }); n != 0 {
		t.Errorf("Drive(0) ran %d ticks", n)
	}
}

func TestBoard(t *testing.T) {
	var b Board[int]
	if v, n := b.Load(); v != 0 || n != 0 {
		t.Errorf("empty board = %d, %d", v, n)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= 100; i++ {
			b.Publish(i)
		}
	}()
	for range 100 {
		b.Load()
	}
	wg.Wait()

	if v, n := b.Load(); v != 100 || n != 100 {
		t.Errorf("board = %d after %d publishes", v, n)
	}
}
