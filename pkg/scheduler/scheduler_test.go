package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestInterval_RunsUntilCancel(t *testing.T) {
	var calls int32
	ctx, cancel := context.WithCancel(context.Background())

	s := NewInterval("test", 10*time.Millisecond, func(ctx context.Context) error {
		if atomic.AddInt32(&calls, 1) >= 3 {
			cancel()
		}
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	if got := atomic.LoadInt32(&calls); got < 3 {
		t.Fatalf("expected at least 3 runs, got %d", got)
	}
}

func TestInterval_SurvivesPanicAndError(t *testing.T) {
	var calls int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewInterval("flaky", 5*time.Millisecond, func(ctx context.Context) error {
		switch atomic.AddInt32(&calls, 1) {
		case 1:
			panic("boom")
		case 2:
			return errors.New("upstream down")
		default:
			cancel()
			return nil
		}
	})
	s.RunFirst = true

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not keep running after panic")
	}
	if got := atomic.LoadInt32(&calls); got < 3 {
		t.Fatalf("expected at least 3 runs, got %d", got)
	}
}
