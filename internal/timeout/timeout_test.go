package timeout

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDoFastOperation(t *testing.T) {
	got, err := Do(context.Background(), time.Second, func(ctx context.Context) (int, error) {
		return 7, nil
	})
	if err != nil {
		t.Fatalf("Do() unexpected error: %v", err)
	}
	if got != 7 {
		t.Errorf("Do() = %d, want 7", got)
	}
}

func TestDoOperationError(t *testing.T) {
	opErr := errors.New("boom")
	_, err := Do(context.Background(), time.Second, func(ctx context.Context) (int, error) {
		return 0, opErr
	})
	if !errors.Is(err, opErr) {
		t.Errorf("Do() error = %v, want %v", err, opErr)
	}
	if errors.Is(err, ErrDeadline) {
		t.Error("Do() wrapped an operation error in ErrDeadline")
	}
}

func TestDoDeadline(t *testing.T) {
	started := time.Now()
	_, err := Do(context.Background(), 20*time.Millisecond, func(ctx context.Context) (int, error) {
		time.Sleep(500 * time.Millisecond)
		return 1, nil
	})
	elapsed := time.Since(started)

	if !errors.Is(err, ErrDeadline) {
		t.Fatalf("Do() error = %v, want ErrDeadline", err)
	}
	// The caller gets its answer within the window, not after the slow
	// operation finishes.
	if elapsed > 200*time.Millisecond {
		t.Errorf("Do() returned after %s, want well under the operation's 500ms", elapsed)
	}
}

func TestDoLateResultDoesNotPanic(t *testing.T) {
	done := make(chan struct{})
	_, err := Do(context.Background(), 10*time.Millisecond, func(ctx context.Context) (int, error) {
		defer close(done)
		time.Sleep(50 * time.Millisecond)
		return 1, nil
	})
	if !errors.Is(err, ErrDeadline) {
		t.Fatalf("Do() error = %v, want ErrDeadline", err)
	}

	// The abandoned goroutine must still be able to deliver its result
	// and exit.
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("abandoned operation never completed")
	}
}

func TestDoContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Do(ctx, time.Second, func(ctx context.Context) (int, error) {
		time.Sleep(100 * time.Millisecond)
		return 1, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Do() error = %v, want context.Canceled", err)
	}
}
