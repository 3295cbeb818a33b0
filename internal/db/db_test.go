package db

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockPinger struct {
	failures int
	calls    int
}

func (m *mockPinger) Ping(_ context.Context) error {
	m.calls++
	if m.calls <= m.failures {
		return errors.New("not yet")
	}
	return nil
}

func TestWaitForReady_Immediate(t *testing.T) {
	p := &mockPinger{}
	if err := WaitForReady(context.Background(), p, time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.calls != 1 {
		t.Errorf("calls = %d, want 1", p.calls)
	}
}

func TestWaitForReady_EventuallyReady(t *testing.T) {
	p := &mockPinger{failures: 2}
	if err := WaitForReady(context.Background(), p, 2*time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.calls != 3 {
		t.Errorf("calls = %d, want 3", p.calls)
	}
}

func TestWaitForReady_Timeout(t *testing.T) {
	p := &mockPinger{failures: 1 << 30}
	err := WaitForReady(context.Background(), p, 150*time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestError_Unwrap(t *testing.T) {
	err := &Error{Op: OpGet, Err: ErrClosed}
	if err.Error() != "GET: db: store closed" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrClosed) {
		t.Error("expected errors.Is to see through Error")
	}
}
