package utils

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestRetrySucceedsAfterFailures(t *testing.T) {
	var slept []time.Duration
	r := NewRetryConfig(3, 10, NewLoggerTo(&bytes.Buffer{}))
	r.sleep = func(d time.Duration) { slept = append(slept, d) }

	calls := 0
	err := r.Do("ping", func() error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do: unexpected error %v", err)
	}
	if calls != 3 {
		t.Errorf("calls: got %d, want 3", calls)
	}
	want := []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}
	if len(slept) != len(want) || slept[0] != want[0] || slept[1] != want[1] {
		t.Errorf("back-off: got %v, want %v", slept, want)
	}
}

func TestRetryGivesUp(t *testing.T) {
	r := NewRetryConfig(2, 0, nil)
	r.sleep = func(time.Duration) {}

	cause := errors.New("no route to host")
	err := r.Do("ping", func() error { return cause })
	if !errors.Is(err, cause) {
		t.Errorf("error should wrap the last cause: %v", err)
	}
}

func TestNewRetryConfigMinimumOneAttempt(t *testing.T) {
	r := NewRetryConfig(0, 0, nil)
	if r.MaxAttempts != 1 {
		t.Errorf("MaxAttempts: got %d, want 1", r.MaxAttempts)
	}
}
