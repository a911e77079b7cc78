package httpx

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type coded struct{ code int }

func (c *coded) Error() string       { return fmt.Sprintf("http %d", c.code) }
func (c *coded) HTTPStatusCode() int { return c.code }

func TestStatusCode(t *testing.T) {
	t.Parallel()
	if got := StatusCode(&coded{code: 429}); got != 429 {
		t.Fatalf("got %d", got)
	}
	if got := StatusCode(fmt.Errorf("wrapped: %w", &coded{code: 503})); got != 503 {
		t.Fatalf("wrapped: got %d", got)
	}
	if got := StatusCode(errors.New("plain")); got != 0 {
		t.Fatalf("plain: got %d", got)
	}
	if got := StatusCode(nil); got != 0 {
		t.Fatalf("nil: got %d", got)
	}
}

func TestStatusClasses(t *testing.T) {
	t.Parallel()
	if !IsAuthStatus(401) || !IsAuthStatus(403) || IsAuthStatus(400) {
		t.Fatal("auth classification wrong")
	}
	if !IsOverloadedStatus(429) || IsOverloadedStatus(503) {
		t.Fatal("overload classification wrong")
	}
	if !IsUnavailableStatus(500) || !IsUnavailableStatus(599) || !IsUnavailableStatus(408) || IsUnavailableStatus(404) {
		t.Fatal("unavailable classification wrong")
	}
}

func TestIsTimeoutError(t *testing.T) {
	t.Parallel()
	if !IsTimeoutError(context.DeadlineExceeded) {
		t.Fatal("deadline not a timeout")
	}
	if IsTimeoutError(errors.New("nope")) || IsTimeoutError(nil) {
		t.Fatal("false positive")
	}
}
