package envutil

import (
	"testing"
	"time"
)

func TestString(t *testing.T) {
	t.Setenv("TEST_STR", "  value  ")
	if got := String("TEST_STR", "def"); got != "value" {
		t.Fatalf("got %q", got)
	}
	t.Setenv("TEST_STR", "")
	if got := String("TEST_STR", "def"); got != "def" {
		t.Fatalf("got %q", got)
	}
}

func TestInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := Int("TEST_INT", 7); got != 42 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("TEST_INT", "not a number")
	if got := Int("TEST_INT", 7); got != 7 {
		t.Fatalf("got %d", got)
	}
}

func TestFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "0.9")
	if got := Float("TEST_FLOAT", 0.5); got != 0.9 {
		t.Fatalf("got %v", got)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "yes")
	if !Bool("TEST_BOOL", false) {
		t.Fatal("yes not true")
	}
	t.Setenv("TEST_BOOL", "off")
	if Bool("TEST_BOOL", true) {
		t.Fatal("off not false")
	}
	t.Setenv("TEST_BOOL", "maybe")
	if !Bool("TEST_BOOL", true) {
		t.Fatal("junk should keep default")
	}
}

func TestDurationSeconds(t *testing.T) {
	t.Setenv("TEST_DUR", "90")
	if got := DurationSeconds("TEST_DUR", time.Minute); got != 90*time.Second {
		t.Fatalf("got %v", got)
	}
	t.Setenv("TEST_DUR", "-5")
	if got := DurationSeconds("TEST_DUR", time.Minute); got != time.Minute {
		t.Fatalf("got %v", got)
	}
}
