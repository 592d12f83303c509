package rate_limiter

import (
	"testing"
	"time"
)

func TestGetVisitor_SameKeySharesLimiter(t *testing.T) {
	v := NewVisitors(1, 2)

	a := v.GetVisitor("1.1.1.1")
	b := v.GetVisitor("1.1.1.1")
	c := v.GetVisitor("2.2.2.2")

	if a != b {
		t.Errorf("expected the same limiter for the same key")
	}
	if a == c {
		t.Errorf("expected distinct limiters for distinct keys")
	}
	if !a.Allow() || !a.Allow() {
		t.Errorf("expected the burst to be available")
	}
	if a.Allow() {
		t.Errorf("expected the limiter to refuse past its burst")
	}
}

func TestCleanup(t *testing.T) {
	v := NewVisitors(1, 1)
	v.GetVisitor("a")

	v.Cleanup(time.Hour)
	if v.Len() != 1 {
		t.Fatalf("recent visitors must be kept")
	}

	time.Sleep(5 * time.Millisecond)
	v.Cleanup(time.Millisecond)
	if v.Len() != 0 {
		t.Errorf("idle visitors must be removed")
	}

	v.GetVisitor("b")
	v.CleanupAllVisitors()
	if v.Len() != 0 {
		t.Errorf("expected no visitors after CleanupAllVisitors")
	}
}
