package shutdown

import (
	"os"
	"syscall"
	"testing"
	"time"
)

func Test_InitialStateIsContinue(t *testing.T) {
	c := New()
	defer c.Stop()

	if got := c.Requested(); got != Continue {
		t.Fatalf("expected Continue, got %v", got)
	}
	if got := c.LastSignalName(); got != "none" {
		t.Fatalf("expected \"none\", got %q", got)
	}
}

func Test_SingleSIGINTRequestsOnce(t *testing.T) {
	c := New()
	defer c.Stop()

	raiseSIGINT(t)
	waitForState(t, c, RequestedOnce)

	if got := c.LastSignalName(); got != "SIGINT" {
		t.Fatalf("expected SIGINT, got %q", got)
	}
}

func Test_AcknowledgeDoesNotResetCount(t *testing.T) {
	c := New()
	defer c.Stop()

	raiseSIGINT(t)
	waitForState(t, c, RequestedOnce)

	c.Acknowledge()
	if got := c.Requested(); got != RequestedOnce {
		t.Fatalf("Acknowledge must not reset state: got %v", got)
	}
}

func Test_SecondSIGINTForces(t *testing.T) {
	c := New()
	defer c.Stop()

	raiseSIGINT(t)
	waitForState(t, c, RequestedOnce)
	c.Acknowledge()

	raiseSIGINT(t)
	waitForState(t, c, Forced)
}

func raiseSIGINT(t *testing.T) {
	t.Helper()
	if err := syscall.Kill(os.Getpid(), syscall.SIGINT); err != nil {
		t.Fatalf("failed to raise SIGINT: %s", err)
	}
}

func waitForState(t *testing.T, c *Controller, want State) {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		if c.Requested() == want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for state %v, have %v", want, c.Requested())
		case <-time.After(time.Millisecond):
		}
	}
}
