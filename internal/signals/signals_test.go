package signals

import (
	"context"
	"syscall"
	"testing"
	"time"
)

func TestWithInterrupt_ParentCancel(t *testing.T) {
	parent, parentCancel := context.WithCancel(context.Background())

	ctx, stop := WithInterrupt(parent)
	defer stop()

	select {
	case <-ctx.Done():
		t.Fatal("context should not be done yet")
	default:
	}

	parentCancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context should be done after parent cancel")
	}
}

func TestWithInterrupt_Signal(t *testing.T) {
	ctx, stop := WithInterrupt(context.Background())
	defer stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGHUP); err != nil {
		t.Fatalf("sending SIGHUP: %v", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context should be canceled by SIGHUP")
	}
}

func TestWithInterrupt_Stop(t *testing.T) {
	ctx, stop := WithInterrupt(context.Background())
	stop()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("stop should cancel the context")
	}
}
