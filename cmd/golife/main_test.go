package main

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

func TestWithInterruptIsCleanExit(t *testing.T) {
	proc, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatal(err)
	}

	err = withInterrupt(func(ctx context.Context) error {
		if err := proc.Signal(os.Interrupt); err != nil {
			t.Skipf("cannot signal own process: %v", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return errors.New("loop not stopped by SIGINT")
		}
	})
	if err != nil {
		t.Errorf("withInterrupt = %v, want nil", err)
	}
}

func TestWithInterruptKeepsLoopErrors(t *testing.T) {
	boom := errors.New("window failed")
	err := withInterrupt(func(ctx context.Context) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("withInterrupt = %v, want %v", err, boom)
	}
}
