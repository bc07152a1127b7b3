package ctrlc

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHandleCancelsThenExits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	exited := make(chan int, 1)

	c := handle(cancel, time.Millisecond, func(code int) {
		exited <- code
	})
	c <- os.Interrupt

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was never cancelled")
	}

	select {
	case code := <-exited:
		require.Equal(t, 1, code)
	case <-time.After(time.Second):
		t.Fatal("exit was never called")
	}
}
