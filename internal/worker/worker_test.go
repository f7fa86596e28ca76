package worker

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(3, nil)
	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		p.Submit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}
	p.Submit(nil)
	p.Stop()
	require.Equal(t, 5, count)
}

func TestPoolRecoversPanics(t *testing.T) {
	var buf bytes.Buffer
	p := NewPool(1, slog.New(slog.NewTextHandler(&buf, nil)))
	done := false
	p.Submit(func() { panic("boom") })
	p.Submit(func() { done = true })
	p.Stop()

	require.True(t, done)
	require.Contains(t, buf.String(), "worker task panicked")
	require.Contains(t, buf.String(), "boom")
}

func TestPoolSubmitDoesNotBlockWhenBusy(t *testing.T) {
	old := queuePerWorker
	queuePerWorker = 1
	t.Cleanup(func() { queuePerWorker = old })

	var buf bytes.Buffer
	p := NewPool(1, slog.New(slog.NewTextHandler(&buf, nil)))
	started := make(chan struct{})
	release := make(chan struct{})
	p.Submit(func() {
		close(started)
		<-release
	})
	<-started

	queued := false
	p.Submit(func() { queued = true })

	submitted := make(chan struct{})
	go func() {
		p.Submit(func() { t.Error("dropped task ran") })
		close(submitted)
	}()
	select {
	case <-submitted:
	case <-time.After(2 * time.Second):
		t.Fatal("Submit blocked while the worker was busy")
	}
	require.Contains(t, buf.String(), "worker queue full, task dropped")

	close(release)
	p.Stop()
	require.True(t, queued)
}

func TestPoolStopTwiceAndSubmitAfterStop(t *testing.T) {
	var buf bytes.Buffer
	p := NewPool(0, slog.New(slog.NewTextHandler(&buf, nil)))
	p.Stop()
	require.NotPanics(t, p.Stop)

	ran := false
	p.Submit(func() { ran = true })
	require.False(t, ran)
	require.Contains(t, buf.String(), "task dropped")
}
