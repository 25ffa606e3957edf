package executor

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSynchronousRunsInline(t *testing.T) {
	exec := NewSynchronous(Config{})
	ran := false
	exec.Execute(func() { ran = true })
	assert.True(t, ran)

	snap := exec.Stats().Snapshot()
	assert.Equal(t, uint64(1), snap.Enqueued)
	assert.Equal(t, uint64(1), snap.Processed)
	assert.Zero(t, snap.Pending())
}

func TestSynchronousReentrant(t *testing.T) {
	exec := NewSynchronous(Config{})
	var order []string

	done := make(chan struct{})
	go func() {
		defer close(done)
		exec.Execute(func() {
			order = append(order, "outer-start")
			exec.Execute(func() { order = append(order, "inner") })
			order = append(order, "outer-end")
		})
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("nested Execute deadlocked")
	}
	assert.Equal(t, []string{"outer-start", "inner", "outer-end"}, order)
}

func TestSynchronousMutualExclusion(t *testing.T) {
	exec := NewSynchronous(Config{})
	var inside, overlaps int32
	var g errgroup.Group

	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for j := 0; j < 200; j++ {
				exec.Execute(func() {
					if atomic.AddInt32(&inside, 1) > 1 {
						atomic.AddInt32(&overlaps, 1)
					}
					atomic.AddInt32(&inside, -1)
				})
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Zero(t, overlaps)
	assert.Equal(t, uint64(16*200), exec.Stats().Snapshot().Processed)
}

func TestSynchronousRecoversPanic(t *testing.T) {
	var recovered any
	exec := NewSynchronous(Config{OnPanic: func(r any) { recovered = r }})

	exec.Execute(func() { panic("boom") })
	assert.Equal(t, "boom", recovered)
	assert.Equal(t, uint64(1), exec.Stats().Snapshot().Panicked)

	// lock was released
	ran := false
	exec.Execute(func() { ran = true })
	assert.True(t, ran)
}

func TestSerialPreservesOrder(t *testing.T) {
	exec := NewSerial(Config{})
	defer exec.Close()

	var mu sync.Mutex
	var got []int
	for i := 0; i < 500; i++ {
		exec.Execute(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		})
	}
	exec.Flush()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 500)
	for i, v := range got {
		if v != i {
			t.Fatalf("got[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestSerialRunsOffCallerGoroutine(t *testing.T) {
	exec := NewSerial(Config{})
	defer exec.Close()

	release := make(chan struct{})
	finished := make(chan struct{})
	exec.Execute(func() {
		<-release
		close(finished)
	})

	// Execute returned while the task is still blocked
	close(release)
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("task never ran")
	}
}

func TestSerialNestedSubmit(t *testing.T) {
	exec := NewSerial(Config{})
	defer exec.Close()

	var mu sync.Mutex
	var order []string
	record := func(s string) {
		mu.Lock()
		order = append(order, s)
		mu.Unlock()
	}

	innerDone := make(chan struct{})
	exec.Execute(func() {
		record("outer")
		exec.Execute(func() {
			record("inner")
			close(innerDone)
		})
		exec.Flush() // no-op on the worker
		record("outer-end")
	})

	select {
	case <-innerDone:
	case <-time.After(2 * time.Second):
		t.Fatal("nested task never ran")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"outer", "outer-end", "inner"}, order)
}

func TestSerialCloseDrains(t *testing.T) {
	exec := NewSerial(Config{})

	var count atomic.Int32
	for i := 0; i < 100; i++ {
		exec.Execute(func() { count.Add(1) })
	}
	require.NoError(t, exec.Close())
	assert.Equal(t, int32(100), count.Load())

	// after Close tasks run inline
	exec.Execute(func() { count.Add(1) })
	assert.Equal(t, int32(101), count.Load())

	require.NoError(t, exec.Close())
	exec.Flush()
}

func TestSerialCloseWithoutTimeoutRunsEverything(t *testing.T) {
	for _, timeout := range []time.Duration{0, -time.Second} {
		exec := NewSerial(Config{DrainTimeout: timeout})

		block := make(chan struct{})
		var count atomic.Int32
		exec.Execute(func() { <-block })
		for i := 0; i < 20; i++ {
			exec.Execute(func() {
				time.Sleep(2 * time.Millisecond)
				count.Add(1)
			})
		}

		closed := make(chan struct{})
		go func() {
			_ = exec.Close()
			close(closed)
		}()
		time.Sleep(20 * time.Millisecond)
		close(block)

		select {
		case <-closed:
		case <-time.After(2 * time.Second):
			t.Fatal("Close did not return")
		}
		assert.Equal(t, int32(20), count.Load(), "timeout %v", timeout)
		assert.Zero(t, exec.Dropped())
	}
}

func TestSerialCloseDrainTimeout(t *testing.T) {
	exec := NewSerial(Config{DrainTimeout: 20 * time.Millisecond})

	block := make(chan struct{})
	exec.Execute(func() { <-block })
	for i := 0; i < 10; i++ {
		exec.Execute(func() { time.Sleep(5 * time.Millisecond) })
	}

	closed := make(chan struct{})
	go func() {
		_ = exec.Close()
		close(closed)
	}()
	time.Sleep(50 * time.Millisecond)
	close(block)

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return")
	}
	assert.NotZero(t, exec.Dropped())
}

func TestSerialRecoversPanic(t *testing.T) {
	var recovered atomic.Value
	exec := NewSerial(Config{OnPanic: func(r any) { recovered.Store(r) }})
	defer exec.Close()

	exec.Execute(func() { panic("worker boom") })
	ran := false
	exec.Execute(func() { ran = true })
	exec.Flush()

	assert.True(t, ran)
	assert.Equal(t, "worker boom", recovered.Load())
	snap := exec.Stats().Snapshot()
	assert.Equal(t, uint64(2), snap.Processed)
	assert.Equal(t, uint64(1), snap.Panicked)
}

func TestSerialConcurrentProducers(t *testing.T) {
	exec := NewSerial(Config{})
	defer exec.Close()

	var count int // only touched on the worker
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 250; j++ {
				exec.Execute(func() { count++ })
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	exec.Flush()

	assert.Equal(t, 2000, count)
	assert.Zero(t, exec.Stats().Snapshot().Pending())
}
