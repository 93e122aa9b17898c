package corpus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/memberqa/internal/core"
)

type stubFetcher struct {
	calls int32
	delay time.Duration
	err   error
	msgs  []core.Message
}

func (s *stubFetcher) Fetch(ctx context.Context) ([]core.Message, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.msgs, nil
}

var sample = []core.Message{
	{UserName: "Vikram Desai", Message: "a", Timestamp: "2025-01-03"},
	{UserName: "Layla Kawaguchi", Message: "b", Timestamp: "2025-01-02"},
	{UserName: "", Message: "c", Timestamp: "2025-01-01"},
	{UserName: "Vikram Desai", Message: "d", Timestamp: "2025-01-00"},
}

func TestCache_Load(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(c *Cache)
		wantCalls int32
	}{
		{
			name:      "first load fetches",
			setup:     func(c *Cache) {},
			wantCalls: 1,
		},
		{
			name: "repeated loads reuse snapshot",
			setup: func(c *Cache) {
				_, _ = c.Load(context.Background())
				_, _ = c.Load(context.Background())
			},
			wantCalls: 1,
		},
		{
			name: "invalidate forces refetch",
			setup: func(c *Cache) {
				_, _ = c.Load(context.Background())
				c.Invalidate()
			},
			wantCalls: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &stubFetcher{msgs: sample}
			c := NewCache(f)
			tt.setup(c)

			snap, err := c.Load(context.Background())
			require.NoError(t, err)
			assert.Len(t, snap.Messages, 4)
			assert.Equal(t, []string{"Layla Kawaguchi", "Vikram Desai"}, snap.Names)
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&f.calls))
		})
	}
}

func TestCache_ConcurrentLoadsCoalesce(t *testing.T) {
	f := &stubFetcher{msgs: sample, delay: 50 * time.Millisecond}
	c := NewCache(f)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Load(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&f.calls))
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	f := &stubFetcher{err: errors.New("upstream down")}
	c := NewCache(f)

	_, err := c.Load(context.Background())
	require.Error(t, err)

	f.err = nil
	f.msgs = sample
	snap, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Messages, 4)
	assert.Equal(t, int32(2), atomic.LoadInt32(&f.calls))
}

func TestKnownNames(t *testing.T) {
	assert.Equal(t, []string{"Layla Kawaguchi", "Vikram Desai"}, KnownNames(sample))
	assert.Equal(t, []string{}, KnownNames(nil))
}

// slowFetcher honors ctx, so a fetch bound to a cancelled caller would fail.
type slowFetcher struct {
	calls int32
	delay time.Duration
}

func (s *slowFetcher) Fetch(ctx context.Context) ([]core.Message, error) {
	atomic.AddInt32(&s.calls, 1)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.delay):
		return sample, nil
	}
}

func TestCache_CancelledCallerDoesNotFailSharedFetch(t *testing.T) {
	f := &slowFetcher{delay: 200 * time.Millisecond}
	c := NewCache(f)

	shortCtx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	errA := make(chan error, 1)
	go func() {
		_, err := c.Load(shortCtx)
		errA <- err
	}()

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&f.calls) == 1
	}, time.Second, 5*time.Millisecond)

	snap, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Messages, 4)

	assert.ErrorIs(t, <-errA, context.DeadlineExceeded)
	assert.Equal(t, int32(1), atomic.LoadInt32(&f.calls))

	cached, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, cached.Messages, 4)
	assert.Equal(t, int32(1), atomic.LoadInt32(&f.calls))
}

// gatedFetcher reports each fetch on started and blocks until release is closed.
type gatedFetcher struct {
	mu      sync.Mutex
	calls   int
	started chan int
	release chan struct{}
}

func (g *gatedFetcher) Fetch(ctx context.Context) ([]core.Message, error) {
	g.mu.Lock()
	g.calls++
	n := g.calls
	g.mu.Unlock()

	g.started <- n
	<-g.release
	return []core.Message{{UserName: fmt.Sprintf("Member %d", n), Message: "m", Timestamp: "2025-01-01"}}, nil
}

func TestCache_LoadAfterInvalidateStartsNewFetch(t *testing.T) {
	g := &gatedFetcher{started: make(chan int, 2), release: make(chan struct{})}
	c := NewCache(g)

	type result struct {
		snap core.Snapshot
		err  error
	}
	first := make(chan result, 1)
	go func() {
		snap, err := c.Load(context.Background())
		first <- result{snap, err}
	}()
	require.Equal(t, 1, <-g.started)

	c.Invalidate()

	second := make(chan result, 1)
	go func() {
		snap, err := c.Load(context.Background())
		second <- result{snap, err}
	}()

	select {
	case n := <-g.started:
		assert.Equal(t, 2, n)
	case <-time.After(time.Second):
		close(g.release)
		t.Fatal("load after invalidate joined the stale fetch")
	}
	close(g.release)

	r1 := <-first
	require.NoError(t, r1.err)
	assert.Equal(t, []string{"Member 1"}, r1.snap.Names)

	r2 := <-second
	require.NoError(t, r2.err)
	assert.Equal(t, []string{"Member 2"}, r2.snap.Names)

	snap, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Member 2"}, snap.Names)
}
