package database

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	id int
}

func TestHandle_ConnectsOnce(t *testing.T) {
	var connects atomic.Int32
	h := NewHandle(func(ctx context.Context) (*fakeConn, error) {
		n := connects.Add(1)
		time.Sleep(10 * time.Millisecond)
		return &fakeConn{id: int(n)}, nil
	}, nil)

	const callers = 20
	results := make([]*fakeConn, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			conn, err := h.Get(context.Background())
			assert.NoError(t, err)
			results[i] = conn
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), connects.Load())
	for _, conn := range results {
		assert.Same(t, results[0], conn)
	}
}

func TestHandle_FailedConnectIsRetried(t *testing.T) {
	var attempts int
	h := NewHandle(func(ctx context.Context) (*fakeConn, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("connection refused")
		}
		return &fakeConn{id: attempts}, nil
	}, nil)

	_, err := h.Get(context.Background())
	require.Error(t, err)

	conn, err := h.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, conn.id)

	again, err := h.Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, conn, again)
	assert.Equal(t, 2, attempts)
}

func TestHandle_CloseReleasesAndReconnects(t *testing.T) {
	var released []int
	var attempts int
	h := NewHandle(func(ctx context.Context) (*fakeConn, error) {
		attempts++
		return &fakeConn{id: attempts}, nil
	}, func(c *fakeConn) {
		released = append(released, c.id)
	})

	// Close before any Get is a no-op
	h.Close()
	assert.Empty(t, released)

	first, err := h.Get(context.Background())
	require.NoError(t, err)
	h.Close()
	assert.Equal(t, []int{first.id}, released)

	second, err := h.Get(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, attempts)
}
