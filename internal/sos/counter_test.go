package sos

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCounter_ConcurrentIncrements(t *testing.T) {
	c := NewMemoryCounter()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Increment(context.Background(), "alice")
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), c.Count("alice"))
	assert.Zero(t, c.Count("bob"))

	n, err := c.Increment(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(101), n)
}
