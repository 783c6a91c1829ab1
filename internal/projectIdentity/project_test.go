package projectIdentity

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverOrder(t *testing.T) {
	r := NewResolverWithSources(
		Static(""),
		func(context.Context) (string, error) { return "", errors.New("no credentials") },
		Static("from-metadata"),
	)

	id, err := r.ProjectID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-metadata", id)
}

func TestResolverExplicitWins(t *testing.T) {
	called := false
	r := NewResolverWithSources(
		Static("explicit"),
		func(context.Context) (string, error) { called = true; return "other", nil },
	)

	id, err := r.ProjectID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "explicit", id)
	assert.False(t, called)
}

func TestResolverResolvesOnce(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	r := NewResolverWithSources(func(context.Context) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return "p", nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := r.ProjectID(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "p", id)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
}

func TestResolverNotResolved(t *testing.T) {
	r := NewResolverWithSources(Static(""))

	_, err := r.ProjectID(context.Background())
	assert.ErrorIs(t, err, ErrNotResolved)
}
