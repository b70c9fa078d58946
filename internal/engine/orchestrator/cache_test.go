package orchestrator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/engine/orchestrator"
)

func TestCache_LastWriteWins(t *testing.T) {
	c := orchestrator.NewCache(0)
	first := &domain.Payload{Mode: domain.ModeHotels}
	second := &domain.Payload{Mode: domain.ModeHotels}

	c.Put("a", first)
	c.Put("a", second)

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, c.Len())
}

func TestCache_EvictsOldestWhenBounded(t *testing.T) {
	c := orchestrator.NewCache(2)

	c.Put("a", &domain.Payload{})
	c.Put("b", &domain.Payload{})
	c.Put("a", &domain.Payload{})
	c.Put("c", &domain.Payload{})

	_, ok := c.Get("a")
	assert.False(t, ok, "a was inserted first")
	_, ok = c.Get("b")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestCache_UnboundedKeepsEverything(t *testing.T) {
	c := orchestrator.NewCache(0)
	for _, fp := range []domain.Fingerprint{"a", "b", "c", "d"} {
		c.Put(fp, &domain.Payload{})
	}
	assert.Equal(t, 4, c.Len())
}

func TestRegistry(t *testing.T) {
	r := orchestrator.NewRegistry()

	_, ok := r.Get("a")
	assert.False(t, ok)

	p := &orchestrator.Pending{}
	r.Set("a", p)
	got, ok := r.Get("a")
	require.True(t, ok)
	assert.Same(t, p, got)
	assert.Equal(t, 1, r.Len())

	r.Delete("a")
	assert.Equal(t, 0, r.Len())
}

func TestPending_WaitHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &orchestrator.Pending{}
	_, err := p.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPending_SettledOutcomeWinsOverCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	want := &domain.Payload{Mode: domain.ModeHotels}
	p := orchestrator.NewSettledPending(want, nil)

	for range 100 {
		got, err := p.Wait(ctx)
		require.NoError(t, err)
		assert.Same(t, want, got)
	}
}
