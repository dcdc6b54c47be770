package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLayered(t *testing.T) {
	ctx := context.Background()
	local := NewShardedCache(100, time.Minute, 4)
	shared := NewShardedCache(100, time.Minute, 4)
	l := NewLayered(local, shared)
	defer l.Stop()

	shared.Set(ctx, "poster|10", quote(100))

	_, inLocal := local.Get(ctx, "poster|10")
	assert.False(t, inLocal)

	v, ok := l.Get(ctx, "poster|10")
	assert.True(t, ok)
	assert.Equal(t, 100.0, v.Total)

	_, inLocal = local.Get(ctx, "poster|10")
	assert.True(t, inLocal, "shared hit fills the local cache")

	l.Set(ctx, "card|500", quote(60))
	_, inShared := shared.Get(ctx, "card|500")
	assert.True(t, inShared)

	l.Invalidate(ctx, "card|500")
	_, ok = l.Get(ctx, "card|500")
	assert.False(t, ok)

	l.Clear(ctx)
	_, ok = l.Get(ctx, "poster|10")
	assert.False(t, ok)
}
