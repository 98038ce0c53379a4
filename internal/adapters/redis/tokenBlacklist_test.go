package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisclient "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBlacklist(t *testing.T) (*TokenBlacklistRedis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redisclient.NewClient(&redisclient.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewTokenBlacklistRedis(client), mr
}

func TestBlacklistAddAndContains(t *testing.T) {
	bl, _ := setupBlacklist(t)
	ctx := context.Background()

	found, err := bl.Contains(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, bl.Add(ctx, "jti-1", time.Hour))

	found, err = bl.Contains(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestBlacklistEntryExpires(t *testing.T) {
	bl, mr := setupBlacklist(t)
	ctx := context.Background()

	require.NoError(t, bl.Add(ctx, "jti-1", time.Minute))
	mr.FastForward(2 * time.Minute)

	found, err := bl.Contains(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBlacklistSkipsExpiredToken(t *testing.T) {
	bl, _ := setupBlacklist(t)
	ctx := context.Background()

	// توکنی که عمرش تمام شده نیازی به ثبت ندارد
	require.NoError(t, bl.Add(ctx, "jti-1", -time.Minute))

	found, err := bl.Contains(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, found)
}
