package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIdempotencyStore_FirstClaimWins(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	replay, recorded, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	require.NoError(t, err)
	require.False(t, replay)
	require.Nil(t, recorded)

	val, err := client.Get(ctx, store.prefix+"key-1").Result()
	require.NoError(t, err)
	require.Equal(t, inFlight, val)
}

func TestIdempotencyStore_ReplayWhileInFlight(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	_, _, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	require.NoError(t, err)

	replay, recorded, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	require.NoError(t, err)
	require.True(t, replay)
	require.Nil(t, recorded, "no response should be recorded while in flight")
}

func TestIdempotencyStore_ReplayReturnsRecordedResponse(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	_, _, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Update(ctx, "key-1", []byte(`{"status":"accepted"}`), time.Minute))

	replay, recorded, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	require.NoError(t, err)
	require.True(t, replay)
	require.JSONEq(t, `{"status":"accepted"}`, string(recorded))
}

func TestIdempotencyStore_ClaimExpires(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	_, _, err := store.CheckAndSet(ctx, "key-1", nil, time.Second)
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	replay, _, err := store.CheckAndSet(ctx, "key-1", nil, time.Second)
	require.NoError(t, err)
	require.False(t, replay, "expired claim should be claimable again")
}
