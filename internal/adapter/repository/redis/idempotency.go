package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// inFlight marks a key whose first request has not finished yet.
const inFlight = "in-flight"

// IdempotencyStore implements usecase.IdempotencyStore on Redis. Replayed
// transaction requests get the recorded response instead of moving money
// twice.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "txn:idem:",
	}
}

// CheckAndSet claims the key for the caller. It returns (false, nil, nil)
// when the claim succeeded and the caller should process the request, or
// (true, recorded, nil) when another request already holds the key. A nil
// recorded response means the first request is still in flight.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	fullKey := s.prefix + key

	value := any(inFlight)
	if response != nil {
		value = response
	}

	claimed, err := s.client.SetNX(ctx, fullKey, value, ttl).Result()
	if err != nil {
		return false, nil, err
	}
	if claimed {
		return false, nil, nil
	}

	recorded, err := s.client.Get(ctx, fullKey).Bytes()
	if errors.Is(err, redis.Nil) {
		// The claim expired between SetNX and Get. Treat it as a replay with
		// nothing recorded rather than racing for a second claim.
		return true, nil, nil
	}
	if err != nil {
		return false, nil, err
	}
	if string(recorded) == inFlight {
		return true, nil, nil
	}
	return true, recorded, nil
}

// Update records the final response under an already-claimed key.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, response, ttl).Err()
}
