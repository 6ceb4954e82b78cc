package rediscache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/geoauth/pkg/helpers"
)

// CodeStore keeps short-lived verification codes in Redis, one active code
// per email. Writing resets the TTL; expiry is the only eviction.
type CodeStore struct {
	rdb *redis.Client
}

func NewCodeStore(rdb *redis.Client) *CodeStore {
	return &CodeStore{rdb: rdb}
}

// Set stores code under the email's key with the given TTL, overwriting any
// previous code.
func (s *CodeStore) Set(ctx context.Context, email, code string, ttl time.Duration) error {
	return s.rdb.Set(ctx, helpers.KeyVerificationCode(email), code, ttl).Err()
}

// Get returns the active code for email. The second return is false when no
// code is stored (never sent, or TTL elapsed).
func (s *CodeStore) Get(ctx context.Context, email string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, helpers.KeyVerificationCode(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}
