package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/settlement/base/ctx"
)

// Forever is used as the expire duration of keys which should not expire
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("not found")

	// ErrExpireNotExistOrTimeout is returned when the key does not exist or
	// the timeout could not be set
	ErrExpireNotExistOrTimeout = errors.New("expire key not exist or timeout can not be set")
)

// Service wraps a redis connection pool
type Service interface {
	// Get returns the value of key. ErrNotFound is returned when the key
	// does not exist.
	Get(c ctx.Ctx, key string) ([]byte, error)

	// Set sets key to val with the given expire duration. Use Forever to
	// keep the key without expiration.
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error

	// Del removes the given keys and returns the number of keys removed
	Del(c ctx.Ctx, keys ...string) (int, error)

	// Exists checks whether key exists
	Exists(c ctx.Ctx, key string) (bool, error)

	// TTL returns the remaining time to live of key. Forever is returned
	// for keys without expiration. ErrNotFound is returned when the key
	// does not exist.
	TTL(c ctx.Ctx, key string) (time.Duration, error)

	// Incrby increments the number stored at key by val and returns the
	// value after the increment. The key is set to 0 first if it does
	// not exist.
	Incrby(c ctx.Ctx, key string, val int) (int64, error)
}
