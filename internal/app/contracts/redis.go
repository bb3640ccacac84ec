package contracts

import (
	"context"
	"time"
)

// RedisRepository compare operations return one of the constvars.RedisCompare*
// outcomes and only touch key when it still holds value.
type RedisRepository interface {
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	CompareAndDelete(ctx context.Context, key string, value interface{}) (int64, error)
	CompareAndExpire(ctx context.Context, key string, value interface{}, exp time.Duration) (int64, error)
}
