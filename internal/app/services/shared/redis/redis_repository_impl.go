package redis

import (
	"context"
	"mentor-service/internal/app/contracts"
	"mentor-service/internal/pkg/exceptions"

	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Both scripts answer -1 when key holds another value and 0 when it is gone.
var (
	compareAndDeleteScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if not current then
	return 0
end
if current ~= ARGV[1] then
	return -1
end
return redis.call("DEL", KEYS[1])
`)

	compareAndExpireScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if not current then
	return 0
end
if current ~= ARGV[1] then
	return -1
end
return redis.call("PEXPIRE", KEYS[1], ARGV[2])
`)
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

// TrySetNX stores value JSON encoded when key is absent.
func (r *redisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	acquired, err := r.client.SetNX(ctx, key, jsonValue, exp).Result()
	if err != nil {
		return false, exceptions.ErrRedisSet(err)
	}
	return acquired, nil
}

func (r *redisRepository) CompareAndDelete(ctx context.Context, key string, value interface{}) (int64, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return 0, exceptions.ErrCannotMarshalJSON(err)
	}

	outcome, err := compareAndDeleteScript.Run(ctx, r.client, []string{key}, string(jsonValue)).Int64()
	if err != nil {
		return 0, exceptions.ErrRedisDelete(err)
	}
	return outcome, nil
}

func (r *redisRepository) CompareAndExpire(ctx context.Context, key string, value interface{}, exp time.Duration) (int64, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return 0, exceptions.ErrCannotMarshalJSON(err)
	}

	outcome, err := compareAndExpireScript.Run(ctx, r.client, []string{key}, string(jsonValue), exp.Milliseconds()).Int64()
	if err != nil {
		return 0, exceptions.ErrRedisExpire(err)
	}
	return outcome, nil
}
