package locker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// 值相同才删除，防止锁过期后误删别人的锁
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	Redis *redis.Client
}

func NewRedisLocker(rds *redis.Client) *RedisLocker {
	return &RedisLocker{Redis: rds}
}

func (l *RedisLocker) TryLock(ctx context.Context, key, owner string, ttl time.Duration) (bool, error) {
	return l.Redis.SetNX(ctx, key, owner, ttl).Result()
}

func (l *RedisLocker) Unlock(ctx context.Context, key, owner string) error {
	return unlockScript.Run(ctx, l.Redis, []string{key}, owner).Err()
}

var _ Locker = (*RedisLocker)(nil)
