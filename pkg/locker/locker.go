package locker

import (
	"context"
	"time"

	"github.com/ysEthan/magic-sync/config"
	"github.com/ysEthan/magic-sync/pkg/client"
	"github.com/ysEthan/magic-sync/pkg/log"
)

// Locker 进程间互斥，owner 用来保证只释放自己持有的锁
type Locker interface {
	TryLock(ctx context.Context, key, owner string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key, owner string) error
}

// ProvideLocker 配了 Redis 用分布式锁，否则进程内锁
func ProvideLocker(cfg *config.Config) Locker {
	if cfg.Redis.Enabled() {
		return NewRedisLocker(client.NewRedisClient(cfg))
	}
	log.L.Info("redis not configured, using local sync lock")
	return NewLocalLocker()
}
