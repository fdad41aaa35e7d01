package locker

import (
	"context"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type entry struct {
	owner    string
	expireAt time.Time
}

// LocalLocker 没配 Redis 时的单进程实现
type LocalLocker struct {
	locks cmap.ConcurrentMap[string, entry]
	now   func() time.Time
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		locks: cmap.New[entry](),
		now:   time.Now,
	}
}

func (l *LocalLocker) TryLock(_ context.Context, key, owner string, ttl time.Duration) (bool, error) {
	now := l.now()
	l.locks.RemoveCb(key, func(_ string, v entry, exists bool) bool {
		return exists && !v.expireAt.IsZero() && now.After(v.expireAt)
	})

	var expireAt time.Time
	if ttl > 0 {
		expireAt = now.Add(ttl)
	}
	return l.locks.SetIfAbsent(key, entry{owner: owner, expireAt: expireAt}), nil
}

func (l *LocalLocker) Unlock(_ context.Context, key, owner string) error {
	l.locks.RemoveCb(key, func(_ string, v entry, exists bool) bool {
		return exists && v.owner == owner
	})
	return nil
}

var _ Locker = (*LocalLocker)(nil)
