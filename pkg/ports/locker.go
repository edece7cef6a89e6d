package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a previously acquired lock. It is safe to call with a
// fresh context after the acquiring one is done.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker serializes access to one puzzle across processes. The
// session manager takes a lock around every read-modify-write so concurrent
// solvers on different hosts cannot interleave steps on the same board.
type DistributedLocker interface {
	// Lock blocks until the lock for key is held or ctx is done. The ttl
	// bounds how long a crashed holder can wedge the key.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
