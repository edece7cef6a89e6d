package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/aretw0/solstice/internal/logging"
	"github.com/aretw0/solstice/pkg/domain"
	"github.com/aretw0/solstice/pkg/ports"
)

// defaultLockTTL bounds how long a crashed holder can wedge a distributed
// lock before it expires.
const defaultLockTTL = 30 * time.Second

// lockEntry holds the per-puzzle mutex and its reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager serializes archive access per puzzle ID, so concurrent writers on
// the same puzzle cannot interleave. Locks are reference counted and garbage
// collected once unused; an optional distributed locker extends the guarantee
// across replicas sharing one store.
type Manager struct {
	store ports.PuzzleStore

	mu    sync.Mutex
	locks map[string]*lockEntry

	locker  ports.DistributedLocker
	lockTTL time.Duration
	logger  *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLockTTL overrides the distributed lock expiry.
func WithLockTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.lockTTL = ttl
		}
	}
}

// WithLogger configures a logger for deferred errors.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a Manager over the given puzzle store.
func NewManager(store ports.PuzzleStore, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		locks:   make(map[string]*lockEntry),
		lockTTL: defaultLockTTL,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller must Lock entry.mu and then call release(id) after unlocking.
func (m *Manager) acquire(id string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		entry = &lockEntry{}
		m.locks[id] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and drops the entry at zero.
func (m *Manager) release(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, id)
	}
}

// WithLock executes fn while holding the lock for the puzzle ID, local first
// and then distributed when a locker is configured.
func (m *Manager) WithLock(ctx context.Context, id string, fn func(context.Context) error) error {
	entry := m.acquire(id)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(id)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, id, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"puzzle_id", id,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}

// Load retrieves a puzzle from the store under its lock.
func (m *Manager) Load(ctx context.Context, id string) (domain.Puzzle, error) {
	var p domain.Puzzle
	err := m.WithLock(ctx, id, func(ctx context.Context) error {
		var err error
		p, err = m.store.Load(ctx, id)
		return err
	})
	return p, err
}

// Save persists a puzzle under its lock.
func (m *Manager) Save(ctx context.Context, p domain.Puzzle) error {
	return m.WithLock(ctx, p.ID, func(ctx context.Context) error {
		return m.store.Save(ctx, p)
	})
}

// Delete removes a puzzle under its lock.
func (m *Manager) Delete(ctx context.Context, id string) error {
	return m.WithLock(ctx, id, func(ctx context.Context) error {
		return m.store.Delete(ctx, id)
	})
}

// List delegates to the store; listing takes no per-puzzle lock.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying puzzle store.
func (m *Manager) Store() ports.PuzzleStore {
	return m.store
}
