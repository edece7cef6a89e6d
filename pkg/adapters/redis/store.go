// Package redis persists puzzles in Redis, for deployments where several
// server instances share one archive. Each puzzle is a JSON value under a
// prefixed key, with a sorted-set index so listing does not scan the keyspace.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/solstice/pkg/domain"
	"github.com/aretw0/solstice/pkg/ports"
)

// Store implements ports.PuzzleStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

var _ ports.PuzzleStore = (*Store)(nil)

type Option func(*Store)

// WithTTL sets the expiration for stored puzzles. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for puzzles.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a Redis store from an existing client. Tests use this
// with miniredis.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "solstice:puzzle:",
		ttl:    0,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// indexHorizon scores unexpiring entries far enough in the future that lazy
// cleanup never prunes them: 2100-01-01 as a Unix timestamp.
const indexHorizon = 4102444800

// Save persists the puzzle and registers it in the index.
func (s *Store) Save(ctx context.Context, p domain.Puzzle) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle: %w", err)
	}

	// Score = expiry time, so List can prune lapsed entries lazily.
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = indexHorizon
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(p.ID), data, s.ttl)
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{Score: score, Member: p.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves a puzzle by ID.
func (s *Store) Load(ctx context.Context, id string) (domain.Puzzle, error) {
	val, err := s.client.Get(ctx, s.key(id)).Result()
	if err != nil {
		if err == backend.Nil {
			return domain.Puzzle{}, fmt.Errorf("puzzle %q: %w", id, domain.ErrPuzzleNotFound)
		}
		return domain.Puzzle{}, fmt.Errorf("failed to get from redis: %w", err)
	}

	var p domain.Puzzle
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		return domain.Puzzle{}, fmt.Errorf("failed to unmarshal puzzle %q: %w", id, err)
	}
	return p, nil
}

// Delete removes the puzzle and its index entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(id))
	pipe.ZRem(ctx, s.indexKey(), id)
	_, err := pipe.Exec(ctx)
	return err
}

// List returns the stored puzzle IDs, pruning index entries whose values have
// expired. Redis drops the values itself; the index needs this lazy sweep.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err(); err != nil {
		return nil, fmt.Errorf("failed to prune expired puzzles: %w", err)
	}

	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list puzzles: %w", err)
	}
	return ids, nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
