package cli

import (
	"fmt"
	"log/slog"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/solstice/internal/adapters/file"
	"github.com/aretw0/solstice/pkg/adapters/memory"
	redisadapter "github.com/aretw0/solstice/pkg/adapters/redis"
	"github.com/aretw0/solstice/pkg/ports"
	"github.com/aretw0/solstice/pkg/session"
)

// DefaultDataDir is where the file-backed archive lives when --data-dir is
// not given.
const DefaultDataDir = ".solstice/puzzles"

// createStore builds the puzzle archive backend from serve options. The
// returned session options carry backend-specific extras, e.g. the
// distributed locker for Redis.
func createStore(opts ServeOptions, logger *slog.Logger) (ports.PuzzleStore, []session.Option, error) {
	switch opts.StoreKind {
	case "", "memory":
		return memory.NewStore(), nil, nil

	case "file":
		dir := opts.DataDir
		if dir == "" {
			dir = DefaultDataDir
		}
		return file.New(dir), nil, nil

	case "redis":
		client := backend.NewClient(&backend.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		store := redisadapter.NewFromClient(client)
		locker := redisadapter.NewLocker(client, "solstice:session:")
		logger.Debug("redis archive configured", "addr", opts.RedisAddr, "db", opts.RedisDB)
		return store, []session.Option{session.WithLocker(locker)}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store kind %q (supported: memory, file, redis)", opts.StoreKind)
	}
}
