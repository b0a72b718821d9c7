// Package persistence selects and opens the configured snapshot store.
package persistence

import (
	"context"
	"fmt"

	"github.com/DonovanJJ/tp/config"
	"github.com/DonovanJJ/tp/internal/domain/roster"
	"github.com/DonovanJJ/tp/internal/infrastructure/persistence/file"
	"github.com/DonovanJJ/tp/internal/infrastructure/persistence/memory"
	"github.com/DonovanJJ/tp/internal/infrastructure/persistence/postgres"
	"github.com/DonovanJJ/tp/internal/infrastructure/persistence/redis"
	"github.com/DonovanJJ/tp/pkg/logger"
)

// Store is an opened repository plus the function that releases it.
type Store struct {
	Repository roster.Repository
	Driver     string
	close      func() error
}

// Close releases connections held by the store.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open connects to the store named by cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Store, error) {
	driver := cfg.Storage.Driver
	log = log.With(logger.Driver(driver))

	ctx, cancel := context.WithTimeout(ctx, cfg.Storage.Timeout)
	defer cancel()

	switch driver {
	case config.DriverMemory:
		return &Store{Repository: memory.NewStore(), Driver: driver}, nil

	case config.DriverFile:
		s := file.NewStore(cfg.Storage.Path, file.Format(cfg.Storage.Format))
		log.Debug("using file store", logger.String("path", s.Path()))
		return &Store{Repository: s, Driver: driver}, nil

	case config.DriverPostgres:
		conn, err := postgres.NewConnection(ctx, postgres.Config{
			URL:             cfg.Database.URL,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.ConnMaxLifetime,
			MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
			ConnectTimeout:  cfg.Database.ConnectTimeout,
		})
		if err != nil {
			return nil, err
		}
		if err := postgres.NewMigrator(conn).Migrate(ctx); err != nil {
			conn.Close()
			return nil, err
		}
		log.Debug("postgres schema up to date")
		return &Store{
			Repository: Guard(postgres.NewSnapshotRepository(conn, cfg.Storage.Retries), driver, log),
			Driver:     driver,
			close:      func() error { conn.Close(); return nil },
		}, nil

	case config.DriverRedis:
		rcfg := redis.Config{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			Key:          cfg.Redis.Key,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		}
		client, err := redis.NewClient(ctx, rcfg)
		if err != nil {
			return nil, err
		}
		return &Store{
			Repository: Guard(redis.NewSnapshotStore(client, rcfg, cfg.Storage.Retries), driver, log),
			Driver:     driver,
			close:      client.Close,
		}, nil
	}

	return nil, fmt.Errorf("persistence: unknown storage driver %q", driver)
}
