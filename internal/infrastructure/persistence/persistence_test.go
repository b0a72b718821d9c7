package persistence

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DonovanJJ/tp/config"
	"github.com/DonovanJJ/tp/internal/domain/roster"
	"github.com/DonovanJJ/tp/internal/domain/shared"
	"github.com/DonovanJJ/tp/pkg/circuitbreaker"
	"github.com/DonovanJJ/tp/pkg/logger"
)

type flakyRepo struct {
	err   error
	saves int
}

func (f *flakyRepo) Load(context.Context) (*roster.Roster, error) { return roster.New(), nil }

func (f *flakyRepo) Save(context.Context, roster.Snapshot) error {
	f.saves++
	return f.err
}

func TestGuard_SkipsSavesWhileOpen(t *testing.T) {
	inner := &flakyRepo{err: errors.New("connection refused")}
	g := Guard(inner, "redis", logger.Nop(), circuitbreaker.WithFailureThreshold(2), circuitbreaker.WithTimeout(time.Hour))
	ctx := context.Background()
	snap := roster.New().Snapshot()

	assert.EqualError(t, g.Save(ctx, snap), "connection refused")
	assert.EqualError(t, g.Save(ctx, snap), "connection refused")
	assert.Equal(t, circuitbreaker.StateOpen, g.State())

	err := g.Save(ctx, snap)
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrStorage)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.Equal(t, MessageStorageUnavailable, shared.Message(err))
	assert.Equal(t, 2, inner.saves, "the backend is not called while open")
}

func TestGuard_PassesThroughSuccess(t *testing.T) {
	inner := &flakyRepo{}
	g := Guard(inner, "postgres", logger.Nop())

	require.NoError(t, g.Save(context.Background(), roster.New().Snapshot()))
	r, err := g.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, r)
	assert.Equal(t, 1, inner.saves)
}

func testConfig(driver string) *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{Driver: driver, Timeout: time.Second, Retries: 1, Format: "yaml"},
	}
}

func TestOpen_LocalDrivers(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, testConfig(config.DriverMemory), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, s.Driver)
	assert.NoError(t, s.Close())

	cfg := testConfig(config.DriverFile)
	cfg.Storage.Path = filepath.Join(t.TempDir(), "roster.yaml")
	s, err = Open(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Repository.Save(ctx, roster.New().Snapshot()))
	r, err := s.Repository.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, r.NumClasses())
	assert.NoError(t, s.Close())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), testConfig("ftp"), logger.Nop())
	assert.EqualError(t, err, `persistence: unknown storage driver "ftp"`)
}
