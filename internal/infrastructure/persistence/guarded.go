package persistence

import (
	"context"

	"github.com/DonovanJJ/tp/internal/domain/roster"
	"github.com/DonovanJJ/tp/internal/domain/shared"
	"github.com/DonovanJJ/tp/pkg/circuitbreaker"
	"github.com/DonovanJJ/tp/pkg/logger"
)

// MessageStorageUnavailable is reported while the breaker skips saves.
const MessageStorageUnavailable = "storage is unavailable, changes are kept in memory only"

// GuardedRepository puts a circuit breaker in front of a network store, so
// that a session keeps responding while the backend is down.
type GuardedRepository struct {
	inner   roster.Repository
	breaker *circuitbreaker.Breaker
}

// Guard wraps inner with a breaker named after the driver. State changes are
// logged at warn.
func Guard(inner roster.Repository, driver string, log *logger.Logger, opts ...circuitbreaker.Option) *GuardedRepository {
	opts = append([]circuitbreaker.Option{
		circuitbreaker.WithOnStateChange(func(name string, from, to circuitbreaker.State) {
			log.Warn("storage circuit state changed",
				logger.Driver(name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
		}),
	}, opts...)
	return &GuardedRepository{inner: inner, breaker: circuitbreaker.New(driver, opts...)}
}

// Load implements roster.Repository. Loading happens once at startup and is
// not guarded.
func (g *GuardedRepository) Load(ctx context.Context) (*roster.Roster, error) {
	return g.inner.Load(ctx)
}

// Save implements roster.Repository.
func (g *GuardedRepository) Save(ctx context.Context, snap roster.Snapshot) error {
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.inner.Save(ctx, snap)
	})
	if circuitbreaker.IsOpen(err) {
		return shared.WrapError("persistence", "Save", shared.ErrStorage, MessageStorageUnavailable, err)
	}
	return err
}

// State returns the breaker state.
func (g *GuardedRepository) State() circuitbreaker.State {
	return g.breaker.State()
}
