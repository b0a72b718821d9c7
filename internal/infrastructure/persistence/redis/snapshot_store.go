package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DonovanJJ/tp/internal/domain/roster"
	"github.com/DonovanJJ/tp/internal/domain/shared"
	"github.com/DonovanJJ/tp/pkg/retry"
)

// DefaultHistoryLength is how many past snapshots the history list keeps.
const DefaultHistoryLength = 20

// Commander is the subset of the go-redis client the store uses.
// *redis.Client satisfies it.
type Commander interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	LPush(ctx context.Context, key string, values ...any) *redis.IntCmd
	LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd
}

// SnapshotStore implements roster.Repository on a Redis string key.
type SnapshotStore struct {
	client     Commander
	key        string
	historyKey string
	retrier    *retry.Retrier
}

// NewSnapshotStore creates a store writing to cfg.Key.
func NewSnapshotStore(client Commander, cfg Config, attempts int) *SnapshotStore {
	return &SnapshotStore{
		client:     client,
		key:        cfg.Key,
		historyKey: cfg.HistoryKey(),
		retrier:    retry.StorageRetrier(attempts),
	}
}

// Load implements roster.Repository.
func (s *SnapshotStore) Load(ctx context.Context) (*roster.Roster, error) {
	data, err := retry.DoWithData(ctx, s.retrier, func(ctx context.Context) ([]byte, error) {
		b, err := s.client.Get(ctx, s.key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, retry.Permanent(ErrCacheMiss)
		}
		return b, err
	})
	if errors.Is(err, ErrCacheMiss) {
		return roster.New(), nil
	}
	if err != nil {
		return nil, storageError("Load", "failed to read roster snapshot", err)
	}

	var snap roster.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, storageError("Load", "failed to decode roster snapshot", err)
	}
	return roster.FromSnapshot(snap)
}

// Save implements roster.Repository. The history list is best effort; a
// failure there does not fail the save.
func (s *SnapshotStore) Save(ctx context.Context, snap roster.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return storageError("Save", "failed to encode roster snapshot", err)
	}

	err = s.retrier.Do(ctx, func(ctx context.Context) error {
		return s.client.Set(ctx, s.key, data, 0).Err()
	})
	if err != nil {
		return storageError("Save", "failed to write roster snapshot", err)
	}

	if err := s.client.LPush(ctx, s.historyKey, data).Err(); err == nil {
		_ = s.client.LTrim(ctx, s.historyKey, 0, DefaultHistoryLength-1).Err()
	}
	return nil
}

func storageError(op, msg string, err error) error {
	return shared.WrapError("redis", op, shared.ErrStorage, fmt.Sprintf("%s: %v", msg, err), err)
}
