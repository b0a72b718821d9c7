package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DonovanJJ/tp/internal/domain/roster"
	"github.com/DonovanJJ/tp/internal/domain/shared"
	"github.com/DonovanJJ/tp/pkg/retry"
)

// DefaultHistoryLimit is how many past snapshots are kept.
const DefaultHistoryLimit = 20

// SnapshotRepository implements roster.Repository on PostgreSQL.
type SnapshotRepository struct {
	conn         *Connection
	retrier      *retry.Retrier
	historyLimit int
}

// NewSnapshotRepository creates a repository. attempts bounds retries of
// transient failures; the schema must already be migrated.
func NewSnapshotRepository(conn *Connection, attempts int) *SnapshotRepository {
	return &SnapshotRepository{
		conn: conn,
		retrier: retry.New(
			retry.WithMaxAttempts(attempts),
			retry.WithRetryIf(IsTransient),
		),
		historyLimit: DefaultHistoryLimit,
	}
}

// Load implements roster.Repository.
func (r *SnapshotRepository) Load(ctx context.Context) (*roster.Roster, error) {
	doc, err := retry.DoWithData(ctx, r.retrier, func(ctx context.Context) ([]byte, error) {
		var doc []byte
		err := r.conn.QueryRow(ctx, `SELECT document FROM roster_snapshot WHERE id = 1`).Scan(&doc)
		if IsNoRows(err) {
			return nil, nil
		}
		return doc, err
	})
	if err != nil {
		return nil, storageError("Load", "failed to read roster snapshot", err)
	}
	if doc == nil {
		return roster.New(), nil
	}

	var snap roster.Snapshot
	if err := json.Unmarshal(doc, &snap); err != nil {
		return nil, storageError("Load", "failed to decode roster snapshot", err)
	}
	return roster.FromSnapshot(snap)
}

// Save implements roster.Repository. The current row and a history entry are
// written in one transaction; history beyond the limit is pruned.
func (r *SnapshotRepository) Save(ctx context.Context, snap roster.Snapshot) error {
	doc, err := json.Marshal(snap)
	if err != nil {
		return storageError("Save", "failed to encode roster snapshot", err)
	}
	classes, students := counts(snap)

	err = r.retrier.Do(ctx, func(ctx context.Context) error {
		return r.conn.WithTx(ctx, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, `
				INSERT INTO roster_snapshot (id, version, document, class_count, student_count, saved_at)
				VALUES (1, $1, $2, $3, $4, NOW())
				ON CONFLICT (id) DO UPDATE SET
					version = EXCLUDED.version,
					document = EXCLUDED.document,
					class_count = EXCLUDED.class_count,
					student_count = EXCLUDED.student_count,
					saved_at = EXCLUDED.saved_at`,
				snap.Version, doc, classes, students); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO roster_snapshot_history (version, document) VALUES ($1, $2)`,
				snap.Version, doc); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, `
				DELETE FROM roster_snapshot_history
				WHERE id NOT IN (
					SELECT id FROM roster_snapshot_history ORDER BY id DESC LIMIT $1
				)`, r.historyLimit)
			return err
		})
	})
	if err != nil {
		return storageError("Save", "failed to write roster snapshot", err)
	}
	return nil
}

func counts(snap roster.Snapshot) (classes, students int) {
	for _, c := range snap.Classes {
		students += len(c.Students)
	}
	return len(snap.Classes), students
}

func storageError(op, msg string, err error) error {
	return shared.WrapError("postgres", op, shared.ErrStorage, fmt.Sprintf("%s: %v", msg, err), err)
}
