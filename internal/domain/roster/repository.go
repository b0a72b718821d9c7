package roster

import "context"

// Repository persists roster snapshots. It lives outside the command pipeline:
// the pipeline hands it a Snapshot after each successful command and never
// sees how it is stored.
type Repository interface {
	// Load restores the stored roster. An empty roster is returned when
	// nothing has been stored yet.
	Load(ctx context.Context) (*Roster, error)

	// Save replaces the stored roster with snap.
	Save(ctx context.Context, snap Snapshot) error
}
