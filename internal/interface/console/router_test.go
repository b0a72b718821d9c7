package console

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DonovanJJ/tp/internal/application/command"
	"github.com/DonovanJJ/tp/internal/domain/roster"
	"github.com/DonovanJJ/tp/internal/domain/shared"
	"github.com/DonovanJJ/tp/internal/infrastructure/persistence/memory"
	"github.com/DonovanJJ/tp/pkg/logger"
)

type failingRepo struct {
	err error
}

func (f failingRepo) Load(context.Context) (*roster.Roster, error) { return roster.New(), nil }
func (f failingRepo) Save(context.Context, roster.Snapshot) error  { return f.err }

func newTestRouter(repo roster.Repository) *Router {
	return NewRouter(command.NewModel(nil), RouterConfig{Repository: repo})
}

func TestRouter_SavesAfterEverySuccessfulCommand(t *testing.T) {
	store := memory.NewStore()
	r := newTestRouter(store)
	ctx := context.Background()

	_, err := r.Handle(ctx, "add /c T01")
	require.NoError(t, err)
	_, err = r.Handle(ctx, "add /s Alice /id A0000001A /c T01")
	require.NoError(t, err)
	assert.Equal(t, 2, store.Saves())

	snap, ok := store.Last()
	require.True(t, ok)
	require.Len(t, snap.Classes, 1)
	assert.Equal(t, "Alice", snap.Classes[0].Students[0].Name)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, r.Model().Roster().Equal(loaded))
}

func TestRouter_FailuresDoNotSave(t *testing.T) {
	store := memory.NewStore()
	r := newTestRouter(store)
	ctx := context.Background()

	_, err := r.Handle(ctx, "add /c T01")
	require.NoError(t, err)

	tests := []struct {
		line  string
		check func(error) bool
	}{
		{"bogus", shared.IsUnknownCommand},
		{"add", shared.IsCommandFormat},
		{"add /c #", shared.IsValidation},
		{"add /c t01", shared.IsCommandExecution},
		{"mark /s 1 /c T01", shared.IsCommandExecution},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			res, err := r.Handle(ctx, tt.line)
			require.Error(t, err)
			assert.True(t, tt.check(err))
			assert.Equal(t, command.Result{}, res)
		})
	}
	assert.Equal(t, 1, store.Saves())
}

func TestRouter_SaveFailureKeepsResult(t *testing.T) {
	r := newTestRouter(failingRepo{err: errors.New("disk full")})

	res, err := r.Handle(context.Background(), "add /c T01")
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrStorage)
	assert.Equal(t, MessageSaveFailed+"disk full", shared.Message(err))
	assert.Equal(t, "New class added: T01", res.Feedback)
	assert.True(t, r.Model().Roster().HasClass("T01"), "the change stands in memory")
}

func TestRouter_WithoutRepository(t *testing.T) {
	r := newTestRouter(nil)
	res, err := r.Handle(context.Background(), "exit")
	require.NoError(t, err)
	assert.True(t, res.Exit)
}

func TestRouter_LogsRejectedCommands(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Output: &buf, Level: logger.LevelInfo})
	r := NewRouter(command.NewModel(nil), RouterConfig{Logger: log})

	_, err := r.Handle(context.Background(), "remove /s x /c T01")
	require.Error(t, err)

	var entry struct {
		Level   string         `json:"level"`
		Message string         `json:"message"`
		Fields  map[string]any `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "command rejected", entry.Message)
	assert.Equal(t, "remove /s", entry.Fields["command"])
	assert.Equal(t, "command_format", entry.Fields["kind"])
	assert.Equal(t, "router", entry.Fields["component"])
}
