package command

import (
	"context"

	"github.com/DonovanJJ/tp/internal/domain/roster"
)

const (
	WordClear = "clear"

	UsageClear = WordClear + ": Deletes every class and student."

	MessageClearSuccess = "EduTrack's data has been cleared!"
)

// ClearCommand replaces the roster with an empty one.
type ClearCommand struct{}

// Word implements Command.
func (ClearCommand) Word() string { return WordClear }

// Execute implements Command. It never fails.
func (ClearCommand) Execute(_ context.Context, m *Model) (Result, error) {
	m.SetRoster(roster.New())
	return refreshed(MessageClearSuccess), nil
}

func (ClearCommand) sealed() {}
