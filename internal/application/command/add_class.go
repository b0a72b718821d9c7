package command

import (
	"context"
	"fmt"

	"github.com/DonovanJJ/tp/internal/domain/roster"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD CLASS COMMAND
// ══════════════════════════════════════════════════════════════════════════════

const (
	WordAddClass = "add"

	UsageAddClass = WordAddClass + ": Adds a class to EduTrack.\n" +
		"Parameters: /c CLASS_NAME\n" +
		"Example: " + WordAddClass + " /c CS2103T"

	MessageAddClassSuccess = "New class added: %s"
)

// AddClassCommand creates an empty class.
type AddClassCommand struct {
	Name roster.ClassName
}

// Word implements Command.
func (AddClassCommand) Word() string { return WordAddClass }

// Execute implements Command.
func (c AddClassCommand) Execute(_ context.Context, m *Model) (Result, error) {
	added, err := m.roster.AddClass(c.Name)
	if err != nil {
		return Result{}, err
	}
	return refreshed(fmt.Sprintf(MessageAddClassSuccess, added)), nil
}

func (AddClassCommand) sealed() {}
