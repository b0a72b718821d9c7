package command

import (
	"context"
	"fmt"

	"github.com/DonovanJJ/tp/internal/domain/roster"
)

const (
	WordRemoveClass = "remove"

	UsageRemoveClass = WordRemoveClass + ": Removes a class and all of its students.\n" +
		"Parameters: /c CLASS_NAME\n" +
		"Example: " + WordRemoveClass + " /c CS2103T"

	MessageRemoveClassSuccess = "Class removed: %s (%d student(s) removed)"
)

// RemoveClassCommand deletes a class together with its students.
type RemoveClassCommand struct {
	Name roster.ClassName
}

// Word implements Command.
func (RemoveClassCommand) Word() string { return WordRemoveClass }

// Execute implements Command.
func (c RemoveClassCommand) Execute(_ context.Context, m *Model) (Result, error) {
	removed, err := m.roster.RemoveClass(c.Name)
	if err != nil {
		return Result{}, err
	}
	if m.view.Class == removed.Name {
		m.view.Class = ""
	}
	return refreshed(fmt.Sprintf(MessageRemoveClassSuccess, removed.Name, removed.Size())), nil
}

func (RemoveClassCommand) sealed() {}
