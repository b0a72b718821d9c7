package command

import (
	"context"
	"fmt"

	"github.com/DonovanJJ/tp/internal/domain/roster"
	"github.com/DonovanJJ/tp/internal/domain/shared"
)

const (
	WordEditClass = "set"

	UsageEditClass = WordEditClass + ": Edits the details of a class. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: /c CLASS_NAME [/t SCHEDULE] [/l NUMBER_OF_LESSONS] [/note MEMO]\n" +
		"Example: " + WordEditClass + " /c CS2103T /t Mon 10:00-12:00 /l 13"

	MessageEditClassSuccess = "Edited class: %s"
)

// EditClassCommand changes the schedule, planned lessons or memo of a class.
// Fields left nil in Descriptor are preserved.
type EditClassCommand struct {
	Name       roster.ClassName
	Descriptor roster.ClassDescriptor
}

// Word implements Command.
func (EditClassCommand) Word() string { return WordEditClass }

// Execute implements Command.
func (c EditClassCommand) Execute(_ context.Context, m *Model) (Result, error) {
	if !c.Descriptor.IsAnyFieldEdited() {
		return Result{}, shared.ErrNothingToEdit
	}
	edited, err := m.roster.EditClass(c.Name, c.Descriptor)
	if err != nil {
		return Result{}, err
	}
	return feedback(fmt.Sprintf(MessageEditClassSuccess, edited)), nil
}

func (EditClassCommand) sealed() {}
