package command

import (
	"context"
	"fmt"

	"github.com/DonovanJJ/tp/internal/domain/roster"
	"github.com/DonovanJJ/tp/internal/domain/shared"
)

const (
	WordRemoveStudent = "remove /s"

	UsageRemoveStudent = WordRemoveStudent + ": Removes a student from a class.\n" +
		"Parameters: /s STUDENT_INDEX /c CLASS_NAME\n" +
		"Example: " + WordRemoveStudent + " 1 /c CS2103T"

	MessageRemoveStudentSuccess = "%s has been removed from %s"
)

// RemoveStudentCommand deletes the student at Index of Class.
// The index is one-based within the class, as listed by "view".
type RemoveStudentCommand struct {
	Index shared.Index
	Class roster.ClassName
}

// Word implements Command.
func (RemoveStudentCommand) Word() string { return WordRemoveStudent }

// Execute implements Command.
func (c RemoveStudentCommand) Execute(_ context.Context, m *Model) (Result, error) {
	removed, err := m.roster.RemoveStudent(c.Class, c.Index)
	if err != nil {
		return Result{}, err
	}
	return refreshed(fmt.Sprintf(MessageRemoveStudentSuccess, removed.Name, c.Class)), nil
}

func (RemoveStudentCommand) sealed() {}
