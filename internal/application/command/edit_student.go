package command

import (
	"context"
	"fmt"

	"github.com/DonovanJJ/tp/internal/domain/shared"
	"github.com/DonovanJJ/tp/internal/domain/student"
)

const (
	WordEditStudent = "edit"

	UsageEditStudent = WordEditStudent + ": Edits the details of the student identified " +
		"by the index number used in the class's student list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: STUDENT_INDEX (must be a positive integer) /c CLASS_INDEX [/n NAME] [/id STUDENT_ID] [/note MEMO]\n" +
		"Example: " + WordEditStudent + " 1 /c 1 /n John Doe /id A0123456X"

	MessageEditStudentSuccess = "Edited Student: %s"
)

// EditStudentCommand applies a descriptor to one student. Both indices are
// one-based: ClassIndex into the class list, StudentIndex into that class.
type EditStudentCommand struct {
	StudentIndex shared.Index
	ClassIndex   shared.Index
	Descriptor   student.EditDescriptor
}

// Word implements Command.
func (EditStudentCommand) Word() string { return WordEditStudent }

// Execute implements Command.
func (c EditStudentCommand) Execute(_ context.Context, m *Model) (Result, error) {
	if !c.Descriptor.IsAnyFieldEdited() {
		return Result{}, shared.ErrNothingToEdit
	}
	_, edited, err := m.roster.EditStudent(c.ClassIndex, c.StudentIndex, c.Descriptor)
	if err != nil {
		return Result{}, err
	}
	return refreshed(fmt.Sprintf(MessageEditStudentSuccess, edited)), nil
}

func (EditStudentCommand) sealed() {}
