package command

import (
	"context"
	"fmt"

	"github.com/DonovanJJ/tp/internal/domain/roster"
	"github.com/DonovanJJ/tp/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD STUDENT COMMAND
// ══════════════════════════════════════════════════════════════════════════════

const (
	WordAddStudent = "add /s"

	UsageAddStudent = WordAddStudent + ": Adds a student to a class.\n" +
		"Parameters: /s NAME /id STUDENT_ID /c CLASS_NAME [/p PHONE] [/e EMAIL] [/a ADDRESS] [/note MEMO]\n" +
		"Example: " + WordAddStudent + " John Doe /id A0123456X /c CS2103T /p 98765432 /e johnd@example.com"

	MessageAddStudentSuccess = "New student added to %s: %s"
)

// AddStudentCommand enrols a new student in a class.
//
// It carries the validated fields rather than a Student so that parsing the
// same line twice yields equal commands; the student's internal key is only
// assigned on execution.
type AddStudentCommand struct {
	Class   roster.ClassName
	Student student.NewStudentParams
}

// Word implements Command.
func (AddStudentCommand) Word() string { return WordAddStudent }

// Execute implements Command.
func (c AddStudentCommand) Execute(_ context.Context, m *Model) (Result, error) {
	s := student.NewStudent(c.Student)
	if err := m.roster.AddStudent(c.Class, s); err != nil {
		return Result{}, err
	}
	return refreshed(fmt.Sprintf(MessageAddStudentSuccess, c.Class, s)), nil
}

func (AddStudentCommand) sealed() {}
