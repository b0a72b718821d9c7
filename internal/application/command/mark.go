package command

import (
	"context"
	"fmt"

	"github.com/DonovanJJ/tp/internal/domain/roster"
	"github.com/DonovanJJ/tp/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ATTENDANCE COMMANDS
// ══════════════════════════════════════════════════════════════════════════════

const (
	WordMarkPresent = "mark"
	WordMarkAbsent  = "unmark"

	UsageMarkPresent = WordMarkPresent + ": Marks a student present for the current lesson.\n" +
		"Parameters: /s STUDENT_INDEX /c CLASS_NAME\n" +
		"Example: " + WordMarkPresent + " /s 1 /c CS2103T"

	UsageMarkAbsent = WordMarkAbsent + ": Marks a student absent for the current lesson.\n" +
		"Parameters: /s STUDENT_INDEX /c CLASS_NAME\n" +
		"Example: " + WordMarkAbsent + " /s 1 /c CS2103T"

	MessageMarkPresentSuccess = "%s has been marked present for the current lesson of %s"
	MessageMarkAbsentSuccess  = "%s has been marked absent for the current lesson of %s"
)

// MarkStudentPresentCommand moves a student from Absent to Present.
type MarkStudentPresentCommand struct {
	Index shared.Index
	Class roster.ClassName
}

// Word implements Command.
func (MarkStudentPresentCommand) Word() string { return WordMarkPresent }

// Execute implements Command.
func (c MarkStudentPresentCommand) Execute(_ context.Context, m *Model) (Result, error) {
	s, err := m.roster.MarkPresent(c.Class, c.Index)
	if err != nil {
		return Result{}, err
	}
	return refreshed(fmt.Sprintf(MessageMarkPresentSuccess, s.Name, c.Class)), nil
}

func (MarkStudentPresentCommand) sealed() {}

// MarkStudentAbsentCommand moves a student from Present to Absent.
type MarkStudentAbsentCommand struct {
	Index shared.Index
	Class roster.ClassName
}

// Word implements Command.
func (MarkStudentAbsentCommand) Word() string { return WordMarkAbsent }

// Execute implements Command.
func (c MarkStudentAbsentCommand) Execute(_ context.Context, m *Model) (Result, error) {
	s, err := m.roster.MarkAbsent(c.Class, c.Index)
	if err != nil {
		return Result{}, err
	}
	return refreshed(fmt.Sprintf(MessageMarkAbsentSuccess, s.Name, c.Class)), nil
}

func (MarkStudentAbsentCommand) sealed() {}
