package command

import (
	"context"
	"fmt"

	"github.com/DonovanJJ/tp/internal/domain/roster"
)

const (
	WordStartLesson = "start"

	UsageStartLesson = WordStartLesson + ": Starts a new lesson for a class. " +
		"Every student of the class is marked absent for the new lesson; " +
		"lessons attended so far are kept.\n" +
		"Parameters: /c CLASS_NAME\n" +
		"Example: " + WordStartLesson + " /c CS2103T"

	MessageStartLessonSuccess = "New lesson started for %s"
)

// StartLessonCommand moves a class to its next lesson.
type StartLessonCommand struct {
	Name roster.ClassName
}

// Word implements Command.
func (StartLessonCommand) Word() string { return WordStartLesson }

// Execute implements Command.
func (c StartLessonCommand) Execute(_ context.Context, m *Model) (Result, error) {
	class, err := m.roster.StartLesson(c.Name)
	if err != nil {
		return Result{}, err
	}
	return refreshed(fmt.Sprintf(MessageStartLessonSuccess, class.Name)), nil
}

func (StartLessonCommand) sealed() {}
