package command

import (
	"context"
	"fmt"

	"github.com/DonovanJJ/tp/internal/domain/roster"
)

const (
	WordViewClass = "view"

	UsageViewClass = WordViewClass + ": Shows the students of one class.\n" +
		"Parameters: /c CLASS_NAME\n" +
		"Example: " + WordViewClass + " /c CS2103T"

	MessageViewClassSuccess = "Viewing class %s: %d student(s) listed"
)

// ViewClassCommand limits the displayed students to one class.
type ViewClassCommand struct {
	Name roster.ClassName
}

// Word implements Command.
func (ViewClassCommand) Word() string { return WordViewClass }

// Execute implements Command.
func (c ViewClassCommand) Execute(_ context.Context, m *Model) (Result, error) {
	class, err := m.roster.Class(c.Name)
	if err != nil {
		return Result{}, err
	}
	m.SetView(View{Class: class.Name})
	return refreshed(fmt.Sprintf(MessageViewClassSuccess, class.Name, class.Size())), nil
}

func (ViewClassCommand) sealed() {}
