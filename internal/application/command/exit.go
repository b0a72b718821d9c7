package command

import "context"

const (
	WordExit = "exit"

	UsageExit = WordExit + ": Exits the program."

	MessageExitAcknowledgement = "Exiting EduTrack as requested ..."
)

// ExitCommand ends the session.
type ExitCommand struct{}

// Word implements Command.
func (ExitCommand) Word() string { return WordExit }

// Execute implements Command.
func (ExitCommand) Execute(context.Context, *Model) (Result, error) {
	return Result{Feedback: MessageExitAcknowledgement, Exit: true}, nil
}

func (ExitCommand) sealed() {}
