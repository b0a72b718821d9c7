package command

import "context"

const (
	WordList = "list"

	UsageList = WordList + ": Lists all students of every class."

	MessageListSuccess = "Listed all students"
)

// ListCommand clears any view filter.
type ListCommand struct{}

// Word implements Command.
func (ListCommand) Word() string { return WordList }

// Execute implements Command.
func (ListCommand) Execute(_ context.Context, m *Model) (Result, error) {
	m.SetView(View{})
	return refreshed(MessageListSuccess), nil
}

func (ListCommand) sealed() {}
