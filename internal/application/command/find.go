package command

import (
	"context"
	"fmt"

	"github.com/DonovanJJ/tp/internal/domain/student"
)

const (
	WordFind = "find"

	UsageFind = WordFind + ": Finds all students whose names contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + WordFind + " alice bob charlie"

	MessageStudentsListed = "%d students listed!"
)

// FindCommand shows the students whose name contains any keyword.
type FindCommand struct {
	Predicate student.NameContainsKeywords
}

// Word implements Command.
func (FindCommand) Word() string { return WordFind }

// Execute implements Command.
func (c FindCommand) Execute(_ context.Context, m *Model) (Result, error) {
	p := c.Predicate
	m.SetView(View{Keywords: &p})
	return refreshed(fmt.Sprintf(MessageStudentsListed, len(m.Visible()))), nil
}

func (FindCommand) sealed() {}
