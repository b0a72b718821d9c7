// Package command contains the roster commands: one type per user action,
// each carrying only the inputs it needs and executed against a Model.
package command

import (
	"context"

	"github.com/DonovanJJ/tp/internal/domain/roster"
	"github.com/DonovanJJ/tp/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// COMMAND CONTRACT
// ══════════════════════════════════════════════════════════════════════════════

// Command is one parsed user action.
//
// The set of commands is closed: only types in this package implement it.
// A command that returns an error must leave the model unchanged.
type Command interface {
	// Word returns the command word the command was registered under.
	Word() string

	// Execute applies the command to the model.
	Execute(ctx context.Context, m *Model) (Result, error)

	sealed()
}

// Result is what the presentation layer needs after a command ran.
type Result struct {
	// Feedback is the message shown to the user.
	Feedback string

	// ShowHelp asks the presentation layer to display the usage guide.
	ShowHelp bool

	// Exit asks the session to terminate.
	Exit bool

	// RefreshView is set when the visible student list may have changed.
	RefreshView bool
}

// feedback builds a Result that only carries a message.
func feedback(msg string) Result {
	return Result{Feedback: msg}
}

// refreshed builds a Result for commands that change what is displayed.
func refreshed(msg string) Result {
	return Result{Feedback: msg, RefreshView: true}
}

// ══════════════════════════════════════════════════════════════════════════════
// MODEL
// ══════════════════════════════════════════════════════════════════════════════

// Model is the state commands operate on: the roster plus the current view.
type Model struct {
	roster *roster.Roster
	view   View
}

// View narrows the displayed students. The zero View shows everyone.
type View struct {
	// Class limits the view to one class when non-empty.
	Class roster.ClassName

	// Keywords limits the view to matching names when non-nil.
	Keywords *student.NameContainsKeywords
}

// IsFiltered reports whether any filter is active.
func (v View) IsFiltered() bool {
	return v.Class != "" || v.Keywords != nil
}

// NewModel wraps r. A nil roster is replaced by an empty one.
func NewModel(r *roster.Roster) *Model {
	if r == nil {
		r = roster.New()
	}
	return &Model{roster: r}
}

// Roster returns the underlying roster.
func (m *Model) Roster() *roster.Roster {
	return m.roster
}

// SetRoster replaces the roster wholesale and resets the view.
func (m *Model) SetRoster(r *roster.Roster) {
	m.roster = r
	m.view = View{}
}

// View returns the active view.
func (m *Model) View() View {
	return m.view
}

// SetView replaces the active view.
func (m *Model) SetView(v View) {
	m.view = v
}

// Visible returns the students the current view selects, in display order.
// A view on a class that no longer exists falls back to the full list.
func (m *Model) Visible() []student.Student {
	students := m.roster.Students()
	if m.view.Class != "" {
		if inClass, err := m.roster.StudentsOf(m.view.Class); err == nil {
			students = inClass
		}
	}
	if m.view.Keywords == nil {
		return students
	}

	out := make([]student.Student, 0, len(students))
	for _, s := range students {
		if m.view.Keywords.Test(s) {
			out = append(out, s)
		}
	}
	return out
}
