package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/DonovanJJ/tp/internal/application/command"
	"github.com/DonovanJJ/tp/internal/domain/shared"
)

const (
	MessageWelcome = "Welcome to EduTrack! Type \"help\" to see the available commands."
	Prompt         = "> "
)

// Session reads command lines from in and writes feedback to out.
type Session struct {
	router *Router
	in     io.Reader
	out    io.Writer

	// Interactive prints the welcome message and a prompt before each line.
	Interactive bool
}

// NewSession creates a session over router.
func NewSession(router *Router, in io.Reader, out io.Writer) *Session {
	return &Session{router: router, in: in, out: out}
}

// Run handles lines until exit, end of input or ctx is done. It returns the
// number of lines that failed.
func (s *Session) Run(ctx context.Context) (int, error) {
	if s.Interactive {
		fmt.Fprintln(s.out, MessageWelcome)
	}

	failed := 0
	reader := bufio.NewReader(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return failed, err
		}
		if s.Interactive {
			fmt.Fprint(s.out, Prompt)
		}
		line, more, err := readLine(reader)
		if err != nil {
			return failed, err
		}
		if !more && line == "" {
			return failed, nil
		}

		exit, ok := s.Execute(ctx, line)
		if !ok {
			failed++
		}
		if exit || !more {
			return failed, nil
		}
	}
}

// readLine reads one line of any length without its line ending. more is
// false once the input is exhausted; a final line without a newline is still
// returned.
func readLine(r *bufio.Reader) (line string, more bool, err error) {
	line, err = r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	more = err == nil
	line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	return line, more, nil
}

// Execute handles one line and prints its outcome. It reports whether the
// session should end and whether the line succeeded.
func (s *Session) Execute(ctx context.Context, line string) (exit, ok bool) {
	res, err := s.router.Handle(ctx, line)
	if res.Feedback != "" {
		fmt.Fprintln(s.out, res.Feedback)
	}
	if err != nil {
		fmt.Fprintln(s.out, shared.Message(err))
		if !errors.Is(err, shared.ErrStorage) {
			return false, false
		}
	}
	if res.ShowHelp {
		fmt.Fprintln(s.out, command.Guide())
	}
	if res.RefreshView {
		fmt.Fprint(s.out, Render(s.router.Model()))
	}
	return res.Exit, err == nil
}

// Render lists the visible students class by class. Numbers are the
// one-based positions within each class, the indices commands expect.
func Render(m *command.Model) string {
	var b strings.Builder
	view := m.View()
	r := m.Roster()

	for _, class := range r.Classes() {
		if view.Class != "" && class.Name != view.Class {
			continue
		}
		students, _ := r.StudentsOf(class.Name)

		var (
			lines   []string
			present int
		)
		for i, st := range students {
			if st.CurrentLessonAttendance().IsPresent() {
				present++
			}
			if view.Keywords != nil && !view.Keywords.Test(st) {
				continue
			}
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, st))
		}
		if view.Keywords != nil && len(lines) == 0 {
			continue
		}

		fmt.Fprintf(&b, "[%s] %d student(s), %d present\n", class, len(students), present)
		for _, l := range lines {
			fmt.Fprintln(&b, l)
		}
	}
	return b.String()
}
