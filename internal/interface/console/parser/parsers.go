package parser

import (
	"strings"

	"github.com/DonovanJJ/tp/internal/application/command"
	"github.com/DonovanJJ/tp/internal/domain/roster"
	"github.com/DonovanJJ/tp/internal/domain/shared"
	"github.com/DonovanJJ/tp/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// SUB-PARSERS
// Each receives everything after the command word, leading space included.
// ══════════════════════════════════════════════════════════════════════════════

// Parser turns the arguments of one command word into a Command.
type Parser func(args string) (command.Command, error)

// ──────────────────────────────────────────────────────────────────────────────
// Class commands
// ──────────────────────────────────────────────────────────────────────────────

// classOnly parses the "/c CLASS_NAME" grammar shared by add, remove, start and view.
func classOnly(op, usage string) func(string) (roster.ClassName, error) {
	return func(args string) (roster.ClassName, error) {
		m := Tokenize(args, PrefixClass)
		if err := requireShape(m, op, usage, false, []Prefix{PrefixClass}, PrefixClass); err != nil {
			return "", err
		}
		raw, _ := m.Value(PrefixClass)
		return roster.NewClassName(raw)
	}
}

func parseAddClass(args string) (command.Command, error) {
	name, err := classOnly("ParseAddClass", command.UsageAddClass)(args)
	if err != nil {
		return nil, err
	}
	return command.AddClassCommand{Name: name}, nil
}

func parseRemoveClass(args string) (command.Command, error) {
	name, err := classOnly("ParseRemoveClass", command.UsageRemoveClass)(args)
	if err != nil {
		return nil, err
	}
	return command.RemoveClassCommand{Name: name}, nil
}

func parseStartLesson(args string) (command.Command, error) {
	name, err := classOnly("ParseStartLesson", command.UsageStartLesson)(args)
	if err != nil {
		return nil, err
	}
	return command.StartLessonCommand{Name: name}, nil
}

func parseViewClass(args string) (command.Command, error) {
	name, err := classOnly("ParseViewClass", command.UsageViewClass)(args)
	if err != nil {
		return nil, err
	}
	return command.ViewClassCommand{Name: name}, nil
}

func parseEditClass(args string) (command.Command, error) {
	const op = "ParseEditClass"
	m := Tokenize(args, PrefixClass, PrefixSchedule, PrefixLessons, PrefixMemo)
	if err := requireShape(m, op, command.UsageEditClass, false, []Prefix{PrefixClass},
		PrefixClass, PrefixSchedule, PrefixLessons, PrefixMemo); err != nil {
		return nil, err
	}

	raw, _ := m.Value(PrefixClass)
	name, err := roster.NewClassName(raw)
	if err != nil {
		return nil, err
	}

	var d roster.ClassDescriptor
	if d.Schedule, err = optional(m, PrefixSchedule, roster.NewSchedule); err != nil {
		return nil, err
	}
	if d.TotalLessons, err = optional(m, PrefixLessons, roster.ParseLessonCount); err != nil {
		return nil, err
	}
	if d.Memo, err = optional(m, PrefixMemo, student.NewMemo); err != nil {
		return nil, err
	}
	if !d.IsAnyFieldEdited() {
		return nil, shared.ErrNothingToEdit
	}
	return command.EditClassCommand{Name: name, Descriptor: d}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Student commands
// ──────────────────────────────────────────────────────────────────────────────

func parseAddStudent(args string) (command.Command, error) {
	const op = "ParseAddStudent"
	m := Tokenize(args, PrefixID, PrefixClass, PrefixPhone, PrefixEmail, PrefixAddress, PrefixMemo)
	if err := requireShape(m, op, command.UsageAddStudent, true, []Prefix{PrefixID, PrefixClass},
		PrefixID, PrefixClass, PrefixPhone, PrefixEmail, PrefixAddress, PrefixMemo); err != nil {
		return nil, err
	}

	var (
		params student.NewStudentParams
		err    error
	)
	if params.Name, err = student.NewName(m.Preamble()); err != nil {
		return nil, err
	}
	rawID, _ := m.Value(PrefixID)
	if params.ID, err = student.NewID(rawID); err != nil {
		return nil, err
	}
	rawClass, _ := m.Value(PrefixClass)
	class, err := roster.NewClassName(rawClass)
	if err != nil {
		return nil, err
	}

	if p, err := optional(m, PrefixPhone, student.NewPhone); err != nil {
		return nil, err
	} else if p != nil {
		params.Phone = *p
	}
	if e, err := optional(m, PrefixEmail, student.NewEmail); err != nil {
		return nil, err
	} else if e != nil {
		params.Email = *e
	}
	if a, err := optional(m, PrefixAddress, student.NewAddress); err != nil {
		return nil, err
	} else if a != nil {
		params.Address = *a
	}
	if n, err := optional(m, PrefixMemo, student.NewMemo); err != nil {
		return nil, err
	} else if n != nil {
		params.Memo = *n
	}

	return command.AddStudentCommand{Class: class, Student: params}, nil
}

func parseRemoveStudent(args string) (command.Command, error) {
	const op = "ParseRemoveStudent"
	m := Tokenize(args, PrefixClass)
	if err := requireShape(m, op, command.UsageRemoveStudent, true, []Prefix{PrefixClass}, PrefixClass); err != nil {
		return nil, err
	}

	idx, err := parseIndex(m.Preamble(), op, command.UsageRemoveStudent)
	if err != nil {
		return nil, err
	}
	raw, _ := m.Value(PrefixClass)
	class, err := roster.NewClassName(raw)
	if err != nil {
		return nil, err
	}
	return command.RemoveStudentCommand{Index: idx, Class: class}, nil
}

func parseEditStudent(args string) (command.Command, error) {
	const op = "ParseEditStudent"
	m := Tokenize(args, PrefixClass, PrefixName, PrefixID, PrefixMemo)
	if err := requireShape(m, op, command.UsageEditStudent, true, []Prefix{PrefixClass},
		PrefixClass, PrefixName, PrefixID, PrefixMemo); err != nil {
		return nil, err
	}

	studentIdx, err := parseIndex(m.Preamble(), op, command.UsageEditStudent)
	if err != nil {
		return nil, err
	}
	rawClass, _ := m.Value(PrefixClass)
	classIdx, err := parseIndex(rawClass, op, command.UsageEditStudent)
	if err != nil {
		return nil, err
	}

	var d student.EditDescriptor
	if d.Name, err = optional(m, PrefixName, student.NewName); err != nil {
		return nil, err
	}
	if d.ID, err = optional(m, PrefixID, student.NewID); err != nil {
		return nil, err
	}
	if d.Memo, err = optional(m, PrefixMemo, student.NewMemo); err != nil {
		return nil, err
	}
	if !d.IsAnyFieldEdited() {
		return nil, shared.ErrNothingToEdit
	}
	return command.EditStudentCommand{StudentIndex: studentIdx, ClassIndex: classIdx, Descriptor: d}, nil
}

// studentInClass parses the "/s STUDENT_INDEX /c CLASS_NAME" grammar of mark and unmark.
func studentInClass(args, op, usage string) (shared.Index, roster.ClassName, error) {
	m := Tokenize(args, PrefixStudent, PrefixClass)
	if err := requireShape(m, op, usage, false, []Prefix{PrefixStudent, PrefixClass},
		PrefixStudent, PrefixClass); err != nil {
		return shared.Index{}, "", err
	}

	rawIdx, _ := m.Value(PrefixStudent)
	idx, err := parseIndex(rawIdx, op, usage)
	if err != nil {
		return shared.Index{}, "", err
	}
	rawClass, _ := m.Value(PrefixClass)
	class, err := roster.NewClassName(rawClass)
	if err != nil {
		return shared.Index{}, "", err
	}
	return idx, class, nil
}

func parseMarkPresent(args string) (command.Command, error) {
	idx, class, err := studentInClass(args, "ParseMarkPresent", command.UsageMarkPresent)
	if err != nil {
		return nil, err
	}
	return command.MarkStudentPresentCommand{Index: idx, Class: class}, nil
}

func parseMarkAbsent(args string) (command.Command, error) {
	idx, class, err := studentInClass(args, "ParseMarkAbsent", command.UsageMarkAbsent)
	if err != nil {
		return nil, err
	}
	return command.MarkStudentAbsentCommand{Index: idx, Class: class}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// General commands
// ──────────────────────────────────────────────────────────────────────────────

func parseFind(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, shared.CommandFormat("ParseFind", command.UsageFind, nil)
	}
	return command.FindCommand{Predicate: student.NameContainsKeywords{Keywords: keywords}}, nil
}

// noArgs builds a parser for commands that ignore anything after the command word.
func noArgs(c command.Command) Parser {
	return func(string) (command.Command, error) {
		return c, nil
	}
}
