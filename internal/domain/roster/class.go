package roster

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/DonovanJJ/tp/internal/domain/shared"
	"github.com/DonovanJJ/tp/internal/domain/student"
)

var validate = validator.New()

// ══════════════════════════════════════════════════════════════════════════════
// CLASS NAME
// ══════════════════════════════════════════════════════════════════════════════

const (
	MessageEmptyClassName       = "Class name cannot be empty"
	MessageClassNameConstraints = "Class names should be alphanumeric, may contain '-' or '_', and be at most 20 characters"

	maxClassNameLength = 20
)

var classNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ClassName identifies a class. It is stored upper-cased so that two names
// differing only in case are the same class.
type ClassName string

// NewClassName creates a ClassName with validation.
func NewClassName(raw string) (ClassName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", shared.WrapError("roster", "NewClassName", shared.ErrValidation, MessageEmptyClassName, shared.ErrEmptyValue)
	}
	if len(trimmed) > maxClassNameLength || !classNameRegex.MatchString(trimmed) {
		return "", shared.Validation("roster", "NewClassName", MessageClassNameConstraints)
	}
	return ClassName(strings.ToUpper(trimmed)), nil
}

// MustClassName is NewClassName for constants in tests and fixtures.
func MustClassName(raw string) ClassName {
	name, err := NewClassName(raw)
	if err != nil {
		panic(err)
	}
	return name
}

// String returns the string representation.
func (c ClassName) String() string {
	return string(c)
}

// ══════════════════════════════════════════════════════════════════════════════
// SCHEDULE
// ══════════════════════════════════════════════════════════════════════════════

// MessageScheduleConstraints is reported for an invalid Schedule.
const MessageScheduleConstraints = "Schedules can take any values up to 50 characters, and it should not be blank"

// Schedule is the time slot of a class, e.g. "Mon 10:00-12:00".
type Schedule string

// NewSchedule creates a Schedule with validation.
func NewSchedule(raw string) (Schedule, error) {
	s := strings.TrimSpace(raw)
	if err := validate.Var(s, "required,max=50"); err != nil {
		return "", shared.WrapError("roster", "NewSchedule", shared.ErrValidation, MessageScheduleConstraints, err)
	}
	return Schedule(s), nil
}

// String returns the string representation.
func (s Schedule) String() string {
	return string(s)
}

// ══════════════════════════════════════════════════════════════════════════════
// LESSON COUNT
// ══════════════════════════════════════════════════════════════════════════════

const (
	MessageLessonCountNotNumber  = "Number of lessons must be a number."
	MessageLessonCountOutOfRange = "Number of lessons only accept numbers from 0 to 2147483647."
	MessageLessonCountNegative   = "Number of lessons must be at least 0."
)

var signedRegex = regexp.MustCompile(`^[+-]?[0-9]+$`)

// LessonCount is the number of lessons planned for a class.
type LessonCount int

// NewLessonCount creates a LessonCount with validation.
func NewLessonCount(n int) (LessonCount, error) {
	if n < 0 {
		return 0, shared.WrapError("roster", "NewLessonCount", shared.ErrValidation, MessageLessonCountNegative, shared.ErrNegativeValue)
	}
	if n > shared.MaxIntInput {
		return 0, shared.WrapError("roster", "NewLessonCount", shared.ErrValidation, MessageLessonCountOutOfRange, shared.ErrValueOutOfRange)
	}
	return LessonCount(n), nil
}

// ParseLessonCount parses a lesson count typed by the user.
// Not a number, out of range and negative are reported separately.
func ParseLessonCount(raw string) (LessonCount, error) {
	trimmed := strings.TrimSpace(raw)
	if !signedRegex.MatchString(trimmed) {
		return 0, shared.WrapError("roster", "ParseLessonCount", shared.ErrValidation, MessageLessonCountNotNumber, shared.ErrInvalidFormat)
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || n > shared.MaxIntInput || n < -shared.MaxIntInput-1 {
		return 0, shared.WrapError("roster", "ParseLessonCount", shared.ErrValidation, MessageLessonCountOutOfRange, shared.ErrValueOutOfRange)
	}
	return NewLessonCount(int(n))
}

// Int returns the underlying int value.
func (l LessonCount) Int() int {
	return int(l)
}

// String returns the decimal representation.
func (l LessonCount) String() string {
	return strconv.Itoa(int(l))
}

// ══════════════════════════════════════════════════════════════════════════════
// UNIQUE STUDENT LIST
// ══════════════════════════════════════════════════════════════════════════════

// UniqueStudentList is the ordered membership of a class. It holds arena keys;
// the records themselves live in the Roster.
type UniqueStudentList struct {
	keys []uuid.UUID
}

// Len returns the number of members.
func (l *UniqueStudentList) Len() int {
	return len(l.keys)
}

// At returns the key at idx.
func (l *UniqueStudentList) At(idx shared.Index) (uuid.UUID, bool) {
	if !idx.InBounds(len(l.keys)) {
		return uuid.Nil, false
	}
	return l.keys[idx.ZeroBased()], true
}

// Contains reports whether key is a member.
func (l *UniqueStudentList) Contains(key uuid.UUID) bool {
	for _, k := range l.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Keys returns a copy of the member keys in order.
func (l *UniqueStudentList) Keys() []uuid.UUID {
	out := make([]uuid.UUID, len(l.keys))
	copy(out, l.keys)
	return out
}

func (l *UniqueStudentList) add(key uuid.UUID) {
	l.keys = append(l.keys, key)
}

func (l *UniqueStudentList) remove(key uuid.UUID) bool {
	for i, k := range l.keys {
		if k == key {
			l.keys = append(l.keys[:i:i], l.keys[i+1:]...)
			return true
		}
	}
	return false
}

// ══════════════════════════════════════════════════════════════════════════════
// CLASS ENTITY
// ══════════════════════════════════════════════════════════════════════════════

// Class is a named group of students.
type Class struct {
	Name         ClassName
	Schedule     Schedule
	TotalLessons LessonCount
	Memo         student.Memo

	students UniqueStudentList
}

// NewClass creates an empty class.
func NewClass(name ClassName) *Class {
	return &Class{Name: name}
}

// Students returns the ordered membership.
func (c *Class) Students() *UniqueStudentList {
	return &c.students
}

// Size returns the number of enrolled students.
func (c *Class) Size() int {
	return c.students.Len()
}

// IsSameClass reports whether both classes have the same name.
func (c *Class) IsSameClass(other *Class) bool {
	return other != nil && c.Name == other.Name
}

// String renders the class for result messages.
func (c *Class) String() string {
	var b strings.Builder
	b.WriteString(c.Name.String())
	if c.Schedule != "" {
		b.WriteString("; Schedule: ")
		b.WriteString(c.Schedule.String())
	}
	if c.TotalLessons > 0 {
		b.WriteString("; Lessons: ")
		b.WriteString(c.TotalLessons.String())
	}
	if !c.Memo.IsEmpty() {
		b.WriteString("; Note: ")
		b.WriteString(c.Memo.String())
	}
	return b.String()
}

func (c *Class) clone() *Class {
	cp := *c
	cp.students = UniqueStudentList{keys: c.students.Keys()}
	return &cp
}

// ClassDescriptor holds the fields to change on a class.
// nil values mean "don't change".
type ClassDescriptor struct {
	Schedule     *Schedule
	TotalLessons *LessonCount
	Memo         *student.Memo
}

// IsAnyFieldEdited returns true if at least one field is set.
func (d ClassDescriptor) IsAnyFieldEdited() bool {
	return d.Schedule != nil || d.TotalLessons != nil || d.Memo != nil
}

func (d ClassDescriptor) apply(c *Class) {
	if d.Schedule != nil {
		c.Schedule = *d.Schedule
	}
	if d.TotalLessons != nil {
		c.TotalLessons = *d.TotalLessons
	}
	if d.Memo != nil {
		c.Memo = *d.Memo
	}
}
