package student

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student is a value record; every change returns a new Student so that a
// failed command never leaves a half-applied edit behind.
type Student struct {
	// Key is the internal identity used by the roster arena.
	Key uuid.UUID

	Name    Name
	ID      ID
	Phone   Phone
	Email   Email
	Address Address
	Memo    Memo

	attendance Attendance
}

// NewStudentParams contains the parameters to create a new Student.
type NewStudentParams struct {
	Name    Name
	ID      ID
	Phone   Phone
	Email   Email
	Address Address
	Memo    Memo

	// Attendance defaults to absent with zero lessons attended.
	Attendance Attendance
}

// NewStudent creates a Student with a fresh internal key.
func NewStudent(params NewStudentParams) Student {
	return Student{
		Key:        uuid.New(),
		Name:       params.Name,
		ID:         params.ID,
		Phone:      params.Phone,
		Email:      params.Email,
		Address:    params.Address,
		Memo:       params.Memo,
		attendance: params.Attendance,
	}
}

// Attendance returns the student's attendance state.
func (s Student) Attendance() Attendance {
	return s.attendance
}

// CurrentLessonAttendance returns the active lesson flag.
func (s Student) CurrentLessonAttendance() CurrentLessonAttendance {
	return s.attendance.Current()
}

// LessonsAttended returns the cumulative counter.
func (s Student) LessonsAttended() LessonsAttended {
	return s.attendance.Total()
}

// MarkPresent returns the student marked present for the active lesson.
func (s Student) MarkPresent() (Student, error) {
	next, err := s.attendance.MarkPresent()
	if err != nil {
		return s, err
	}
	s.attendance = next
	return s, nil
}

// MarkAbsent returns the student marked absent for the active lesson.
func (s Student) MarkAbsent() (Student, error) {
	next, err := s.attendance.MarkAbsent()
	if err != nil {
		return s, err
	}
	s.attendance = next
	return s, nil
}

// StartLesson returns the student reset for a new lesson.
func (s Student) StartLesson() Student {
	s.attendance = s.attendance.ResetForNewLesson()
	return s
}

// IsSameStudent reports whether both records identify the same student.
// This defines a weaker notion of equality than Equal.
func (s Student) IsSameStudent(other Student) bool {
	return s.Name == other.Name && s.ID == other.ID
}

// Equal compares all data fields. The internal key is not data and is ignored.
func (s Student) Equal(other Student) bool {
	return s.Name == other.Name &&
		s.ID == other.ID &&
		s.Phone == other.Phone &&
		s.Email == other.Email &&
		s.Address == other.Address &&
		s.Memo == other.Memo &&
		s.attendance == other.attendance
}

// String renders the student for result messages.
func (s Student) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; ID: %s", s.Name, s.ID)
	if s.Phone != "" {
		fmt.Fprintf(&b, "; Phone: %s", s.Phone)
	}
	if s.Email != "" {
		fmt.Fprintf(&b, "; Email: %s", s.Email)
	}
	if s.Address != "" {
		fmt.Fprintf(&b, "; Address: %s", s.Address)
	}
	if !s.Memo.IsEmpty() {
		fmt.Fprintf(&b, "; Note: %s", s.Memo)
	}
	fmt.Fprintf(&b, "; Present: %s; Lessons attended: %s", s.attendance.Current(), s.attendance.Total())
	return b.String()
}

// ══════════════════════════════════════════════════════════════════════════════
// EDIT DESCRIPTOR
// ══════════════════════════════════════════════════════════════════════════════

// EditDescriptor holds the fields to change on a student.
// nil values mean "don't change".
type EditDescriptor struct {
	Name *Name
	ID   *ID
	Memo *Memo
}

// SetName sets the new name.
func (d *EditDescriptor) SetName(n Name) { d.Name = &n }

// SetID sets the new ID.
func (d *EditDescriptor) SetID(id ID) { d.ID = &id }

// SetMemo sets the new memo.
func (d *EditDescriptor) SetMemo(m Memo) { d.Memo = &m }

// IsAnyFieldEdited returns true if at least one field is set.
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.ID != nil || d.Memo != nil
}

// Apply returns s with the present fields replaced and all others preserved.
func (d EditDescriptor) Apply(s Student) Student {
	if d.Name != nil {
		s.Name = *d.Name
	}
	if d.ID != nil {
		s.ID = *d.ID
	}
	if d.Memo != nil {
		s.Memo = *d.Memo
	}
	return s
}

// Equal compares two descriptors field by field.
func (d EditDescriptor) Equal(other EditDescriptor) bool {
	return eqPtr(d.Name, other.Name) && eqPtr(d.ID, other.ID) && eqPtr(d.Memo, other.Memo)
}

func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
