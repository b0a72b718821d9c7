package student

import (
	"strconv"

	"github.com/DonovanJJ/tp/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// CURRENT LESSON ATTENDANCE
// The active lesson is the one the TA is marking attendance for right now.
// ══════════════════════════════════════════════════════════════════════════════

// CurrentLessonAttendance is a student's presence for the active lesson.
type CurrentLessonAttendance bool

const (
	Absent  CurrentLessonAttendance = false
	Present CurrentLessonAttendance = true
)

// IsPresent returns true if the student is present for the active lesson.
func (a CurrentLessonAttendance) IsPresent() bool {
	return bool(a)
}

// String returns "Y" when present and "N" when absent.
func (a CurrentLessonAttendance) String() string {
	if a {
		return "Y"
	}
	return "N"
}

// ══════════════════════════════════════════════════════════════════════════════
// LESSONS ATTENDED
// ══════════════════════════════════════════════════════════════════════════════

// MessageLessonsAttendedConstraints is reported for a negative counter.
const MessageLessonsAttendedConstraints = "LessonsAttended should be a non-negative int"

// LessonsAttended is the cumulative number of lessons a student was marked present for.
type LessonsAttended int

// NewLessonsAttended creates a counter with validation.
func NewLessonsAttended(total int) (LessonsAttended, error) {
	if total < 0 || total > shared.MaxIntInput {
		return 0, shared.Validation("student", "NewLessonsAttended", MessageLessonsAttendedConstraints)
	}
	return LessonsAttended(total), nil
}

// Int returns the underlying int value.
func (l LessonsAttended) Int() int {
	return int(l)
}

// String returns the decimal representation.
func (l LessonsAttended) String() string {
	return strconv.Itoa(int(l))
}

// ══════════════════════════════════════════════════════════════════════════════
// STATE MACHINE
// Absent -> Present increments the counter, Present -> Absent decrements it.
// A transition to the current state is rejected.
// ══════════════════════════════════════════════════════════════════════════════

// Attendance couples the current lesson flag with the cumulative counter so that
// both only ever change together.
type Attendance struct {
	current CurrentLessonAttendance
	total   LessonsAttended
}

// NewAttendance restores attendance state, e.g. from a snapshot.
func NewAttendance(current CurrentLessonAttendance, total LessonsAttended) Attendance {
	return Attendance{current: current, total: total}
}

// Current returns the active lesson flag.
func (a Attendance) Current() CurrentLessonAttendance {
	return a.current
}

// Total returns the cumulative counter.
func (a Attendance) Total() LessonsAttended {
	return a.total
}

// MarkPresent transitions Absent -> Present.
func (a Attendance) MarkPresent() (Attendance, error) {
	if a.current.IsPresent() {
		return a, shared.ErrStudentAlreadyMarkedPresent
	}
	return Attendance{current: Present, total: a.total + 1}, nil
}

// MarkAbsent transitions Present -> Absent.
func (a Attendance) MarkAbsent() (Attendance, error) {
	if !a.current.IsPresent() {
		return a, shared.ErrStudentAlreadyMarkedAbsent
	}
	total := a.total - 1
	if total < 0 {
		total = 0
	}
	return Attendance{current: Absent, total: total}, nil
}

// ResetForNewLesson marks the student absent for a freshly started lesson.
// The counter is historical and stays untouched.
func (a Attendance) ResetForNewLesson() Attendance {
	return Attendance{current: Absent, total: a.total}
}
