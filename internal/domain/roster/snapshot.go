package roster

import (
	"fmt"

	"github.com/DonovanJJ/tp/internal/domain/shared"
	"github.com/DonovanJJ/tp/internal/domain/student"
)

// SnapshotVersion is bumped whenever the document layout changes.
const SnapshotVersion = 1

// Snapshot is a detached, ordered copy of a roster. Stores serialize it as-is;
// nothing in it aliases roster state.
type Snapshot struct {
	Version int             `json:"version" yaml:"version"`
	Classes []ClassSnapshot `json:"classes" yaml:"classes"`
}

// ClassSnapshot is one class and its students in enrolment order.
type ClassSnapshot struct {
	Name         string            `json:"name" yaml:"name"`
	Schedule     string            `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	TotalLessons int               `json:"totalLessons,omitempty" yaml:"totalLessons,omitempty"`
	Memo         string            `json:"memo,omitempty" yaml:"memo,omitempty"`
	Students     []StudentSnapshot `json:"students" yaml:"students"`
}

// StudentSnapshot is one student with attendance state.
type StudentSnapshot struct {
	Name            string `json:"name" yaml:"name"`
	ID              string `json:"id" yaml:"id"`
	Phone           string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email           string `json:"email,omitempty" yaml:"email,omitempty"`
	Address         string `json:"address,omitempty" yaml:"address,omitempty"`
	Memo            string `json:"memo,omitempty" yaml:"memo,omitempty"`
	Present         bool   `json:"present" yaml:"present"`
	LessonsAttended int    `json:"lessonsAttended" yaml:"lessonsAttended"`
}

// Snapshot copies the roster into a Snapshot.
func (r *Roster) Snapshot() Snapshot {
	snap := Snapshot{
		Version: SnapshotVersion,
		Classes: make([]ClassSnapshot, 0, len(r.classes)),
	}
	for _, c := range r.classes {
		cs := ClassSnapshot{
			Name:         c.Name.String(),
			Schedule:     c.Schedule.String(),
			TotalLessons: c.TotalLessons.Int(),
			Memo:         c.Memo.String(),
			Students:     make([]StudentSnapshot, 0, c.Size()),
		}
		for _, s := range r.resolve(c) {
			cs.Students = append(cs.Students, StudentSnapshot{
				Name:            s.Name.String(),
				ID:              s.ID.String(),
				Phone:           s.Phone.String(),
				Email:           s.Email.String(),
				Address:         s.Address.String(),
				Memo:            s.Memo.String(),
				Present:         s.CurrentLessonAttendance().IsPresent(),
				LessonsAttended: s.LessonsAttended().Int(),
			})
		}
		snap.Classes = append(snap.Classes, cs)
	}
	return snap
}

// FromSnapshot rebuilds a roster. Every field goes through its value constructor,
// and the roster's uniqueness rules are enforced, so a corrupt document is
// rejected rather than loaded.
func FromSnapshot(snap Snapshot) (*Roster, error) {
	if snap.Version > SnapshotVersion {
		return nil, shared.NewDomainError("roster", "FromSnapshot", shared.ErrInvalidFormat,
			fmt.Sprintf("unsupported snapshot version %d", snap.Version))
	}

	r := New()
	for i, cs := range snap.Classes {
		c, err := classFromSnapshot(cs)
		if err != nil {
			return nil, snapshotError(fmt.Sprintf("class %d", i+1), err)
		}
		if r.HasClass(c.Name) {
			return nil, snapshotError(fmt.Sprintf("class %d", i+1), shared.ErrDuplicateClass)
		}
		r.classes = append(r.classes, c)

		for j, ss := range cs.Students {
			s, err := studentFromSnapshot(ss)
			if err != nil {
				return nil, snapshotError(fmt.Sprintf("class %s student %d", c.Name, j+1), err)
			}
			if err := r.AddStudent(c.Name, s); err != nil {
				return nil, snapshotError(fmt.Sprintf("class %s student %d", c.Name, j+1), err)
			}
		}
	}
	return r, nil
}

func classFromSnapshot(cs ClassSnapshot) (*Class, error) {
	name, err := NewClassName(cs.Name)
	if err != nil {
		return nil, err
	}
	c := NewClass(name)
	if cs.Schedule != "" {
		if c.Schedule, err = NewSchedule(cs.Schedule); err != nil {
			return nil, err
		}
	}
	if c.TotalLessons, err = NewLessonCount(cs.TotalLessons); err != nil {
		return nil, err
	}
	if c.Memo, err = student.NewMemo(cs.Memo); err != nil {
		return nil, err
	}
	return c, nil
}

func studentFromSnapshot(ss StudentSnapshot) (student.Student, error) {
	var (
		params student.NewStudentParams
		err    error
	)
	if params.Name, err = student.NewName(ss.Name); err != nil {
		return student.Student{}, err
	}
	if params.ID, err = student.NewID(ss.ID); err != nil {
		return student.Student{}, err
	}
	if ss.Phone != "" {
		if params.Phone, err = student.NewPhone(ss.Phone); err != nil {
			return student.Student{}, err
		}
	}
	if ss.Email != "" {
		if params.Email, err = student.NewEmail(ss.Email); err != nil {
			return student.Student{}, err
		}
	}
	if ss.Address != "" {
		if params.Address, err = student.NewAddress(ss.Address); err != nil {
			return student.Student{}, err
		}
	}
	if params.Memo, err = student.NewMemo(ss.Memo); err != nil {
		return student.Student{}, err
	}

	total, err := student.NewLessonsAttended(ss.LessonsAttended)
	if err != nil {
		return student.Student{}, err
	}
	params.Attendance = student.NewAttendance(student.CurrentLessonAttendance(ss.Present), total)

	return student.NewStudent(params), nil
}

func snapshotError(where string, err error) error {
	return shared.WrapError("roster", "FromSnapshot", shared.ErrInvalidFormat,
		fmt.Sprintf("corrupt snapshot at %s: %s", where, shared.Message(err)), err)
}
