package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DonovanJJ/tp/internal/domain/shared"
	"github.com/DonovanJJ/tp/internal/domain/student"
)

func newStudent(name, id string) student.Student {
	return student.NewStudent(student.NewStudentParams{
		Name: student.Name(name),
		ID:   student.ID(id),
	})
}

// typicalRoster has T01 with Alice and Benson, and T02 with Carl.
func typicalRoster(t *testing.T) *Roster {
	t.Helper()
	r := New()
	_, err := r.AddClass("T01")
	require.NoError(t, err)
	_, err = r.AddClass("T02")
	require.NoError(t, err)
	require.NoError(t, r.AddStudent("T01", newStudent("Alice Pauline", "A0000001A")))
	require.NoError(t, r.AddStudent("T01", newStudent("Benson Meier", "A0000002B")))
	require.NoError(t, r.AddStudent("T02", newStudent("Carl Kurz", "A0000003C")))
	return r
}

func names(students []student.Student) []string {
	out := make([]string, len(students))
	for i, s := range students {
		out[i] = s.Name.String()
	}
	return out
}

func TestRoster_AddClass(t *testing.T) {
	r := New()

	c, err := r.AddClass(MustClassName("cs2103t"))
	require.NoError(t, err)
	assert.Equal(t, ClassName("CS2103T"), c.Name)

	_, err = r.AddClass(MustClassName("CS2103T"))
	assert.ErrorIs(t, err, shared.ErrDuplicateClass)
	assert.True(t, shared.IsAlreadyExists(err))
	assert.Equal(t, 1, r.NumClasses())
}

func TestRoster_ClassesAreCopies(t *testing.T) {
	r := typicalRoster(t)

	classes := r.Classes()
	classes[0].Memo = "changed"
	classes[0].students.remove(classes[0].students.keys[0])

	c, err := r.Class("T01")
	require.NoError(t, err)
	assert.True(t, c.Memo.IsEmpty())
	assert.Equal(t, 2, c.Size())
}

func TestRoster_StudentsFollowClassOrder(t *testing.T) {
	r := typicalRoster(t)
	assert.Equal(t, []string{"Alice Pauline", "Benson Meier", "Carl Kurz"}, names(r.Students()))
	assert.Equal(t, 3, r.NumStudents())

	in, err := r.StudentsOf("T02")
	require.NoError(t, err)
	assert.Equal(t, []string{"Carl Kurz"}, names(in))

	_, err = r.StudentsOf("T99")
	assert.ErrorIs(t, err, shared.ErrUnknownClass)
}

func TestRoster_RemoveClassCascades(t *testing.T) {
	r := typicalRoster(t)

	removed, err := r.RemoveClass("T01")
	require.NoError(t, err)
	assert.Equal(t, ClassName("T01"), removed.Name)
	assert.Equal(t, 1, r.NumClasses())
	assert.Equal(t, 1, r.NumStudents())
	assert.Equal(t, []string{"Carl Kurz"}, names(r.Students()))

	_, err = r.RemoveClass("T01")
	assert.ErrorIs(t, err, shared.ErrUnknownClass)
	assert.True(t, shared.IsNotFound(err))
}

func TestRoster_AddStudent(t *testing.T) {
	r := typicalRoster(t)

	err := r.AddStudent("T01", newStudent("Alice Pauline", "A0000001A"))
	assert.ErrorIs(t, err, shared.ErrDuplicateStudent)

	// The same student may be enrolled in another class.
	require.NoError(t, r.AddStudent("T02", newStudent("Alice Pauline", "A0000001A")))
	assert.Equal(t, 4, r.NumStudents())

	// Same name with a different ID is a different student.
	require.NoError(t, r.AddStudent("T01", newStudent("Alice Pauline", "A0000009Z")))

	err = r.AddStudent("T99", newStudent("Dan", "A0000004D"))
	assert.ErrorIs(t, err, shared.ErrUnknownClass)
}

func TestRoster_RemoveStudent(t *testing.T) {
	r := typicalRoster(t)
	before := r.Snapshot()

	_, err := r.RemoveStudent("T01", shared.MustIndex(3))
	assert.ErrorIs(t, err, shared.ErrInvalidStudentIndex)
	assert.Equal(t, before, r.Snapshot(), "a failed remove leaves the roster unchanged")

	removed, err := r.RemoveStudent("T01", shared.MustIndex(1))
	require.NoError(t, err)
	assert.Equal(t, student.Name("Alice Pauline"), removed.Name)
	assert.Equal(t, []string{"Benson Meier", "Carl Kurz"}, names(r.Students()))

	_, ok := r.ClassOf(removed.Key)
	assert.False(t, ok)
}

func TestRoster_EditStudent(t *testing.T) {
	r := typicalRoster(t)

	var d student.EditDescriptor
	d.SetName("Alicia Pauline")
	before, after, err := r.EditStudent(shared.MustIndex(1), shared.MustIndex(1), d)
	require.NoError(t, err)
	assert.Equal(t, student.Name("Alice Pauline"), before.Name)
	assert.Equal(t, student.Name("Alicia Pauline"), after.Name)
	assert.Equal(t, before.Key, after.Key)

	got, err := r.StudentAt("T01", shared.MustIndex(1))
	require.NoError(t, err)
	assert.Equal(t, after, got)
}

func TestRoster_EditStudentToItselfIsAllowed(t *testing.T) {
	r := typicalRoster(t)

	var d student.EditDescriptor
	d.SetID("A0000001A")
	_, _, err := r.EditStudent(shared.MustIndex(1), shared.MustIndex(1), d)
	assert.NoError(t, err)
}

func TestRoster_EditStudentErrors(t *testing.T) {
	r := typicalRoster(t)
	before := r.Snapshot()

	var clash student.EditDescriptor
	clash.SetName("Benson Meier")
	clash.SetID("A0000002B")

	tests := []struct {
		name     string
		classIdx int
		stuIdx   int
		d        student.EditDescriptor
		want     error
	}{
		{"class out of range", 3, 1, clash, shared.ErrInvalidClassIndex},
		{"student out of range", 2, 2, clash, shared.ErrInvalidStudentIndex},
		{"duplicate in class", 1, 1, clash, shared.ErrDuplicateStudent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := r.EditStudent(shared.MustIndex(tt.classIdx), shared.MustIndex(tt.stuIdx), tt.d)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, r.Snapshot())
		})
	}
}

func TestRoster_MarkUnmarkMarkRestoresCounter(t *testing.T) {
	r := typicalRoster(t)
	idx := shared.MustIndex(1)

	s, err := r.MarkPresent("T01", idx)
	require.NoError(t, err)
	assert.Equal(t, student.LessonsAttended(1), s.LessonsAttended())

	s, err = r.MarkAbsent("T01", idx)
	require.NoError(t, err)
	assert.Equal(t, student.LessonsAttended(0), s.LessonsAttended())

	s, err = r.MarkPresent("T01", idx)
	require.NoError(t, err)
	assert.Equal(t, student.LessonsAttended(1), s.LessonsAttended())
	assert.Equal(t, student.Present, s.CurrentLessonAttendance())
}

func TestRoster_DoubleMarkFailsWithoutChange(t *testing.T) {
	r := typicalRoster(t)
	idx := shared.MustIndex(2)

	_, err := r.MarkPresent("T01", idx)
	require.NoError(t, err)
	before := r.Snapshot()

	_, err = r.MarkPresent("T01", idx)
	assert.ErrorIs(t, err, shared.ErrStudentAlreadyMarkedPresent)
	assert.Equal(t, before, r.Snapshot())

	_, err = r.MarkAbsent("T02", shared.MustIndex(1))
	assert.ErrorIs(t, err, shared.ErrStudentAlreadyMarkedAbsent)

	_, err = r.MarkPresent("T02", shared.MustIndex(5))
	assert.ErrorIs(t, err, shared.ErrInvalidStudentIndex)
}

func TestRoster_StartLessonResetsOnlyThatClass(t *testing.T) {
	r := typicalRoster(t)
	_, err := r.MarkPresent("T01", shared.MustIndex(1))
	require.NoError(t, err)
	_, err = r.MarkPresent("T02", shared.MustIndex(1))
	require.NoError(t, err)

	_, err = r.StartLesson("T01")
	require.NoError(t, err)

	alice, err := r.StudentAt("T01", shared.MustIndex(1))
	require.NoError(t, err)
	assert.Equal(t, student.Absent, alice.CurrentLessonAttendance())
	assert.Equal(t, student.LessonsAttended(1), alice.LessonsAttended())

	carl, err := r.StudentAt("T02", shared.MustIndex(1))
	require.NoError(t, err)
	assert.Equal(t, student.Present, carl.CurrentLessonAttendance())

	_, err = r.StartLesson("T99")
	assert.ErrorIs(t, err, shared.ErrUnknownClass)
}

func TestRoster_EditClass(t *testing.T) {
	r := typicalRoster(t)

	s := Schedule("Wed 4pm")
	c, err := r.EditClass("T02", ClassDescriptor{Schedule: &s})
	require.NoError(t, err)
	assert.Equal(t, s, c.Schedule)

	got, err := r.Class("T02")
	require.NoError(t, err)
	assert.Equal(t, s, got.Schedule)
	assert.Equal(t, 1, got.Size())
}

func TestRoster_ClassAt(t *testing.T) {
	r := typicalRoster(t)

	c, err := r.ClassAt(shared.MustIndex(2))
	require.NoError(t, err)
	assert.Equal(t, ClassName("T02"), c.Name)

	_, err = r.ClassAt(shared.MustIndex(3))
	assert.ErrorIs(t, err, shared.ErrInvalidClassIndex)
}

func TestRoster_Equal(t *testing.T) {
	a := typicalRoster(t)
	b := typicalRoster(t)
	assert.True(t, a.Equal(b), "keys differ but data is the same")

	_, err := b.MarkPresent("T02", shared.MustIndex(1))
	require.NoError(t, err)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}
