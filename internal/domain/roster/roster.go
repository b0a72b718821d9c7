// Package roster contains the roster aggregate: the classes of a teaching
// assistant and the students enrolled in each of them.
package roster

import (
	"github.com/google/uuid"

	"github.com/DonovanJJ/tp/internal/domain/shared"
	"github.com/DonovanJJ/tp/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// AGGREGATE ROOT: ROSTER
// Student records live once, in the arena. A class only holds keys, and the
// top-level student list is derived by walking the classes in order, so the
// two views can never disagree.
// ══════════════════════════════════════════════════════════════════════════════

// Roster is the full in-memory collection of classes and students.
// It is not safe for concurrent use; a session owns it exclusively.
type Roster struct {
	classes  []*Class
	students map[uuid.UUID]student.Student
}

// New creates an empty roster.
func New() *Roster {
	return &Roster{
		students: make(map[uuid.UUID]student.Student),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────────────────────────

// Classes returns copies of all classes in order.
func (r *Roster) Classes() []*Class {
	out := make([]*Class, len(r.classes))
	for i, c := range r.classes {
		out[i] = c.clone()
	}
	return out
}

// NumClasses returns the number of classes.
func (r *Roster) NumClasses() int {
	return len(r.classes)
}

// NumStudents returns the number of students across all classes.
func (r *Roster) NumStudents() int {
	return len(r.students)
}

// HasClass reports whether a class with the given name exists.
func (r *Roster) HasClass(name ClassName) bool {
	_, ok := r.indexOfClass(name)
	return ok
}

// Class returns a copy of the named class.
func (r *Roster) Class(name ClassName) (*Class, error) {
	c, err := r.classByName(name)
	if err != nil {
		return nil, err
	}
	return c.clone(), nil
}

// ClassAt returns a copy of the class at the given position of the class list.
func (r *Roster) ClassAt(idx shared.Index) (*Class, error) {
	if !idx.InBounds(len(r.classes)) {
		return nil, shared.ErrInvalidClassIndex
	}
	return r.classes[idx.ZeroBased()].clone(), nil
}

// Students returns every student, class by class, in enrolment order.
func (r *Roster) Students() []student.Student {
	out := make([]student.Student, 0, len(r.students))
	for _, c := range r.classes {
		out = append(out, r.resolve(c)...)
	}
	return out
}

// StudentsOf returns the students of the named class in enrolment order.
func (r *Roster) StudentsOf(name ClassName) ([]student.Student, error) {
	c, err := r.classByName(name)
	if err != nil {
		return nil, err
	}
	return r.resolve(c), nil
}

// StudentAt returns the student at idx within the named class.
func (r *Roster) StudentAt(name ClassName, idx shared.Index) (student.Student, error) {
	c, err := r.classByName(name)
	if err != nil {
		return student.Student{}, err
	}
	key, err := keyAt(c, idx)
	if err != nil {
		return student.Student{}, err
	}
	return r.students[key], nil
}

// ClassOf returns the name of the class that owns the student with the given key.
func (r *Roster) ClassOf(key uuid.UUID) (ClassName, bool) {
	for _, c := range r.classes {
		if c.students.Contains(key) {
			return c.Name, true
		}
	}
	return "", false
}

// ──────────────────────────────────────────────────────────────────────────────
// Class mutations
// ──────────────────────────────────────────────────────────────────────────────

// AddClass adds an empty class. Class names are unique.
func (r *Roster) AddClass(name ClassName) (*Class, error) {
	if r.HasClass(name) {
		return nil, shared.ErrDuplicateClass
	}
	c := NewClass(name)
	r.classes = append(r.classes, c)
	return c.clone(), nil
}

// RemoveClass removes the named class together with all its students.
func (r *Roster) RemoveClass(name ClassName) (*Class, error) {
	i, ok := r.indexOfClass(name)
	if !ok {
		return nil, shared.ErrUnknownClass
	}
	c := r.classes[i]
	for _, key := range c.students.keys {
		delete(r.students, key)
	}
	r.classes = append(r.classes[:i:i], r.classes[i+1:]...)
	return c, nil
}

// EditClass applies the present descriptor fields to the named class.
func (r *Roster) EditClass(name ClassName, d ClassDescriptor) (*Class, error) {
	c, err := r.classByName(name)
	if err != nil {
		return nil, err
	}
	d.apply(c)
	return c.clone(), nil
}

// StartLesson resets the current lesson attendance of every student in the class.
func (r *Roster) StartLesson(name ClassName) (*Class, error) {
	c, err := r.classByName(name)
	if err != nil {
		return nil, err
	}
	for _, key := range c.students.keys {
		r.students[key] = r.students[key].StartLesson()
	}
	return c.clone(), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Student mutations
// ──────────────────────────────────────────────────────────────────────────────

// AddStudent enrols s in the named class. No two students of a class may be the same student.
func (r *Roster) AddStudent(name ClassName, s student.Student) error {
	c, err := r.classByName(name)
	if err != nil {
		return err
	}
	if r.hasSameStudent(c, s, uuid.Nil) {
		return shared.ErrDuplicateStudent
	}
	if s.Key == uuid.Nil {
		s.Key = uuid.New()
	}
	if _, taken := r.students[s.Key]; taken {
		return shared.ErrDuplicateStudent
	}
	r.students[s.Key] = s
	c.students.add(s.Key)
	return nil
}

// RemoveStudent deletes the student at idx from the class and from the roster.
func (r *Roster) RemoveStudent(name ClassName, idx shared.Index) (student.Student, error) {
	c, err := r.classByName(name)
	if err != nil {
		return student.Student{}, err
	}
	key, err := keyAt(c, idx)
	if err != nil {
		return student.Student{}, err
	}
	removed := r.students[key]
	c.students.remove(key)
	delete(r.students, key)
	return removed, nil
}

// EditStudent applies d to the student at studentIdx of the class at classIdx.
// It returns the student before and after the edit.
func (r *Roster) EditStudent(classIdx, studentIdx shared.Index, d student.EditDescriptor) (student.Student, student.Student, error) {
	if !classIdx.InBounds(len(r.classes)) {
		return student.Student{}, student.Student{}, shared.ErrInvalidClassIndex
	}
	c := r.classes[classIdx.ZeroBased()]
	key, err := keyAt(c, studentIdx)
	if err != nil {
		return student.Student{}, student.Student{}, err
	}

	before := r.students[key]
	after := d.Apply(before)
	if r.hasSameStudent(c, after, key) {
		return student.Student{}, student.Student{}, shared.ErrDuplicateStudent
	}
	r.students[key] = after
	return before, after, nil
}

// MarkPresent marks the student at idx of the class present for the current lesson.
func (r *Roster) MarkPresent(name ClassName, idx shared.Index) (student.Student, error) {
	return r.transition(name, idx, student.Student.MarkPresent)
}

// MarkAbsent marks the student at idx of the class absent for the current lesson.
func (r *Roster) MarkAbsent(name ClassName, idx shared.Index) (student.Student, error) {
	return r.transition(name, idx, student.Student.MarkAbsent)
}

func (r *Roster) transition(name ClassName, idx shared.Index, fn func(student.Student) (student.Student, error)) (student.Student, error) {
	c, err := r.classByName(name)
	if err != nil {
		return student.Student{}, err
	}
	key, err := keyAt(c, idx)
	if err != nil {
		return student.Student{}, err
	}
	next, err := fn(r.students[key])
	if err != nil {
		return student.Student{}, err
	}
	r.students[key] = next
	return next, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Comparison
// ──────────────────────────────────────────────────────────────────────────────

// Equal compares both rosters by class list and, per class, by student data,
// attendance and counters. Internal keys are ignored.
func (r *Roster) Equal(other *Roster) bool {
	if other == nil || len(r.classes) != len(other.classes) {
		return false
	}
	for i, c := range r.classes {
		oc := other.classes[i]
		if c.Name != oc.Name || c.Schedule != oc.Schedule || c.TotalLessons != oc.TotalLessons || c.Memo != oc.Memo {
			return false
		}
		mine, theirs := r.resolve(c), other.resolve(oc)
		if len(mine) != len(theirs) {
			return false
		}
		for j := range mine {
			if !mine[j].Equal(theirs[j]) {
				return false
			}
		}
	}
	return true
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func (r *Roster) indexOfClass(name ClassName) (int, bool) {
	for i, c := range r.classes {
		if c.Name == name {
			return i, true
		}
	}
	return 0, false
}

func (r *Roster) classByName(name ClassName) (*Class, error) {
	i, ok := r.indexOfClass(name)
	if !ok {
		return nil, shared.ErrUnknownClass
	}
	return r.classes[i], nil
}

func (r *Roster) resolve(c *Class) []student.Student {
	out := make([]student.Student, 0, c.students.Len())
	for _, key := range c.students.keys {
		out = append(out, r.students[key])
	}
	return out
}

func (r *Roster) hasSameStudent(c *Class, s student.Student, except uuid.UUID) bool {
	for _, key := range c.students.keys {
		if key != except && r.students[key].IsSameStudent(s) {
			return true
		}
	}
	return false
}

func keyAt(c *Class, idx shared.Index) (uuid.UUID, error) {
	key, ok := c.students.At(idx)
	if !ok {
		return uuid.Nil, shared.ErrInvalidStudentIndex
	}
	return key, nil
}
