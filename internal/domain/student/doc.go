// Package student contains the student side of the roster domain.
//
// It defines:
//
//   - Value objects: Name, ID, Phone, Email, Address, Memo
//   - Attendance: the current lesson flag, the cumulative counter and the
//     Absent/Present state machine that keeps them consistent
//   - The Student entity and the EditDescriptor used by edit commands
//   - NameContainsKeywords, the predicate behind "find"
//
// Every constructor validates its input once and returns a shared.DomainError
// of kind shared.ErrValidation on failure; a constructed value is immutable
// and safe to share.
//
// Students are value records. Operations such as MarkPresent return a new
// Student instead of mutating in place:
//
//	s := NewStudent(NewStudentParams{Name: name, ID: id})
//	s, err := s.MarkPresent()
//	if errors.Is(err, shared.ErrStudentAlreadyMarkedPresent) {
//	    // double marking is reported, never ignored
//	}
package student
