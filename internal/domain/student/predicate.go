package student

import "strings"

// NameContainsKeywords matches students whose name contains any of the keywords
// as a whole word, ignoring case.
type NameContainsKeywords struct {
	Keywords []string
}

// Test reports whether s matches the predicate.
func (p NameContainsKeywords) Test(s Student) bool {
	for _, word := range s.Name.Words() {
		for _, kw := range p.Keywords {
			if strings.EqualFold(word, kw) {
				return true
			}
		}
	}
	return false
}

// Equal compares the keyword lists in order.
func (p NameContainsKeywords) Equal(other NameContainsKeywords) bool {
	if len(p.Keywords) != len(other.Keywords) {
		return false
	}
	for i := range p.Keywords {
		if p.Keywords[i] != other.Keywords[i] {
			return false
		}
	}
	return true
}
