package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameContainsKeywords(t *testing.T) {
	s := Student{Name: "Alice Bob"}

	tests := []struct {
		name     string
		keywords []string
		want     bool
	}{
		{"one keyword", []string{"Alice"}, true},
		{"several keywords", []string{"Alice", "Bob"}, true},
		{"only one matches", []string{"Bob", "Carol"}, true},
		{"mixed case", []string{"aLIce", "bOB"}, true},
		{"no keywords", nil, false},
		{"no match", []string{"Carol"}, false},
		{"partial word", []string{"Ali"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NameContainsKeywords{Keywords: tt.keywords}.Test(s))
		})
	}
}
