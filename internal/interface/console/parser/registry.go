package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/DonovanJJ/tp/internal/application/command"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTRY
// Maps command words to sub-parsers. A command word may span several tokens
// ("remove /s"); lookup always prefers the longest word that matches.
// ══════════════════════════════════════════════════════════════════════════════

// Registry holds the command word to sub-parser mapping.
// It is built once and not modified while commands are being parsed.
type Registry struct {
	parsers map[string]Parser
	words   []string // longest first
}

// NewRegistry creates a registry with every EduTrack command registered.
func NewRegistry() *Registry {
	r := &Registry{parsers: make(map[string]Parser)}

	r.Register(command.WordAddClass, parseAddClass)
	r.Register(command.WordAddStudent, parseAddStudent)
	r.Register(command.WordRemoveClass, parseRemoveClass)
	r.Register(command.WordRemoveStudent, parseRemoveStudent)
	r.Register(command.WordEditStudent, parseEditStudent)
	r.Register(command.WordEditClass, parseEditClass)
	r.Register(command.WordMarkPresent, parseMarkPresent)
	r.Register(command.WordMarkAbsent, parseMarkAbsent)
	r.Register(command.WordStartLesson, parseStartLesson)
	r.Register(command.WordViewClass, parseViewClass)
	r.Register(command.WordFind, parseFind)
	r.Register(command.WordList, noArgs(command.ListCommand{}))
	r.Register(command.WordClear, noArgs(command.ClearCommand{}))
	r.Register(command.WordHelp, noArgs(command.HelpCommand{}))
	r.Register(command.WordExit, noArgs(command.ExitCommand{}))

	return r
}

// Register adds or replaces the parser for word.
func (r *Registry) Register(word string, p Parser) {
	if _, exists := r.parsers[word]; !exists {
		r.words = append(r.words, word)
		sort.SliceStable(r.words, func(i, j int) bool { return len(r.words[i]) > len(r.words[j]) })
	}
	r.parsers[word] = p
}

// Words returns the registered command words, longest first.
func (r *Registry) Words() []string {
	out := make([]string, len(r.words))
	copy(out, r.words)
	return out
}

// Lookup finds the command word at the start of input. It returns the word,
// the remaining arguments with their leading whitespace kept, and the parser.
func (r *Registry) Lookup(input string) (word, args string, p Parser, ok bool) {
	for _, w := range r.words {
		if !strings.HasPrefix(input, w) {
			continue
		}
		rest := input[len(w):]
		if rest == "" || startsWithSpace(rest) {
			return w, rest, r.parsers[w], true
		}
	}
	return "", "", nil, false
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}
