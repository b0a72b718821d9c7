// Package parser turns a raw command line into a command.Command.
//
// A line is split into a command word and its arguments; the word selects a
// sub-parser from the Registry, and the sub-parser tokenizes the arguments by
// Prefix, validates their presence and converts each value through the
// matching domain constructor.
//
// Failures are shared.DomainError values:
//
//   - shared.ErrUnknownCommand: the command word is not registered
//   - shared.ErrCommandFormat: a prefix is missing, repeated or misplaced
//   - shared.ErrValidation: a value was rejected by its constructor
package parser

import (
	"strings"

	"github.com/DonovanJJ/tp/internal/application/command"
	"github.com/DonovanJJ/tp/internal/domain/shared"
)

// EduTrackParser parses full command lines.
type EduTrackParser struct {
	registry *Registry
}

// NewEduTrackParser creates a parser over reg. A nil registry means NewRegistry().
func NewEduTrackParser(reg *Registry) *EduTrackParser {
	if reg == nil {
		reg = NewRegistry()
	}
	return &EduTrackParser{registry: reg}
}

// ParseCommand parses one line of user input.
func (p *EduTrackParser) ParseCommand(input string) (command.Command, error) {
	line := strings.TrimSpace(input)
	if line == "" {
		return nil, shared.CommandFormat("ParseCommand", command.UsageHelp, nil)
	}

	_, args, parse, ok := p.registry.Lookup(line)
	if !ok {
		return nil, shared.ErrUnknownCommandWord
	}
	return parse(args)
}

// CommandWord returns the registered command word input starts with, or ""
// when there is none. It is used to label log entries for failed lines.
func (p *EduTrackParser) CommandWord(input string) string {
	word, _, _, _ := p.registry.Lookup(strings.TrimSpace(input))
	return word
}
