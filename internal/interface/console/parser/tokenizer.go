package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/DonovanJJ/tp/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// TOKENIZER
// A prefix only counts when it is preceded by whitespace and followed by
// whitespace or the end of input, so "/note" is never read as "/n" + "ote"
// and "a/c" inside a value is left alone.
// ══════════════════════════════════════════════════════════════════════════════

// MessageDuplicatePrefixes is reported when a single-valued prefix is repeated.
const MessageDuplicatePrefixes = "Multiple values specified for the following single-valued field(s): "

// ArgumentMultimap maps each prefix to the values given for it, in order.
// The text before the first prefix is the preamble.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the trimmed text before the first prefix.
func (m ArgumentMultimap) Preamble() string {
	return m.preamble
}

// Value returns the last value given for p.
func (m ArgumentMultimap) Value(p Prefix) (string, bool) {
	vals := m.values[p]
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

// AllValues returns every value given for p, in order of appearance.
func (m ArgumentMultimap) AllValues(p Prefix) []string {
	vals := m.values[p]
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}

// Has reports whether all of the prefixes were given.
func (m ArgumentMultimap) Has(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if len(m.values[p]) == 0 {
			return false
		}
	}
	return true
}

// VerifyNoDuplicatePrefixesFor fails when any of the prefixes was given more than once.
func (m ArgumentMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...Prefix) error {
	var dups []string
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			dups = append(dups, p.String())
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return shared.NewDomainError("parser", "VerifyNoDuplicatePrefixesFor", shared.ErrCommandFormat,
		MessageDuplicatePrefixes+strings.Join(dups, " "))
}

type position struct {
	start  int
	prefix Prefix
}

// Tokenize splits args into a preamble and prefixed values. Only the given
// prefixes are recognised; anything else stays part of the surrounding value.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	positions := findPositions(args, prefixes)
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	m := ArgumentMultimap{values: make(map[Prefix][]string)}
	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	m.preamble = strings.TrimSpace(args[:end])

	for i, pos := range positions {
		valueEnd := len(args)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : valueEnd])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}

func findPositions(args string, prefixes []Prefix) []position {
	var out []position
	for _, p := range prefixes {
		from := 0
		for {
			i := strings.Index(args[from:], string(p))
			if i < 0 {
				break
			}
			start := from + i
			if isBoundary(args, start, len(p)) {
				out = append(out, position{start: start, prefix: p})
			}
			from = start + len(p)
		}
	}
	return out
}

// isBoundary decodes whole runes on both sides; a trailing byte of a
// multi-byte letter must not pass for whitespace.
func isBoundary(args string, start, length int) bool {
	if start == 0 {
		return false
	}
	if before, _ := utf8.DecodeLastRuneInString(args[:start]); !unicode.IsSpace(before) {
		return false
	}
	end := start + length
	if end == len(args) {
		return true
	}
	after, _ := utf8.DecodeRuneInString(args[end:])
	return unicode.IsSpace(after)
}
