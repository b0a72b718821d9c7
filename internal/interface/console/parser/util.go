package parser

import (
	"errors"

	"github.com/DonovanJJ/tp/internal/domain/shared"
)

// parseIndex converts a typed index. A value that is not a positive integer
// is a misuse of the command and reported with its usage; a value that is too
// large is reported as a validation failure with its own message.
func parseIndex(raw, op, usage string) (shared.Index, error) {
	idx, err := shared.ParseIndex(raw)
	if err == nil {
		return idx, nil
	}
	if errors.Is(err, shared.ErrValueOutOfRange) {
		return shared.Index{}, shared.WrapError("parser", op, shared.ErrValidation, shared.Message(err), err)
	}
	return shared.Index{}, shared.CommandFormat(op, usage, err)
}

// requireShape checks the parts of the grammar every class-scoped command
// shares: required prefixes present, single-valued prefixes not repeated and
// the preamble empty or not as the command demands.
func requireShape(m ArgumentMultimap, op, usage string, wantPreamble bool, required []Prefix, single ...Prefix) error {
	if !m.Has(required...) || (m.Preamble() != "") != wantPreamble {
		return shared.CommandFormat(op, usage, nil)
	}
	return m.VerifyNoDuplicatePrefixesFor(single...)
}

// optional runs parse on the value of p when p was given.
func optional[T any](m ArgumentMultimap, p Prefix, parse func(string) (T, error)) (*T, error) {
	raw, ok := m.Value(p)
	if !ok {
		return nil, nil
	}
	v, err := parse(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
