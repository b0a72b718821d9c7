package shared

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// Index Value Object
// ═══════════════════════════════════════════════════════════════════════════

// MaxIntInput is the largest numeric argument a command accepts.
const MaxIntInput = math.MaxInt32

const (
	MessageInvalidIndex    = "Index is not a non-zero unsigned integer."
	MessageIndexOutOfRange = "Index only accept number from 0 to 2147483647."
)

var unsignedRegex = regexp.MustCompile(`^[0-9]+$`)

// Index is a position in a displayed list. It is stored zero-based and
// rendered one-based, the way users type it.
type Index struct {
	zeroBased int
}

// IndexFromOneBased creates an Index from a one-based position.
func IndexFromOneBased(oneBased int) (Index, error) {
	if oneBased < 1 {
		return Index{}, NewDomainError("shared", "NewIndex", ErrValueOutOfRange, MessageInvalidIndex)
	}
	return Index{zeroBased: oneBased - 1}, nil
}

// IndexFromZeroBased creates an Index from a zero-based position.
func IndexFromZeroBased(zeroBased int) (Index, error) {
	if zeroBased < 0 {
		return Index{}, NewDomainError("shared", "NewIndex", ErrNegativeValue, MessageInvalidIndex)
	}
	return Index{zeroBased: zeroBased}, nil
}

// MustIndex is IndexFromOneBased for constants in tests and fixtures.
func MustIndex(oneBased int) Index {
	idx, err := IndexFromOneBased(oneBased)
	if err != nil {
		panic(err)
	}
	return idx
}

// ParseIndex parses a one-based index typed by the user.
// "Not a non-zero unsigned integer" and "out of range" are reported separately.
func ParseIndex(raw string) (Index, error) {
	trimmed := strings.TrimSpace(raw)
	if !unsignedRegex.MatchString(trimmed) {
		return Index{}, NewDomainError("shared", "ParseIndex", ErrInvalidFormat, MessageInvalidIndex)
	}

	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || n > MaxIntInput {
		return Index{}, WrapError("shared", "ParseIndex", ErrValueOutOfRange, MessageIndexOutOfRange, err)
	}
	if n == 0 {
		return Index{}, NewDomainError("shared", "ParseIndex", ErrInvalidFormat, MessageInvalidIndex)
	}
	return Index{zeroBased: int(n) - 1}, nil
}

// ZeroBased returns the zero-based position.
func (i Index) ZeroBased() int {
	return i.zeroBased
}

// OneBased returns the one-based position.
func (i Index) OneBased() int {
	return i.zeroBased + 1
}

// InBounds reports whether the index addresses an element of a list of the given size.
func (i Index) InBounds(size int) bool {
	return i.zeroBased < size
}

// String returns the one-based representation.
func (i Index) String() string {
	return fmt.Sprintf("%d", i.OneBased())
}
