package student

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/DonovanJJ/tp/internal/domain/shared"
)

// validate is shared by the value objects; validator.Validate is safe for concurrent use.
var validate = validator.New()

// ══════════════════════════════════════════════════════════════════════════════
// NAME
// ══════════════════════════════════════════════════════════════════════════════

// MessageNameConstraints is reported for an invalid Name.
const MessageNameConstraints = "Names should only contain alphanumeric characters and spaces, and it should not be blank"

// The first character must not be a whitespace, otherwise " " (a blank string) becomes a valid input.
var nameRegex = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)

// Name is a student's display name.
type Name string

// NewName creates a Name with validation.
func NewName(raw string) (Name, error) {
	n := Name(strings.TrimSpace(raw))
	if !n.IsValid() {
		return "", shared.Validation("student", "NewName", MessageNameConstraints)
	}
	return n, nil
}

// IsValid checks the name format.
func (n Name) IsValid() bool {
	return nameRegex.MatchString(string(n))
}

// String returns the string representation.
func (n Name) String() string {
	return string(n)
}

// Words splits the name into whitespace-separated words.
func (n Name) Words() []string {
	return strings.Fields(string(n))
}

// ══════════════════════════════════════════════════════════════════════════════
// ID
// ══════════════════════════════════════════════════════════════════════════════

// MessageIDConstraints is reported for an invalid ID.
const MessageIDConstraints = "Student IDs should be of the format A0000000X: the letter A, 7 digits and a letter"

var idRegex = regexp.MustCompile(`^A[0-9]{7}[A-Z]$`)

// ID is a student's matriculation number, stored in upper case.
type ID string

// NewID creates an ID with validation.
func NewID(raw string) (ID, error) {
	id := ID(strings.ToUpper(strings.TrimSpace(raw)))
	if !id.IsValid() {
		return "", shared.Validation("student", "NewID", MessageIDConstraints)
	}
	return id, nil
}

// IsValid checks the ID format.
func (i ID) IsValid() bool {
	return idRegex.MatchString(string(i))
}

// String returns the string representation.
func (i ID) String() string {
	return string(i)
}

// ══════════════════════════════════════════════════════════════════════════════
// CONTACT DETAILS
// ══════════════════════════════════════════════════════════════════════════════

const (
	MessagePhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	MessageEmailConstraints   = "Emails should be of the format local-part@domain and adhere to the usual address rules"
	MessageAddressConstraints = "Addresses can take any values, and it should not be blank"
)

var phoneRegex = regexp.MustCompile(`^[0-9]{3,}$`)

// Phone is a student's phone number.
type Phone string

// NewPhone creates a Phone with validation.
func NewPhone(raw string) (Phone, error) {
	p := Phone(strings.TrimSpace(raw))
	if !phoneRegex.MatchString(string(p)) {
		return "", shared.Validation("student", "NewPhone", MessagePhoneConstraints)
	}
	return p, nil
}

// String returns the string representation.
func (p Phone) String() string {
	return string(p)
}

// Email is a student's email address.
type Email string

// NewEmail creates an Email with validation.
func NewEmail(raw string) (Email, error) {
	e := strings.TrimSpace(raw)
	if err := validate.Var(e, "required,email"); err != nil {
		return "", shared.WrapError("student", "NewEmail", shared.ErrValidation, MessageEmailConstraints, err)
	}
	return Email(e), nil
}

// String returns the string representation.
func (e Email) String() string {
	return string(e)
}

// Address is a student's mailing address.
type Address string

// NewAddress creates an Address with validation.
func NewAddress(raw string) (Address, error) {
	a := strings.TrimSpace(raw)
	if a == "" {
		return "", shared.Validation("student", "NewAddress", MessageAddressConstraints)
	}
	return Address(a), nil
}

// String returns the string representation.
func (a Address) String() string {
	return string(a)
}

// ══════════════════════════════════════════════════════════════════════════════
// MEMO
// ══════════════════════════════════════════════════════════════════════════════

const (
	// MaxMemoLength is the longest memo accepted, in characters.
	MaxMemoLength = 500

	MessageMemoConstraints = "Memos can take any values, up to 500 characters"
)

// Memo is a free-form note. An empty memo clears the note.
type Memo string

// NewMemo creates a Memo with validation.
func NewMemo(raw string) (Memo, error) {
	m := strings.TrimSpace(raw)
	if err := validate.Var(m, "max=500"); err != nil {
		return "", shared.WrapError("student", "NewMemo", shared.ErrValidation, MessageMemoConstraints, err)
	}
	return Memo(m), nil
}

// IsEmpty reports whether no note is set.
func (m Memo) IsEmpty() bool {
	return m == ""
}

// String returns the string representation.
func (m Memo) String() string {
	return string(m)
}
